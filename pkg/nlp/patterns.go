package nlp

import (
	"regexp"
)

type navigationPattern struct {
	calculator CalculatorID
	pattern    *regexp.Regexp
}

type explanationEntry struct {
	calculator CalculatorID
	key        *regexp.Regexp
	text       string
}

// PatternTable holds every trigger the matcher uses. It is built once and
// never mutated, so a single table can be shared by all request goroutines.
type PatternTable struct {
	explain      *regexp.Regexp
	navigation   []navigationPattern
	explanations []explanationEntry
	calculation  *regexp.Regexp
	conversion   *regexp.Regexp
}

func NewPatternTable() *PatternTable {
	table := &PatternTable{
		explain:     regexp.MustCompile(`explain|what is|tell me about`),
		calculation: regexp.MustCompile(`calculate\s+(.+)`),
		conversion:  regexp.MustCompile(`convert\s+(\d+\.?\d*)\s*(\w+)\s+to\s+(\w+)`),
	}

	for _, nav := range defaultNavigation() {
		table.navigation = append(table.navigation, navigationPattern{
			calculator: nav.id,
			pattern:    regexp.MustCompile(nav.expr),
		})
	}

	// The bare identifier is the key pattern, so "age" also hits "page" or
	// "percentage".
	for _, exp := range defaultExplanations() {
		table.explanations = append(table.explanations, explanationEntry{
			calculator: exp.id,
			key:        regexp.MustCompile(regexp.QuoteMeta(string(exp.id))),
			text:       exp.text,
		})
	}

	return table
}

// Calculators lists the navigation identifiers in match order.
func (t *PatternTable) Calculators() []CalculatorID {
	ids := make([]CalculatorID, 0, len(t.navigation))
	for _, nav := range t.navigation {
		ids = append(ids, nav.calculator)
	}
	return ids
}

func (t *PatternTable) Explanation(id CalculatorID) (string, bool) {
	for _, exp := range t.explanations {
		if exp.calculator == id {
			return exp.text, true
		}
	}
	return "", false
}

func (t *PatternTable) IsCalculator(id CalculatorID) bool {
	for _, nav := range t.navigation {
		if nav.calculator == id {
			return true
		}
	}
	return false
}

type navigationDef struct {
	id   CalculatorID
	expr string
}

type explanationDef struct {
	id   CalculatorID
	text string
}

func defaultNavigation() []navigationDef {
	return []navigationDef{
		{CalculatorBMI, `bmi|body mass index`},
		{CalculatorCurrency, `currency|exchange rate`},
		{CalculatorDate, `date|date calculator`},
		{CalculatorLoan, `loan|mortgage`},
		{CalculatorTip, `tip|bill splitter`},
		{CalculatorAge, `age|age calculator`},
		{CalculatorUnit, `unit|convert|conversion`},
		{CalculatorPercentage, `percentage|percent`},
		{CalculatorStandard, `standard|basic calculator`},
		{CalculatorScientific, `scientific|advanced calculator`},
	}
}

func defaultExplanations() []explanationDef {
	return []explanationDef{
		{CalculatorStandard, "The Standard Calculator performs basic arithmetic operations like addition, subtraction, multiplication, and division."},
		{CalculatorScientific, "The Scientific Calculator is an advanced tool for complex calculations, including trigonometric, logarithmic, and power functions."},
		{CalculatorBMI, "The BMI Calculator helps you determine if your body weight is healthy based on your height and weight."},
		{CalculatorCurrency, "The Currency Converter allows you to quickly convert a value from one currency to another using up-to-date exchange rates."},
		{CalculatorDate, "The Date Calculator helps you find the duration between two dates or add/subtract time from a specific date."},
		{CalculatorLoan, "The Loan Calculator computes your monthly loan payment, total interest, and total cost based on the loan amount, interest rate, and term."},
		{CalculatorTip, "The Tip Calculator helps you figure out the tip amount for a bill and can split the total evenly among a group of people."},
		{CalculatorAge, "The Age Calculator determines a person's exact age in years, months, and days based on their date of birth."},
		{CalculatorUnit, "The Unit Converter is a versatile tool that converts values between different units of measurement, such as length, weight, and temperature."},
		{CalculatorPercentage, "The Percentage Calculator solves various percentage problems, including finding a percentage of a value or calculating percentage increases and decreases."},
	}
}
