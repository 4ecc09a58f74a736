package nlp

import (
	"errors"
	"strconv"

	"OmniCalc/pkg/unitconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type NLPProcessor struct {
	patterns  *PatternTable
	converter unitconv.IConverter
}

func NewProcessor(patterns *PatternTable, converter unitconv.IConverter) INLPProcessor {
	if patterns == nil {
		patterns = NewPatternTable()
	}
	if converter == nil {
		converter = unitconv.New()
	}

	return &NLPProcessor{
		patterns:  patterns,
		converter: converter,
	}
}

// Classify maps a free-text query to exactly one result. Phases run in
// order and the first phase that produces a result wins.
func (nlp *NLPProcessor) Classify(query string) QueryResult {
	text := nlp.cleanText(query)

	if result, ok := nlp.matchExplanation(text); ok {
		return result
	}

	conversion := nlp.patterns.conversion.FindStringSubmatch(text)
	matched := nlp.matchNavigation(text)

	// A complete "convert <n> <unit> to <unit>" request only yields to
	// navigation when some trigger other than the unit calculator's hit.
	if conversion != nil && onlyCalculator(matched, CalculatorUnit) {
		return nlp.convert(conversion[1], conversion[2], conversion[3])
	}

	if len(matched) > 0 {
		return Navigation(matched[0])
	}

	if result, ok := nlp.matchCalculation(text); ok {
		return result
	}

	return Failure(FallbackMessage)
}

func (nlp *NLPProcessor) matchExplanation(text string) (QueryResult, bool) {
	if !nlp.patterns.explain.MatchString(text) {
		return QueryResult{}, false
	}

	for _, exp := range nlp.patterns.explanations {
		if exp.key.MatchString(text) {
			return Explanation(exp.text), true
		}
	}

	return QueryResult{}, false
}

// matchNavigation returns every calculator whose trigger occurs in text, in
// table order.
func (nlp *NLPProcessor) matchNavigation(text string) []CalculatorID {
	var matched []CalculatorID
	for _, nav := range nlp.patterns.navigation {
		if nav.pattern.MatchString(text) {
			matched = append(matched, nav.calculator)
		}
	}

	return matched
}

func onlyCalculator(matched []CalculatorID, id CalculatorID) bool {
	for _, m := range matched {
		if m != id {
			return false
		}
	}
	return true
}

func (nlp *NLPProcessor) convert(amountText, from, to string) QueryResult {
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil {
		return Failure(FallbackMessage)
	}

	_, message, err := nlp.converter.Convert(amount, from, to)
	if err != nil {
		var convErr *unitconv.ConversionError
		if errors.As(err, &convErr) {
			return Failure("Sorry, I couldn't perform that conversion. " + convErr.Reason)
		}
		return Failure("Sorry, I couldn't perform that conversion.")
	}

	return Calculation(message)
}

func (nlp *NLPProcessor) matchCalculation(text string) (QueryResult, bool) {
	match := nlp.patterns.calculation.FindStringSubmatch(text)
	if match == nil {
		return QueryResult{}, false
	}

	result, err := EvaluateArithmetic(NormalizeExpression(match[1]))
	if err != nil {
		return QueryResult{}, false
	}

	return Calculation("The result is " + result.String() + "."), true
}

func (nlp *NLPProcessor) cleanText(text string) string {
	return cases.Lower(language.Und).String(text)
}
