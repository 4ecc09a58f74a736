package nlp

import "strings"

// CalculatorID names one of the calculator features the frontend can open.
type CalculatorID string

const (
	CalculatorBMI        CalculatorID = "bmi"
	CalculatorCurrency   CalculatorID = "currency"
	CalculatorDate       CalculatorID = "date"
	CalculatorLoan       CalculatorID = "loan"
	CalculatorTip        CalculatorID = "tip"
	CalculatorAge        CalculatorID = "age"
	CalculatorUnit       CalculatorID = "unit"
	CalculatorPercentage CalculatorID = "percentage"
	CalculatorStandard   CalculatorID = "standard"
	CalculatorScientific CalculatorID = "scientific"
)

type ResultType string

const (
	TypeExplanation ResultType = "explanation"
	TypeNavigation  ResultType = "navigation"
	TypeCalculation ResultType = "calculation"
	TypeError       ResultType = "error"
)

// QueryResult is the single outcome of classifying a query. Calculator is
// only set for navigation results.
type QueryResult struct {
	Type       ResultType   `json:"type"`
	Message    string       `json:"message"`
	Calculator CalculatorID `json:"calculator,omitempty"`
}

type INLPProcessor interface {
	Classify(query string) QueryResult
}

const FallbackMessage = "I'm sorry, I don't understand that command. Try asking for a calculation or to open a specific calculator."

func Explanation(message string) QueryResult {
	return QueryResult{Type: TypeExplanation, Message: message}
}

func Navigation(id CalculatorID) QueryResult {
	return QueryResult{
		Type:       TypeNavigation,
		Calculator: id,
		Message:    "Opening the " + id.DisplayName() + " calculator for you.",
	}
}

func Calculation(message string) QueryResult {
	return QueryResult{Type: TypeCalculation, Message: message}
}

func Failure(message string) QueryResult {
	return QueryResult{Type: TypeError, Message: message}
}

// DisplayName upper-cases the first letter and lower-cases the rest, so
// "bmi" becomes "Bmi".
func (id CalculatorID) DisplayName() string {
	s := string(id)
	if s == "" {
		return s
	}
	runes := []rune(s)
	head := strings.ToUpper(string(runes[0]))
	return head + strings.ToLower(string(runes[1:]))
}
