package nlp

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmptyExpression  = errors.New("empty expression")
	ErrUnexpectedToken  = errors.New("unexpected token in expression")
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNonFinite        = errors.New("result is not a finite number")
	ErrTooDeep          = errors.New("expression nested too deeply")
)

const maxExpressionDepth = 64

var operatorGlyphs = strings.NewReplacer(
	"x", "*",
	"×", "*",
	"÷", "/",
)

// NormalizeExpression swaps the informal multiplication and division glyphs
// people type for the operators the evaluator understands.
func NormalizeExpression(expr string) string {
	return operatorGlyphs.Replace(expr)
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
	tokenLParen
	tokenRParen
	tokenEOF
)

type token struct {
	kind    tokenKind
	value   float64
	isFloat bool
	op      byte
}

// Number is an evaluation result. IsFloat is set once a decimal literal or a
// division took part, which decides how the value is printed.
type Number struct {
	Value   float64
	IsFloat bool
}

// String prints integers without a fraction and floats the way Python's
// repr does: a trailing ".0" for whole values and exponent form below 1e-4
// or from 1e16 upwards.
func (n Number) String() string {
	if !n.IsFloat {
		return FormatNumber(n.Value)
	}

	if n.Value != 0 {
		sci := strconv.FormatFloat(n.Value, 'e', -1, 64)
		exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
		if exp < -4 || exp >= 16 {
			return sci
		}
	}

	text := strconv.FormatFloat(n.Value, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

// EvaluateArithmetic evaluates numbers combined with + - * / and
// parentheses using the usual precedence. Anything else is rejected.
func EvaluateArithmetic(expr string) (Number, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return Number{}, err
	}
	if len(tokens) == 1 {
		return Number{}, ErrEmptyExpression
	}

	p := &parser{tokens: tokens}
	result, err := p.parseExpression(0)
	if err != nil {
		return Number{}, err
	}

	switch p.peek().kind {
	case tokenEOF:
	case tokenRParen:
		return Number{}, ErrUnbalancedParens
	default:
		return Number{}, ErrUnexpectedToken
	}

	if math.IsInf(result.Value, 0) || math.IsNaN(result.Value) {
		return Number{}, ErrNonFinite
	}

	return result, nil
}

func tokenize(expr string) ([]token, error) {
	var tokens []token

	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '+' || c == '-' || c == '*' || c == '/':
			tokens = append(tokens, token{kind: tokenOperator, op: c})
			i++
		case c == '(':
			tokens = append(tokens, token{kind: tokenLParen})
			i++
		case c == ')':
			tokens = append(tokens, token{kind: tokenRParen})
			i++
		case isDigit(c) || c == '.':
			start := i
			seenDot := false
			for i < len(expr) && (isDigit(expr[i]) || expr[i] == '.') {
				if expr[i] == '.' {
					if seenDot {
						return nil, ErrUnexpectedToken
					}
					seenDot = true
				}
				i++
			}
			text := expr[start:i]
			if text == "." {
				return nil, ErrUnexpectedToken
			}
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, ErrUnexpectedToken
			}
			tokens = append(tokens, token{kind: tokenNumber, value: value, isFloat: seenDot})
		default:
			return nil, ErrUnexpectedToken
		}
	}

	return append(tokens, token{kind: tokenEOF}), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) parseExpression(depth int) (Number, error) {
	if depth > maxExpressionDepth {
		return Number{}, ErrTooDeep
	}

	left, err := p.parseTerm(depth)
	if err != nil {
		return Number{}, err
	}

	for {
		t := p.peek()
		if t.kind != tokenOperator || (t.op != '+' && t.op != '-') {
			return left, nil
		}
		p.next()

		right, err := p.parseTerm(depth)
		if err != nil {
			return Number{}, err
		}
		if t.op == '+' {
			left.Value += right.Value
		} else {
			left.Value -= right.Value
		}
		left.IsFloat = left.IsFloat || right.IsFloat
	}
}

func (p *parser) parseTerm(depth int) (Number, error) {
	left, err := p.parseUnary(depth)
	if err != nil {
		return Number{}, err
	}

	for {
		t := p.peek()
		if t.kind != tokenOperator || (t.op != '*' && t.op != '/') {
			return left, nil
		}
		p.next()

		right, err := p.parseUnary(depth)
		if err != nil {
			return Number{}, err
		}
		if t.op == '*' {
			left.Value *= right.Value
			left.IsFloat = left.IsFloat || right.IsFloat
			continue
		}
		if right.Value == 0 {
			return Number{}, ErrDivisionByZero
		}
		// Division always yields a float, even for whole operands.
		left.Value /= right.Value
		left.IsFloat = true
	}
}

func (p *parser) parseUnary(depth int) (Number, error) {
	if depth > maxExpressionDepth {
		return Number{}, ErrTooDeep
	}

	t := p.peek()
	if t.kind == tokenOperator && (t.op == '+' || t.op == '-') {
		p.next()
		n, err := p.parseUnary(depth + 1)
		if err != nil {
			return Number{}, err
		}
		if t.op == '-' {
			n.Value = -n.Value
		}
		return n, nil
	}

	return p.parsePrimary(depth)
}

func (p *parser) parsePrimary(depth int) (Number, error) {
	t := p.next()
	switch t.kind {
	case tokenNumber:
		return Number{Value: t.value, IsFloat: t.isFloat}, nil
	case tokenLParen:
		n, err := p.parseExpression(depth + 1)
		if err != nil {
			return Number{}, err
		}
		if p.next().kind != tokenRParen {
			return Number{}, ErrUnbalancedParens
		}
		return n, nil
	case tokenRParen:
		return Number{}, ErrUnbalancedParens
	default:
		return Number{}, ErrUnexpectedToken
	}
}

// FormatNumber renders a whole-number result without a decimal point.
func FormatNumber(v float64) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
