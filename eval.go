package notation

import (
	"math"
	"strconv"
	"strings"
)

// CalcPostfix evaluates a postfix expression.
func CalcPostfix(expr string) (float64, error) {
	return reduce(tokens(expr), false, num, apply)
}

// CalcPrefix evaluates a prefix expression.
func CalcPrefix(expr string) (float64, error) {
	return reduce(tokens(expr), true, num, apply)
}

// CalcInfix evaluates an infix expression. It is equivalent to evaluating the
// result of InfixToPostfix, except that error positions refer to expr.
func CalcInfix(expr string) (float64, error) {
	toks, err := shunt(tokens(expr), false)
	if err != nil {
		return 0, err
	}
	return reduce(toks, false, num, apply)
}

// num parses a number token.
func num(tok lexToken) (float64, error) {
	// The lexer only produces well-formed numbers, so the only possible error
	// is a value out of range.
	x, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		return 0, &NumberError{Col: tok.pos, Num: tok.text, Err: err}
	}
	// ParseFloat rounds numbers too small for float64 to zero without error.
	if x == 0 && strings.ContainsAny(tok.text, "123456789") {
		err := &strconv.NumError{Func: "ParseFloat", Num: tok.text, Err: strconv.ErrRange}
		return 0, &NumberError{Col: tok.pos, Num: tok.text, Err: err}
	}
	return x, nil
}

// apply evaluates a binary operator.
func apply(op lexToken, l, r float64) (float64, error) {
	switch op.text {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, &DivideByZeroError{Col: op.pos, X: l}
		}
		return l / r, nil
	case "^", "**":
		return math.Pow(l, r), nil
	default:
		return 0, &OperatorError{Col: op.pos, Operator: op.text}
	}
}
