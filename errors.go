package notation

import (
	"errors"
	"strconv"
)

// TokenError is an error indicating a token that is not a number, operator,
// or parenthesis, or a parenthesis in prefix or postfix input. It implements
// InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the token.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an unmatched parenthesis in infix
// input. Exactly one of Left and Right is set. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is an open parenthesis that was never closed.
	Left string
	// Right is a close parenthesis with no open parenthesis.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator with fewer than two operands
// available. It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that lacked operands.
	Operator string
	// Have is the number of operands that were available.
	Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "insufficient operands for "+strconv.Quote(err.Operator)+": have "+strconv.Itoa(err.Have)+", need 2")
}

func (err *OperandError) Pos() int {
	return err.Col
}

// ExpressionError is an error indicating that an expression does not reduce
// to exactly one value, e.g. "1 2 3 +" in postfix or an empty input. It
// implements InputError.
type ExpressionError struct {
	// Col is the position of the first token of the expression, or 1 if there
	// are no tokens.
	Col int
	// Len is the number of values left after reducing the expression.
	Len int
}

func (err *ExpressionError) Error() string {
	if err.Len == 0 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "malformed expression: "+strconv.Itoa(err.Len)+" values without operators")
}

func (err *ExpressionError) Pos() int {
	return err.Col
}

// DivideByZeroError is an error from evaluating a division whose divisor is
// zero. It implements InputError.
type DivideByZeroError struct {
	// Col is the position of the division operator.
	Col int
	// X is the dividend.
	X float64
}

func (err *DivideByZeroError) Error() string {
	return errpos(err.Col, "division by zero: "+strconv.FormatFloat(err.X, 'g', -1, 64)+" / 0")
}

func (err *DivideByZeroError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a number that cannot be represented as a
// float64. It unwraps to the *strconv.NumError from parsing. It implements
// InputError.
type NumberError struct {
	// Col is the position of the number.
	Col int
	// Num is the text of the number.
	Num string
	// Err is the error from parsing the number.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "number out of range: "+err.Num)
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// OperatorError is an error indicating a symbol that is not in the operator
// table. It implements InputError. Errors from Precedence and Associativity
// have no position.
type OperatorError struct {
	// Col is the position of the operator, or 0 if there is none.
	Col int
	// Operator is the symbol that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*ExpressionError)(nil)
	_ InputError = (*DivideByZeroError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*OperatorError)(nil)
)

// Kind classifies errors from conversion and evaluation.
type Kind int8

const (
	// KindNone is the kind of nil and of errors not from this package.
	KindNone Kind = iota
	InvalidToken
	MismatchedParentheses
	InsufficientOperands
	MalformedExpression
	DivisionByZero
	NumberOutOfRange
	UnknownOperator
)

var kindNames = [...]string{
	KindNone:              "none",
	InvalidToken:          "invalid token",
	MismatchedParentheses: "mismatched parentheses",
	InsufficientOperands:  "insufficient operands",
	MalformedExpression:   "malformed expression",
	DivisionByZero:        "division by zero",
	NumberOutOfRange:      "number out of range",
	UnknownOperator:       "unknown operator",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind gets the Kind with the given name, as returned by Kind.String.
func ParseKind(name string) (Kind, bool) {
	for k, s := range kindNames {
		if s == name {
			return Kind(k), true
		}
	}
	return KindNone, false
}

// KindOf classifies err by the error types of this package in its chain.
func KindOf(err error) Kind {
	var (
		tok *TokenError
		br  *BracketError
		opd *OperandError
		ex  *ExpressionError
		div *DivideByZeroError
		num *NumberError
		op  *OperatorError
	)
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &tok):
		return InvalidToken
	case errors.As(err, &br):
		return MismatchedParentheses
	case errors.As(err, &opd):
		return InsufficientOperands
	case errors.As(err, &ex):
		return MalformedExpression
	case errors.As(err, &div):
		return DivisionByZero
	case errors.As(err, &num):
		return NumberOutOfRange
	case errors.As(err, &op):
		return UnknownOperator
	default:
		return KindNone
	}
}
