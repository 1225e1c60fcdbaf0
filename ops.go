package notation

import "strconv"

// Assoc is the associativity of an operator, which decides how operators of
// equal precedence group.
type Assoc int8

const (
	// LeftAssoc operators group left to right: 8-4-2 is (8-4)-2.
	LeftAssoc Assoc = iota
	// RightAssoc operators group right to left: 2^3^2 is 2^(3^2).
	RightAssoc
)

func (a Assoc) String() string {
	switch a {
	case LeftAssoc:
		return "left"
	case RightAssoc:
		return "right"
	default:
		return "Assoc(" + strconv.Itoa(int(a)) + ")"
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// operators is the operator table. It must not be modified.
var operators = map[string]operator{
	"+":  {1, false},
	"-":  {1, false},
	"*":  {2, false},
	"/":  {2, false},
	"^":  {3, true},
	"**": {3, true},
}

// yields reports whether top, an operator on the shunting-yard stack, moves
// to the output when p arrives. reversed indicates that the input is being
// read right to left, which swaps the grouping of equal-precedence operators.
func (p operator) yields(top operator, reversed bool) bool {
	if top.prec != p.prec {
		return top.prec > p.prec
	}
	return p.right == reversed
}

// lookup gets the operator for a token.
func lookup(tok lexToken) (operator, error) {
	op, ok := operators[tok.text]
	if !ok {
		return operator{}, &OperatorError{Col: tok.pos, Operator: tok.text}
	}
	return op, nil
}

// IsOperator returns whether tok is one of the operators + - * / ^ **.
func IsOperator(tok string) bool {
	_, ok := operators[tok]
	return ok
}

// Precedence returns the precedence of an operator. Higher precedence binds
// more tightly: + and - have precedence 1, * and / have 2, and ^ and ** have
// 3. If op is not an operator, the error is an *OperatorError.
func Precedence(op string) (int, error) {
	p, err := lookup(lexToken{text: op})
	if err != nil {
		return 0, err
	}
	return int(p.prec), nil
}

// Associativity returns the associativity of an operator. ^ and ** are
// right-associative; the rest are left-associative. If op is not an operator,
// the error is an *OperatorError.
func Associativity(op string) (Assoc, error) {
	p, err := lookup(lexToken{text: op})
	if err != nil {
		return 0, err
	}
	if p.right {
		return RightAssoc, nil
	}
	return LeftAssoc, nil
}
