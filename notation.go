package notation

import (
	"fmt"
	"strconv"
	"strings"
)

// Notation is a way of writing expressions.
type Notation int8

const (
	// Infix places operators between their operands: 2 + 3.
	Infix Notation = iota
	// Prefix places operators before their operands: + 2 3.
	Prefix
	// Postfix places operators after their operands: 2 3 +.
	Postfix
)

func (n Notation) String() string {
	switch n {
	case Infix:
		return "infix"
	case Prefix:
		return "prefix"
	case Postfix:
		return "postfix"
	default:
		return "Notation(" + strconv.Itoa(int(n)) + ")"
	}
}

// ParseNotation gets a notation from its name. Besides the names returned by
// Notation.String, it accepts "polish" for prefix and "rpn" for postfix. Case
// is ignored.
func ParseNotation(name string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "infix":
		return Infix, nil
	case "prefix", "polish":
		return Prefix, nil
	case "postfix", "rpn":
		return Postfix, nil
	default:
		return 0, fmt.Errorf("unknown notation %q", name)
	}
}

func (n Notation) valid() bool {
	return Infix <= n && n <= Postfix
}

var converters = [...][3]func(string) (string, error){
	Infix:   {Infix: canonInfix, Prefix: InfixToPrefix, Postfix: InfixToPostfix},
	Prefix:  {Infix: PrefixToInfix, Prefix: canonPrefix, Postfix: PrefixToPostfix},
	Postfix: {Infix: PostfixToInfix, Prefix: PostfixToPrefix, Postfix: canonPostfix},
}

// Convert converts an expression from one notation to another. Converting an
// expression to its own notation checks that it is well-formed and writes it
// in canonical form: fully parenthesized for infix, with single spaces between
// tokens for all three.
func Convert(expr string, from, to Notation) (string, error) {
	if !from.valid() || !to.valid() {
		panic("notation: invalid conversion from " + from.String() + " to " + to.String())
	}
	return converters[from][to](expr)
}

func canonInfix(expr string) (string, error) {
	p, err := InfixToPostfix(expr)
	if err != nil {
		return "", err
	}
	return PostfixToInfix(p)
}

func canonPrefix(expr string) (string, error) {
	p, err := PrefixToPostfix(expr)
	if err != nil {
		return "", err
	}
	return PostfixToPrefix(p)
}

func canonPostfix(expr string) (string, error) {
	p, err := PostfixToPrefix(expr)
	if err != nil {
		return "", err
	}
	return PrefixToPostfix(p)
}

// Calc evaluates an expression written in the given notation.
func Calc(expr string, n Notation) (float64, error) {
	switch n {
	case Infix:
		return CalcInfix(expr)
	case Prefix:
		return CalcPrefix(expr)
	case Postfix:
		return CalcPostfix(expr)
	default:
		panic("notation: invalid notation " + n.String())
	}
}

// Converter converts expressions between notations.
type Converter interface {
	InfixToPostfix(expr string) (string, error)
	InfixToPrefix(expr string) (string, error)
	PostfixToPrefix(expr string) (string, error)
	PrefixToPostfix(expr string) (string, error)
	PostfixToInfix(expr string) (string, error)
	PrefixToInfix(expr string) (string, error)
}

// Evaluator evaluates expressions.
type Evaluator interface {
	CalcPostfix(expr string) (float64, error)
	CalcPrefix(expr string) (float64, error)
	CalcInfix(expr string) (float64, error)
}

// Std is the Converter and Evaluator implemented by the package functions.
type Std struct{}

var (
	_ Converter = Std{}
	_ Evaluator = Std{}
)

func (Std) InfixToPostfix(expr string) (string, error) { return InfixToPostfix(expr) }
func (Std) InfixToPrefix(expr string) (string, error) { return InfixToPrefix(expr) }
func (Std) PostfixToPrefix(expr string) (string, error) { return PostfixToPrefix(expr) }
func (Std) PrefixToPostfix(expr string) (string, error) { return PrefixToPostfix(expr) }
func (Std) PostfixToInfix(expr string) (string, error) { return PostfixToInfix(expr) }
func (Std) PrefixToInfix(expr string) (string, error) { return PrefixToInfix(expr) }
func (Std) CalcPostfix(expr string) (float64, error) { return CalcPostfix(expr) }
func (Std) CalcPrefix(expr string) (float64, error) { return CalcPrefix(expr) }
func (Std) CalcInfix(expr string) (float64, error) { return CalcInfix(expr) }
