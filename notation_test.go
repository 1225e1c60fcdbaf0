package notation_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/zephyrtronium/notation"
)

func TestConvertMatrix(t *testing.T) {
	src := map[notation.Notation]string{
		notation.Infix:   "2+3*5",
		notation.Prefix:  "+ 2 *3 5",
		notation.Postfix: "2 3 5*+",
	}
	want := map[notation.Notation]string{
		notation.Infix:   "( 2 + ( 3 * 5 ) )",
		notation.Prefix:  "+ 2 * 3 5",
		notation.Postfix: "2 3 5 * +",
	}
	for from, s := range src {
		for to, w := range want {
			t.Run(from.String()+"-"+to.String(), func(t *testing.T) {
				got, err := notation.Convert(s, from, to)
				if err != nil {
					t.Fatalf("%q failed to convert: %v", s, err)
				}
				if got != w {
					t.Errorf("wrong conversion of %q: want %q, got %q", s, w, got)
				}
			})
		}
		t.Run("calc-"+from.String(), func(t *testing.T) {
			r, err := notation.Calc(s, from)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", s, err)
			}
			if r != 17 {
				t.Errorf("wrong result for %q: want 17, got %g", s, r)
			}
		})
	}
}

func TestConvertSameNotationChecks(t *testing.T) {
	cases := []struct {
		name string
		src  string
		n    notation.Notation
		kind notation.Kind
	}{
		{"infix", "(2+3", notation.Infix, notation.MismatchedParentheses},
		{"infix-operands", "2 3", notation.Infix, notation.MalformedExpression},
		{"prefix", "+ 2", notation.Prefix, notation.InsufficientOperands},
		{"postfix", "1 2 3 +", notation.Postfix, notation.MalformedExpression},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := notation.Convert(c.src, c.n, c.n)
			if err == nil {
				t.Fatalf("%q converted to %q", c.src, r)
			}
			if k := notation.KindOf(err); k != c.kind {
				t.Errorf("wrong kind of error from %q: want %v, got %v (%v)", c.src, c.kind, k, err)
			}
		})
	}
}

func TestConvertInvalidNotation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic converting from an invalid notation")
		}
	}()
	notation.Convert("1", notation.Notation(7), notation.Infix)
}

func TestCalcInvalidNotation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic evaluating an invalid notation")
		}
	}()
	notation.Calc("1", notation.Notation(-1))
}

func TestParseNotation(t *testing.T) {
	cases := []struct {
		name string
		want notation.Notation
		ok   bool
	}{
		{"infix", notation.Infix, true},
		{"Infix", notation.Infix, true},
		{"prefix", notation.Prefix, true},
		{"polish", notation.Prefix, true},
		{"postfix", notation.Postfix, true},
		{" POSTFIX ", notation.Postfix, true},
		{"rpn", notation.Postfix, true},
		{"", 0, false},
		{"reverse", 0, false},
	}
	for _, c := range cases {
		n, err := notation.ParseNotation(c.name)
		if (err == nil) != c.ok {
			t.Errorf("wrong error for %q: %v", c.name, err)
			continue
		}
		if c.ok && n != c.want {
			t.Errorf("wrong notation for %q: want %v, got %v", c.name, c.want, n)
		}
	}
	for _, n := range []notation.Notation{notation.Infix, notation.Prefix, notation.Postfix} {
		if m, err := notation.ParseNotation(n.String()); err != nil || m != n {
			t.Errorf("%v didn't parse from its name: got %v, %v", n, m, err)
		}
	}
}

func TestKindOf(t *testing.T) {
	div := func() error {
		_, err := notation.CalcPostfix("1 0 /")
		return err
	}
	cases := []struct {
		name string
		err  error
		want notation.Kind
	}{
		{"nil", nil, notation.KindNone},
		{"foreign", errors.New("x"), notation.KindNone},
		{"token", &notation.TokenError{Col: 1, Token: "x"}, notation.InvalidToken},
		{"bracket", &notation.BracketError{Col: 1, Left: "("}, notation.MismatchedParentheses},
		{"operand", &notation.OperandError{Col: 1, Operator: "+"}, notation.InsufficientOperands},
		{"expression", &notation.ExpressionError{Col: 1, Len: 2}, notation.MalformedExpression},
		{"div", div(), notation.DivisionByZero},
		{"number", &notation.NumberError{Col: 1, Num: "1"}, notation.NumberOutOfRange},
		{"operator", &notation.OperatorError{Operator: "%"}, notation.UnknownOperator},
		{"wrapped", fmt.Errorf("line 3: %w", div()), notation.DivisionByZero},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if k := notation.KindOf(c.err); k != c.want {
				t.Errorf("wrong kind for %v: want %v, got %v", c.err, c.want, k)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for k := notation.KindNone; k <= notation.UnknownOperator; k++ {
		if j, ok := notation.ParseKind(k.String()); !ok || j != k {
			t.Errorf("%v didn't parse from its name: got %v, %t", k, j, ok)
		}
	}
	if k, ok := notation.ParseKind("bogus"); ok {
		t.Errorf("bogus parsed to %v", k)
	}
	if s := notation.Kind(99).String(); s != "Kind(99)" {
		t.Errorf("wrong name for invalid kind: %q", s)
	}
}

func TestStd(t *testing.T) {
	var (
		c notation.Converter = notation.Std{}
		e notation.Evaluator = notation.Std{}
	)
	convs := []struct {
		name string
		f    func(string) (string, error)
		g    func(string) (string, error)
		src  string
	}{
		{"infix-postfix", c.InfixToPostfix, notation.InfixToPostfix, "2+3*5"},
		{"infix-prefix", c.InfixToPrefix, notation.InfixToPrefix, "2+3*5"},
		{"postfix-prefix", c.PostfixToPrefix, notation.PostfixToPrefix, "2 3 5 * +"},
		{"prefix-postfix", c.PrefixToPostfix, notation.PrefixToPostfix, "+ 2 * 3 5"},
		{"postfix-infix", c.PostfixToInfix, notation.PostfixToInfix, "2 3 5 * +"},
		{"prefix-infix", c.PrefixToInfix, notation.PrefixToInfix, "+ 2 * 3 5"},
	}
	for _, v := range convs {
		a, aerr := v.f(v.src)
		b, berr := v.g(v.src)
		if a != b || aerr != nil || berr != nil {
			t.Errorf("%s: Std gave %q, %v; package gave %q, %v", v.name, a, aerr, b, berr)
		}
	}
	calcs := []struct {
		name string
		f    func(string) (float64, error)
		src  string
	}{
		{"infix", e.CalcInfix, "2+3*5"},
		{"postfix", e.CalcPostfix, "2 3 5 * +"},
		{"prefix", e.CalcPrefix, "+ 2 * 3 5"},
	}
	for _, v := range calcs {
		if r, err := v.f(v.src); err != nil || r != 17 {
			t.Errorf("%s: Std gave %g, %v", v.name, r, err)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	srcs := []string{
		"2+3*5",
		"2 ** 2 + 3 - ( 8 * ( 5 + 7 ) ) / 4",
		"3 + 4 * 2 / ( 1 - 5 ) ^ 2 ^ 3",
		"10/(3-3)",
		"(2+3",
		"1.5**2.5",
	}
	type result struct {
		pre  string
		perr error
		v    float64
		verr error
	}
	run := func(src string) result {
		var r result
		r.pre, r.perr = notation.InfixToPrefix(src)
		r.v, r.verr = notation.CalcInfix(src)
		return r
	}
	want := make([]result, len(srcs))
	for i, src := range srcs {
		want[i] = run(src)
	}

	const workers = 8
	got := make([][]result, workers)
	var wg sync.WaitGroup
	for w := range got {
		got[w] = make([]result, len(srcs))
		wg.Add(1)
		go func(rs []result) {
			defer wg.Done()
			for i, src := range srcs {
				rs[i] = run(src)
			}
		}(got[w])
	}
	wg.Wait()

	for w, rs := range got {
		for i, r := range rs {
			u := want[i]
			if r.pre != u.pre || r.v != u.v || fmt.Sprint(r.perr) != fmt.Sprint(u.perr) || fmt.Sprint(r.verr) != fmt.Sprint(u.verr) {
				t.Errorf("worker %d on %q: got %+v, serial run gave %+v", w, srcs[i], r, u)
			}
		}
	}
}

func Example() {
	post, _ := notation.InfixToPostfix("2**2+3")
	pre, _ := notation.InfixToPrefix("2**2+3")
	in, _ := notation.PrefixToInfix(pre)
	v, _ := notation.CalcPostfix(post)
	fmt.Println(post)
	fmt.Println(pre)
	fmt.Println(in)
	fmt.Println(v)

	// Output:
	// 2 2 ** 3 +
	// + ** 2 2 3
	// ( ( 2 ** 2 ) + 3 )
	// 7
}

func ExampleCalcInfix() {
	for _, expr := range []string{"2**3**2", "8-4-2", "10/(3-3)", "(2+3"} {
		v, err := notation.CalcInfix(expr)
		if err != nil {
			fmt.Println(expr, "error:", err)
			continue
		}
		fmt.Println(expr, "=", v)
	}

	// Output:
	// 2**3**2 = 512
	// 8-4-2 = 2
	// 10/(3-3) error: 3: division by zero: 10 / 0
	// (2+3 error: 1: open bracket ( with no close bracket
}

func ExampleConvert() {
	in, _ := notation.Convert("- - 8 4 2", notation.Prefix, notation.Infix)
	post, _ := notation.Convert("2^3**2", notation.Infix, notation.Postfix)
	fmt.Println(in)
	fmt.Println(post)

	// Output:
	// ( ( 8 - 4 ) - 2 )
	// 2 3 2 ** ^
}

func ExampleKindOf() {
	_, err := notation.CalcPostfix("1 2 3 +")
	fmt.Println(notation.KindOf(err))
	fmt.Println(err.(notation.InputError).Pos())

	// Output:
	// malformed expression
	// 1
}

func ExampleTokenize() {
	fmt.Printf("%q\n", notation.Tokenize("(20-(3*4))**.5"))

	// Output:
	// ["(" "20" "-" "(" "3" "*" "4" ")" ")" "**" ".5"]
}
