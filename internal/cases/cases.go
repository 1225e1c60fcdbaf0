// Package cases runs suites of expressions through every conversion and
// calculation of a notation.Converter and notation.Evaluator and checks the
// results against expectations loaded from YAML.
package cases

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/notation"
)

// File is the document format of a case file.
type File struct {
	Suites []Suite `yaml:"suites"`
}

// Suite is a named group of cases.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case is one expression written in one or more notations. Every operation
// whose input is given runs if its expected result is also given. When Error
// is set, operations whose input is given but whose result is not must fail
// with that kind of error.
type Case struct {
	Infix   string `yaml:"infix,omitempty"`
	Prefix  string `yaml:"prefix,omitempty"`
	Postfix string `yaml:"postfix,omitempty"`
	// Canonical is the fully parenthesized infix form.
	Canonical string   `yaml:"canonical,omitempty"`
	Value     *float64 `yaml:"value,omitempty"`
	// Error is the name of a notation.Kind, e.g. "division by zero".
	Error string `yaml:"error,omitempty"`
}

// Load decodes a case file.
func Load(r io.Reader) ([]Suite, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding cases: %w", err)
	}
	for _, s := range f.Suites {
		for i, c := range s.Cases {
			if c.Error == "" {
				continue
			}
			if _, ok := notation.ParseKind(c.Error); !ok {
				return nil, fmt.Errorf("suite %q case %d: unknown error kind %q", s.Name, i+1, c.Error)
			}
		}
	}
	return f.Suites, nil
}

// LoadFile decodes the case file with the given name.
func LoadFile(name string) ([]Suite, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Result is the outcome of one operation on one case.
type Result struct {
	Suite string
	// Op names the operation, e.g. "infix to postfix" or "calc prefix".
	Op    string
	Input string
	Want  string
	Got   string
	Pass  bool
	Time  time.Duration
}

// Summary totals the results of a suite.
type Summary struct {
	Suite          string
	Passed, Failed int
	Time           time.Duration
}

// Runner runs cases.
type Runner struct {
	Converter notation.Converter
	Evaluator notation.Evaluator
	// Tolerance is the largest difference between a calculated value and the
	// expected value that passes. Zero means 1e-9.
	Tolerance float64
}

// NewRunner creates a Runner using the package functions of notation.
func NewRunner() *Runner {
	return &Runner{Converter: notation.Std{}, Evaluator: notation.Std{}}
}

// Run runs every case in a suite, calling report for each result if it is not
// nil.
func (r *Runner) Run(s Suite, report func(Result)) Summary {
	sum := Summary{Suite: s.Name}
	for _, c := range s.Cases {
		for _, res := range r.runCase(c) {
			res.Suite = s.Name
			sum.Time += res.Time
			if res.Pass {
				sum.Passed++
			} else {
				sum.Failed++
			}
			if report != nil {
				report(res)
			}
		}
	}
	return sum
}

type convop struct {
	name  string
	in    string
	want  string
	apply func(string) (string, error)
}

type calcop struct {
	name  string
	in    string
	apply func(string) (float64, error)
}

func (r *Runner) runCase(c Case) []Result {
	cv := r.Converter
	convs := []convop{
		{"infix to postfix", c.Infix, c.Postfix, cv.InfixToPostfix},
		{"infix to prefix", c.Infix, c.Prefix, cv.InfixToPrefix},
		{"infix to infix", c.Infix, c.Canonical, func(s string) (string, error) {
			p, err := cv.InfixToPostfix(s)
			if err != nil {
				return "", err
			}
			return cv.PostfixToInfix(p)
		}},
		{"postfix to prefix", c.Postfix, c.Prefix, cv.PostfixToPrefix},
		{"postfix to infix", c.Postfix, c.Canonical, cv.PostfixToInfix},
		{"prefix to postfix", c.Prefix, c.Postfix, cv.PrefixToPostfix},
		{"prefix to infix", c.Prefix, c.Canonical, cv.PrefixToInfix},
	}
	calcs := []calcop{
		{"calc infix", c.Infix, r.Evaluator.CalcInfix},
		{"calc postfix", c.Postfix, r.Evaluator.CalcPostfix},
		{"calc prefix", c.Prefix, r.Evaluator.CalcPrefix},
	}
	var results []Result
	for _, op := range convs {
		if op.in == "" || (op.want == "" && c.Error == "") {
			continue
		}
		start := time.Now()
		got, err := op.apply(op.in)
		res := Result{Op: op.name, Input: op.in, Time: time.Since(start)}
		if op.want != "" {
			res.Want = op.want
			res.Got = got
			res.Pass = err == nil && got == op.want
		} else {
			res.Want = c.Error
			res.Pass = notation.KindOf(err).String() == c.Error
		}
		if err != nil {
			res.Got = err.Error()
		}
		results = append(results, res)
	}
	for _, op := range calcs {
		if op.in == "" || (c.Value == nil && c.Error == "") {
			continue
		}
		start := time.Now()
		got, err := op.apply(op.in)
		res := Result{Op: op.name, Input: op.in, Time: time.Since(start)}
		if c.Value != nil {
			res.Want = fmtval(*c.Value)
			res.Got = fmtval(got)
			res.Pass = err == nil && r.close(got, *c.Value)
		} else {
			res.Want = c.Error
			res.Pass = notation.KindOf(err).String() == c.Error
		}
		if err != nil {
			res.Got = err.Error()
		}
		results = append(results, res)
	}
	return results
}

func (r *Runner) close(got, want float64) bool {
	tol := r.Tolerance
	if tol == 0 {
		tol = 1e-9
	}
	return math.Abs(got-want) < tol
}

func fmtval(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
