package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/notation"
	"github.com/zephyrtronium/notation/internal/cases"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, check string
		from, to            = notation.Infix, notation.Postfix
		eval, verbose       bool
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.Func("from", "notation of input expressions: infix, prefix, or postfix (default infix)", notationVar(&from))
	flag.Func("to", "notation to convert to (default postfix)", notationVar(&to))
	flag.BoolVar(&eval, "eval", false, "print values instead of converting")
	flag.StringVar(&verb, "fmt", "%g", "value formatting string")
	flag.StringVar(&check, "check", "", "run the cases in a YAML file instead of converting")
	flag.BoolVar(&verbose, "v", false, "report each case in -check mode")
	flag.Parse()

	if check != "" {
		failed, err := runCheck(os.Stdout, check, verbose)
		if err != nil {
			log.Fatal(err)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	exprs := flag.Args()
	f, err := infile(inname, len(exprs) == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		lines, err := readLines(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		exprs = append(lines, exprs...)
	}

	c := converter{from: from, to: to, eval: eval, verb: verb + "\n"}
	if c.run(os.Stdout, log.Default(), exprs) > 0 {
		os.Exit(1)
	}
}

// notationVar creates a flag.Func setter for a notation.
func notationVar(n *notation.Notation) func(string) error {
	return func(s string) error {
		v, err := notation.ParseNotation(s)
		if err != nil {
			return err
		}
		*n = v
		return nil
	}
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}

// readLines reads the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	return lines, sc.Err()
}

type converter struct {
	from, to notation.Notation
	eval     bool
	// verb is the format for values, including the trailing newline.
	verb string
}

// run converts or evaluates each expression, writing results to w and
// failures to errlog. It returns the number of failures.
func (c *converter) run(w io.Writer, errlog *log.Logger, exprs []string) int {
	failed := 0
	for _, expr := range exprs {
		if c.eval {
			r, err := notation.Calc(expr, c.from)
			if err != nil {
				errlog.Printf("%s: %v", expr, err)
				failed++
				continue
			}
			fmt.Fprintf(w, c.verb, r)
			continue
		}
		r, err := notation.Convert(expr, c.from, c.to)
		if err != nil {
			errlog.Printf("%s: %v", expr, err)
			failed++
			continue
		}
		fmt.Fprintln(w, r)
	}
	return failed
}

// runCheck runs the cases in a file and writes a report to w. It returns the
// number of failed checks.
func runCheck(w io.Writer, name string, verbose bool) (int, error) {
	suites, err := cases.LoadFile(name)
	if err != nil {
		return 0, err
	}
	r := cases.NewRunner()
	var report func(cases.Result)
	if verbose {
		report = func(res cases.Result) {
			if res.Pass {
				fmt.Fprintf(w, "PASS %s %q (%v)\n", res.Op, res.Input, res.Time)
				return
			}
			fmt.Fprintf(w, "FAIL %s %q: want %q, got %q (%v)\n", res.Op, res.Input, res.Want, res.Got, res.Time)
		}
	}
	failed := 0
	for _, s := range suites {
		sum := r.Run(s, report)
		fmt.Fprintf(w, "%s: passed %d from %d tests in %v\n", sum.Suite, sum.Passed, sum.Passed+sum.Failed, sum.Time)
		failed += sum.Failed
	}
	return failed, nil
}
