package notation

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a decimal number with at most one decimal point.
	tokenNum
	// tokenOp is a symbol in the operator table.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenOther is any other single rune, including a decimal point that does
	// not start a number, or a single byte of invalid UTF-8.
	tokenOther
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes read.
	col int
	// last is the most recently read rune, or 0 at the start of the input.
	// back is the rune before it, for unreading.
	last, back rune
	// width is the size in bytes of the most recently read rune.
	width int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
		l.back, l.last = l.last, r
	}
	l.width = sz
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
	l.last = l.back
}

// next scans the next token from the input. At the end of the input, the
// result is an empty token with io.EOF. next never rejects a token; runes
// that cannot start a number become tokenOther or tokenOp tokens one at a
// time, except for **.
func (l *lexer) next() (lexToken, error) {
	defer l.buf.Reset()
	for {
		before := l.last
		r, err := l.readRune()
		if err != nil {
			return lexToken{}, err
		}
		tok := lexToken{pos: l.col}
		switch {
		case isSpace(r):
			continue
		case isDigit(r):
			l.buf.WriteRune(r)
			if err := l.scanNum(false); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case r == '.':
			// A leading decimal point starts a number only if a digit follows
			// and the point does not continue a previous number, so that
			// 1.2.3 does not lex as 1.2 .3.
			if !isDigit(before) && before != '.' {
				d, err := l.readRune()
				switch {
				case err == nil && isDigit(d):
					l.buf.WriteRune(r)
					l.buf.WriteRune(d)
					if err := l.scanNum(true); err != nil {
						return tok, err
					}
					tok.text = l.buf.String()
					tok.kind = tokenNum
					return tok, nil
				case err == nil:
					l.unreadRune()
				case !errors.Is(err, io.EOF):
					return tok, err
				}
			}
			tok.text = "."
			tok.kind = tokenOther
			return tok, nil
		case r == '*':
			tok.text = "*"
			tok.kind = tokenOp
			s, err := l.readRune()
			switch {
			case err == nil && s == '*':
				tok.text = "**"
			case err == nil:
				l.unreadRune()
			case !errors.Is(err, io.EOF):
				return tok, err
			}
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		default:
			tok.text = string(r)
			if r == utf8.RuneError && l.width == 1 {
				tok.text = l.invalid()
			}
			tok.kind = tokenOther
			if IsOperator(tok.text) {
				tok.kind = tokenOp
			}
			return tok, nil
		}
	}
}

// scanNum scans the rest of a number into the buffer. dot is whether the
// buffer already holds a decimal point.
func (l *lexer) scanNum(dot bool) error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch {
		case isDigit(r):
			l.buf.WriteRune(r)
		case r == '.' && !dot:
			dot = true
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return nil
		}
	}
}

// invalid gets the text of an invalid UTF-8 byte that was just read as
// utf8.RuneError. If the source cannot read bytes, the text is the
// replacement character.
func (l *lexer) invalid() string {
	bs, ok := l.src.(io.ByteScanner)
	if !ok {
		return string(utf8.RuneError)
	}
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	b, err := bs.ReadByte()
	if err != nil {
		panic(err)
	}
	return string([]byte{b})
}

// isSpace reports whether r is ASCII whitespace. Other Unicode spaces are
// tokens.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// tokens scans every token in expr.
func tokens(expr string) []lexToken {
	scan := lex(strings.NewReader(expr))
	var toks []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks
			}
			// strings.Reader only ever fails with io.EOF.
			panic("notation: reading string: " + err.Error())
		}
		toks = append(toks, tok)
	}
}

// Tokenize splits an expression into the texts of its tokens. ASCII whitespace
// separates tokens but is otherwise ignored; other Unicode spaces such as
// U+00A0 are tokens of their own. Each byte of invalid UTF-8 is a token
// holding that byte. A token is a number, the operator **, or any other single
// character; Tokenize does not check that characters other than digits are
// operators or parentheses.
func Tokenize(expr string) []string {
	toks := tokens(expr)
	r := make([]string, len(toks))
	for i, tok := range toks {
		r[i] = tok.text
	}
	return r
}

// join writes the texts of toks separated by single spaces.
func join(toks []lexToken) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
	}
	return b.String()
}
