package notation

// InfixToPostfix converts an infix expression to postfix. It checks that
// tokens are valid and parentheses balance, but not that every operator has
// operands; converting or evaluating the result reports those errors.
func InfixToPostfix(expr string) (string, error) {
	out, err := shunt(tokens(expr), false)
	if err != nil {
		return "", err
	}
	return join(out), nil
}

// InfixToPrefix converts an infix expression to prefix. It checks the same
// things as InfixToPostfix.
func InfixToPrefix(expr string) (string, error) {
	toks := tokens(expr)
	// Reading the expression backward with its parentheses swapped turns
	// prefix into postfix.
	reverse(toks)
	for i := range toks {
		switch toks[i].kind {
		case tokenOpen:
			toks[i].kind = tokenClose
		case tokenClose:
			toks[i].kind = tokenOpen
		}
	}
	out, err := shunt(toks, true)
	if err != nil {
		return "", err
	}
	reverse(out)
	return join(out), nil
}

// PostfixToPrefix converts a postfix expression to prefix.
func PostfixToPrefix(expr string) (string, error) {
	return reduce(tokens(expr), false, text, prefixOf)
}

// PrefixToPostfix converts a prefix expression to postfix.
func PrefixToPostfix(expr string) (string, error) {
	return reduce(tokens(expr), true, text, postfixOf)
}

// PostfixToInfix converts a postfix expression to infix. Every operation in
// the result is parenthesized, e.g. "2 3 5 * +" becomes "( 2 + ( 3 * 5 ) )".
func PostfixToInfix(expr string) (string, error) {
	return reduce(tokens(expr), false, text, infixOf)
}

// PrefixToInfix converts a prefix expression to infix. Every operation in the
// result is parenthesized, e.g. "+ 2 * 3 5" becomes "( 2 + ( 3 * 5 ) )".
func PrefixToInfix(expr string) (string, error) {
	return reduce(tokens(expr), true, text, infixOf)
}

// shunt runs the shunting-yard algorithm over an infix expression, producing
// its tokens in postfix order. If reversed is true, toks is an infix
// expression read right to left with its parentheses swapped, and operators of
// equal precedence group the opposite way.
func shunt(toks []lexToken, reversed bool) ([]lexToken, error) {
	out := make([]lexToken, 0, len(toks))
	var ops []lexToken
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenOp:
			p, err := lookup(tok)
			if err != nil {
				return nil, err
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != tokenOp {
					break
				}
				q, err := lookup(top)
				if err != nil {
					return nil, err
				}
				if !p.yields(q, reversed) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case tokenOpen:
			ops = append(ops, tok)
		case tokenClose:
			for {
				if len(ops) == 0 {
					return nil, unmatched(tok)
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		default:
			return nil, &TokenError{Col: tok.pos, Token: tok.text}
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokenOpen {
			return nil, unmatched(top)
		}
		out = append(out, top)
	}
	return out, nil
}

// unmatched creates the error for a parenthesis with no partner. The token's
// text rather than its kind decides the error, since InfixToPrefix swaps
// kinds.
func unmatched(tok lexToken) error {
	if tok.text == "(" {
		return &BracketError{Col: tok.pos, Left: tok.text}
	}
	return &BracketError{Col: tok.pos, Right: tok.text}
}

// reduce reduces a postfix or prefix expression to a single value with a
// stack. Postfix expressions are read left to right and prefix expressions
// right to left. leaf creates the value of a number, and combine creates the
// value of an operator applied to its left and right operands.
func reduce[T any](toks []lexToken, prefix bool, leaf func(lexToken) (T, error), combine func(op lexToken, lhs, rhs T) (T, error)) (T, error) {
	var zero T
	stack := make([]T, 0, len(toks)/2+1)
	for i := range toks {
		tok := toks[i]
		if prefix {
			tok = toks[len(toks)-1-i]
		}
		switch tok.kind {
		case tokenNum:
			v, err := leaf(tok)
			if err != nil {
				return zero, err
			}
			stack = append(stack, v)
		case tokenOp:
			if len(stack) < 2 {
				return zero, &OperandError{Col: tok.pos, Operator: tok.text, Have: len(stack)}
			}
			// In postfix the nearer operand is the right one; reading prefix
			// backward, it is the left one.
			lhs, rhs := stack[len(stack)-2], stack[len(stack)-1]
			if prefix {
				lhs, rhs = rhs, lhs
			}
			stack = stack[:len(stack)-2]
			v, err := combine(tok, lhs, rhs)
			if err != nil {
				return zero, err
			}
			stack = append(stack, v)
		default:
			return zero, &TokenError{Col: tok.pos, Token: tok.text}
		}
	}
	if len(stack) != 1 {
		col := 1
		if len(toks) > 0 {
			col = toks[0].pos
		}
		return zero, &ExpressionError{Col: col, Len: len(stack)}
	}
	return stack[0], nil
}

func text(tok lexToken) (string, error) {
	return tok.text, nil
}

func prefixOf(op lexToken, lhs, rhs string) (string, error) {
	return op.text + " " + lhs + " " + rhs, nil
}

func postfixOf(op lexToken, lhs, rhs string) (string, error) {
	return lhs + " " + rhs + " " + op.text, nil
}

func infixOf(op lexToken, lhs, rhs string) (string, error) {
	return "( " + lhs + " " + op.text + " " + rhs + " )", nil
}

func reverse(toks []lexToken) {
	for i, j := 0, len(toks)-1; i < j; i, j = i+1, j-1 {
		toks[i], toks[j] = toks[j], toks[i]
	}
}
