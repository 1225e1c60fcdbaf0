// Package notation converts arithmetic expressions between infix, prefix, and
// postfix notation and evaluates expressions written in any of the three.
//
// Expressions are made of decimal numbers, the binary operators + - * / ^ and
// **, and parentheses. "^" and "**" both mean exponentiation and group right
// to left, so "2^3^2" is "2^(3^2)". There is no unary minus: "-" is always a
// binary operator.
//
// Every conversion reads its input with the same tokenizer and writes tokens
// separated by single spaces, so the output of one conversion is valid input
// to the next. Converting to infix parenthesizes every operation:
//
//	InfixToPostfix("2+3*5")       // "2 3 5 * +"
//	PostfixToInfix("2 3 5 * +")   // "( 2 + ( 3 * 5 ) )"
//	InfixToPrefix("2**2+3")       // "+ ** 2 2 3"
//
// Evaluation uses float64 arithmetic. Division by zero is an error rather than
// an infinity.
//
// All functions are safe for concurrent use.
//
package notation
