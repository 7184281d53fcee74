package algebra

import (
	"fmt"
	"strconv"
)

// Parse reads a fully-parenthesized expression:
//
//	expr := number | identifier | "(" expr operator expr ")"
//	operator := "+" | "-" | "*" | "/" | "**"
//
// Number tokens try an integer parse first, then a float parse;
// any other token that is not a parenthesis becomes a variable.
// Tokens past the first complete top-level expression are ignored,
// and the closing parenthesis of a binary application is skipped
// without being checked.
func Parse(input string) (*Expression, error) {
	tokens := tokenize(input)

	expr, _, err := parseExpression(tokens, 0)
	if err != nil {
		return nil, err
	}

	return expr, nil
}

// parseExpression parses the expression starting at index and
// returns it together with the index of the first token after it.
func parseExpression(tokens []string, index int) (*Expression, int, error) {
	if index >= len(tokens) {
		return nil, 0, &ParseError{Pos: index, Msg: "unexpected end of input"}
	}

	tok := tokens[index]

	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return Num(i), index + 1, nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return Num(f), index + 1, nil
	}
	if tok == ")" {
		return nil, 0, &ParseError{Pos: index, Msg: "unexpected ')'"}
	}
	if tok != "(" {
		return Var(tok), index + 1, nil
	}

	left, next, err := parseExpression(tokens, index+1)
	if err != nil {
		return nil, 0, err
	}

	if next >= len(tokens) {
		return nil, 0, &ParseError{Pos: next, Msg: "missing operator"}
	}
	op := OperatorType(tokens[next])
	if !operators[op] {
		return nil, 0, &ParseError{Pos: next, Msg: fmt.Sprintf("unknown operator %q", tokens[next])}
	}

	right, next, err := parseExpression(tokens, next+1)
	if err != nil {
		return nil, 0, err
	}

	// next points at the closing parenthesis; step over it.
	return newOperator(op, left, right), next + 1, nil
}
