package algebra

import "strings"

// tokenize splits the raw input into tokens. Parentheses are padded
// with synthetic whitespace so they always stand alone; everything
// else splits on whitespace. There is no quoting or escaping.
func tokenize(input string) []string {
	var b strings.Builder
	for _, r := range input {
		switch r {
		case '(':
			b.WriteString(" ( ")
		case ')':
			b.WriteString(" ) ")
		default:
			b.WriteRune(r)
		}
	}

	return strings.Fields(b.String())
}
