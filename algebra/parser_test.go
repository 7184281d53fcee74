package algebra

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  *Expression
	}{
		{"x", Var("x")},
		{"42", Num(42)},
		{"-7", Num(-7)},
		{"2.5", Num(2.5)},
		{"(x * (2 + 3))", Mul("x", Add(2, 3))},
		{"(1 - (2 - 3))", Sub(1, Sub(2, 3))},
		{"((a / b) / c)", Div(Div("a", "b"), "c")},
		{"((x ** 2) + (y ** 3))", Add(Pow("x", 2), Pow("y", 3))},
		{"(0.5 * (x - y))", Mul(0.5, Sub("x", "y"))},
		{"  ( x +\t1 ) ", Add("x", 1)},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			got, err := Parse(c.input)
			if err != nil {
				t.Fatal(err)
			}

			diff := cmp.Diff(got, c.want)
			if diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestParseNumberTyping(t *testing.T) {
	got, err := Parse("(2 + 2.0)")
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := got.Left.Value.(int64); !ok {
		t.Errorf("left payload is %T, want int64", got.Left.Value)
	}
	if _, ok := got.Right.Value.(float64); !ok {
		t.Errorf("right payload is %T, want float64", got.Right.Value)
	}
}

func TestParseIgnoresTrailingTokens(t *testing.T) {
	// Tokens past the first complete expression are ignored.
	got, err := Parse("(x + 1) garbage )")
	if err != nil {
		t.Fatal(err)
	}

	diff := cmp.Diff(got, Add("x", 1))
	if diff != "" {
		t.Error(diff)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"unknown operator", "(x & y)"},
		{"missing operator", "(x"},
		{"missing right operand", "(x +"},
		{"bare closing parenthesis", "()"},
		{"operator as leaf", "(x + ))"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.input)
			if err == nil {
				t.Fatal("expected a parse error")
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("got %T, want *ParseError", err)
			}
		})
	}
}

// fullParen renders an expression in the fully-parenthesized notation
// the parser accepts, so parser output can be fed back through Parse.
func fullParen(e *Expression) string {
	if e.Type != OperatorExpr {
		return e.String()
	}
	return "(" + fullParen(e.Left) + " " + string(e.Operator) + " " + fullParen(e.Right) + ")"
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"(x * (2 + 3))",
		"((x - y) - z)",
		"((2 ** x) / (x + 0.5))",
		"(((a + b) * c) ** 2)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Parse(input)
			if err != nil {
				t.Fatal(err)
			}

			second, err := Parse(fullParen(first))
			if err != nil {
				t.Fatal(err)
			}

			if !first.Equal(second) {
				t.Errorf("round trip changed the tree: %s -> %s", input, fullParen(second))
			}
		})
	}
}
