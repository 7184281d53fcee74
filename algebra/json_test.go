package algebra

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshalRoundTrip(t *testing.T) {
	exprs := []*Expression{
		Var("x"),
		Num(42),
		Num(2.5),
		Mul("x", Add(2, 3)),
		Pow(Div("a", "b"), Sub("c", 1)),
	}

	for _, expr := range exprs {
		t.Run(expr.String(), func(t *testing.T) {
			data, err := MarshalExpr(expr)
			if err != nil {
				t.Fatal(err)
			}

			got, err := UnmarshalExpr(data)
			if err != nil {
				t.Fatal(err)
			}

			diff := cmp.Diff(got, expr)
			if diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestMarshalKeepsNumberRepresentation(t *testing.T) {
	data, err := MarshalExpr(Add(2, 2.0))
	if err != nil {
		t.Fatal(err)
	}

	got, err := UnmarshalExpr(data)
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

func TestUnmarshalRejectsMalformedDocuments(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"unknown type", `{"type":"negate"}`},
		{"unknown operator", `{"type":"operator","operator":"%","left":{"type":"name","name":"x"},"right":{"type":"number","int":1}}`},
		{"missing side", `{"type":"operator","operator":"+","left":{"type":"number","int":1}}`},
		{"number without value", `{"type":"number"}`},
		{"variable without name", `{"type":"variable"}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := UnmarshalExpr([]byte(c.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
