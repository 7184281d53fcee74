package algebra

import (
	"encoding/json"
	"fmt"
)

// exprWrapper is the JSON document shape for an expression node.
// Numbers keep their int64/float64 distinction by serializing into
// separate fields.
type exprWrapper struct {
	Type     ExpressionType `json:"type"`
	Int      *int64         `json:"int,omitempty"`
	Float    *float64       `json:"float,omitempty"`
	Name     string         `json:"name,omitempty"`
	Operator OperatorType   `json:"operator,omitempty"`
	Left     *exprWrapper   `json:"left,omitempty"`
	Right    *exprWrapper   `json:"right,omitempty"`
}

func wrapExpr(e *Expression) (*exprWrapper, error) {
	switch e.Type {
	case NumberExpr:
		w := &exprWrapper{Type: NumberExpr}
		switch v := e.Value.(type) {
		case int64:
			w.Int = &v
		case float64:
			w.Float = &v
		default:
			return nil, fmt.Errorf("number holds %T, want int64 or float64", e.Value)
		}
		return w, nil

	case VariableExpr:
		return &exprWrapper{Type: VariableExpr, Name: e.Name}, nil

	case OperatorExpr:
		left, err := wrapExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := wrapExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return &exprWrapper{
			Type:     OperatorExpr,
			Operator: e.Operator,
			Left:     left,
			Right:    right,
		}, nil
	}

	return nil, fmt.Errorf("unknown expression type %q", e.Type)
}

func unwrapExpr(w *exprWrapper) (*Expression, error) {
	switch w.Type {
	case NumberExpr:
		if w.Int != nil {
			return Num(*w.Int), nil
		}
		if w.Float != nil {
			return Num(*w.Float), nil
		}
		return nil, fmt.Errorf("number node carries no value")

	case VariableExpr:
		if w.Name == "" {
			return nil, fmt.Errorf("variable node carries no name")
		}
		return Var(w.Name), nil

	case OperatorExpr:
		if !operators[w.Operator] {
			return nil, fmt.Errorf("unknown operator %q", w.Operator)
		}
		if w.Left == nil || w.Right == nil {
			return nil, fmt.Errorf("operator node is missing a side")
		}
		left, err := unwrapExpr(w.Left)
		if err != nil {
			return nil, err
		}
		right, err := unwrapExpr(w.Right)
		if err != nil {
			return nil, err
		}
		return newOperator(w.Operator, left, right), nil
	}

	return nil, fmt.Errorf("unknown expression type %q", w.Type)
}

// MarshalExpr serializes an expression to its JSON document form.
func MarshalExpr(e *Expression) ([]byte, error) {
	w, err := wrapExpr(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalExpr rebuilds an expression from its JSON document form.
func UnmarshalExpr(data []byte) (*Expression, error) {
	var w exprWrapper
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return unwrapExpr(&w)
}
