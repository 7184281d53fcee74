package algebra

import (
	"fmt"
	"math"
)

// Evaluate computes the numeric value of the expression under the
// given variable bindings. Arithmetic follows float64 semantics, so
// division by zero yields an IEEE-754 infinity (or NaN for 0/0)
// rather than an error; the same policy applies to constant folding
// in Simplify.
func (e *Expression) Evaluate(bindings map[string]float64) (float64, error) {
	switch e.Type {
	case NumberExpr:
		return numberValue(e.Value), nil
	case VariableExpr:
		v, ok := bindings[e.Name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUndefinedVariable, e.Name)
		}
		return v, nil
	}

	left, err := e.Left.Evaluate(bindings)
	if err != nil {
		return 0, err
	}

	right, err := e.Right.Evaluate(bindings)
	if err != nil {
		return 0, err
	}

	switch e.Operator {
	case Addition:
		return left + right, nil
	case Subtraction:
		return left - right, nil
	case Multiplication:
		return left * right, nil
	case Division:
		return left / right, nil
	case Power:
		return math.Pow(left, right), nil
	}

	return 0, fmt.Errorf("unknown operator '%s'", e.Operator)
}

func numberValue(value any) float64 {
	switch v := value.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	}
	panic("number holds neither int64 nor float64")
}
