package algebra

import "fmt"

// Derivative returns the symbolic derivative with respect to the
// named variable. The result is built structurally and not
// simplified; feed it through Simplify to reduce it.
//
// Powers are differentiated with the constant-exponent rule only: if
// the exponent subtree is anything but a number literal the call
// fails with ErrNonConstantExponent instead of producing a wrong
// symbolic result.
func (e *Expression) Derivative(name string) (*Expression, error) {
	switch e.Type {
	case NumberExpr:
		return Num(0), nil
	case VariableExpr:
		if e.Name == name {
			return Num(1), nil
		}
		return Num(0), nil
	}

	switch e.Operator {
	case Addition, Subtraction:
		left, err := e.Left.Derivative(name)
		if err != nil {
			return nil, err
		}
		right, err := e.Right.Derivative(name)
		if err != nil {
			return nil, err
		}
		return newOperator(e.Operator, left, right), nil

	case Multiplication:
		dLeft, err := e.Left.Derivative(name)
		if err != nil {
			return nil, err
		}
		dRight, err := e.Right.Derivative(name)
		if err != nil {
			return nil, err
		}
		// Product rule: l*dr + r*dl.
		return Add(Mul(e.Left, dRight), Mul(e.Right, dLeft)), nil

	case Division:
		dLeft, err := e.Left.Derivative(name)
		if err != nil {
			return nil, err
		}
		dRight, err := e.Right.Derivative(name)
		if err != nil {
			return nil, err
		}
		// Quotient rule: (r*dl - l*dr) / r^2.
		numerator := Sub(Mul(e.Right, dLeft), Mul(e.Left, dRight))
		return Div(numerator, Mul(e.Right, e.Right)), nil

	case Power:
		if !isNumber(e.Right) {
			return nil, fmt.Errorf("%w: cannot differentiate %s", ErrNonConstantExponent, e)
		}
		dBase, err := e.Left.Derivative(name)
		if err != nil {
			return nil, err
		}
		// n * base^(n-1) * dbase.
		exponent := Num(numSub(e.Right.Value, int64(1)))
		return Mul(Mul(e.Right, Pow(e.Left, exponent)), dBase), nil
	}

	return nil, fmt.Errorf("unknown operator '%s'", e.Operator)
}
