package algebra

import "strconv"

// String renders the expression as infix text with the minimum
// parentheses needed to keep it unambiguous. A child is wrapped when
// its precedence is lower than the parent's, or equal to it with the
// parent's tie-break flag set for that side. Re-parsing the result
// under a precedence-aware grammar reconstructs an equivalent tree.
func (e *Expression) String() string {
	switch e.Type {
	case NumberExpr:
		return formatNumber(e.Value)
	case VariableExpr:
		return e.Name
	}

	left := e.Left.String()
	right := e.Right.String()

	if e.Left.precedence() < e.precedence() ||
		(e.Left.precedence() == e.precedence() && wrapLeftAtSamePrecedence[e.Operator]) {
		left = "(" + left + ")"
	}
	if e.Right.precedence() < e.precedence() ||
		(e.Right.precedence() == e.precedence() && wrapRightAtSamePrecedence[e.Operator]) {
		right = "(" + right + ")"
	}

	return left + " " + string(e.Operator) + " " + right
}

func formatNumber(value any) string {
	switch v := value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	panic("number holds neither int64 nor float64")
}
