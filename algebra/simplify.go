package algebra

// Simplify returns a recursively reduced copy of the expression. It
// folds constants, eliminates identity operands and absorbs zeros;
// it is idempotent and never touches the receiver.
//
// The order the rules are checked in is part of the contract: Pow
// tests the exponent before the base, so 0 ** 0 reduces to 1, and
// Div reduces 0/x to 0 without inspecting x.
func (e *Expression) Simplify() *Expression {
	if e.Type != OperatorExpr {
		return e
	}

	left := e.Left.Simplify()
	right := e.Right.Simplify()

	switch e.Operator {
	case Addition:
		if isZero(left) {
			return right
		}
		if isZero(right) {
			return left
		}
		if isNumber(left) && isNumber(right) {
			return Num(numAdd(left.Value, right.Value))
		}

	case Subtraction:
		// No symmetric rule for 0-x: there is no unary negation
		// variant to rewrite it into.
		if isZero(right) {
			return left
		}
		if isNumber(left) && isNumber(right) {
			return Num(numSub(left.Value, right.Value))
		}

	case Multiplication:
		if isZero(left) || isZero(right) {
			return Num(0)
		}
		if isOne(left) {
			return right
		}
		if isOne(right) {
			return left
		}
		if isNumber(left) && isNumber(right) {
			return Num(numMul(left.Value, right.Value))
		}

	case Division:
		if isZero(left) {
			return Num(0)
		}
		if isOne(right) {
			return left
		}
		if isNumber(left) && isNumber(right) {
			return Num(numDiv(left.Value, right.Value))
		}

	case Power:
		if isZero(right) {
			return Num(1)
		}
		if isOne(right) {
			return left
		}
		if isZero(left) {
			return Num(0)
		}
		if isNumber(left) && isNumber(right) {
			return Num(numPow(left.Value, right.Value))
		}
	}

	return newOperator(e.Operator, left, right)
}
