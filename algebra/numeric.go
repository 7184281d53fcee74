package algebra

import "math"

// Helpers over number payloads (int64 or float64). Addition,
// subtraction and multiplication keep int64 when both operands are
// int64; true division and exponentiation always produce float64.

func isNumber(e *Expression) bool {
	return e.Type == NumberExpr
}

// isZero and isOne test numeric value regardless of representation,
// so a float64 0 triggers the same rewrite rules as an int64 0.
func isZero(e *Expression) bool {
	return isNumber(e) && numberValue(e.Value) == 0
}

func isOne(e *Expression) bool {
	return isNumber(e) && numberValue(e.Value) == 1
}

func bothInt(a, b any) (int64, int64, bool) {
	ai, aok := a.(int64)
	bi, bok := b.(int64)
	return ai, bi, aok && bok
}

func numAdd(a, b any) any {
	if ai, bi, ok := bothInt(a, b); ok {
		return ai + bi
	}
	return numberValue(a) + numberValue(b)
}

func numSub(a, b any) any {
	if ai, bi, ok := bothInt(a, b); ok {
		return ai - bi
	}
	return numberValue(a) - numberValue(b)
}

func numMul(a, b any) any {
	if ai, bi, ok := bothInt(a, b); ok {
		return ai * bi
	}
	return numberValue(a) * numberValue(b)
}

func numDiv(a, b any) any {
	return numberValue(a) / numberValue(b)
}

func numPow(a, b any) any {
	return math.Pow(numberValue(a), numberValue(b))
}
