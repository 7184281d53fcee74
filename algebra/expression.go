package algebra

import (
	"fmt"
	"slices"
)

type ExpressionType string
type OperatorType string

const (
	NumberExpr   ExpressionType = "number"
	VariableExpr ExpressionType = "variable"
	OperatorExpr ExpressionType = "operator"
)

const (
	Addition       OperatorType = "+"
	Subtraction    OperatorType = "-"
	Multiplication OperatorType = "*"
	Division       OperatorType = "/"
	Power          OperatorType = "**"
)

var operators = map[OperatorType]bool{
	Addition:       true,
	Subtraction:    true,
	Multiplication: true,
	Division:       true,
	Power:          true,
}

// Expression is an immutable algebraic expression tree. A node is a
// number literal, a named variable, or one of the five binary
// operators applied to two subtrees. Operations never mutate a tree;
// Simplify and Derivative always build new nodes.
type Expression struct {
	Type     ExpressionType
	Operator OperatorType

	// Value holds int64 or float64 when Type is NumberExpr. The
	// int/float distinction is fixed at construction and carried
	// through folding.
	Value any

	// Name holds the variable name when Type is VariableExpr.
	Name string

	Left  *Expression
	Right *Expression
}

var precedence = map[OperatorType]int{
	Addition:       1,
	Subtraction:    1,
	Multiplication: 2,
	Division:       2,
	Power:          3,
}

// Leaves never need wrapping, so they sit above every operator.
const leafPrecedence = 4

// Tie-break flags for rendering a child whose precedence equals the
// parent's: Sub and Div wrap the right side, Pow wraps the left.
var (
	wrapLeftAtSamePrecedence  = map[OperatorType]bool{Power: true}
	wrapRightAtSamePrecedence = map[OperatorType]bool{Subtraction: true, Division: true}
)

func (e *Expression) precedence() int {
	if e.Type == OperatorExpr {
		return precedence[e.Operator]
	}
	return leafPrecedence
}

// Num returns a number leaf. Integer arguments become int64-valued
// numbers, floating-point arguments float64-valued ones.
func Num(value any) *Expression {
	switch v := value.(type) {
	case int:
		return &Expression{Type: NumberExpr, Value: int64(v)}
	case int64:
		return &Expression{Type: NumberExpr, Value: v}
	case float64:
		return &Expression{Type: NumberExpr, Value: v}
	}
	panic(fmt.Sprintf("cannot use %T as a number literal", value))
}

// Var returns a variable leaf.
func Var(name string) *Expression {
	return &Expression{Type: VariableExpr, Name: name}
}

// coerce turns an operand into an expression node: numbers become
// Number leaves, strings become Variable leaves, expressions pass
// through untouched.
func coerce(operand any) *Expression {
	switch v := operand.(type) {
	case *Expression:
		return v
	case int, int64, float64:
		return Num(v)
	case string:
		return Var(v)
	}
	panic(fmt.Sprintf("cannot use %T as an expression operand", operand))
}

func newOperator(op OperatorType, left, right any) *Expression {
	return &Expression{
		Type:     OperatorExpr,
		Operator: op,
		Left:     coerce(left),
		Right:    coerce(right),
	}
}

// The five binary constructors. Operands may be raw numbers, variable
// names, or already-built expressions; order is preserved, so
// Sub(a, b) is always a-b.
func Add(left, right any) *Expression { return newOperator(Addition, left, right) }
func Sub(left, right any) *Expression { return newOperator(Subtraction, left, right) }
func Mul(left, right any) *Expression { return newOperator(Multiplication, left, right) }
func Div(left, right any) *Expression { return newOperator(Division, left, right) }
func Pow(left, right any) *Expression { return newOperator(Power, left, right) }

// Equal reports recursive structural equality. Numbers compare by
// representation, so an int64 2 is not equal to a float64 2; x+0 is
// not equal to x.
func (e *Expression) Equal(other *Expression) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Type != other.Type {
		return false
	}

	switch e.Type {
	case NumberExpr:
		return e.Value == other.Value
	case VariableExpr:
		return e.Name == other.Name
	default:
		return e.Operator == other.Operator &&
			e.Left.Equal(other.Left) &&
			e.Right.Equal(other.Right)
	}
}

// Variables returns the distinct free variable names, sorted.
func (e *Expression) Variables() []string {
	seen := map[string]bool{}
	e.collectVariables(seen)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func (e *Expression) collectVariables(seen map[string]bool) {
	switch e.Type {
	case VariableExpr:
		seen[e.Name] = true
	case OperatorExpr:
		e.Left.collectVariables(seen)
		e.Right.collectVariables(seen)
	}
}
