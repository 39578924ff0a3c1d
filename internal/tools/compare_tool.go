// In file: internal/tools/compare_tool.go
package tools

import (
	"cmp"
	"fmt"
)

// --- Comparison Tool Implementation ---

// Operator is the closed set of comparisons compare understands.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLess
	OpLessOrEqual
	OpGreater
	OpGreaterOrEqual
)

var operatorTokens = map[string]Operator{
	"==": OpEqual,
	"!=": OpNotEqual,
	"<":  OpLess,
	"<=": OpLessOrEqual,
	">":  OpGreater,
	">=": OpGreaterOrEqual,
}

// ParseOperator maps an operator token to an Operator. Anything outside the
// closed set returns ErrUnsupportedOperator; the token is never evaluated.
func ParseOperator(token string) (Operator, error) {
	op, ok := operatorTokens[token]
	if !ok {
		return 0, fmt.Errorf("%w %q (use ==, !=, <, <=, >, >=)", ErrUnsupportedOperator, token)
	}
	return op, nil
}

// apply reports the outcome of cmp (-1, 0, +1) under op.
func (op Operator) apply(cmp int) bool {
	switch op {
	case OpEqual:
		return cmp == 0
	case OpNotEqual:
		return cmp != 0
	case OpLess:
		return cmp < 0
	case OpLessOrEqual:
		return cmp <= 0
	case OpGreater:
		return cmp > 0
	default:
		return cmp >= 0
	}
}

// NewCompareTool returns compare(a, b, op). Two numbers compare numerically,
// two strings lexically; mixing them is an error.
func NewCompareTool() Tool {
	return Tool{
		Name:        "compare",
		Signature:   "compare(a, b, op)",
		Description: "Compare two values with an operator (>, <, ==, etc.)",
		Class:       ClassComparison,
		Arity:       3,
		Func:        compare,
	}
}

func compare(args []Value) (Value, error) {
	if args[2].Kind != KindString {
		return Value{}, fmt.Errorf("%w %s", ErrUnsupportedOperator, args[2])
	}
	op, err := ParseOperator(args[2].Str)
	if err != nil {
		return Value{}, err
	}

	left, right := args[0], args[1]
	if a, ok := left.Float(); ok {
		b, ok := right.Float()
		if !ok {
			return Value{}, fmt.Errorf("%w: %s and %s", ErrIncomparable, left, right)
		}
		return Bool(op.apply(cmp.Compare(a, b))), nil
	}
	if left.Kind == KindString && right.Kind == KindString {
		return Bool(op.apply(cmp.Compare(left.Str, right.Str))), nil
	}
	return Value{}, fmt.Errorf("%w: %s and %s", ErrIncomparable, left, right)
}
