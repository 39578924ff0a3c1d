// In file: internal/tools/math_tools.go
package tools

import (
	"fmt"
	"math"
)

// --- Arithmetic Tools ---

// numbers converts resolved arguments into float64 operands. A string argument,
// typically an unresolved reference such as "add_result", fails here.
func numbers(name string, args []Value) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		f, ok := arg.Float()
		if !ok {
			return nil, fmt.Errorf("%s argument %d is %s: %w", name, i+1, arg, ErrNotANumber)
		}
		out[i] = f
	}
	return out, nil
}

func binary(name string, op func(a, b float64) (float64, error)) Func {
	return func(args []Value) (Value, error) {
		nums, err := numbers(name, args)
		if err != nil {
			return Value{}, err
		}
		result, err := op(nums[0], nums[1])
		if err != nil {
			return Value{}, err
		}
		return Number(result), nil
	}
}

// NewAddTool returns add(a, b).
func NewAddTool() Tool {
	return Tool{
		Name:        "add",
		Signature:   "add(a, b)",
		Description: "Add two numbers",
		Class:       ClassNumericFixed,
		Arity:       2,
		Func: binary("add", func(a, b float64) (float64, error) {
			return a + b, nil
		}),
	}
}

// NewSubtractTool returns subtract(a, b) computing a - b.
func NewSubtractTool() Tool {
	return Tool{
		Name:        "subtract",
		Signature:   "subtract(a, b)",
		Description: "Subtract b from a",
		Class:       ClassNumericFixed,
		Arity:       2,
		Func: binary("subtract", func(a, b float64) (float64, error) {
			return a - b, nil
		}),
	}
}

// NewMultiplyTool returns multiply(a, b).
func NewMultiplyTool() Tool {
	return Tool{
		Name:        "multiply",
		Signature:   "multiply(a, b)",
		Description: "Multiply two numbers",
		Class:       ClassNumericFixed,
		Arity:       2,
		Func: binary("multiply", func(a, b float64) (float64, error) {
			return a * b, nil
		}),
	}
}

// NewDivideTool returns divide(a, b). Division by zero is an error rather than
// an IEEE infinity.
func NewDivideTool() Tool {
	return Tool{
		Name:        "divide",
		Signature:   "divide(a, b)",
		Description: "Divide a by b",
		Class:       ClassNumericFixed,
		Arity:       2,
		Func: binary("divide", func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, ErrDivisionByZero
			}
			return a / b, nil
		}),
	}
}

// NewSquareRootTool returns square_root(x).
func NewSquareRootTool() Tool {
	return Tool{
		Name:        "square_root",
		Signature:   "square_root(x)",
		Description: "Square root of x",
		Class:       ClassNumericFixed,
		Arity:       1,
		Func: func(args []Value) (Value, error) {
			nums, err := numbers("square_root", args)
			if err != nil {
				return Value{}, err
			}
			if nums[0] < 0 {
				return Value{}, ErrNegativeSquareRoot
			}
			return Number(math.Sqrt(nums[0])), nil
		},
	}
}

// NewAverageTool returns average(a, b, ...).
func NewAverageTool() Tool {
	return Tool{
		Name:        "average",
		Signature:   "average(a, b, ...)",
		Description: "Average of two or more numbers",
		Class:       ClassNumericVariadic,
		Func: func(args []Value) (Value, error) {
			if len(args) == 0 {
				return Value{}, ErrEmptyArguments
			}
			nums, err := numbers("average", args)
			if err != nil {
				return Value{}, err
			}
			var sum float64
			for _, n := range nums {
				sum += n
			}
			return Number(sum / float64(len(nums))), nil
		},
	}
}
