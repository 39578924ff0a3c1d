// In file: internal/tools/types.go

// Package tools defines the local tools the reasoner can invoke, the values they
// exchange, and the immutable registry that maps a tool name to its callable.
package tools

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors returned by the built-in tools. Callers match them with errors.Is.
var (
	ErrDivisionByZero      = errors.New("cannot divide by zero")
	ErrNegativeSquareRoot  = errors.New("cannot take square root of negative number")
	ErrEmptyArguments      = errors.New("at least one number is required")
	ErrUnsupportedOperator = errors.New("unsupported comparison operator")
	ErrNotANumber          = errors.New("argument is not a number")
	ErrArity               = errors.New("wrong number of arguments")
	ErrIncomparable        = errors.New("operands cannot be compared")
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNumber Kind = iota
	KindInteger
	KindString
	KindBool
)

// Value is a tagged variant for tool arguments and results.
// A zero Value is the number 0.
type Value struct {
	Kind Kind
	Num  float64
	Int  int
	Str  string
	Bool bool
}

// Number wraps a float64.
func Number(v float64) Value { return Value{Kind: KindNumber, Num: v} }

// Integer wraps an int, used by the counting tools.
func Integer(v int) Value { return Value{Kind: KindInteger, Int: v} }

// String wraps a string.
func String(v string) Value { return Value{Kind: KindString, Str: v} }

// Bool wraps a bool, produced by compare.
func Bool(v bool) Value { return Value{Kind: KindBool, Bool: v} }

// Float returns the numeric value of v. Strings and bools are not numbers.
func (v Value) Float() (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Num, true
	case KindInteger:
		return float64(v.Int), true
	default:
		return 0, false
	}
}

// String renders the value the way it appears in a final answer.
// Numbers always carry a fractional part so 5 renders as "5.0"; infinities
// render as "inf" and "-inf".
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return formatNumber(v.Num)
	case KindInteger:
		return strconv.Itoa(v.Int)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return strconv.Quote(v.Str)
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// ArgClass is the coercion rule a tool declares for its raw argument tokens.
type ArgClass int

const (
	// ClassNumericVariadic tools take any number of numeric arguments.
	ClassNumericVariadic ArgClass = iota
	// ClassNumericFixed tools take exactly Arity numeric arguments.
	ClassNumericFixed
	// ClassStringSingle tools take one string; extra tokens are discarded.
	ClassStringSingle
	// ClassComparison tools take left, right and an operator token.
	ClassComparison
)

func (c ArgClass) String() string {
	switch c {
	case ClassNumericVariadic:
		return "numeric-variadic"
	case ClassNumericFixed:
		return "numeric-fixed"
	case ClassStringSingle:
		return "string-single"
	case ClassComparison:
		return "comparison"
	default:
		return fmt.Sprintf("ArgClass(%d)", int(c))
	}
}

// Func is the callable behind a tool. It receives already-resolved arguments.
type Func func(args []Value) (Value, error)

// Tool describes one registered tool: how the model should call it, how its
// tokens are coerced, and the function that runs it.
type Tool struct {
	// Name is the identifier used in the TOOL: notation.
	Name string
	// Signature is shown to the model, e.g. "add(a, b)".
	Signature string
	// Description is a one-line explanation placed in the prompt.
	Description string
	// Class selects the argument coercion rule.
	Class ArgClass
	// Arity is the exact argument count for fixed classes; ignored for variadic tools.
	Arity int
	// Func executes the tool.
	Func Func
}
