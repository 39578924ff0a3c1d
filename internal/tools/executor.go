// In file: internal/tools/executor.go
package tools

import "fmt"

// Call runs the tool with resolved arguments. Fixed-arity classes are checked
// here so every tool function can index its arguments directly.
func (t Tool) Call(args []Value) (Value, error) {
	if t.Class != ClassNumericVariadic && len(args) != t.Arity {
		return Value{}, fmt.Errorf("%s expects %d argument(s), got %d: %w", t.Name, t.Arity, len(args), ErrArity)
	}
	return t.Func(args)
}
