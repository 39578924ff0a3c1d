// In file: internal/reasoner/coerce.go
package reasoner

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"

	"github.com/dileep-u-k/tool-reasoner/internal/tools"
)

// numericToken accepts an optional minus sign, digits and at most one decimal point.
var numericToken = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)

// errSkipInvocation marks an invocation that produces no outcome at all.
var errSkipInvocation = errors.New("invocation skipped")

// ExecutionContext holds the results of earlier invocations in the same query,
// keyed by "<tool>_result".
type ExecutionContext map[string]tools.Value

func resultKey(toolName string) string {
	return toolName + "_result"
}

// resolveOperand turns a raw token into a number, a previous result, or, when
// neither applies, the literal string.
func resolveOperand(token string, ectx ExecutionContext) tools.Value {
	if numericToken.MatchString(token) {
		// Out-of-range literals still parse, to ±Inf.
		f, _ := strconv.ParseFloat(token, 64)
		return tools.Number(f)
	}
	if v, ok := ectx[token]; ok {
		return v
	}
	return tools.String(token)
}

// coerceArgs converts raw tokens according to the tool's argument class.
// It returns errSkipInvocation for a comparison with the wrong token count.
func coerceArgs(tool tools.Tool, raw []string, ectx ExecutionContext) ([]tools.Value, error) {
	switch tool.Class {
	case tools.ClassNumericFixed, tools.ClassNumericVariadic:
		args := make([]tools.Value, len(raw))
		for i, token := range raw {
			args[i] = resolveOperand(token, ectx)
		}
		return args, nil

	case tools.ClassStringSingle:
		if len(raw) == 0 {
			return nil, fmt.Errorf("%s expects 1 argument, got 0: %w", tool.Name, tools.ErrArity)
		}
		if len(raw) > 1 {
			log.Printf("⚠️ %s takes a single string; discarding %d extra argument(s)", tool.Name, len(raw)-1)
		}
		return []tools.Value{tools.String(raw[0])}, nil

	case tools.ClassComparison:
		if len(raw) != 3 {
			log.Printf("⚠️ Skipping %s: expected 3 arguments, got %d", tool.Name, len(raw))
			return nil, errSkipInvocation
		}
		return []tools.Value{
			resolveOperand(raw[0], ectx),
			resolveOperand(raw[1], ectx),
			tools.String(raw[2]),
		}, nil
	}
	return nil, fmt.Errorf("tool %s has unknown argument class %s", tool.Name, tool.Class)
}
