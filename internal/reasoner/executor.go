// In file: internal/reasoner/executor.go
package reasoner

import (
	"errors"
	"log"

	"github.com/dileep-u-k/tool-reasoner/internal/notation"
	"github.com/dileep-u-k/tool-reasoner/internal/tools"
)

// ErrToolNotRecognized is the outcome of an invocation naming an unregistered tool.
var ErrToolNotRecognized = errors.New("tool not recognized")

// ToolOutcome is the value or failure produced by one invocation.
type ToolOutcome struct {
	Tool  string
	Value tools.Value
	Err   error
}

// String renders the outcome as it appears in the final answer.
func (o ToolOutcome) String() string {
	if o.Err != nil {
		return "Error: " + o.Err.Error()
	}
	return o.Value.String()
}

// Executor runs extracted invocations against a registry.
type Executor struct {
	registry *tools.Registry
}

func NewExecutor(registry *tools.Registry) *Executor {
	return &Executor{registry: registry}
}

// Run processes every invocation exactly once, in order. Each one sees the
// results of those before it. A failing invocation is recorded and the loop
// moves on; Run itself never fails.
func (e *Executor) Run(invocations []notation.Invocation) *Outcomes {
	outcomes := NewOutcomes()
	ectx := make(ExecutionContext)

	for _, inv := range invocations {
		tool, ok := e.registry.Lookup(inv.Name)
		if !ok {
			log.Printf("⚠️ Tool not recognized: %s", inv.Name)
			outcomes.Record(ToolOutcome{Tool: inv.Name, Err: ErrToolNotRecognized})
			continue
		}

		args, err := coerceArgs(tool, inv.RawArgs, ectx)
		if errors.Is(err, errSkipInvocation) {
			continue
		}
		if err != nil {
			outcomes.Record(ToolOutcome{Tool: inv.Name, Err: err})
			continue
		}

		log.Printf("🛠️ Executing tool: %s with args: %v", tool.Name, args)
		value, err := tool.Call(args)
		if err != nil {
			log.Printf("❌ Tool %s failed: %v", tool.Name, err)
			outcomes.Record(ToolOutcome{Tool: tool.Name, Err: err})
			continue
		}
		ectx[resultKey(tool.Name)] = value
		outcomes.Record(ToolOutcome{Tool: tool.Name, Value: value})
	}
	return outcomes
}
