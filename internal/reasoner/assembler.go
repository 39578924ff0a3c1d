// In file: internal/reasoner/assembler.go
package reasoner

import (
	"strings"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
	"github.com/dileep-u-k/tool-reasoner/internal/notation"
)

const toolResultsPrefix = "Tool results: "

// Outcomes maps each tool name to its latest outcome. Keys keep the position of
// their first insertion, so a repeated tool is overwritten in place.
type Outcomes struct {
	order  []string
	byTool map[string]ToolOutcome
}

func NewOutcomes() *Outcomes {
	return &Outcomes{byTool: make(map[string]ToolOutcome)}
}

// Record stores o under its tool name, replacing any earlier outcome.
func (o *Outcomes) Record(outcome ToolOutcome) {
	if _, seen := o.byTool[outcome.Tool]; !seen {
		o.order = append(o.order, outcome.Tool)
	}
	o.byTool[outcome.Tool] = outcome
}

// Tools returns the tool names in first-occurrence order.
func (o *Outcomes) Tools() []string {
	return append([]string{}, o.order...)
}

// String renders the mapping as "{add: 5.0, divide: Error: cannot divide by zero}".
func (o *Outcomes) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range o.order {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(o.byTool[name].String())
	}
	b.WriteByte('}')
	return b.String()
}

// Assemble builds the QueryResult for one turn. Without invocations the final
// answer is the trimmed reasoning. Otherwise it is the rendered outcomes,
// followed on a new line by whatever the model wrote after its last TOOL: call.
func Assemble(reasoning string, invocations []notation.Invocation, outcomes *Outcomes) *api.QueryResult {
	result := &api.QueryResult{
		Reasoning: reasoning,
		ToolsUsed: []string{},
	}
	if len(invocations) == 0 {
		result.FinalAnswer = strings.TrimSpace(reasoning)
		return result
	}

	result.ToolsUsed = outcomes.Tools()
	answer := toolResultsPrefix + outcomes.String()
	if trailing := notation.Trailing(reasoning, invocations); trailing != "" {
		answer += "\n" + trailing
	}
	result.FinalAnswer = answer
	return result
}
