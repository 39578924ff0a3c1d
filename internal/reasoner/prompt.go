// In file: internal/reasoner/prompt.go
package reasoner

import (
	"fmt"
	"strings"

	"github.com/dileep-u-k/tool-reasoner/internal/tools"
)

const promptInstructions = `Given the user query, reason step by step (chain-of-thought). If a tool is needed, specify the tool and its arguments in the format:
TOOL: tool_name(arg1, arg2, ...)
If multiple tools are needed, specify each TOOL call on a new line, one per line, in the order they should be executed. Do not nest tool calls inside each other; always show each TOOL call separately, even if one uses the result of another. To use an earlier result, pass <tool_name>_result as the argument.
Otherwise, answer directly.`

// BuildPrompt renders the chain-of-thought prompt listing every registered tool.
func BuildPrompt(registry *tools.Registry, query string) string {
	var b strings.Builder
	b.WriteString("You are an AI assistant that can use tools to help answer questions. Here are the available tools:\n")
	for _, t := range registry.Definitions() {
		fmt.Fprintf(&b, "- %s: %s\n", t.Signature, t.Description)
	}
	b.WriteString("\n")
	b.WriteString(promptInstructions)
	fmt.Fprintf(&b, "\n\nUser query: %s\nReasoning and answer:", query)
	return b.String()
}
