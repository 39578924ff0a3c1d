// In file: internal/tools/manager.go
package tools

import "fmt"

// Registry is the static table of available tools. It is built once at start-up
// and never mutated afterwards, so it is safe to share without locking.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry builds a registry from the given tools. Duplicate or unnamed tools
// are configuration errors.
func NewRegistry(toolset ...Tool) (*Registry, error) {
	r := &Registry{tools: make(map[string]Tool, len(toolset))}
	for _, t := range toolset {
		if t.Name == "" || t.Func == nil {
			return nil, fmt.Errorf("invalid tool definition %q", t.Name)
		}
		if _, dup := r.tools[t.Name]; dup {
			return nil, fmt.Errorf("tool '%s' registered twice", t.Name)
		}
		r.tools[t.Name] = t
		r.order = append(r.order, t.Name)
	}
	return r, nil
}

// DefaultTools returns the built-in arithmetic, string and comparison tools in
// the order they are advertised to the model.
func DefaultTools() []Tool {
	return []Tool{
		NewAddTool(),
		NewSubtractTool(),
		NewMultiplyTool(),
		NewDivideTool(),
		NewSquareRootTool(),
		NewAverageTool(),
		NewCountVowelsTool(),
		NewCountLettersTool(),
		NewCompareTool(),
	}
}

// NewDefaultRegistry is NewRegistry over DefaultTools.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultTools()...)
	if err != nil {
		// The built-in set is fixed; a failure here is a programming error.
		panic(err)
	}
	return r
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Definitions returns every tool in registration order.
func (r *Registry) Definitions() []Tool {
	defs := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name])
	}
	return defs
}

// ToolCount returns the number of registered tools.
func (r *Registry) ToolCount() int {
	return len(r.tools)
}
