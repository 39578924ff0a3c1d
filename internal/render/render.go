// In file: internal/render/render.go

// Package render prints query results and tool listings for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
	"github.com/dileep-u-k/tool-reasoner/internal/tools"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#5C7A84")
	colorError  = lipgloss.Color("#E74C3C")
)

// styles are bound to a renderer for the destination writer, so output that is
// not a terminal stays free of escape codes.
type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	muted   lipgloss.Style
	err     lipgloss.Style
}

func stylesFor(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorAccent),
		section: r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
		err:     r.NewStyle().Foreground(colorError),
	}
}

// Banner shows startup info.
func Banner(out io.Writer, model string, toolCount int) {
	s := stylesFor(out)
	fmt.Fprintln(out, s.title.Render("Welcome to the Tool-Enhanced Reasoning CLI!"))
	fmt.Fprintln(out, s.muted.Render(fmt.Sprintf("Model: %s  Tools: %d", model, toolCount)))
	fmt.Fprintln(out, "Type 'exit' or 'quit' to stop.")
}

// Result prints the three sections of a query result.
func Result(out io.Writer, res *api.QueryResult) {
	s := stylesFor(out)

	fmt.Fprintln(out)
	fmt.Fprintln(out, s.section.Render("--- Reasoning ---"))
	fmt.Fprintln(out, strings.TrimSpace(res.Reasoning))

	fmt.Fprintln(out)
	fmt.Fprintln(out, s.section.Render("--- Tools Used ---"))
	if len(res.ToolsUsed) == 0 {
		fmt.Fprintln(out, "None")
	} else {
		fmt.Fprintln(out, strings.Join(res.ToolsUsed, ", "))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, s.section.Render("--- Final Answer ---"))
	fmt.Fprintln(out, res.FinalAnswer)
}

// Tools lists every registered tool with its signature and argument class.
func Tools(out io.Writer, defs []tools.Tool) {
	s := stylesFor(out)
	width := 0
	for _, t := range defs {
		width = max(width, len(t.Signature))
	}
	for _, t := range defs {
		fmt.Fprintf(out, "  %-*s  %s %s\n", width, t.Signature, t.Description, s.muted.Render("["+t.Class.String()+"]"))
	}
}

// Error prints a failure without ending the session.
func Error(out io.Writer, err error) {
	fmt.Fprintln(out, stylesFor(out).err.Render("error: "+err.Error()))
}

// Info prints a neutral status line.
func Info(out io.Writer, msg string) {
	fmt.Fprintln(out, msg)
}
