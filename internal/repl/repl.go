// In file: internal/repl/repl.go
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
	"github.com/dileep-u-k/tool-reasoner/internal/render"
)

// Processor answers one query at a time.
type Processor interface {
	Process(ctx context.Context, query string) (*api.QueryResult, error)
}

// REPL provides an interactive CLI loop.
type REPL struct {
	Processor Processor
	Model     string
	ToolCount int
	In        io.Reader
	Out       io.Writer
}

// New constructs a REPL instance reading stdin and writing stdout.
func New(processor Processor, model string, toolCount int) *REPL {
	return &REPL{Processor: processor, Model: model, ToolCount: toolCount, In: os.Stdin, Out: os.Stdout}
}

// Run reads queries until exit, quit, end of input or ctx cancellation. A
// failed query is reported and the loop continues. Cancellation also ends a
// wait for input, so Ctrl-C at the prompt returns immediately.
func (r *REPL) Run(ctx context.Context) error {
	if r.In == nil {
		r.In = os.Stdin
	}
	if r.Out == nil {
		r.Out = os.Stdout
	}

	render.Banner(r.Out, r.Model, r.ToolCount)
	lines, readErr := readLines(ctx, r.In)
	for ctx.Err() == nil {
		fmt.Fprint(r.Out, "\nEnter your query: ")

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.Out)
			render.Info(r.Out, "Goodbye!")
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			break
		}

		query := strings.TrimSpace(line)
		if query == "" {
			continue
		}
		if isExit(query) {
			render.Info(r.Out, "Goodbye!")
			return nil
		}

		result, err := r.Processor.Process(ctx, query)
		if err != nil {
			render.Error(r.Out, err)
			continue
		}
		render.Result(r.Out, result)
	}

	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}
	return nil
}

// readLines scans in on its own goroutine so a blocked read never delays
// cancellation. lines is closed at end of input or once ctx is done; a scan
// error is delivered on the buffered error channel before lines closes.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errCh := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errCh <- scanner.Err()
	}()
	return lines, errCh
}

func isExit(query string) bool {
	switch strings.ToLower(query) {
	case "exit", "quit":
		return true
	}
	return false
}
