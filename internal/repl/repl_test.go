package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	queries []string
	err     error
}

func (f *fakeProcessor) Process(_ context.Context, query string) (*api.QueryResult, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return &api.QueryResult{Reasoning: "r", ToolsUsed: []string{}, FinalAnswer: "answer to " + query}, nil
}

func run(t *testing.T, p Processor, input string) string {
	t.Helper()
	var out bytes.Buffer
	r := &REPL{Processor: p, Model: "gpt-3.5-turbo", ToolCount: 9, In: strings.NewReader(input), Out: &out}
	require.NoError(t, r.Run(context.Background()))
	return out.String()
}

func TestRun_ProcessesUntilExit(t *testing.T) {
	p := &fakeProcessor{}
	out := run(t, p, "what is 2+3?\n\n  QUIT \nnever sent\n")

	assert.Equal(t, []string{"what is 2+3?"}, p.queries)
	assert.Contains(t, out, "Enter your query: ")
	assert.Contains(t, out, "answer to what is 2+3?")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_StopsAtEndOfInput(t *testing.T) {
	p := &fakeProcessor{}
	run(t, p, "one\ntwo")

	assert.Equal(t, []string{"one", "two"}, p.queries)
}

func TestRun_ErrorDoesNotEndSession(t *testing.T) {
	p := &fakeProcessor{err: errors.New("completion failed: timeout")}
	out := run(t, p, "first\nsecond\nexit\n")

	assert.Equal(t, []string{"first", "second"}, p.queries)
	assert.Equal(t, 2, strings.Count(out, "error: completion failed: timeout"))
}

func TestRun_CancelledContext(t *testing.T) {
	p := &fakeProcessor{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &REPL{Processor: p, In: strings.NewReader("query\n"), Out: &bytes.Buffer{}}
	require.NoError(t, r.Run(ctx))
	assert.Empty(t, p.queries)
}

// TestRun_CancelWhileWaitingForInput verifies cancellation ends a blocked read.
func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	p := &fakeProcessor{}
	in, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	r := &REPL{Processor: p, In: in, Out: &out}

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Empty(t, p.queries)
	assert.Contains(t, out.String(), "Goodbye!")
}
