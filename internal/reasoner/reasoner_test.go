package reasoner

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
	"github.com/dileep-u-k/tool-reasoner/internal/llm"
	"github.com/dileep-u-k/tool-reasoner/internal/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns a canned completion and remembers what it was sent.
type fakeClient struct {
	content  string
	err      error
	messages []llm.Message
	config   *llm.GenerationConfig
}

func (f *fakeClient) Generate(_ context.Context, messages []llm.Message, config *llm.GenerationConfig) (*llm.GenerationResult, error) {
	f.messages = messages
	f.config = config
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerationResult{
		Content: f.content,
		Usage:   api.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}, nil
}

type fakeRecorder struct {
	successes []string
	failures  []string
	tools     []string
}

func (f *fakeRecorder) RecordSuccess(_ context.Context, modelID string, _ time.Duration, _ api.Usage) {
	f.successes = append(f.successes, modelID)
}

func (f *fakeRecorder) RecordFailure(_ context.Context, modelID string) {
	f.failures = append(f.failures, modelID)
}

func (f *fakeRecorder) RecordToolCalls(_ context.Context, names []string) {
	f.tools = append(f.tools, names...)
}

func process(t *testing.T, reply string) *api.QueryResult {
	t.Helper()
	r := New(&fakeClient{content: reply}, tools.NewDefaultRegistry(), nil, nil)
	result, err := r.Process(context.Background(), "query")
	require.NoError(t, err)
	return result
}

// TestProcess_NoToolLines verifies a reply without notation is the answer itself.
func TestProcess_NoToolLines(t *testing.T) {
	reply := "\n  Paris is the capital of France.  \n"
	result := process(t, reply)

	assert.Equal(t, reply, result.Reasoning, "reasoning must be untouched")
	assert.Empty(t, result.ToolsUsed)
	assert.NotNil(t, result.ToolsUsed)
	assert.Equal(t, "Paris is the capital of France.", result.FinalAnswer)
}

// TestProcess_SingleAdd verifies the rendering of one successful call.
func TestProcess_SingleAdd(t *testing.T) {
	result := process(t, "I need to add.\nTOOL: add(2, 3)")

	assert.Equal(t, []string{"add"}, result.ToolsUsed)
	assert.Equal(t, "Tool results: {add: 5.0}", result.FinalAnswer)
}

// TestProcess_TrailingText verifies the text after the last call is appended.
func TestProcess_TrailingText(t *testing.T) {
	result := process(t, "TOOL: add(2, 3)\n\nSo the sum is 5.  ")

	assert.Equal(t, "Tool results: {add: 5.0}\nSo the sum is 5.", result.FinalAnswer)
}

// TestProcess_RepeatedToolOverwrites verifies later calls win but keep the first position.
func TestProcess_RepeatedToolOverwrites(t *testing.T) {
	result := process(t, "TOOL: add(1,2)\nTOOL: divide(6, 3)\nTOOL: add(3,4)")

	assert.Equal(t, []string{"add", "divide"}, result.ToolsUsed)
	assert.Equal(t, "Tool results: {add: 7.0, divide: 2.0}", result.FinalAnswer)
}

// TestProcess_DivisionByZeroContinues verifies a failing call does not stop later ones.
func TestProcess_DivisionByZeroContinues(t *testing.T) {
	result := process(t, "TOOL: divide(5, 0) TOOL: multiply(2, 4)")

	assert.Equal(t, []string{"divide", "multiply"}, result.ToolsUsed)
	assert.Equal(t, "Tool results: {divide: Error: cannot divide by zero, multiply: 8.0}", result.FinalAnswer)
}

// TestProcess_SquareRoot verifies both domains of square_root.
func TestProcess_SquareRoot(t *testing.T) {
	result := process(t, "TOOL: square_root(-4)")
	assert.Equal(t, "Tool results: {square_root: Error: cannot take square root of negative number}", result.FinalAnswer)

	result = process(t, "TOOL: square_root(4)")
	assert.Equal(t, "Tool results: {square_root: 2.0}", result.FinalAnswer)
}

// TestProcess_ReferenceChain verifies an earlier result can feed a later call.
func TestProcess_ReferenceChain(t *testing.T) {
	result := process(t, "TOOL: add(2,3)\nTOOL: multiply(add_result, 2)\nThe answer is 10.")

	assert.Equal(t, []string{"add", "multiply"}, result.ToolsUsed)
	assert.Equal(t, "Tool results: {add: 5.0, multiply: 10.0}\nThe answer is 10.", result.FinalAnswer)
}

// TestProcess_UnknownTool verifies an unregistered tool is reported and skipped.
func TestProcess_UnknownTool(t *testing.T) {
	result := process(t, "TOOL: power(2,3)\nTOOL: add(1, 1)")

	assert.Equal(t, []string{"power", "add"}, result.ToolsUsed)
	assert.Contains(t, result.FinalAnswer, "power: Error: tool not recognized")
	assert.Contains(t, result.FinalAnswer, "add: 2.0")
}

// TestProcess_CompareWrongArityDropped verifies a two-argument compare leaves no trace.
func TestProcess_CompareWrongArityDropped(t *testing.T) {
	result := process(t, "TOOL: compare(1, 2)")

	assert.Empty(t, result.ToolsUsed)
	assert.Equal(t, "Tool results: {}", result.FinalAnswer)
}

// TestProcess_CompareWithReference verifies compare resolves its operands.
func TestProcess_CompareWithReference(t *testing.T) {
	result := process(t, "TOOL: add(2, 3)\nTOOL: compare(add_result, 4, >)")

	assert.Equal(t, "Tool results: {add: 5.0, compare: true}", result.FinalAnswer)
}

// TestProcess_CompareRejectsUnknownOperator verifies operators are never evaluated.
func TestProcess_CompareRejectsUnknownOperator(t *testing.T) {
	result := process(t, `TOOL: compare(1, 2, "or 1")`)

	require.Equal(t, []string{"compare"}, result.ToolsUsed)
	assert.Contains(t, result.FinalAnswer, "compare: Error: ")
	assert.Contains(t, result.FinalAnswer, "unsupported comparison operator")
}

// TestProcess_UnresolvedReference verifies an unknown reference fails in the tool.
func TestProcess_UnresolvedReference(t *testing.T) {
	result := process(t, "TOOL: multiply(subtract_result, 2)")

	assert.Equal(t, []string{"multiply"}, result.ToolsUsed)
	assert.Contains(t, result.FinalAnswer, "multiply: Error: ")
	assert.Contains(t, result.FinalAnswer, "argument is not a number")
}

// TestProcess_OverflowingNumber verifies a numeric token beyond float64 range
// is still a number.
func TestProcess_OverflowingNumber(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)
	result := process(t, "TOOL: add("+huge+", 1)\nTOOL: subtract(-"+huge+", 1)")

	assert.Equal(t, "Tool results: {add: inf, subtract: -inf}", result.FinalAnswer)
}

// TestProcess_StringToolTakesTokenLiterally verifies string tools never resolve references.
func TestProcess_StringToolTakesTokenLiterally(t *testing.T) {
	result := process(t, "TOOL: add(2, 3)\nTOOL: count_letters(add_result)")

	assert.Equal(t, "Tool results: {add: 5.0, count_letters: 9}", result.FinalAnswer)
}

// TestProcess_StringTools verifies string-single coercion and integer rendering.
func TestProcess_StringTools(t *testing.T) {
	result := process(t, `TOOL: count_vowels("hello world", "ignored")`+"\n"+`TOOL: count_letters('a1 b2')`)

	assert.Equal(t, "Tool results: {count_vowels: 3, count_letters: 2}", result.FinalAnswer)
}

// TestProcess_CompletionFailure verifies remote errors surface as ErrCompletion.
func TestProcess_CompletionFailure(t *testing.T) {
	cause := errors.New("connection refused")
	recorder := &fakeRecorder{}
	r := New(&fakeClient{err: cause}, tools.NewDefaultRegistry(), nil, recorder)

	result, err := r.Process(context.Background(), "query")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrCompletion)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, []string{llm.DefaultModel}, recorder.failures)
	assert.Empty(t, recorder.successes)
}

// TestProcessTurn_SendsPromptAndRecordsUsage verifies the request and the recorder calls.
func TestProcessTurn_SendsPromptAndRecordsUsage(t *testing.T) {
	client := &fakeClient{content: "TOOL: add(1, 2)\nTOOL: add(2, 2)"}
	recorder := &fakeRecorder{}
	config := &llm.GenerationConfig{Model: "claude-3-5-haiku-latest", MaxTokens: 100}
	r := New(client, tools.NewDefaultRegistry(), config, recorder)

	turn, err := r.ProcessTurn(context.Background(), "what is 1 plus 2?")
	require.NoError(t, err)

	require.Len(t, client.messages, 1)
	assert.Equal(t, llm.RoleUser, client.messages[0].Role)
	assert.Contains(t, client.messages[0].Content, "User query: what is 1 plus 2?")
	assert.Same(t, config, client.config)

	assert.Equal(t, "claude-3-5-haiku-latest", turn.Model)
	assert.Equal(t, 15, turn.Usage.TotalTokens)
	assert.Equal(t, []string{"claude-3-5-haiku-latest"}, recorder.successes)
	assert.Equal(t, []string{"add"}, recorder.tools)
}

// TestNew_DefaultConfig verifies the default model settings.
func TestNew_DefaultConfig(t *testing.T) {
	client := &fakeClient{content: "ok"}
	r := New(client, tools.NewDefaultRegistry(), nil, nil)

	_, err := r.Process(context.Background(), "hi")
	require.NoError(t, err)

	require.NotNil(t, client.config)
	assert.Equal(t, "gpt-3.5-turbo", client.config.Model)
	assert.Equal(t, 300, client.config.MaxTokens)
	require.NotNil(t, client.config.Temperature)
	assert.InDelta(t, 0.2, *client.config.Temperature, 1e-6)
	assert.Equal(t, "gpt-3.5-turbo", r.Model())
}

func TestBuildPrompt(t *testing.T) {
	registry := tools.NewDefaultRegistry()
	prompt := BuildPrompt(registry, "How many vowels are in banana?")

	for _, tool := range registry.Definitions() {
		assert.Contains(t, prompt, "- "+tool.Signature+": "+tool.Description)
	}
	assert.Contains(t, prompt, "TOOL: tool_name(arg1, arg2, ...)")
	assert.True(t, strings.HasSuffix(prompt, "User query: How many vowels are in banana?\nReasoning and answer:"))
}
