// In file: internal/reasoner/reasoner.go

// Package reasoner turns a user query into a QueryResult: one completion call,
// extraction of the TOOL: notation from the reply, sequential local execution
// and assembly of the final answer.
package reasoner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
	"github.com/dileep-u-k/tool-reasoner/internal/llm"
	"github.com/dileep-u-k/tool-reasoner/internal/notation"
	"github.com/dileep-u-k/tool-reasoner/internal/tools"
)

// ErrCompletion wraps any failure of the remote completion call.
var ErrCompletion = errors.New("completion failed")

// UsageRecorder receives usage statistics after each completion. It is write-only
// from the reasoner's point of view.
type UsageRecorder interface {
	RecordSuccess(ctx context.Context, modelID string, latency time.Duration, usage api.Usage)
	RecordFailure(ctx context.Context, modelID string)
	RecordToolCalls(ctx context.Context, names []string)
}

// Turn is a processed query plus the serving metadata of its completion call.
type Turn struct {
	Result  *api.QueryResult
	Model   string
	Usage   api.Usage
	Latency time.Duration
}

type Reasoner struct {
	client   llm.LLMClient
	registry *tools.Registry
	executor *Executor
	config   *llm.GenerationConfig
	recorder UsageRecorder
}

// New wires a Reasoner. A nil config selects the default model settings and a
// nil recorder disables usage recording.
func New(client llm.LLMClient, registry *tools.Registry, config *llm.GenerationConfig, recorder UsageRecorder) *Reasoner {
	if config == nil {
		config = &llm.GenerationConfig{
			Model:       llm.DefaultModel,
			Temperature: llm.Float32(llm.DefaultTemperature),
			MaxTokens:   llm.DefaultMaxTokens,
		}
	}
	return &Reasoner{
		client:   client,
		registry: registry,
		executor: NewExecutor(registry),
		config:   config,
		recorder: recorder,
	}
}

// Registry returns the tool table the reasoner executes against.
func (r *Reasoner) Registry() *tools.Registry {
	return r.registry
}

// Model returns the configured model ID.
func (r *Reasoner) Model() string {
	return r.config.Model
}

// Process answers query. The only error it returns wraps ErrCompletion; every
// tool-level failure is reported inside the result.
func (r *Reasoner) Process(ctx context.Context, query string) (*api.QueryResult, error) {
	turn, err := r.ProcessTurn(ctx, query)
	if err != nil {
		return nil, err
	}
	return turn.Result, nil
}

// ProcessTurn is Process with the completion's model, usage and latency attached.
func (r *Reasoner) ProcessTurn(ctx context.Context, query string) (*Turn, error) {
	messages := []llm.Message{{Role: llm.RoleUser, Content: BuildPrompt(r.registry, query)}}

	start := time.Now()
	completion, err := r.client.Generate(ctx, messages, r.config)
	latency := time.Since(start)
	if err != nil {
		if r.recorder != nil {
			r.recorder.RecordFailure(ctx, r.config.Model)
		}
		return nil, fmt.Errorf("%w: %w", ErrCompletion, err)
	}
	if r.recorder != nil {
		r.recorder.RecordSuccess(ctx, r.config.Model, latency, completion.Usage)
	}

	reasoning := completion.Content
	invocations := notation.Extract(reasoning)
	log.Printf("🔍 Found %d tool invocation(s) in model output", len(invocations))

	outcomes := r.executor.Run(invocations)
	result := Assemble(reasoning, invocations, outcomes)
	if r.recorder != nil {
		r.recorder.RecordToolCalls(ctx, result.ToolsUsed)
	}

	return &Turn{
		Result:  result,
		Model:   r.config.Model,
		Usage:   completion.Usage,
		Latency: latency,
	}, nil
}
