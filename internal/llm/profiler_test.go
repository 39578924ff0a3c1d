package llm

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dileep-u-k/tool-reasoner/internal/api"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfiler(t *testing.T) *Profiler {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewProfiler(rdb)
}

func TestProfiler_UnknownModelIsZero(t *testing.T) {
	p := newTestProfiler(t)

	profile, err := p.GetProfile(context.Background(), "gpt-3.5-turbo")
	require.NoError(t, err)
	assert.Equal(t, "gpt-3.5-turbo", profile.ModelID)
	assert.Zero(t, profile.TotalSuccesses)
	assert.Zero(t, profile.ErrorRate)
}

func TestProfiler_RecordSuccessAndFailure(t *testing.T) {
	p := newTestProfiler(t)
	ctx := context.Background()
	model := "gpt-3.5-turbo"

	p.RecordSuccess(ctx, model, 1000*time.Millisecond, api.Usage{PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120})
	p.RecordSuccess(ctx, model, 2000*time.Millisecond, api.Usage{PromptTokens: 50, CompletionTokens: 10, TotalTokens: 60})
	p.RecordFailure(ctx, model)

	profile, err := p.GetProfile(ctx, model)
	require.NoError(t, err)

	assert.EqualValues(t, 2, profile.TotalSuccesses)
	assert.EqualValues(t, 1, profile.TotalFailures)
	assert.EqualValues(t, 150, profile.PromptTokens)
	assert.EqualValues(t, 30, profile.CompletionTokens)
	// First sample seeds the average; the second moves it by latencyAlpha.
	assert.EqualValues(t, 1100, profile.AvgLatencyMS)
	assert.InDelta(t, 1.0/3.0, profile.ErrorRate, 1e-9)
	assert.False(t, profile.LastUsed.IsZero())
}

func TestProfiler_ToolCounts(t *testing.T) {
	p := newTestProfiler(t)
	ctx := context.Background()

	p.RecordToolCalls(ctx, []string{"add", "multiply"})
	p.RecordToolCalls(ctx, []string{"add"})
	p.RecordToolCalls(ctx, nil)

	counts, err := p.ToolCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"add": 2, "multiply": 1}, counts)
}
