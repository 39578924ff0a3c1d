// In file: internal/llm/profiler.go
package llm

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/dileep-u-k/tool-reasoner/internal/api"

	"github.com/redis/go-redis/v9"
)

const (
	// latencyAlpha weights the newest sample in the moving latency average.
	latencyAlpha   = 0.1
	toolCountsKey  = "usage:tools"
	profileKeyBase = "usage:model:"
)

// ModelProfile is the running usage record kept for one model. It is written
// after each completion and never read back by the reasoning path.
type ModelProfile struct {
	ModelID          string    `json:"model_id"`
	AvgLatencyMS     int64     `json:"avg_latency_ms"`
	TotalSuccesses   int64     `json:"total_successes"`
	TotalFailures    int64     `json:"total_failures"`
	PromptTokens     int64     `json:"prompt_tokens"`
	CompletionTokens int64     `json:"completion_tokens"`
	ErrorRate        float64   `json:"error_rate"`
	LastUsed         time.Time `json:"last_used"`
}

// Profiler records per-model usage statistics in Redis.
type Profiler struct {
	rdb *redis.Client
}

func NewProfiler(rdb *redis.Client) *Profiler {
	return &Profiler{rdb: rdb}
}

func (p *Profiler) getProfileKey(modelID string) string {
	return profileKeyBase + modelID
}

// GetProfile returns the stored profile for modelID. A model that was never
// recorded yields a zero profile, not an error.
func (p *Profiler) GetProfile(ctx context.Context, modelID string) (*ModelProfile, error) {
	profileData, err := p.rdb.HGetAll(ctx, p.getProfileKey(modelID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read profile for %s: %w", modelID, err)
	}

	profile := &ModelProfile{ModelID: modelID}
	if len(profileData) == 0 {
		return profile, nil
	}
	profile.AvgLatencyMS, _ = strconv.ParseInt(profileData["avg_latency_ms"], 10, 64)
	profile.TotalSuccesses, _ = strconv.ParseInt(profileData["total_successes"], 10, 64)
	profile.TotalFailures, _ = strconv.ParseInt(profileData["total_failures"], 10, 64)
	profile.PromptTokens, _ = strconv.ParseInt(profileData["prompt_tokens"], 10, 64)
	profile.CompletionTokens, _ = strconv.ParseInt(profileData["completion_tokens"], 10, 64)
	profile.LastUsed, _ = time.Parse(time.RFC3339Nano, profileData["last_used"])
	if total := profile.TotalSuccesses + profile.TotalFailures; total > 0 {
		profile.ErrorRate = float64(profile.TotalFailures) / float64(total)
	}
	return profile, nil
}

// RecordSuccess folds one completed call into the model's profile.
func (p *Profiler) RecordSuccess(ctx context.Context, modelID string, latency time.Duration, usage api.Usage) {
	key := p.getProfileKey(modelID)

	err := p.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, key, "avg_latency_ms").Result()
		if err != nil && err != redis.Nil {
			return err
		}
		newLatency := latency.Milliseconds()
		if current != "" {
			currentLatency, _ := strconv.ParseInt(current, 10, 64)
			newLatency = int64(latencyAlpha*float64(latency.Milliseconds()) + (1.0-latencyAlpha)*float64(currentLatency))
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, "avg_latency_ms", newLatency)
			return nil
		})
		return err
	}, key)
	if err != nil {
		log.Printf("Error updating latency for %s: %v", modelID, err)
	}

	pipe := p.rdb.Pipeline()
	pipe.HIncrBy(ctx, key, "total_successes", 1)
	pipe.HIncrBy(ctx, key, "prompt_tokens", int64(usage.PromptTokens))
	pipe.HIncrBy(ctx, key, "completion_tokens", int64(usage.CompletionTokens))
	pipe.HSet(ctx, key, "last_used", time.Now().Format(time.RFC3339Nano))
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Error in success update pipeline for %s: %v", modelID, err)
	}
}

// RecordFailure counts one failed call against the model.
func (p *Profiler) RecordFailure(ctx context.Context, modelID string) {
	key := p.getProfileKey(modelID)
	pipe := p.rdb.Pipeline()
	pipe.HIncrBy(ctx, key, "total_failures", 1)
	pipe.HSet(ctx, key, "last_used", time.Now().Format(time.RFC3339Nano))
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Error in failure update pipeline for %s: %v", modelID, err)
	}
}

// RecordToolCalls increments the global invocation counter of each named tool.
func (p *Profiler) RecordToolCalls(ctx context.Context, names []string) {
	if len(names) == 0 {
		return
	}
	pipe := p.rdb.Pipeline()
	for _, name := range names {
		pipe.HIncrBy(ctx, toolCountsKey, name, 1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Error recording tool calls: %v", err)
	}
}

// ToolCounts returns how many times each tool has been invoked.
func (p *Profiler) ToolCounts(ctx context.Context) (map[string]int64, error) {
	raw, err := p.rdb.HGetAll(ctx, toolCountsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read tool counts: %w", err)
	}
	counts := make(map[string]int64, len(raw))
	for name, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		counts[name] = n
	}
	return counts, nil
}
