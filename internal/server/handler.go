// In file: internal/server/handler.go

// Package server exposes the reasoner over HTTP.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/dileep-u-k/tool-reasoner/internal/api"
	"github.com/dileep-u-k/tool-reasoner/internal/llm"
	"github.com/dileep-u-k/tool-reasoner/internal/reasoner"
	"github.com/dileep-u-k/tool-reasoner/internal/tools"

	"github.com/gin-gonic/gin"
)

// TurnProcessor is the part of *reasoner.Reasoner the handler needs.
type TurnProcessor interface {
	ProcessTurn(ctx context.Context, query string) (*reasoner.Turn, error)
	Registry() *tools.Registry
	Model() string
}

// UsageReporter exposes recorded usage. *llm.Profiler implements it.
type UsageReporter interface {
	GetProfile(ctx context.Context, modelID string) (*llm.ModelProfile, error)
	ToolCounts(ctx context.Context) (map[string]int64, error)
}

// ToolInfo is one entry of GET /api/v1/tools.
type ToolInfo struct {
	Name        string `json:"name"`
	Signature   string `json:"signature"`
	Description string `json:"description"`
	Class       string `json:"class"`
}

// Handler serves queries one at a time.
type Handler struct {
	// mu keeps a single query in flight, as on the command line.
	mu        sync.Mutex
	processor TurnProcessor
	usage     UsageReporter
}

// NewHandler builds a handler. usage may be nil when no profiler is configured.
func NewHandler(processor TurnProcessor, usage UsageReporter) *Handler {
	return &Handler{processor: processor, usage: usage}
}

// NewRouter registers every route on a fresh gin engine.
func NewRouter(h *Handler) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	engine.GET("/healthz", h.HandleHealth)
	v1 := engine.Group("/api/v1")
	{
		v1.POST("/query", h.HandleQuery)
		v1.GET("/tools", h.HandleTools)
		if h.usage != nil {
			v1.GET("/usage", h.HandleUsage)
		}
	}
	return engine
}

func (h *Handler) HandleQuery(c *gin.Context) {
	var req api.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	log.Printf("--- New Query ('%.40s') ---", req.Query)
	h.mu.Lock()
	turn, err := h.processor.ProcessTurn(c.Request.Context(), req.Query)
	h.mu.Unlock()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, reasoner.ErrCompletion) {
			status = http.StatusBadGateway
		}
		log.Printf("❌ Query failed: %v", err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.QueryResponse{
		QueryResult: *turn.Result,
		ModelUsed:   turn.Model,
		Usage:       turn.Usage,
		LatencyMS:   turn.Latency.Milliseconds(),
	})
}

func (h *Handler) HandleTools(c *gin.Context) {
	defs := h.processor.Registry().Definitions()
	infos := make([]ToolInfo, 0, len(defs))
	for _, t := range defs {
		infos = append(infos, ToolInfo{
			Name:        t.Name,
			Signature:   t.Signature,
			Description: t.Description,
			Class:       t.Class.String(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"tools": infos})
}

func (h *Handler) HandleUsage(c *gin.Context) {
	ctx := c.Request.Context()
	profile, err := h.usage.GetProfile(ctx, h.processor.Model())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	counts, err := h.usage.ToolCounts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"model": profile, "tool_calls": counts})
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
