// In file: internal/api/types.go

// Package api holds the request and response shapes shared by the CLI, the HTTP
// surface and the reasoner.
package api

// Usage reports token consumption for one remote call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// QueryRequest is the body of POST /api/v1/query.
type QueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// QueryResult is the full structured answer for one user query.
type QueryResult struct {
	// Reasoning is the untouched text returned by the model.
	Reasoning string `json:"reasoning"`
	// ToolsUsed lists distinct tool names in first-occurrence order.
	ToolsUsed []string `json:"tools_used"`
	// FinalAnswer is either the trimmed reasoning or the rendered tool results
	// followed by the model's concluding text.
	FinalAnswer string `json:"final_answer"`
}

// QueryResponse wraps a QueryResult with serving metadata.
type QueryResponse struct {
	QueryResult
	ModelUsed string `json:"model_used"`
	Usage     Usage  `json:"usage"`
	LatencyMS int64  `json:"latency_ms"`
}
