// Package ingest turns a raw conversation log into an ordered node list
// with per-turn metrics, session aggregates, and a session shape profile.
package ingest

import (
	"github.com/newjordan/prompt-quant-visualizer/internal/analyzer"
	"github.com/newjordan/prompt-quant-visualizer/internal/outcome"
)

// Position is a 3D placeholder filled by an external layout stage. The
// engine always emits it zeroed.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PromptNode is one user turn, ready for visualization. Index is contiguous
// over kept turns only; PrevID/NextID form a single linked chain matching
// array order. NextID is the only field backfilled after creation.
type PromptNode struct {
	ID          string                  `json:"id"`
	Index       int                     `json:"index"`
	Text        string                  `json:"text"`
	TextPreview string                  `json:"text_preview"`
	Timestamp   int64                   `json:"timestamp"`
	Metrics     *analyzer.PromptMetrics `json:"metrics"`
	Position    Position                `json:"position"`
	PrevID      string                  `json:"prev_id,omitempty"`
	NextID      string                  `json:"next_id,omitempty"`
}

// SessionMeta is the session-wide rollup computed after all nodes exist.
type SessionMeta struct {
	SessionID     string   `json:"session_id"`
	StartTime     int64    `json:"start_time"`
	EndTime       int64    `json:"end_time"`
	NodeCount     int      `json:"node_count"`
	TotalTokens   int      `json:"total_tokens"`
	AvgComplexity float64  `json:"avg_complexity"`
	MaxComplexity int      `json:"max_complexity"`
	AvgLatencyMs  float64  `json:"avg_latency_ms"`
	ToolsUsed     []string `json:"tools_used,omitempty"`
}

// ParseError records one malformed log line. Ingestion continues past it.
type ParseError struct {
	Line       int    `json:"line"`
	Message    string `json:"message"`
	RawExcerpt string `json:"raw_excerpt,omitempty"`
}

// ParseResult is the engine's complete output for one session.
type ParseResult struct {
	Success bool                  `json:"success"`
	Nodes   []PromptNode          `json:"nodes"`
	Meta    SessionMeta           `json:"meta"`
	Shape   analyzer.SessionShape `json:"shape"`
	Outcome outcome.Link          `json:"outcome_link"`
	Errors  []ParseError          `json:"errors,omitempty"`
}
