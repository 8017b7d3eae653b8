package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/newjordan/prompt-quant-visualizer/internal/analyzer"
	"github.com/newjordan/prompt-quant-visualizer/internal/ingest"
	"github.com/newjordan/prompt-quant-visualizer/internal/outcome"
)

// SaveOutcomeLink upserts the serialized link under its session ID. The
// write is last-write-wins; callers needing stronger guarantees must
// serialize writes for the same session externally.
func (db *DB) SaveOutcomeLink(link outcome.Link) error {
	if link.SessionID == "" {
		return fmt.Errorf("outcome link has no session id")
	}
	payload, err := link.Serialize()
	if err != nil {
		return fmt.Errorf("serializing outcome link: %w", err)
	}
	_, err = db.conn.Exec(`
		INSERT INTO outcome_links (session_id, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = excluded.updated_at
	`, link.SessionID, string(payload), time.Now().UTC().Format(time.RFC3339))
	return err
}

// GetOutcomeLink loads the link for a session, or nil if none is stored or
// the stored record is malformed.
func (db *DB) GetOutcomeLink(sessionID string) (*outcome.Link, error) {
	var payload string
	err := db.conn.QueryRow(
		"SELECT payload FROM outcome_links WHERE session_id = ?", sessionID,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	link, ok := outcome.Deserialize([]byte(payload))
	if !ok {
		return nil, nil
	}
	return link, nil
}

// SessionRollup is a stored per-session summary of meta and shape, kept for
// trend comparison between runs.
type SessionRollup struct {
	SessionID      string  `json:"session_id"`
	AnalyzedAt     string  `json:"analyzed_at"`
	NodeCount      int     `json:"node_count"`
	TotalTokens    int     `json:"total_tokens"`
	AvgComplexity  float64 `json:"avg_complexity"`
	MaxComplexity  int     `json:"max_complexity"`
	AvgLatencyMs   float64 `json:"avg_latency_ms"`
	DurationMs     int64   `json:"duration_ms"`
	Classification string  `json:"classification"`
	Linearity      float64 `json:"linearity"`
	Density        float64 `json:"density"`
	Rhythm         float64 `json:"rhythm"`
	Breadth        float64 `json:"breadth"`
	Convergence    float64 `json:"convergence"`
	Momentum       float64 `json:"momentum"`
}

// SaveSessionRollup upserts the rollup derived from a parse result.
func (db *DB) SaveSessionRollup(meta ingest.SessionMeta, shape analyzer.SessionShape) error {
	if meta.SessionID == "" {
		return fmt.Errorf("session meta has no session id")
	}
	_, err := db.conn.Exec(`
		INSERT INTO session_rollups (
			session_id, analyzed_at, node_count, total_tokens, avg_complexity,
			max_complexity, avg_latency_ms, duration_ms, classification,
			linearity, density, rhythm, breadth, convergence, momentum
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			analyzed_at    = excluded.analyzed_at,
			node_count     = excluded.node_count,
			total_tokens   = excluded.total_tokens,
			avg_complexity = excluded.avg_complexity,
			max_complexity = excluded.max_complexity,
			avg_latency_ms = excluded.avg_latency_ms,
			duration_ms    = excluded.duration_ms,
			classification = excluded.classification,
			linearity      = excluded.linearity,
			density        = excluded.density,
			rhythm         = excluded.rhythm,
			breadth        = excluded.breadth,
			convergence    = excluded.convergence,
			momentum       = excluded.momentum
	`,
		meta.SessionID, time.Now().UTC().Format(time.RFC3339), meta.NodeCount,
		meta.TotalTokens, meta.AvgComplexity, meta.MaxComplexity,
		meta.AvgLatencyMs, shape.DurationMs, shape.Classification,
		shape.Linearity, shape.Density, shape.Rhythm, shape.Breadth,
		shape.Convergence, shape.Momentum,
	)
	return err
}

// ListSessionRollups returns all stored rollups, most recently analyzed
// first.
func (db *DB) ListSessionRollups() ([]SessionRollup, error) {
	rows, err := db.conn.Query(`
		SELECT session_id, analyzed_at, node_count, total_tokens,
		       avg_complexity, max_complexity, avg_latency_ms, duration_ms,
		       classification, linearity, density, rhythm, breadth,
		       convergence, momentum
		FROM session_rollups
		ORDER BY analyzed_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rollups []SessionRollup
	for rows.Next() {
		var r SessionRollup
		if err := rows.Scan(
			&r.SessionID, &r.AnalyzedAt, &r.NodeCount, &r.TotalTokens,
			&r.AvgComplexity, &r.MaxComplexity, &r.AvgLatencyMs, &r.DurationMs,
			&r.Classification, &r.Linearity, &r.Density, &r.Rhythm, &r.Breadth,
			&r.Convergence, &r.Momentum,
		); err != nil {
			return nil, err
		}
		rollups = append(rollups, r)
	}
	return rollups, rows.Err()
}
