package ingest

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/newjordan/prompt-quant-visualizer/internal/analyzer"
	"github.com/newjordan/prompt-quant-visualizer/internal/outcome"
	"github.com/newjordan/prompt-quant-visualizer/internal/transcript"
)

// previewLength is the character budget for a node's text preview.
const previewLength = 120

// excerptLength bounds the raw excerpt recorded for a malformed line.
const excerptLength = 100

// Analyze reads the session log from src and runs the full pipeline. A
// source failure never escapes as an error: it yields a failed result with
// a single descriptive entry and zeroed meta and shape.
func Analyze(ctx context.Context, src transcript.Source, sessionID string) ParseResult {
	lines, err := src.ReadLines(ctx)
	if err != nil {
		return ParseResult{
			Success: false,
			Nodes:   []PromptNode{},
			Meta:    SessionMeta{SessionID: sessionID},
			Shape:   analyzer.AnalyzeShape(nil, 0),
			Outcome: outcome.New(sessionID),
			Errors:  []ParseError{{Line: 0, Message: "reading session log: " + err.Error()}},
		}
	}
	return AnalyzeLines(lines, sessionID)
}

// parsedEvent pairs an event with its decoded message, for the forward scan.
type parsedEvent struct {
	event   transcript.Event
	message transcript.EventMessage
	isUser  bool
	isAsst  bool
}

// AnalyzeLines is the pure core of ingestion: it parses each line, seeds a
// turn per user-role message, pairs it with the assistant activity that
// follows, extracts metrics, links the nodes, and folds the aggregates.
func AnalyzeLines(lines []string, sessionID string) ParseResult {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	events, errors := parseEvents(lines)

	var nodes []PromptNode
	var allMetrics []analyzer.PromptMetrics
	var prevSignature []analyzer.TopicKeyword
	hasPrev := false

	for i, pe := range events {
		if !pe.isUser {
			continue
		}

		text := transcript.ExtractText(pe.message.Content)
		if text == "" {
			// Empty-text turns are dropped: no node, no index.
			continue
		}

		toolNames, thinking, latency := scanAssistantActivity(events, i, pe)

		metrics := analyzer.ExtractFeatures(analyzer.TurnInput{
			Text:            text,
			ToolNames:       toolNames,
			ThinkingBlocks:  thinking,
			LatencyMs:       latency,
			ImageBlockCount: transcript.CountImageBlocks(pe.message.Content),
			PrevSignature:   prevSignature,
			HasPrev:         hasPrev,
		})

		node := PromptNode{
			ID:          nodeID(pe.event),
			Index:       len(nodes),
			Text:        text,
			TextPreview: preview(text),
			Metrics:     &metrics,
		}
		if ts := transcript.ParseTimestamp(pe.event.Timestamp); !ts.IsZero() {
			node.Timestamp = ts.UnixMilli()
		}

		if n := len(nodes); n > 0 {
			node.PrevID = nodes[n-1].ID
			nodes[n-1].NextID = node.ID
		}
		nodes = append(nodes, node)
		allMetrics = append(allMetrics, metrics)

		prevSignature = metrics.TopicSignature
		hasPrev = true
	}

	meta := buildMeta(sessionID, nodes)
	shape := analyzer.AnalyzeShape(allMetrics, meta.EndTime-meta.StartTime)

	return ParseResult{
		Success: len(nodes) > 0,
		Nodes:   nodes,
		Meta:    meta,
		Shape:   shape,
		Outcome: outcome.New(sessionID),
		Errors:  errors,
	}
}

// parseEvents parses every line independently, collecting non-fatal errors
// for lines that are not valid records. Line numbers are 1-based.
func parseEvents(lines []string) ([]parsedEvent, []ParseError) {
	var events []parsedEvent
	var errors []ParseError

	for i, line := range lines {
		if line == "" {
			continue
		}
		ev, err := transcript.ParseLine(line)
		if err != nil {
			errors = append(errors, ParseError{
				Line:       i + 1,
				Message:    err.Error(),
				RawExcerpt: excerpt(line),
			})
			continue
		}
		if ev.Type != transcript.EventMessageType {
			continue
		}
		msg, ok := ev.DecodeMessage()
		if !ok {
			continue
		}
		events = append(events, parsedEvent{
			event:   ev,
			message: msg,
			isUser:  msg.Role == transcript.RoleUser,
			isAsst:  msg.Role == transcript.RoleAssistant,
		})
	}
	return events, errors
}

// scanAssistantActivity walks forward from the user turn at index i until
// the next user turn or end of stream, collecting tool-call names and
// thinking blocks from assistant messages. Latency is the clamped delta
// from the user turn to the first assistant message; it stays 0 when no
// assistant message follows.
func scanAssistantActivity(events []parsedEvent, i int, user parsedEvent) (toolNames []string, thinking []string, latencyMs int64) {
	userTS := transcript.ParseTimestamp(user.event.Timestamp)
	sawAssistant := false

	for j := i + 1; j < len(events); j++ {
		pe := events[j]
		if pe.isUser {
			break
		}
		if !pe.isAsst {
			continue
		}

		if !sawAssistant {
			sawAssistant = true
			asstTS := transcript.ParseTimestamp(pe.event.Timestamp)
			if !userTS.IsZero() && !asstTS.IsZero() {
				if delta := asstTS.Sub(userTS).Milliseconds(); delta > 0 {
					latencyMs = delta
				}
			}
		}

		toolNames = append(toolNames, transcript.ToolCallNames(pe.message.Content)...)
		thinking = append(thinking, transcript.ThinkingBlocks(pe.message.Content)...)
	}
	return toolNames, thinking, latencyMs
}

// buildMeta folds over the finished node list.
func buildMeta(sessionID string, nodes []PromptNode) SessionMeta {
	meta := SessionMeta{
		SessionID: sessionID,
		NodeCount: len(nodes),
	}
	if len(nodes) == 0 {
		return meta
	}

	meta.StartTime = nodes[0].Timestamp
	meta.EndTime = nodes[len(nodes)-1].Timestamp

	toolSet := make(map[string]bool)
	var totalComplexity, totalLatency int64
	for _, n := range nodes {
		m := n.Metrics
		if m == nil {
			continue
		}
		meta.TotalTokens += m.TokenEstimate
		totalComplexity += int64(m.ComplexityScore)
		totalLatency += m.LatencyMs
		if m.ComplexityScore > meta.MaxComplexity {
			meta.MaxComplexity = m.ComplexityScore
		}
		for _, t := range m.ToolNames {
			toolSet[t] = true
		}
	}

	count := float64(len(nodes))
	meta.AvgComplexity = float64(totalComplexity) / count
	meta.AvgLatencyMs = float64(totalLatency) / count

	for t := range toolSet {
		meta.ToolsUsed = append(meta.ToolsUsed, t)
	}
	sort.Strings(meta.ToolsUsed)

	return meta
}

// nodeID uses the event's own ID when present, otherwise generates one.
func nodeID(ev transcript.Event) string {
	if ev.ID != "" {
		return ev.ID
	}
	return uuid.NewString()
}

// preview truncates text to the preview budget.
func preview(text string) string {
	if len(text) <= previewLength {
		return text
	}
	return text[:previewLength]
}

// excerpt truncates a raw line for error reporting.
func excerpt(line string) string {
	if len(line) <= excerptLength {
		return line
	}
	return line[:excerptLength]
}
