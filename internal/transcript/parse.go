package transcript

import (
	"encoding/json"
	"strings"
	"time"
)

// ParseLine parses one log line into an Event. A line that is not valid
// JSON, or not a JSON object, returns an error; callers treat this as
// non-fatal and keep going.
func ParseLine(line string) (Event, error) {
	var ev Event
	if err := json.Unmarshal([]byte(line), &ev); err != nil {
		return Event{}, err
	}
	return ev, nil
}

// DecodeMessage unmarshals the message payload of an event. Returns false
// when the event carries no parseable message.
func (e Event) DecodeMessage() (EventMessage, bool) {
	if len(e.Message) == 0 {
		return EventMessage{}, false
	}
	var msg EventMessage
	if err := json.Unmarshal(e.Message, &msg); err != nil {
		return EventMessage{}, false
	}
	return msg, true
}

// ExtractText concatenates all text-typed content blocks, joined by
// newlines and trimmed. A turn whose extracted text is empty is dropped by
// ingestion.
func ExtractText(blocks []ContentBlock) string {
	var parts []string
	for _, b := range blocks {
		if b.Type == BlockText && b.Text != "" {
			parts = append(parts, b.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// ThinkingBlocks returns the texts of all thinking-typed blocks.
func ThinkingBlocks(blocks []ContentBlock) []string {
	var out []string
	for _, b := range blocks {
		if b.Type == BlockThinking && b.Thinking != "" {
			out = append(out, b.Thinking)
		}
	}
	return out
}

// ToolCallNames returns the tool names of all tool-call blocks, in order,
// duplicates included.
func ToolCallNames(blocks []ContentBlock) []string {
	var out []string
	for _, b := range blocks {
		if b.IsToolCall() && b.Name != "" {
			out = append(out, b.Name)
		}
	}
	return out
}

// CountImageBlocks returns the number of explicit image-typed blocks.
func CountImageBlocks(blocks []ContentBlock) int {
	n := 0
	for _, b := range blocks {
		if b.Type == BlockImage {
			n++
		}
	}
	return n
}

// ParseTimestamp parses an ISO 8601 timestamp string. It tries RFC3339Nano,
// RFC3339, and a plain datetime format without timezone. Returns the zero
// time if the string is empty or matches no supported format.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			t, err = time.Parse("2006-01-02T15:04:05", s)
			if err != nil {
				return time.Time{}
			}
		}
	}
	return t
}
