// Package transcript provides types and parsers for line-delimited
// conversation event logs.
package transcript

import "encoding/json"

// Event is the top-level structure of one log line. Only events of type
// "message" carry conversational content; other types pass through ingestion
// untouched.
type Event struct {
	Type      string          `json:"type"`
	ID        string          `json:"id"`
	ParentID  string          `json:"parentId,omitempty"`
	Timestamp string          `json:"timestamp"`
	Message   json.RawMessage `json:"message,omitempty"`
}

// EventMessage is the message payload of a "message" event.
type EventMessage struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// ContentBlock is a single typed block inside a message: text, thinking,
// image, or a tool call.
type ContentBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	Thinking  string          `json:"thinking,omitempty"`
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
}

// Block type discriminators.
const (
	BlockText     = "text"
	BlockThinking = "thinking"
	BlockImage    = "image"
)

// IsToolCall reports whether the block invokes a tool. Both the "toolCall"
// and Claude-style "tool_use" spellings appear in the wild.
func (b ContentBlock) IsToolCall() bool {
	return b.Type == "toolCall" || b.Type == "tool_use" || b.Type == "tool_call"
}

// Event and role discriminators.
const (
	EventMessageType = "message"
	RoleUser         = "user"
	RoleAssistant    = "assistant"
)
