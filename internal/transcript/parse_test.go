package transcript

import (
	"testing"
	"time"
)

func TestParseLine_Valid(t *testing.T) {
	line := `{"type":"message","id":"m1","timestamp":"2025-06-01T10:00:00Z","message":{"role":"user","content":[{"type":"text","text":"hello"}]}}`

	ev, err := ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if ev.Type != "message" || ev.ID != "m1" {
		t.Errorf("unexpected event: %+v", ev)
	}

	msg, ok := ev.DecodeMessage()
	if !ok {
		t.Fatal("DecodeMessage failed")
	}
	if msg.Role != RoleUser || len(msg.Content) != 1 {
		t.Errorf("unexpected message: %+v", msg)
	}
}

func TestParseLine_Malformed(t *testing.T) {
	if _, err := ParseLine("{not valid json"); err == nil {
		t.Error("expected error for malformed line")
	}
}

func TestDecodeMessage_Absent(t *testing.T) {
	ev := Event{Type: "summary"}
	if _, ok := ev.DecodeMessage(); ok {
		t.Error("expected DecodeMessage to fail with no payload")
	}
}

func TestExtractText(t *testing.T) {
	blocks := []ContentBlock{
		{Type: BlockText, Text: "first part"},
		{Type: BlockThinking, Thinking: "ignored"},
		{Type: BlockText, Text: "second part"},
	}
	if got := ExtractText(blocks); got != "first part\nsecond part" {
		t.Errorf("ExtractText = %q", got)
	}

	if got := ExtractText(nil); got != "" {
		t.Errorf("ExtractText(nil) = %q, want empty", got)
	}

	// Whitespace-only text trims to empty.
	if got := ExtractText([]ContentBlock{{Type: BlockText, Text: "   \n  "}}); got != "" {
		t.Errorf("whitespace text = %q, want empty", got)
	}
}

func TestToolCallNames(t *testing.T) {
	blocks := []ContentBlock{
		{Type: "toolCall", Name: "Read"},
		{Type: "tool_use", Name: "Bash"},
		{Type: "toolCall", Name: "Read"},
		{Type: BlockText, Text: "not a tool"},
	}
	got := ToolCallNames(blocks)
	if len(got) != 3 {
		t.Fatalf("ToolCallNames = %v, want 3 entries with duplicates kept", got)
	}
	if got[0] != "Read" || got[1] != "Bash" || got[2] != "Read" {
		t.Errorf("ToolCallNames = %v", got)
	}
}

func TestThinkingBlocks(t *testing.T) {
	blocks := []ContentBlock{
		{Type: BlockThinking, Thinking: "pondering"},
		{Type: BlockText, Text: "visible"},
		{Type: BlockThinking, Thinking: "more pondering"},
	}
	got := ThinkingBlocks(blocks)
	if len(got) != 2 || got[0] != "pondering" {
		t.Errorf("ThinkingBlocks = %v", got)
	}
}

func TestCountImageBlocks(t *testing.T) {
	blocks := []ContentBlock{
		{Type: BlockImage},
		{Type: BlockText, Text: "caption"},
		{Type: BlockImage},
	}
	if got := CountImageBlocks(blocks); got != 2 {
		t.Errorf("CountImageBlocks = %d, want 2", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		zero  bool
	}{
		{"2025-06-01T10:00:00Z", false},
		{"2025-06-01T10:00:00.123456Z", false},
		{"2025-06-01T10:00:00", false},
		{"", true},
		{"not a timestamp", true},
	}
	for _, tt := range tests {
		got := ParseTimestamp(tt.input)
		if got.IsZero() != tt.zero {
			t.Errorf("ParseTimestamp(%q).IsZero() = %v, want %v", tt.input, got.IsZero(), tt.zero)
		}
	}

	want := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	if got := ParseTimestamp("2025-06-01T10:00:00Z"); !got.Equal(want) {
		t.Errorf("ParseTimestamp = %v, want %v", got, want)
	}
}
