package analyzer

import (
	"math"
	"testing"
)

func TestCategorizeTool(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Read", "filesystem"},
		{"Bash", "execution"},
		{"WebFetch", "browser"},
		{"Grep", "search"},
		{"screenshot", "media"},
		{"SlackPost", "communication"},
		{"kubectl", "infrastructure"},
		{"SomeCustomTool", "other"},
		{"read", "other"}, // lookup is exact, not case-folded
	}
	for _, tt := range tests {
		if got := CategorizeTool(tt.name); got != tt.want {
			t.Errorf("CategorizeTool(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestUniqueToolNames(t *testing.T) {
	got := UniqueToolNames([]string{"Read", "Bash", "Read", "", "Bash", "Edit"})
	want := []string{"Bash", "Edit", "Read"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestToolDiversity(t *testing.T) {
	if got := ToolDiversity(nil); got != 0 {
		t.Errorf("diversity of no tools = %f, want 0", got)
	}

	// Read + Edit are both filesystem: one category out of seven.
	got := ToolDiversity([]string{"Read", "Edit"})
	if math.Abs(got-1.0/7.0) > 1e-9 {
		t.Errorf("single-category diversity = %f, want %f", got, 1.0/7.0)
	}

	// Seven distinct categories saturate at 1.
	full := ToolDiversity([]string{"Read", "Bash", "WebFetch", "Grep", "screenshot", "SlackPost", "kubectl"})
	if full != 1 {
		t.Errorf("full diversity = %f, want 1", full)
	}

	// "other" counts as a used category.
	withOther := ToolDiversity([]string{"Read", "MysteryTool"})
	if math.Abs(withOther-2.0/7.0) > 1e-9 {
		t.Errorf("diversity with other = %f, want %f", withOther, 2.0/7.0)
	}
}

func TestToolDiversity_Capped(t *testing.T) {
	// Eight distinct categories (seven fixed + other) would exceed 1.
	names := []string{"Read", "Bash", "WebFetch", "Grep", "screenshot", "SlackPost", "kubectl", "MysteryTool"}
	if got := ToolDiversity(names); got != 1 {
		t.Errorf("diversity = %f, want capped at 1", got)
	}
}
