package transcript

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStringSource(t *testing.T) {
	lines, err := StringSource("one\ntwo\nthree\n").ReadLines(context.Background())
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 3 || lines[2] != "three" {
		t.Errorf("lines = %v", lines)
	}

	lines, err = StringSource("").ReadLines(context.Background())
	if err != nil || lines != nil {
		t.Errorf("empty source = %v, %v", lines, err)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	if err := os.WriteFile(path, []byte("{\"type\":\"message\"}\n{\"type\":\"other\"}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := FileSource(path).ReadLines(context.Background())
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
}

func TestFileSource_Missing(t *testing.T) {
	_, err := FileSource(filepath.Join(t.TempDir(), "absent.jsonl")).ReadLines(context.Background())
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDiscoverSessions(t *testing.T) {
	dataDir := t.TempDir()
	projDir := filepath.Join(dataDir, "projects", "abc123")
	if err := os.MkdirAll(projDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"s1.jsonl", "s2.jsonl", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(projDir, name), []byte("{}\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	sessions, err := DiscoverSessions(dataDir)
	if err != nil {
		t.Fatalf("DiscoverSessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].ProjectHash != "abc123" {
		t.Errorf("project hash = %q", sessions[0].ProjectHash)
	}
	if sessions[0].SessionID != "s1" && sessions[1].SessionID != "s1" {
		t.Errorf("session ids = %q, %q", sessions[0].SessionID, sessions[1].SessionID)
	}
}

func TestDiscoverSessions_MissingDir(t *testing.T) {
	sessions, err := DiscoverSessions(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("expected nil error for missing dir, got %v", err)
	}
	if sessions != nil {
		t.Errorf("expected no sessions, got %v", sessions)
	}
}
