package transcript

import (
	"bufio"
	"context"
	"os"
	"strings"
)

// maxLineSize bounds a single log line; long tool outputs can push lines
// into the megabytes.
const maxLineSize = 10 * 1024 * 1024

// Source is the one I/O boundary of the analytics engine: something that
// can produce the raw log lines for a session. The analytics core never
// reads files or sockets itself, which keeps it testable in isolation.
type Source interface {
	ReadLines(ctx context.Context) ([]string, error)
}

// FileSource reads a transcript from a local JSONL file.
type FileSource string

// ReadLines reads the file line by line.
func (p FileSource) ReadLines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(string(p))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// StringSource serves an in-memory log, split on newlines. Blank lines are
// preserved so error line numbers match the original text.
type StringSource string

// ReadLines splits the string into lines.
func (s StringSource) ReadLines(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	return strings.Split(strings.TrimRight(string(s), "\n"), "\n"), nil
}
