package transcript

import (
	"os"
	"path/filepath"
	"strings"
)

// SessionFile is a discovered transcript file and its derived identifiers.
type SessionFile struct {
	Path        string
	SessionID   string
	ProjectHash string
}

// DiscoverSessions scans all JSONL transcripts under dataDir/projects/ and
// returns one SessionFile per transcript. The session ID is derived from the
// filename and the project hash from its parent directory. A missing
// projects directory yields no sessions and no error.
func DiscoverSessions(dataDir string) ([]SessionFile, error) {
	projectsDir := filepath.Join(dataDir, "projects")
	entries, err := os.ReadDir(projectsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var sessions []SessionFile
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		projectHash := entry.Name()
		dirPath := filepath.Join(projectsDir, projectHash)

		files, err := os.ReadDir(dirPath)
		if err != nil {
			continue
		}

		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".jsonl") {
				continue
			}
			sessions = append(sessions, SessionFile{
				Path:        filepath.Join(dirPath, f.Name()),
				SessionID:   strings.TrimSuffix(f.Name(), ".jsonl"),
				ProjectHash: projectHash,
			})
		}
	}

	return sessions, nil
}
