// Package outcome correlates a session with external delivery outcomes:
// commits, diff stats, and a coarse outcome tag. Records are immutable;
// every update function returns a new value.
package outcome

import "time"

// Outcome tags produced by InferOutcome. SetOutcome accepts any tag, so
// consumers must tolerate unknown values.
const (
	OutcomeResearch = "research"
	OutcomeWIP      = "wip"
	OutcomeUnknown  = "unknown"
)

// DiffSummary captures the aggregate diff a session produced.
type DiffSummary struct {
	FilesChanged int `json:"files_changed"`
	LinesAdded   int `json:"lines_added"`
	LinesRemoved int `json:"lines_removed"`
}

// Link ties a session to an external delivery result. It is persisted by an
// external keyed store, one record per session ID, last write wins.
type Link struct {
	SessionID   string      `json:"session_id"`
	Repo        string      `json:"repo,omitempty"`
	Branch      string      `json:"branch,omitempty"`
	Commits     []string    `json:"commits,omitempty"`
	Diff        DiffSummary `json:"diff"`
	Outcome     string      `json:"outcome,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	ExternalRef string      `json:"external_ref,omitempty"`
	LinkedAt    int64       `json:"linked_at"`
}

// New creates an empty link for a session, as ingestion does when a
// transcript is first analyzed.
func New(sessionID string) Link {
	return Link{
		SessionID: sessionID,
		Outcome:   OutcomeUnknown,
		LinkedAt:  nowMs(),
	}
}

// LinkToRepo returns a copy pointing at the given repository and branch.
func (l Link) LinkToRepo(repo, branch string) Link {
	l.Repo = repo
	l.Branch = branch
	l.LinkedAt = nowMs()
	return l
}

// AttachCommitRange returns a copy carrying the given commit identifiers.
func (l Link) AttachCommitRange(commits []string) Link {
	l.Commits = append([]string(nil), commits...)
	l.LinkedAt = nowMs()
	return l
}

// AttachDiffSummary returns a copy carrying the given diff stats.
func (l Link) AttachDiffSummary(d DiffSummary) Link {
	l.Diff = d
	l.LinkedAt = nowMs()
	return l
}

// SetOutcome returns a copy with the outcome tag set.
func (l Link) SetOutcome(tag string) Link {
	l.Outcome = tag
	l.LinkedAt = nowMs()
	return l
}

// AddTag returns a copy with tag appended if not already present.
func (l Link) AddTag(tag string) Link {
	for _, t := range l.Tags {
		if t == tag {
			return l
		}
	}
	l.Tags = append(append([]string(nil), l.Tags...), tag)
	l.LinkedAt = nowMs()
	return l
}

// InferOutcome derives an outcome tag from the link's commit and diff data:
// no commits means research, commits touching at least one file mean work
// in progress, anything else is unknown.
func (l Link) InferOutcome() string {
	if len(l.Commits) == 0 {
		return OutcomeResearch
	}
	if l.Diff.FilesChanged >= 1 {
		return OutcomeWIP
	}
	return OutcomeUnknown
}

// OutputScore summarizes delivery volume on a 0-100 scale: commits weigh 10
// points each capped at 40, changed files 5 each capped at 30, and total
// changed lines contribute a tenth of their count capped at 30.
func (l Link) OutputScore() int {
	score := capInt(len(l.Commits)*10, 40)
	score += capInt(l.Diff.FilesChanged*5, 30)
	score += capInt((l.Diff.LinesAdded+l.Diff.LinesRemoved)/10, 30)
	return capInt(score, 100)
}

func capInt(v, max int) int {
	if v > max {
		return max
	}
	return v
}

func nowMs() int64 {
	return time.Now().UnixMilli()
}
