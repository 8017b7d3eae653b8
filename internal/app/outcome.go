package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/newjordan/prompt-quant-visualizer/internal/config"
	"github.com/newjordan/prompt-quant-visualizer/internal/outcome"
	"github.com/newjordan/prompt-quant-visualizer/internal/store"
)

var (
	outcomeRepo     string
	outcomeBranch   string
	outcomeCommits  []string
	outcomeFiles    int
	outcomeAdded    int
	outcomeRemoved  int
	outcomeTag      string
	outcomeInferTag bool
)

var outcomeCmd = &cobra.Command{
	Use:   "outcome",
	Short: "Link sessions to delivery outcomes",
}

var outcomeLinkCmd = &cobra.Command{
	Use:   "link <session-id>",
	Short: "Attach repo, commit, and diff data to a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutcomeLink,
}

var outcomeShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the stored outcome link for a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutcomeShow,
}

func init() {
	outcomeLinkCmd.Flags().StringVar(&outcomeRepo, "repo", "", "Repository the session worked on")
	outcomeLinkCmd.Flags().StringVar(&outcomeBranch, "branch", "", "Branch the session worked on")
	outcomeLinkCmd.Flags().StringSliceVar(&outcomeCommits, "commits", nil, "Commit identifiers produced by the session")
	outcomeLinkCmd.Flags().IntVar(&outcomeFiles, "files-changed", 0, "Number of files changed")
	outcomeLinkCmd.Flags().IntVar(&outcomeAdded, "lines-added", 0, "Lines added")
	outcomeLinkCmd.Flags().IntVar(&outcomeRemoved, "lines-removed", 0, "Lines removed")
	outcomeLinkCmd.Flags().StringVar(&outcomeTag, "outcome", "", "Explicit outcome tag")
	outcomeLinkCmd.Flags().BoolVar(&outcomeInferTag, "infer", false, "Infer the outcome tag from commits and diff")

	outcomeCmd.AddCommand(outcomeLinkCmd)
	outcomeCmd.AddCommand(outcomeShowCmd)
	rootCmd.AddCommand(outcomeCmd)
}

func runOutcomeLink(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	sessionID := args[0]

	link, err := db.GetOutcomeLink(sessionID)
	if err != nil {
		return fmt.Errorf("loading outcome link: %w", err)
	}
	updated := outcome.New(sessionID)
	if link != nil {
		updated = *link
	}

	if outcomeRepo != "" || outcomeBranch != "" {
		updated = updated.LinkToRepo(outcomeRepo, outcomeBranch)
	}
	if len(outcomeCommits) > 0 {
		updated = updated.AttachCommitRange(outcomeCommits)
	}
	if outcomeFiles > 0 || outcomeAdded > 0 || outcomeRemoved > 0 {
		updated = updated.AttachDiffSummary(outcome.DiffSummary{
			FilesChanged: outcomeFiles,
			LinesAdded:   outcomeAdded,
			LinesRemoved: outcomeRemoved,
		})
	}
	switch {
	case outcomeTag != "":
		updated = updated.SetOutcome(outcomeTag)
	case outcomeInferTag:
		updated = updated.SetOutcome(updated.InferOutcome())
	}

	if err := db.SaveOutcomeLink(updated); err != nil {
		return fmt.Errorf("saving outcome link: %w", err)
	}

	fmt.Printf("linked session %s (outcome=%s, output score %d)\n",
		sessionID, valueOr(updated.Outcome, "unset"), updated.OutputScore())
	return nil
}

func runOutcomeShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	link, err := db.GetOutcomeLink(args[0])
	if err != nil {
		return fmt.Errorf("loading outcome link: %w", err)
	}
	if link == nil {
		return fmt.Errorf("no outcome link stored for session %s", args[0])
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(link)
	}

	fmt.Printf("session:      %s\n", link.SessionID)
	fmt.Printf("repo:         %s\n", valueOr(link.Repo, "-"))
	fmt.Printf("branch:       %s\n", valueOr(link.Branch, "-"))
	fmt.Printf("commits:      %d\n", len(link.Commits))
	fmt.Printf("diff:         %d files, +%d/-%d\n",
		link.Diff.FilesChanged, link.Diff.LinesAdded, link.Diff.LinesRemoved)
	fmt.Printf("outcome:      %s (inferred: %s)\n", valueOr(link.Outcome, "unset"), link.InferOutcome())
	fmt.Printf("output score: %d\n", link.OutputScore())
	if len(link.Tags) > 0 {
		fmt.Printf("tags:         %s\n", strings.Join(link.Tags, ", "))
	}
	return nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
