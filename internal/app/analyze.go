package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/newjordan/prompt-quant-visualizer/internal/config"
	"github.com/newjordan/prompt-quant-visualizer/internal/ingest"
	"github.com/newjordan/prompt-quant-visualizer/internal/output"
	"github.com/newjordan/prompt-quant-visualizer/internal/store"
	"github.com/newjordan/prompt-quant-visualizer/internal/transcript"
)

var analyzeSave bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <transcript.jsonl>",
	Short: "Analyze one transcript and show its shape profile",
	Long: `Run the full analytics pipeline over a single JSONL transcript:
per-turn feature extraction, topic drift, focus and complexity scoring, and
session shape classification.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the session rollup and outcome link to the local store")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	setupColor(cfg)

	path := args[0]
	sessionID := strings.TrimSuffix(filepath.Base(path), ".jsonl")

	result := ingest.Analyze(cmd.Context(), transcript.FileSource(path), sessionID)

	if analyzeSave && result.Success {
		db, err := store.Open(cfg.StorePath)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer db.Close()

		if err := db.SaveSessionRollup(result.Meta, result.Shape); err != nil {
			return fmt.Errorf("saving rollup: %w", err)
		}

		// Seed the outcome link only when none exists; links hold
		// user-entered data that a rerun must not overwrite.
		existing, err := db.GetOutcomeLink(sessionID)
		if err != nil {
			return fmt.Errorf("checking outcome link: %w", err)
		}
		if existing == nil {
			if err := db.SaveOutcomeLink(result.Outcome); err != nil {
				return fmt.Errorf("saving outcome link: %w", err)
			}
		}
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Print(output.RenderSession(result))

	if !result.Success {
		return fmt.Errorf("no analyzable turns in %s", path)
	}
	return nil
}

func setupColor(cfg *config.Config) {
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
		return
	}
	output.AutoDetect()
}
