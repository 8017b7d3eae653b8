package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/newjordan/prompt-quant-visualizer/internal/config"
	"github.com/newjordan/prompt-quant-visualizer/internal/ingest"
	"github.com/newjordan/prompt-quant-visualizer/internal/output"
	"github.com/newjordan/prompt-quant-visualizer/internal/store"
	"github.com/newjordan/prompt-quant-visualizer/internal/transcript"
)

var scanSave bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Analyze every local session transcript",
	Long: `Discover all JSONL session transcripts under the agent data directory
and analyze each one. Sessions are independent, so they are processed
concurrently.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "Persist session rollups to the local store")
	rootCmd.AddCommand(scanCmd)
}

// scanRow is one session's summary in the scan output.
type scanRow struct {
	SessionID      string  `json:"session_id"`
	ProjectHash    string  `json:"project_hash"`
	Turns          int     `json:"turns"`
	Classification string  `json:"classification"`
	AvgComplexity  float64 `json:"avg_complexity"`
	Linearity      float64 `json:"linearity"`
	Breadth        float64 `json:"breadth"`
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	setupColor(cfg)

	sessions, err := transcript.DiscoverSessions(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("discovering sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Println("no session transcripts found under", cfg.DataDir)
		return nil
	}

	var db *store.DB
	if scanSave {
		db, err = store.Open(cfg.StorePath)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer db.Close()
	}

	var mu sync.Mutex
	var rows []scanRow

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.ScanConcurrency)

	for _, sf := range sessions {
		sf := sf
		g.Go(func() error {
			result := ingest.Analyze(ctx, transcript.FileSource(sf.Path), sf.SessionID)
			if !result.Success {
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			rows = append(rows, scanRow{
				SessionID:      sf.SessionID,
				ProjectHash:    sf.ProjectHash,
				Turns:          result.Meta.NodeCount,
				Classification: result.Shape.Classification,
				AvgComplexity:  result.Meta.AvgComplexity,
				Linearity:      result.Shape.Linearity,
				Breadth:        result.Shape.Breadth,
			})
			if db != nil {
				if err := db.SaveSessionRollup(result.Meta, result.Shape); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].SessionID < rows[j].SessionID })

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	table := output.NewTable("Session", "Project", "Turns", "Shape", "Cmplx", "Linear", "Breadth")
	for _, r := range rows {
		table.AddRow(
			shortID(r.SessionID),
			shortID(r.ProjectHash),
			fmt.Sprintf("%d", r.Turns),
			r.Classification,
			fmt.Sprintf("%.1f", r.AvgComplexity),
			fmt.Sprintf("%.2f", r.Linearity),
			fmt.Sprintf("%.2f", r.Breadth),
		)
	}
	table.Print()
	fmt.Printf("\n%d session(s) analyzed\n", len(rows))
	return nil
}

// shortID truncates long identifiers for table display.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
