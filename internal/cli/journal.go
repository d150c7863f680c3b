package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/membank-oss/membank/internal/config"
	"github.com/membank-oss/membank/internal/journal"
)

var journalLimit int

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show recent memory store operations",
	Long: `Display the operation journal: what was ingested and what
context was retrieved or assembled, newest first.

Examples:
  membank journal
  membank journal --limit 50`,
	RunE: runJournal,
}

func init() {
	journalCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "number of entries to show")
}

func runJournal(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !cfg.Journal.Enabled {
		fmt.Println("Journal is disabled in membank.yaml.")
		return nil
	}

	j, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer j.Close()

	entries, err := j.Recent(journalLimit)
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No journaled operations.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-8s  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"),
			e.Op,
			e.Detail,
		)
	}
	return nil
}
