package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/membank-oss/membank/internal/config"
	"github.com/membank-oss/membank/internal/memory"
)

var statusRecent int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show memory store status",
	Long: `Display the document count and the most recently ingested
documents.

Examples:
  membank status
  membank status --recent 10`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().IntVar(&statusRecent, "recent", 5, "number of recent documents to list")
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := memory.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	count, err := store.Count()
	if err != nil {
		return fmt.Errorf("failed to count documents: %w", err)
	}

	fmt.Printf("Store: %s\n", cfg.Store.Path)
	fmt.Printf("Documents: %d\n", count)

	if count == 0 {
		return nil
	}

	docs, err := store.Recent(statusRecent)
	if err != nil {
		return fmt.Errorf("failed to list recent documents: %w", err)
	}

	fmt.Println("\nRecent:")
	for _, d := range docs {
		fmt.Printf("  %s  %s  (%d tags, %d chars)\n",
			d.CreatedAt.Format("2006-01-02 15:04"),
			d.Title,
			len(d.Tags),
			d.Metadata.Length,
		)
	}
	return nil
}
