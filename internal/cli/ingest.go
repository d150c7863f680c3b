package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/membank-oss/membank/internal/errors"
	"github.com/membank-oss/membank/pkg/membank"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <path>...",
	Short: "Ingest text sources into the memory store",
	Long: `Ingest one or more text sources into the memory store.

Inline @word markers become the document's tags; the first marker
becomes its primary tag. Each invocation appends new records — sources
are never deduplicated.

Examples:
  membank ingest notes/serena.ftai
  membank ingest lore/*.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	var failed int
	for _, path := range args {
		receipt, err := membank.Ingest(path)
		if err != nil {
			failed++
			if errors.IsNotFound(err) {
				// Recoverable: report and keep going with the rest.
				fmt.Printf("skipped %s: not found\n", path)
				continue
			}
			return err
		}

		tags := "none"
		if len(receipt.Tags) > 0 {
			tags = strings.Join(receipt.Tags, ", ")
		}
		fmt.Printf("Imported %s (id %d) with tags: %s\n", receipt.Title, receipt.ID, tags)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources could not be ingested", failed, len(args))
	}
	return nil
}
