package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/membank-oss/membank/pkg/membank"
)

var (
	retrieveTags  []string
	retrieveLimit int
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve",
	Short: "List matching documents, newest first",
	Long: `List stored documents, newest first.

Examples:
  membank retrieve                      # most recent documents
  membank retrieve --tag lore           # documents tagged lore
  membank retrieve --tag lore --tag ops # either tag matches
  membank retrieve --limit 10`,
	RunE: runRetrieve,
}

func init() {
	retrieveCmd.Flags().StringArrayVarP(&retrieveTags, "tag", "t", nil, "filter by tag (repeatable, any match)")
	retrieveCmd.Flags().IntVarP(&retrieveLimit, "limit", "n", membank.DefaultLimit, "maximum documents to return")
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	entries, err := membank.Retrieve(retrieveTags, resolveLimit(cmd, ".", retrieveLimit))
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No documents matched.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  (%d chars)\n", e.Title, len(e.Content))
	}
	return nil
}
