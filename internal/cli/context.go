package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/membank-oss/membank/pkg/membank"
)

var (
	contextTags  []string
	contextLimit int
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Assemble a context block from matching documents",
	Long: `Assemble matching documents into a single delimited text block,
ready for injection into a prompt. The block is unbounded: every
matched document is included in full.

Examples:
  membank context --tag lore
  membank context --tag lore --limit 3 > context.txt`,
	RunE: runContext,
}

func init() {
	contextCmd.Flags().StringArrayVarP(&contextTags, "tag", "t", nil, "filter by tag (repeatable, any match)")
	contextCmd.Flags().IntVarP(&contextLimit, "limit", "n", membank.DefaultLimit, "maximum documents to include")
}

func runContext(cmd *cobra.Command, args []string) error {
	block, err := membank.Assemble(contextTags, resolveLimit(cmd, ".", contextLimit))
	if err != nil {
		return err
	}

	if block == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "No documents matched.")
		return nil
	}

	fmt.Print(block)
	return nil
}
