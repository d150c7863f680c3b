package cli

import (
	"github.com/spf13/cobra"

	"github.com/membank-oss/membank/internal/config"
)

// resolveLimit picks the retrieval limit for a command: an explicit
// --limit flag wins, otherwise the configured retrieval.limit applies.
// flagValue is the fallback when the config cannot be loaded.
func resolveLimit(cmd *cobra.Command, dir string, flagValue int) int {
	if cmd.Flags().Changed("limit") {
		return flagValue
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return flagValue
	}
	return cfg.Retrieval.Limit
}
