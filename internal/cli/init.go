package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [project-dir]",
	Short: "Initialize a new membank project",
	Long: `Initialize a membank project: the data directory and a starter
membank.yaml with the default store and journal locations.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const starterConfig = `name: membank-project
version: "1.0"

store:
  driver: sqlite
  path: .membank/membank.db

retrieval:
  limit: 5

journal:
  enabled: true
  path: .membank/journal.db

logging:
  level: info
  format: text

# hooks:
#   enabled: true
#   hooks:
#     - name: notify
#       type: shell
#       events: [document.ingested]
#       command: echo "ingested $MEMBANK_EVENT_TYPE"
`

func runInit(cmd *cobra.Command, args []string) error {
	projectDir := "."
	if len(args) > 0 {
		projectDir = args[0]
	}

	if err := os.MkdirAll(filepath.Join(projectDir, ".membank"), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configPath := filepath.Join(projectDir, "membank.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("membank.yaml already exists in %s", projectDir)
	}

	if err := os.WriteFile(configPath, []byte(starterConfig), 0644); err != nil {
		return fmt.Errorf("failed to write membank.yaml: %w", err)
	}

	fmt.Printf("Initialized membank project in %s\n", projectDir)
	fmt.Println("Next: membank ingest <file> to add your first document.")
	return nil
}
