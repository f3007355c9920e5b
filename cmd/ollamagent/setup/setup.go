package setup

import (
	"fmt"
	"os"
	"path/filepath"

	"ollamagent/internal/config"

	"github.com/spf13/cobra"
)

const configTemplate = `# ollamagent configuration
base_url = "http://localhost:11434"
default_model = "llama3.2"
timeout_seconds = 30

[model]
temperature = 0.7
max_tokens = 2048

# [trace]
# endpoint = "localhost:4318"

# [services.brave]
# api_key = ""
`

var force bool

var Cmd = &cobra.Command{
	Use:   "setup",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Path()

		if _, err := os.Stat(path); err == nil && !force {
			fmt.Printf("config already exists at %s (use --force to overwrite)\n", path)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	Cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
}
