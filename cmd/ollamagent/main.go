package main

import (
	"os"

	"ollamagent/cmd/ollamagent/chat"
	"ollamagent/cmd/ollamagent/models"
	"ollamagent/cmd/ollamagent/setup"
	"ollamagent/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	logger.Init()
	rootCmd := &cobra.Command{
		Use:   "ollamagent",
		Short: "Specialized AI agents backed by a local Ollama server",
	}

	rootCmd.AddCommand(setup.Cmd)
	rootCmd.AddCommand(models.Cmd)
	rootCmd.AddCommand(chat.Cmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
