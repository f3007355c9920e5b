package models

import (
	"fmt"

	"ollamagent/internal/config"
	"ollamagent/internal/ollama"

	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "models [name]",
	Short: "List models on the Ollama server, or show details for one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		client := ollama.NewClient(ollama.ClientConfig{
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout(),
		})

		if len(args) == 1 {
			return showModel(cmd, client, args[0])
		}
		return listModels(cmd, client)
	},
}

func listModels(cmd *cobra.Command, client *ollama.Client) error {
	models, err := client.ListModels(cmd.Context())
	if err != nil {
		return err
	}

	if len(models) == 0 {
		fmt.Println("no models installed; try: ollama pull llama3.2")
		return nil
	}
	for _, m := range models {
		fmt.Printf("%s\t%.1f GB\n", m.Name, float64(m.Size)/1e9)
	}
	return nil
}

func showModel(cmd *cobra.Command, client *ollama.Client, name string) error {
	details, err := client.ShowModel(cmd.Context(), name)
	if err != nil {
		return err
	}

	fmt.Printf("family: %s\nparameters: %s\nquantization: %s\n",
		details.Details.Family,
		details.Details.ParameterSize,
		details.Details.QuantizationLevel,
	)
	return nil
}
