package chat

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"ollamagent/internal/agent"
	"ollamagent/internal/config"
	"ollamagent/internal/ollama"
	"ollamagent/internal/tools"
	"ollamagent/internal/trace"

	"github.com/spf13/cobra"
)

var (
	agentKind string
	model     string
	toolNames []string
)

var Cmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat interactively with an agent",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if cfg.Trace.Endpoint != "" {
			shutdown, err := trace.Init(ctx, trace.Config{
				Endpoint: cfg.Trace.Endpoint,
				URLPath:  cfg.Trace.URLPath,
				APIKey:   cfg.Trace.APIKey,
			})
			if err != nil {
				return fmt.Errorf("initializing tracing: %w", err)
			}
			defer shutdown(context.Background())
		}

		client := ollama.NewClient(ollama.ClientConfig{
			BaseURL:     cfg.BaseURL,
			Timeout:     cfg.Timeout(),
			Temperature: cfg.Model.Temperature,
			MaxTokens:   cfg.Model.MaxTokens,
		})

		a, err := buildAgent(client, cfg)
		if err != nil {
			return err
		}

		slog.Info("agent ready", "name", a.Name(), "model", a.Model(), "tools", len(a.Tools()))
		fmt.Printf("%s (%s) - type 'exit' to quit\n", a.Name(), a.Model())

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				return nil
			}

			reply, err := a.Chat(ctx, line)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			fmt.Println(reply)
		}
	},
}

func init() {
	Cmd.Flags().StringVarP(&agentKind, "agent", "a", "", "agent preset (math, code, creative, analysis, research); empty for a general assistant")
	Cmd.Flags().StringVarP(&model, "model", "m", "", "override the model")
	Cmd.Flags().StringSliceVarP(&toolNames, "tools", "t", nil, "tools for the general assistant (empty = all builtins)")
}

// builtinRegistry holds every tool the general assistant may be given.
func builtinRegistry(cfg *config.Config) *tools.Registry {
	registry := tools.NewRegistry()
	registry.Register(&tools.TextAnalyzer{})
	registry.Register(&tools.UnitConverter{})
	registry.Register(&tools.Timestamp{})
	registry.Register(&tools.JSONValidator{})
	registry.Register(&tools.FileReader{})
	registry.Register(&tools.Weather{})
	if cfg.Services.Brave.APIKey != "" {
		registry.Register(tools.NewWeb(cfg.Services.Brave.APIKey))
	}
	return registry
}

func buildAgent(client *ollama.Client, cfg *config.Config) (*agent.Agent, error) {
	if agentKind == "" {
		m := model
		if m == "" {
			m = cfg.DefaultModel
		}
		toolset := builtinRegistry(cfg).Scope(toolNames)
		return agent.New(client, "Assistant", m, "", toolset...)
	}

	a, err := agent.NewPreset(client, agent.Kind(agentKind), model)
	if err != nil {
		return nil, err
	}

	// The research preset gets web search when a Brave key is configured.
	if agent.Kind(agentKind) == agent.KindResearch && cfg.Services.Brave.APIKey != "" {
		if err := a.AddTool(tools.NewWeb(cfg.Services.Brave.APIKey)); err != nil {
			return nil, err
		}
		slog.Info("web search enabled for research agent")
	}

	return a, nil
}
