// Command wealthchat is the conversational front-end: a line-based REPL that
// feeds user input through the conversation engine and renders the resulting
// event stream. Configuration comes from flags, WEALTH_* environment
// variables and an optional .env file.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rross/oai-wealth-management/account"
	"github.com/rross/oai-wealth-management/core"
	"github.com/rross/oai-wealth-management/engine"
	"github.com/rross/oai-wealth-management/logging"
	"github.com/rross/oai-wealth-management/oracle"
	oracleanthropic "github.com/rross/oai-wealth-management/oracle/anthropic"
	oracleopenai "github.com/rross/oai-wealth-management/oracle/openai"
	"github.com/rross/oai-wealth-management/tool"
	mcptool "github.com/rross/oai-wealth-management/tool/mcp"
	"github.com/rross/oai-wealth-management/wealth"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := viper.New()

	rootCmd := &cobra.Command{
		Use:           "wealthchat",
		Short:         "ABC Wealth Management conversational assistant",
		Long:          "wealthchat routes natural-language requests among a supervisor agent and beneficiary/investment specialists, each with typed tools over account state.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd.Context(), cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.String("provider", "openai", "decision backend: openai or anthropic")
	flags.String("model", "", "model id override for the chosen provider")
	flags.String("account-server", "", "command spawning the stdio account-data server attached to the supervisor")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")

	cfg.SetEnvPrefix("WEALTH")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	_ = cfg.BindPFlags(flags)

	// Optional .env for API keys during local development.
	_ = godotenv.Load()

	return rootCmd
}

func runChat(ctx context.Context, cfg *viper.Viper) error {
	logger := logging.NewSlogLogger(
		logging.ParseLevel(cfg.GetString("log-level")),
		cfg.GetString("log-format"),
		os.Stderr,
	)

	beneficiaries := account.NewBeneficiaryManager()
	investments := account.NewInvestmentManager()

	supervisorTools, closeProvider, err := discoverAccountTools(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if closeProvider != nil {
		defer closeProvider()
	}

	registry, err := wealth.BuildRegistry(beneficiaries, investments, supervisorTools...)
	if err != nil {
		return fmt.Errorf("build agent graph: %w", err)
	}

	decider, err := newOracle(cfg)
	if err != nil {
		return err
	}

	eng := engine.New(registry, decider, func(o *engine.Options) {
		o.Logger = logger
	})

	conv, err := eng.NewConversation(wealth.SupervisorAgentName)
	if err != nil {
		return err
	}

	fmt.Println("Welcome to ABC Wealth Management. How can I help you?")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter your message: ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "exit", "end", "quit":
			return nil
		case "":
			continue
		}

		events, err := eng.RunTurn(ctx, conv, input)
		if err != nil {
			fmt.Printf("The assistant is unavailable right now (%v). Please try again.\n", err)
			continue
		}

		for _, ev := range events {
			render(ev)
		}
	}
}

// discoverAccountTools spawns the configured stdio account-data server and
// returns its tools for the supervisor, plus a closer for the session.
func discoverAccountTools(ctx context.Context, cfg *viper.Viper, logger logging.Logger) ([]tool.Tool, func(), error) {
	command := cfg.GetString("account-server")
	if command == "" {
		return nil, nil, nil
	}

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil, nil, nil
	}

	client, err := mcptool.Connect(ctx, parts[0], parts[1:]...)
	if err != nil {
		return nil, nil, fmt.Errorf("connect account-data server: %w", err)
	}

	tools, err := client.Tools(ctx)
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("discover account-data tools: %w", err)
	}

	logger.Info("accountserver.tools.discovered", "count", len(tools))

	return tools, func() { _ = client.Close() }, nil
}

func newOracle(cfg *viper.Viper) (oracle.Oracle, error) {
	model := cfg.GetString("model")

	switch provider := cfg.GetString("provider"); provider {
	case "openai":
		return oracleopenai.New(func(o *oracleopenai.Options) {
			if model != "" {
				o.Model = model
			}
		}), nil
	case "anthropic":
		return oracleanthropic.New(func(o *oracleanthropic.Options) {
			if model != "" {
				o.Model = anthropic.Model(model)
			}
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want openai or anthropic)", provider)
	}
}

// render prints one event. The switch is exhaustive over the closed event set.
func render(ev core.Event) {
	switch e := ev.(type) {
	case core.MessageEvent:
		fmt.Printf("%s: %s\n", e.Agent, e.Text)
	case core.HandoffAppliedEvent:
		fmt.Printf("Handed off from %s to %s\n", e.From, e.To)
	case core.ToolInvokedEvent:
		fmt.Printf("%s: calling tool %s\n", e.Agent, e.Tool)
	case core.ToolResultEvent:
		switch {
		case e.Failed():
			fmt.Printf("%s: tool %s failed: %s\n", e.Agent, e.Tool, e.Err)
		case e.Output == nil:
			fmt.Printf("%s: tool %s: action performed\n", e.Agent, e.Tool)
		default:
			payload, err := json.Marshal(e.Output)
			if err != nil {
				fmt.Printf("%s: tool %s output: %v\n", e.Agent, e.Tool, e.Output)
				return
			}
			fmt.Printf("%s: tool %s output: %s\n", e.Agent, e.Tool, payload)
		}
	case core.FailureEvent:
		fmt.Printf("%s: %s: %s\n", e.Agent, e.Kind, e.Message)
	}
}
