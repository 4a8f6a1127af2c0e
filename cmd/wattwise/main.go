package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wattwise/wattwise/internal/cli"
	"github.com/wattwise/wattwise/internal/config"
	"github.com/wattwise/wattwise/internal/convert"
	"github.com/wattwise/wattwise/internal/httpapi"
	"github.com/wattwise/wattwise/internal/logger"
	"github.com/wattwise/wattwise/internal/query"
	"github.com/wattwise/wattwise/internal/server"
	"github.com/wattwise/wattwise/internal/tools"
)

var (
	version = "1.0.0"
)

// initLogging wires the file logger from the loaded configuration.
func initLogging(cfg *config.Config) error {
	return logger.Init(logger.Config{
		LogDir:     cfg.Logging.Dir,
		Level:      logger.ParseLevel(cfg.Logging.Level),
		MaxDays:    cfg.Logging.MaxDays,
		ConsoleOut: cfg.Logging.Console,
	})
}

// newInterpreter builds the query interpreter with the configured cue window.
func newInterpreter(cfg *config.Config) *query.Interpreter {
	return query.New(query.WithCueWindow(cfg.Parser.CueWindow))
}

// renderJSON pretty-prints a conversion result the way the MCP tools do.
func renderJSON(result *convert.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "wattwise",
		Short: "WattWise - Microwave cooking time converter",
		Long: `WattWise converts microwave cooking times between different wattages.

It can:
  • Answer natural language questions like "recipe says 950w for 7 minutes, I have a 700w microwave"
  • Convert explicit wattage/time parameters
  • Serve the converter as an MCP tool over stdio
  • Serve a small HTTP JSON API`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Start interactive CLI
			return cli.Run(cfg)
		},
	}

	// convert subcommand: explicit parameters
	var fromWatt, toWatt, minutes, seconds int
	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a cooking time between two wattages",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := convert.Convert(fromWatt, toWatt, minutes, seconds)
			if err != nil {
				return err
			}
			out, err := renderJSON(result)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	convertCmd.Flags().IntVar(&fromWatt, "from", 0, "wattage the recipe was written for")
	convertCmd.Flags().IntVar(&toWatt, "to", 0, "wattage of your microwave")
	convertCmd.Flags().IntVar(&minutes, "minutes", 0, "original cooking minutes")
	convertCmd.Flags().IntVar(&seconds, "seconds", 0, "original cooking seconds")
	convertCmd.MarkFlagRequired("from")
	convertCmd.MarkFlagRequired("to")

	// query subcommand: natural language
	queryCmd := &cobra.Command{
		Use:   "query [question]",
		Short: "Answer a natural language conversion question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			parsed, err := newInterpreter(cfg).Interpret(strings.Join(args, " "))
			if err != nil {
				return err
			}

			result, err := convert.Convert(parsed.OriginalWattage, parsed.TargetWattage, parsed.Minutes, parsed.Seconds)
			if err != nil {
				return err
			}
			out, err := renderJSON(result)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	// serve subcommand: MCP over stdio
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := initLogging(cfg); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Close()

			registry := tools.NewDefaultRegistry(newInterpreter(cfg))
			srv := server.New(cfg.Server.Name, cfg.Server.Version, registry)

			logger.Info("MCP server starting: %s v%s", cfg.Server.Name, cfg.Server.Version)
			return srv.Run(cmd.Context())
		},
	}

	// serve-http subcommand: JSON API
	serveHTTPCmd := &cobra.Command{
		Use:   "serve-http",
		Short: "Run the HTTP JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := initLogging(cfg); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Close()

			handler := httpapi.NewHandler(newInterpreter(cfg))
			srv := httpapi.NewHTTPServer(cfg, handler)

			logger.Info("HTTP API listening on %s", cfg.HTTP.Addr)
			fmt.Printf("Listening on http://%s\n", cfg.HTTP.Addr)
			return srv.ListenAndServe()
		},
	}

	// config subcommand
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			fmt.Println(cfg.String())

			path, _ := config.ConfigPath()
			fmt.Printf("\nConfig file path: %s\n", path)
			return nil
		},
	}

	// version subcommand
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("WattWise v%s\n", version)
		},
	}

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(serveHTTPCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
