// Package commands implements the CLI commands for wafctl.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/fix"
	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/generate"
	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/question"
	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/registry"
	"github.com/thoreinstein/wafctl/internal/config"
	"github.com/thoreinstein/wafctl/internal/errors"
	"github.com/thoreinstein/wafctl/internal/logging"
)

// docsDirFlag holds the value of the --docs-dir flag.
var docsDirFlag string

// dryRun holds the value of the --dry-run flag.
var dryRun bool

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&docsDirFlag, "docs-dir", "",
		"docs tree root (default: ./docs or the configured docs_dir)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false,
		"log what would change without writing")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(fix.Cmd)
	rootCmd.AddCommand(question.Cmd)
	rootCmd.AddCommand(registry.Cmd)
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	_, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "wafctl",
	Short: "Maintain a Well-Architected review documentation site",
	Long: `wafctl generates, restyles, and repairs a static documentation site
for Well-Architected reviews: Markdown pages with YAML front matter,
one directory per pillar, one page per question or best practice.

It also carries a registry subcommand that re-pushes container image
tags to trigger registry replication.`,
	Example: `  # Scaffold question pages for every pillar
  wafctl generate pages

  # Rewrite plain pages into the styled format
  wafctl style

  # Repair links across the tree
  wafctl fix extensions

  # Compare the tree against the published question list
  wafctl verify`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("WAFCTL_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	// Publish parsed globals for the noun subpackages.
	flags.SetDocsDir(docsDirFlag)
	flags.SetDryRun(dryRun)

	return nil
}

// checkConfig surfaces configuration load errors before any command runs.
func checkConfig(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// Execute runs the root command and maps errors to exit codes.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return errors.ExitSuccess
	}

	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Suggestion: %s\n", exitErr.Suggestion)
		}
		return exitErr.Code
	}
	return errors.ExitUser
}
