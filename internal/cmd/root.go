// Package cmd defines the tinygrep command-line surface. It parses
// flags, loads configuration, and hands a validated Options struct to
// the search pipeline; no matching logic lives here.
package cmd

import (
	"os"

	"github.com/harrison/tinygrep/internal/config"
	"github.com/harrison/tinygrep/internal/grep"
	"github.com/harrison/tinygrep/internal/logger"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for tinygrep
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tinygrep [flags] PATTERN [PATH...]",
		Short: "A simplified version of the `grep` command",
		Long: `Search for PATTERN in each PATH or standard input.

PATH may be a file or, with --recursive, a directory that is walked
depth-first. With no PATH, standard input is read to end-of-stream.
Matched lines are printed as "<source>:<line>" (or
"<source>:<number>: <line>" with --line-numbers).

Configuration is loaded from .tinygrep.yaml if present.
CLI flags override configuration file settings.

Examples:
  tinygrep -i "rust" file1.txt       # Case-insensitive search for 'rust'
  tinygrep -n "error" file1.txt      # Search for 'error' and show line numbers
  tinygrep -r "R\w+" file1.txt       # Search for words starting with 'R' using regex
  tinygrep -R "todo" src/            # Search a directory tree
  tinygrep -c "hello" file1.txt      # Highlight matching text in output
  tinygrep -i -n "hello" file1.txt file2.txt
  cat file.txt | tinygrep "hello"    # Search standard input`,
		Version: Version,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runSearch,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.Flags().BoolP("ignore-case", "i", false, "Perform case-insensitive matching")
	cmd.Flags().BoolP("line-numbers", "n", false, "Show line numbers with output lines")
	cmd.Flags().BoolP("regexp", "r", false, "Treat PATTERN as a regular expression")
	cmd.Flags().BoolP("recursive", "R", false, "Search recursively in directories")
	cmd.Flags().BoolP("color", "c", false, "Highlight matching text in output")
	cmd.Flags().Bool("verbose", false, "Show per-source search progress on stderr")
	cmd.Flags().String("config", "", "Path to config file (default: .tinygrep.yaml)")

	return cmd
}

// runSearch implements the root command logic: load config, overlay
// flags, and run the pipeline.
func runSearch(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	opts := grep.Options{
		Query:           args[0],
		Paths:           args[1:],
		ShowLineNumbers: cfg.LineNumbers,
		Highlight:       cfg.Color,
		HighlightCompat: cfg.HighlightCompat,
	}

	opts.IgnoreCase, _ = cmd.Flags().GetBool("ignore-case")
	opts.UseRegex, _ = cmd.Flags().GetBool("regexp")
	opts.Recursive, _ = cmd.Flags().GetBool("recursive")

	if cmd.Flags().Changed("line-numbers") {
		opts.ShowLineNumbers, _ = cmd.Flags().GetBool("line-numbers")
	}
	if cmd.Flags().Changed("color") {
		opts.Highlight, _ = cmd.Flags().GetBool("color")
	} else if opts.Highlight && !isatty.IsTerminal(os.Stdout.Fd()) {
		// Config-enabled color is dropped when stdout is piped;
		// an explicit -c keeps the markers.
		opts.Highlight = false
	}

	pipeline := grep.NewPipeline(opts, cmd.OutOrStdout()).WithStdin(cmd.InOrStdin())

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		pipeline.WithLogger(logger.NewConsoleLogger(cmd.ErrOrStderr(), "debug"))
	} else {
		pipeline.WithLogger(logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel))
	}

	return pipeline.Run()
}
