package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/puppybowl-roster/internal/rosterapi"
)

var (
	cfg    *Config
	client *rosterapi.Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "CLI tool for the Puppy Bowl Players API",
		Long: `roster manages a Puppy Bowl roster from the command line.

It lists, shows, adds and removes players through the Players API, and can
watch a running roster web UI for live updates. Every add or remove prints
the roster as it stands afterwards.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output != "text" && cfg.Output != "json" {
				return fmt.Errorf("invalid --output %q: must be text or json", cfg.Output)
			}
			client = rosterapi.NewClient(cfg.APIURL,
				rosterapi.WithTimeout(cfg.Timeout),
				rosterapi.WithLogger(newLogger(cmd.ErrOrStderr(), cfg.Verbose)),
			)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.APIURL, "api", cfg.APIURL, "Players collection URL (env: ROSTER_API_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.WebURL, "web", cfg.WebURL, "Roster web UI URL, used by watch (env: ROSTER_WEB_URL)")
	rootCmd.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Per-request timeout")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log each API request to stderr")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// newLogger logs API calls as text to w when verbose, and nowhere otherwise
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
