package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/inovacc/repogallery/internal/application"
	"github.com/inovacc/repogallery/internal/config"
	"github.com/inovacc/repogallery/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

var (
	cfg    config.Config
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Browse a GitHub account's repositories as a filterable gallery",
	Long: `Repogallery fetches every public repository of one GitHub account and
shows them as a gallery of cards that can be filtered by language, with or
without forks, and sorted by update time, stars, or name.

The account is configured with REPOGALLERY_OWNER (or --owner), or baked in
at build time.

Run without a subcommand, it opens the interactive gallery when attached to
a terminal and prints the list otherwise.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return runBrowse(cmd, args)
		}

		return runList(cmd, defaultListOptions())
	},
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig merges the environment with flags and builds the stderr logger
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("owner") {
		loaded.Owner, _ = flags.GetString("owner")
	}

	if flags.Changed("api-url") {
		loaded.APIURL, _ = flags.GetString("api-url")
	}

	if flags.Changed("timeout") {
		loaded.Timeout, _ = flags.GetDuration("timeout")
	}

	if flags.Changed("log-level") {
		loaded.LogLevel, _ = flags.GetString("log-level")
	}

	if flags.Changed("log-format") {
		loaded.LogFormat, _ = flags.GetString("log-format")
	}

	l, err := logging.New(cmd.ErrOrStderr(), loaded.LogLevel, loaded.LogFormat)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l

	logger.Debug("configuration loaded",
		slog.String("owner", cfg.Owner),
		slog.String("api_url", cfg.APIURL),
		slog.Duration("timeout", cfg.Timeout),
	)

	return nil
}

// registerGlobalFlags adds the settings every command shares
func registerGlobalFlags(flags *pflag.FlagSet) {
	flags.String("owner", "", "GitHub account whose repositories are shown (env REPOGALLERY_OWNER)")
	flags.String("api-url", "", "GitHub REST API base URL (env REPOGALLERY_API_URL)")
	flags.Duration("timeout", 30*time.Second, "HTTP timeout per page request (env REPOGALLERY_TIMEOUT)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error (env REPOGALLERY_LOG_LEVEL)")
	flags.String("log-format", "text", "Log format: text or json (env REPOGALLERY_LOG_FORMAT)")
}

func init() {
	registerGlobalFlags(rootCmd.PersistentFlags())
}
