package cmd

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/repogallery/internal/cli"
	"github.com/inovacc/repogallery/internal/logging"
	"github.com/spf13/cobra"
)

var browseLogFile string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive gallery",
	Long: `Open the interactive gallery in the terminal.

Keys:
  s        cycle the sort order
  l        cycle the language filter
  f        hide or show forks
  enter    open the selected repository in the browser
  r        reload after an error
  q        quit

Logs go to a file because the gallery owns the terminal; by default
repogallery.log in the application directory.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	f, err := logging.OpenFile(browseLogFile)
	if err != nil {
		return err
	}
	defer f.Close()

	fileLogger, err := logging.New(f, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	src, err := newSource(fileLogger)
	if err != nil {
		return err
	}

	fileLogger.Info("opening gallery", slog.String("owner", cfg.Owner))

	m := cli.NewGalleryModel(cmd.Context(), cli.GalleryConfig{
		Source: src,
		Owner:  cfg.Owner,
		Logger: fileLogger,
	})

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
		return fmt.Errorf("gallery failed: %w", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVar(&browseLogFile, "log-file", "", "Write logs to this file instead of the application directory")
}
