package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cli/browser"
	"github.com/inovacc/repogallery/internal/web"
	"github.com/spf13/cobra"
)

var (
	serveAddr string
	serveOpen bool

	openBrowser = browser.OpenURL
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the gallery as a web page",
	Long: `Start a web server that loads the configured account's repositories once
and serves them as a filterable gallery page.

Routes:
  GET  /           gallery page (query: sort, language, hide_forks)
  POST /retry      reload after an error
  GET  /api/repos  the same view as JSON
  GET  /healthz    liveness

Examples:
  repogallery serve                      # listen on REPOGALLERY_ADDR or 127.0.0.1:8080
  repogallery serve --addr :9000 --open  # custom address, open the browser`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	src, err := newSource(logger)
	if err != nil {
		return err
	}

	config := web.DefaultConfig()
	config.Owner = cfg.Owner

	if cfg.Addr != "" {
		config.Addr = cfg.Addr
	}

	if cmd.Flags().Changed("addr") {
		config.Addr = serveAddr
	}

	server, err := web.New(config, src, logger)
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}
	defer server.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server.Start()

	url := "http://" + config.Addr
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving %s's repositories on %s\n", cfg.Owner, url)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	if serveOpen {
		go openWhenReady(ctx, url)
	}

	return server.ListenAndServe(ctx)
}

// openWhenReady gives the listener a moment before launching the browser
func openWhenReady(ctx context.Context, url string) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(200 * time.Millisecond):
	}

	if err := openBrowser(url); err != nil {
		logger.Warn("failed to open browser", slog.String("url", url), slog.String("error", err.Error()))
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (env REPOGALLERY_ADDR)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "Open the gallery in the browser")
}
