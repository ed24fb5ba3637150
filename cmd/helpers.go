package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inovacc/repogallery/internal/gallery"
	"github.com/inovacc/repogallery/internal/loader"
	"github.com/inovacc/repogallery/internal/model"
)

// newSource validates the configuration and builds the repository loader
func newSource(l *slog.Logger) (*loader.Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return loader.New(loader.Options{
		BaseURL: cfg.APIURL,
		Timeout: cfg.Timeout,
		Logger:  l,
	})
}

// loadRepositories runs one load and turns an empty or failed result into an error
func loadRepositories(ctx context.Context, src loader.Source) ([]model.Repository, error) {
	records, err := src.LoadAll(ctx, cfg.Owner)

	phase, problem := gallery.Classify(cfg.Owner, records, err)
	if phase != gallery.PhaseReady {
		return nil, fmt.Errorf("%s: %s", problem.Title, problem.Detail)
	}

	return records, nil
}
