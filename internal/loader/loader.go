// Package loader pages through the GitHub REST API and returns every repository of an owner.
package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v82/github"
	"github.com/inovacc/repogallery/internal/application"
	"github.com/inovacc/repogallery/internal/model"
)

const (
	// DefaultPageSize is the page size requested from the API, and its maximum
	DefaultPageSize = 100

	// DefaultBaseURL is the public GitHub REST endpoint
	DefaultBaseURL = "https://api.github.com/"
)

// Source yields every repository of an owner in API order
type Source interface {
	LoadAll(ctx context.Context, owner string) ([]model.Repository, error)
}

// Options configures a Loader. Zero values fall back to defaults.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	PageSize   int
	Logger     *slog.Logger
}

// Loader fetches an owner's repositories page by page
type Loader struct {
	client   *github.Client
	pageSize int
	logger   *slog.Logger
}

var _ Source = (*Loader)(nil)

// New creates a Loader against opts.BaseURL.
func New(opts Options) (*Loader, error) {
	u, err := ParseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	pageSize := opts.PageSize
	if pageSize <= 0 || pageSize > DefaultPageSize {
		pageSize = DefaultPageSize
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	client := github.NewClient(httpClient)
	client.BaseURL = u
	client.UserAgent = application.UserAgent()

	return &Loader{
		client:   client,
		pageSize: pageSize,
		logger:   logger,
	}, nil
}

// ParseBaseURL resolves an API base URL, empty meaning DefaultBaseURL. The
// result always ends in a slash as go-github requires.
func ParseBaseURL(raw string) (*url.URL, error) {
	baseURL := raw
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", raw, err)
	}

	if !u.IsAbs() {
		return nil, fmt.Errorf("invalid API base URL %q: must be absolute", raw)
	}

	return u, nil
}

// LoadAll requests pages 1, 2, ... sequentially and concatenates them in
// response order. It stops at the first page shorter than the page size.
// Any failed page aborts the whole load and returns a *FetchError.
func (l *Loader) LoadAll(ctx context.Context, owner string) ([]model.Repository, error) {
	opt := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: l.pageSize, Page: 1},
	}

	start := time.Now()

	var all []model.Repository

	for {
		repos, resp, err := l.client.Repositories.ListByUser(ctx, owner, opt)
		if err != nil {
			fetchErr := &FetchError{Owner: owner, Page: opt.Page, Err: err}
			if resp != nil {
				fetchErr.StatusCode = resp.StatusCode
			}

			l.logger.Error("failed to fetch repositories",
				slog.String("owner", owner),
				slog.Int("page", opt.Page),
				slog.Int("status", fetchErr.StatusCode),
				slog.Bool("rate_limited", IsRateLimited(err)),
				slog.String("error", err.Error()),
			)

			return nil, fetchErr
		}

		for _, repo := range repos {
			all = append(all, normalize(repo))
		}

		l.logger.Debug("fetched repository page",
			slog.String("owner", owner),
			slog.Int("page", opt.Page),
			slog.Int("count", len(repos)),
		)

		if len(repos) < l.pageSize {
			break
		}

		opt.Page++
	}

	l.logger.Info("loaded repositories",
		slog.String("owner", owner),
		slog.Int("count", len(all)),
		slog.Int("pages", opt.Page),
		slog.Duration("elapsed", time.Since(start)),
	)

	return all, nil
}

// normalize copies the fields the gallery uses out of the API payload
func normalize(repo *github.Repository) model.Repository {
	return model.Repository{
		ID:          repo.GetID(),
		Name:        repo.GetName(),
		Description: strings.TrimSpace(repo.GetDescription()),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		Fork:        repo.GetFork(),
		HTMLURL:     repo.GetHTMLURL(),
		UpdatedAt:   repo.GetUpdatedAt().Time,
	}
}
