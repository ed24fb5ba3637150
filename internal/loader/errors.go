package loader

import (
	"errors"
	"fmt"

	"github.com/google/go-github/v82/github"
)

// FetchError reports a failed page request. Pages fetched before the
// failure are discarded by the loader.
type FetchError struct {
	Owner      string
	Page       int
	StatusCode int // 0 when the request never got an HTTP response
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("fetching repositories of %s (page %d): %v", e.Owner, e.Page, e.Err)
	}

	return fmt.Sprintf("fetching repositories of %s (page %d): status %d: %v", e.Owner, e.Page, e.StatusCode, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsRateLimited reports whether err was caused by GitHub rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return true
	}

	var abuseErr *github.AbuseRateLimitError

	return errors.As(err, &abuseErr)
}
