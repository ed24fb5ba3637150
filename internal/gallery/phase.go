// Package gallery holds what both presentation shells share: the load
// phase machine, the UI state, and the card view-model.
package gallery

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/inovacc/repogallery/internal/loader"
	"github.com/inovacc/repogallery/internal/model"
)

// Phase is the load state of a gallery session
type Phase int

const (
	PhaseLoading Phase = iota // loader running, filters hidden
	PhaseReady                // at least one repository loaded
	PhaseError                // load failed or returned nothing
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	}

	return "unknown"
}

// ProblemKind separates a failed fetch from an account without repositories
type ProblemKind int

const (
	ProblemNone ProblemKind = iota
	ProblemFetchFailed
	ProblemNoRepositories
)

// Problem is the text of the error panel
type Problem struct {
	Kind   ProblemKind
	Title  string
	Detail string
}

// NoMatches is shown when the filters exclude every repository.
const NoMatches = "No repositories match the current filters."

// Classify turns a load result into the phase the shell enters.
func Classify(owner string, records []model.Repository, err error) (Phase, Problem) {
	if err != nil {
		var (
			fetchErr *loader.FetchError
			detail   string
		)

		switch {
		case loader.IsRateLimited(err):
			detail = "GitHub API rate limit exceeded. Try again later."
		case errors.As(err, &fetchErr) && fetchErr.StatusCode == http.StatusNotFound:
			detail = fmt.Sprintf("GitHub account %q does not exist.", owner)
		default:
			detail = err.Error()
		}

		return PhaseError, Problem{
			Kind:   ProblemFetchFailed,
			Title:  "Could not load repositories",
			Detail: detail,
		}
	}

	if len(records) == 0 {
		return PhaseError, Problem{
			Kind:   ProblemNoRepositories,
			Title:  "No repositories found",
			Detail: fmt.Sprintf("GitHub account %q has no public repositories.", owner),
		}
	}

	return PhaseReady, Problem{}
}

// Summary describes how much of the collection the current view shows.
func Summary(total, shown int) string {
	noun := "repositories"
	if total == 1 {
		noun = "repository"
	}

	if shown == total {
		return fmt.Sprintf("Showing all %d %s", total, noun)
	}

	return fmt.Sprintf("Showing %d of %d %s", shown, total, noun)
}
