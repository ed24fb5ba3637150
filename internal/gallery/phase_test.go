package gallery

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-github/v82/github"
	"github.com/inovacc/repogallery/internal/loader"
	"github.com/inovacc/repogallery/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseLoading, "loading"},
		{PhaseReady, "ready"},
		{PhaseError, "error"},
		{Phase(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.phase.String())
		})
	}
}

func TestClassify(t *testing.T) {
	records := []model.Repository{{Name: "one"}}

	phase, problem := Classify("octocat", records, nil)
	assert.Equal(t, PhaseReady, phase)
	assert.Equal(t, ProblemNone, problem.Kind)

	phase, problem = Classify("octocat", nil, nil)
	assert.Equal(t, PhaseError, phase)
	assert.Equal(t, ProblemNoRepositories, problem.Kind)
	assert.Equal(t, "No repositories found", problem.Title)
	assert.Contains(t, problem.Detail, `"octocat"`)

	fetchErr := &loader.FetchError{Owner: "octocat", Page: 1, StatusCode: 500, Err: errors.New("server error")}
	phase, problem = Classify("octocat", nil, fetchErr)
	assert.Equal(t, PhaseError, phase)
	assert.Equal(t, ProblemFetchFailed, problem.Kind)
	assert.Equal(t, "Could not load repositories", problem.Title)
	assert.Contains(t, problem.Detail, "status 500")
}

func TestClassify_FetchFailureDetails(t *testing.T) {
	notFound := &loader.FetchError{Owner: "ghost", Page: 1, StatusCode: http.StatusNotFound, Err: errors.New("not found")}
	_, problem := Classify("ghost", nil, notFound)
	assert.Equal(t, `GitHub account "ghost" does not exist.`, problem.Detail)

	resp := &http.Response{
		StatusCode: http.StatusForbidden,
		Request:    &http.Request{Method: http.MethodGet, URL: &url.URL{Scheme: "https", Host: "api.github.com", Path: "/users/octocat/repos"}},
	}
	limited := &loader.FetchError{Owner: "octocat", Page: 2, StatusCode: http.StatusForbidden, Err: &github.RateLimitError{Response: resp, Message: "limit"}}
	_, problem = Classify("octocat", nil, limited)
	assert.Contains(t, problem.Detail, "rate limit")
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Showing all 3 repositories", Summary(3, 3))
	assert.Equal(t, "Showing 1 of 3 repositories", Summary(3, 1))
	assert.Equal(t, "Showing 0 of 3 repositories", Summary(3, 0))
	assert.Equal(t, "Showing all 1 repository", Summary(1, 1))
}
