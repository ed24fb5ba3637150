package derive

import "github.com/inovacc/repogallery/internal/model"

// Memo caches the last projection of an immutable record set. The language
// facets are computed once; View recomputes only when the filter changes.
// A Memo must not be shared between goroutines.
type Memo struct {
	records    []model.Repository
	languages  []string
	last       Filter
	view       []model.Repository
	valid      bool
	recomputed int
}

// NewMemo derives the facets of records. The caller must not modify
// records afterwards.
func NewMemo(records []model.Repository) *Memo {
	return &Memo{
		records:   records,
		languages: DistinctLanguages(records),
	}
}

// Records returns the base collection.
func (m *Memo) Records() []model.Repository {
	return m.records
}

// Languages returns the distinct languages of the base collection.
func (m *Memo) Languages() []string {
	return m.languages
}

// View returns the projection for f, reusing the previous result when f is unchanged.
func (m *Memo) View(f Filter) []model.Repository {
	if m.valid && f == m.last {
		return m.view
	}

	m.view = ProjectView(m.records, f)
	m.last = f
	m.valid = true
	m.recomputed++

	return m.view
}

// Recomputed returns how many times View had to project.
func (m *Memo) Recomputed() int {
	return m.recomputed
}
