// Package derive computes the views shown by the gallery: the language
// facets and the filtered, sorted projection of the loaded repositories.
// Every function is pure; Memo adds explicit recompute-on-change caching.
package derive

import (
	"cmp"
	"slices"

	"github.com/inovacc/repogallery/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AllLanguages disables the language filter
const AllLanguages = "all"

// Filter is the user selection a projection is computed for
type Filter struct {
	HideForks bool
	Language  string
	Sort      model.SortKey
}

// DefaultFilter shows everything in API order.
func DefaultFilter() Filter {
	return Filter{Language: AllLanguages, Sort: model.SortUpdated}
}

// FiltersLanguage reports whether f restricts the view to one language.
func (f Filter) FiltersLanguage() bool {
	return f.Language != "" && f.Language != AllLanguages
}

// DistinctLanguages returns the primary languages present in records,
// sorted ascending without duplicates. Repositories without a language
// are skipped.
func DistinctLanguages(records []model.Repository) []string {
	seen := make(map[string]struct{})
	languages := make([]string, 0)

	for _, r := range records {
		if !r.HasLanguage() {
			continue
		}

		if _, ok := seen[r.Language]; ok {
			continue
		}

		seen[r.Language] = struct{}{}
		languages = append(languages, r.Language)
	}

	slices.Sort(languages)

	return languages
}

// ProjectView filters records by f and sorts the survivors. The input is
// never modified. SortUpdated keeps the input order.
func ProjectView(records []model.Repository, f Filter) []model.Repository {
	view := make([]model.Repository, 0, len(records))

	for _, r := range records {
		if f.HideForks && r.Fork {
			continue
		}

		if f.FiltersLanguage() && r.Language != f.Language {
			continue
		}

		view = append(view, r)
	}

	switch f.Sort {
	case model.SortStarsDesc:
		slices.SortStableFunc(view, func(a, b model.Repository) int {
			return cmp.Compare(b.Stars, a.Stars)
		})
	case model.SortStarsAsc:
		slices.SortStableFunc(view, func(a, b model.Repository) int {
			return cmp.Compare(a.Stars, b.Stars)
		})
	case model.SortName:
		// collators keep internal buffers, one per call
		c := collate.New(language.Und)
		slices.SortStableFunc(view, func(a, b model.Repository) int {
			return c.CompareString(a.Name, b.Name)
		})
	}

	return view
}
