package gallery

import (
	"slices"

	"github.com/inovacc/repogallery/internal/derive"
	"github.com/inovacc/repogallery/internal/model"
)

// State is the user's current selection. It lives for one session and
// resets on reload.
type State struct {
	Sort      model.SortKey
	Language  string
	HideForks bool
}

// DefaultState shows every repository in API order.
func DefaultState() State {
	return State{Sort: model.SortUpdated, Language: derive.AllLanguages}
}

// Filter converts the state into the derivation input.
func (s State) Filter() derive.Filter {
	return derive.Filter{HideForks: s.HideForks, Language: s.Language, Sort: s.Sort}
}

// CycleSort advances to the next sort key.
func (s State) CycleSort() State {
	s.Sort = s.Sort.Next()
	return s
}

// CycleLanguage advances through "all" followed by each language.
func (s State) CycleLanguage(languages []string) State {
	if len(languages) == 0 {
		s.Language = derive.AllLanguages
		return s
	}

	i := slices.Index(languages, s.Language)

	switch {
	case i < 0:
		s.Language = languages[0]
	case i == len(languages)-1:
		s.Language = derive.AllLanguages
	default:
		s.Language = languages[i+1]
	}

	return s
}

// ToggleForks flips the hide-forks flag.
func (s State) ToggleForks() State {
	s.HideForks = !s.HideForks
	return s
}

// Normalize replaces values that are not valid for languages with defaults.
func (s State) Normalize(languages []string) State {
	sort, err := model.ParseSortKey(string(s.Sort))
	if err != nil {
		sort = model.SortUpdated
	}

	s.Sort = sort

	if s.Language != derive.AllLanguages && !slices.Contains(languages, s.Language) {
		s.Language = derive.AllLanguages
	}

	return s
}
