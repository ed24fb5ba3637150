package gallery

import (
	"testing"

	"github.com/inovacc/repogallery/internal/derive"
	"github.com/inovacc/repogallery/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestDefaultState(t *testing.T) {
	s := DefaultState()

	assert.Equal(t, model.SortUpdated, s.Sort)
	assert.Equal(t, derive.AllLanguages, s.Language)
	assert.False(t, s.HideForks)
	assert.Equal(t, derive.DefaultFilter(), s.Filter())
}

func TestState_CycleLanguage(t *testing.T) {
	languages := []string{"C", "Go", "Rust"}

	s := DefaultState()

	var seen []string
	for range 4 {
		s = s.CycleLanguage(languages)
		seen = append(seen, s.Language)
	}

	assert.Equal(t, []string{"C", "Go", "Rust", derive.AllLanguages}, seen)

	s.Language = "Haskell"
	assert.Equal(t, "C", s.CycleLanguage(languages).Language)
	assert.Equal(t, derive.AllLanguages, s.CycleLanguage(nil).Language)
}

func TestState_CycleSortAndForks(t *testing.T) {
	s := DefaultState().CycleSort()
	assert.Equal(t, model.SortStarsDesc, s.Sort)

	s = s.ToggleForks()
	assert.True(t, s.HideForks)
	assert.True(t, s.Filter().HideForks)
	assert.False(t, s.ToggleForks().HideForks)
}

func TestState_Normalize(t *testing.T) {
	languages := []string{"Go"}

	s := State{Sort: "bogus", Language: "Perl", HideForks: true}.Normalize(languages)
	assert.Equal(t, State{Sort: model.SortUpdated, Language: derive.AllLanguages, HideForks: true}, s)

	s = State{Sort: model.SortName, Language: "Go"}.Normalize(languages)
	assert.Equal(t, State{Sort: model.SortName, Language: "Go"}, s)

	s = State{}.Normalize(languages)
	assert.Equal(t, DefaultState(), s)
}
