package derive

import (
	"testing"

	"github.com/inovacc/repogallery/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestMemo_RecomputesOnlyOnChange(t *testing.T) {
	m := NewMemo(scenario())

	assert.Equal(t, []string{"Go", "Rust"}, m.Languages())
	assert.Zero(t, m.Recomputed())

	f := DefaultFilter()
	first := m.View(f)
	second := m.View(f)

	assert.Equal(t, 1, m.Recomputed())
	assert.Equal(t, names(first), names(second))

	f.Sort = model.SortStarsDesc
	assert.Equal(t, []string{"B", "A", "C"}, names(m.View(f)))
	assert.Equal(t, 2, m.Recomputed())

	f.HideForks = true
	assert.Equal(t, []string{"A", "C"}, names(m.View(f)))
	assert.Equal(t, 3, m.Recomputed())

	m.View(f)
	assert.Equal(t, 3, m.Recomputed())
}

func TestMemo_EmptyRecords(t *testing.T) {
	m := NewMemo(nil)

	assert.Empty(t, m.Languages())
	assert.Empty(t, m.View(DefaultFilter()))
	assert.Empty(t, m.Records())
}
