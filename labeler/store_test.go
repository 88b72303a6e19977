package labeler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGet(t *testing.T) {
	s := NewStore()

	_, ok := s.Get(0)
	assert.False(t, ok)

	for _, l := range []Label{1, 2, 3} {
		require.NoError(t, s.Set(0, l))
		got, ok := s.Get(0)
		assert.True(t, ok)
		assert.Equal(t, l, got)
	}
	// Overwrite keeps the last value.
	require.NoError(t, s.Set(0, 1))
	require.NoError(t, s.Set(0, 3))
	got, _ := s.Get(0)
	assert.Equal(t, Label(3), got)
	assert.Equal(t, 1, s.Len())
}

func TestStoreRejectsInvalidLabel(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.Set(0, 0), ErrInvalidLabel)
	assert.ErrorIs(t, s.Set(0, 4), ErrInvalidLabel)
	assert.Equal(t, 0, s.Len())
}

func TestStoreUnset(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set(2, 1))
	s.Unset(2)
	_, ok := s.Get(2)
	assert.False(t, ok)
	// Unsetting an absent row is a no-op.
	s.Unset(99)
}

func TestMergeIntoAppendsLabelColumn(t *testing.T) {
	table := &Table{
		Header: []string{"videoId", "text_original"},
		Rows: [][]string{
			{"v1", "great"},
			{"v1", "meh"},
			{"v2", "ok"},
		},
	}
	s := NewStore()
	require.NoError(t, s.Set(0, 2))

	merged := s.MergeInto(table, "label")
	assert.Equal(t, []string{"videoId", "text_original", "label"}, merged.Header)
	assert.Equal(t, "2", merged.Cell(0, 2))
	assert.Equal(t, "", merged.Cell(1, 2))
	assert.Equal(t, "", merged.Cell(2, 2))

	// Original columns unchanged, original table untouched.
	assert.Equal(t, "great", merged.Cell(0, 1))
	assert.Equal(t, []string{"videoId", "text_original"}, table.Header)

	var blank, filled int
	for i := range merged.Rows {
		if merged.Cell(i, 2) == "" {
			blank++
		} else {
			filled++
		}
	}
	assert.Equal(t, 1, filled)
	assert.Equal(t, 2, blank)
}

func TestMergeIntoOverwritesExistingLabelColumn(t *testing.T) {
	table := &Table{
		Header: []string{"videoId", "text_original", "label"},
		Rows: [][]string{
			{"v1", "great", "1"},
			{"v1", "meh", "3"},
		},
	}
	s := NewStore()
	require.NoError(t, s.Set(1, 2))

	merged := s.MergeInto(table, "label")
	assert.Equal(t, []string{"videoId", "text_original", "label"}, merged.Header)
	assert.Equal(t, "", merged.Cell(0, 2), "store has no label for row 0, stale cell must be cleared")
	assert.Equal(t, "2", merged.Cell(1, 2))
}
