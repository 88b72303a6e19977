package labeler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentsFixture() *Table {
	return &Table{
		Header: []string{"videoId", "text_original"},
		Rows: [][]string{
			{"v1", "great"},
			{"v1", "meh"},
			{"v2", "ok"},
		},
	}
}

func videosFixture() *Table {
	return &Table{
		Header: []string{"videoId", "frame"},
		Rows: [][]string{
			{"v1", "1"},
			{"v2", "2"},
		},
	}
}

func TestVideoIDsDistinctSorted(t *testing.T) {
	videos := &Table{
		Header: []string{"videoId", "frame"},
		Rows: [][]string{
			{"v2", "1"},
			{"v1", "2"},
			{"v2", "3"},
			{"", "1"},
		},
	}
	assert.Equal(t, []string{"v1", "v2"}, VideoIDs(videos, DefaultColumns()))
	assert.Equal(t, []string{"1", "2", "3"}, Frames(videos, DefaultColumns()))
}

func TestVideoIDsNilTable(t *testing.T) {
	assert.Empty(t, VideoIDs(nil, DefaultColumns()))
}

func TestFilterRowsByVideo(t *testing.T) {
	rows := FilterRows(commentsFixture(), videosFixture(), DefaultColumns(), "v1", "", StatusAll, NewStore())
	assert.Equal(t, []int{0, 1}, rows)

	rows = FilterRows(commentsFixture(), videosFixture(), DefaultColumns(), "v2", "", StatusAll, NewStore())
	assert.Equal(t, []int{2}, rows)
}

func TestFilterRowsFrame(t *testing.T) {
	rows := FilterRows(commentsFixture(), videosFixture(), DefaultColumns(), "v1", "1", StatusAll, NewStore())
	assert.Equal(t, []int{0, 1}, rows)

	// v1 has no row with frame 2.
	rows = FilterRows(commentsFixture(), videosFixture(), DefaultColumns(), "v1", "2", StatusAll, NewStore())
	assert.Empty(t, rows)
}

func TestFilterRowsFramePermissive(t *testing.T) {
	// The same video paired with several frames matches each of them.
	videos := &Table{
		Header: []string{"videoId", "frame"},
		Rows: [][]string{
			{"v1", "1"},
			{"v1", "3"},
		},
	}
	for _, frame := range []string{"1", "3"} {
		rows := FilterRows(commentsFixture(), videos, DefaultColumns(), "v1", frame, StatusAll, NewStore())
		assert.Equal(t, []int{0, 1}, rows, "frame %s", frame)
	}
	rows := FilterRows(commentsFixture(), videos, DefaultColumns(), "v1", "2", StatusAll, NewStore())
	assert.Empty(t, rows)
}

func TestFilterRowsStatus(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Set(0, 2))

	rows := FilterRows(commentsFixture(), videosFixture(), DefaultColumns(), "v1", "", StatusUnlabeled, store)
	assert.Equal(t, []int{1}, rows)

	rows = FilterRows(commentsFixture(), videosFixture(), DefaultColumns(), "v1", "", StatusLabeled, store)
	assert.Equal(t, []int{0}, rows)

	rows = FilterRows(commentsFixture(), videosFixture(), DefaultColumns(), "v1", "", StatusAll, store)
	assert.Equal(t, []int{0, 1}, rows)
}

func TestFilterRowsPreservesOrder(t *testing.T) {
	comments := &Table{
		Header: []string{"videoId", "text_original"},
		Rows: [][]string{
			{"v1", "a"},
			{"v2", "b"},
			{"v1", "c"},
			{"v1", "a"}, // duplicates survive
		},
	}
	rows := FilterRows(comments, videosFixture(), DefaultColumns(), "v1", "", StatusAll, NewStore())
	assert.Equal(t, []int{0, 2, 3}, rows)
}

func TestFilterRowsNoSelection(t *testing.T) {
	assert.Nil(t, FilterRows(commentsFixture(), videosFixture(), DefaultColumns(), "", "", StatusAll, NewStore()))
}
