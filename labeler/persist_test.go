package labeler

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveThenReloadRoundTrip(t *testing.T) {
	cols := DefaultColumns()
	comments := commentsFixture()
	store := NewStore()
	require.NoError(t, store.Set(0, 2))
	require.NoError(t, store.Set(2, 1))

	out := filepath.Join(t.TempDir(), "labeled_comments.csv")
	require.NoError(t, SaveLabeled(out, comments, store, cols))

	// A fresh session seeded from the output reproduces the mapping.
	seeds, err := LoadSeedLabels(out, cols)
	require.NoError(t, err)
	fresh := NewSession(cols)
	fresh.SeedLabels(seeds)
	fresh.SetComments(commentsFixture())

	assert.Equal(t, store.Labels(), fresh.Store().Labels())
}

func TestSaveKeepsUnselectedRows(t *testing.T) {
	// Row 2 (v2) was never shown but must still appear in the output.
	cols := DefaultColumns()
	store := NewStore()
	require.NoError(t, store.Set(0, 2))

	out := filepath.Join(t.TempDir(), "labeled_comments.csv")
	require.NoError(t, SaveLabeled(out, commentsFixture(), store, cols))

	saved, err := LoadTable(out)
	require.NoError(t, err)
	require.Equal(t, 3, saved.Len())
	labelCol := saved.ColumnIndex(cols.Label)
	require.GreaterOrEqual(t, labelCol, 0)
	assert.Equal(t, "2", saved.Cell(0, labelCol))
	assert.Equal(t, "", saved.Cell(1, labelCol))
	assert.Equal(t, "ok", saved.Cell(2, 1))
	assert.Equal(t, "", saved.Cell(2, labelCol))
}

func TestLoadSeedLabelsMissingFile(t *testing.T) {
	seeds, err := LoadSeedLabels(filepath.Join(t.TempDir(), "nope.csv"), DefaultColumns())
	assert.NoError(t, err)
	assert.Nil(t, seeds)
}

func TestLoadSeedLabelsMalformed(t *testing.T) {
	path := writeTempFile(t, "labeled_comments.csv", "just,two\ncolumns,here\n")

	seeds, err := LoadSeedLabels(path, DefaultColumns())
	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, path, readErr.Path)
	assert.Empty(t, seeds)
}

func TestLoadSeedLabelsSkipsBlankAndInvalid(t *testing.T) {
	path := writeTempFile(t, "labeled_comments.csv",
		"videoId,text_original,label\nv1,great,2\nv1,meh,\nv2,ok,9\nv2,huh,x\n")

	seeds, err := LoadSeedLabels(path, DefaultColumns())
	require.NoError(t, err)
	assert.Equal(t, map[string]Label{CommentKey("v1", "great"): 2}, seeds)
}

func TestLoadSeedLabelsSpreadsheetFloats(t *testing.T) {
	path := writeTempFile(t, "labeled_comments.csv",
		"videoId,text_original,label\nv1,great,2.0\n")

	seeds, err := LoadSeedLabels(path, DefaultColumns())
	require.NoError(t, err)
	assert.Equal(t, Label(2), seeds[CommentKey("v1", "great")])
}

func TestSaveLabeledWriteError(t *testing.T) {
	store := NewStore()
	err := SaveLabeled(filepath.Join(t.TempDir(), "missing-dir", "out.csv"), commentsFixture(), store, DefaultColumns())
	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
}
