package labeler

import (
	"errors"
	"os"
)

// DefaultOutputFile is the fixed output filename, shared with earlier
// versions of the dataset tooling.
const DefaultOutputFile = "labeled_comments.csv"

// LoadSeedLabels reads a previously saved output file and builds the
// natural-key to label map used to seed a fresh session. A missing file
// yields an empty map and no error; a malformed or unreadable one
// yields an empty map plus a *ReadError the caller may log and ignore.
func LoadSeedLabels(path string, cols Columns) (map[string]Label, error) {
	cols.ApplyDefaults()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	t, err := LoadTable(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	videoCol := t.ColumnIndex(cols.Video)
	textCol := t.ColumnIndex(cols.Text)
	labelCol := t.ColumnIndex(cols.Label)
	if videoCol < 0 || textCol < 0 || labelCol < 0 {
		return nil, &ReadError{Path: path, Err: errors.New("output file lacks video/text/label columns")}
	}
	seeds := make(map[string]Label)
	for i := range t.Rows {
		l, ok := ParseLabel(t.Cell(i, labelCol))
		if !ok {
			continue
		}
		seeds[CommentKey(t.Cell(i, videoCol), t.Cell(i, textCol))] = l
	}
	return seeds, nil
}

// SaveLabeled merges the store into the full comments table and writes
// the result to path, overwriting any previous file. The store is not
// touched, so a failed save can simply be retried.
func SaveLabeled(path string, comments *Table, store *Store, cols Columns) error {
	cols.ApplyDefaults()
	merged := store.MergeInto(comments, cols.Label)
	if err := SaveTable(path, merged); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
