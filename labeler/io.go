package labeler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadTable reads a CSV or TSV file into memory. The delimiter is
// chosen by extension, defaulting to comma.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	t, err := ReadTable(f, delimiterFor(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return t, nil
}

// ReadTable parses delimited data with a header row.
func ReadTable(r io.Reader, comma rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty file")
	}
	t := &Table{Header: make([]string, len(rows[0]))}
	for i, cell := range rows[0] {
		t.Header[i] = cleanCell(cell)
	}
	t.Rows = make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out := make([]string, len(row))
		for i, cell := range row {
			out[i] = cleanCell(cell)
		}
		t.Rows = append(t.Rows, out)
	}
	return t, nil
}

// LoadComments loads the comments file and validates its required
// columns. The table itself is returned untouched so extra columns
// survive a later save.
func LoadComments(path string, cols Columns) (*Table, error) {
	cols.ApplyDefaults()
	t, err := LoadTable(path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(t, filepath.Base(path), cols.Text, cols.Video); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadVideos loads the videos file and validates its required columns.
func LoadVideos(path string, cols Columns) (*Table, error) {
	cols.ApplyDefaults()
	t, err := LoadTable(path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(t, filepath.Base(path), cols.Video, cols.Frame); err != nil {
		return nil, err
	}
	return t, nil
}

// WriteTable writes the table as CSV.
func WriteTable(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveTable writes the table to path as CSV, overwriting any existing
// file.
func SaveTable(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	if err := WriteTable(f, t); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func requireColumns(t *Table, file string, names ...string) error {
	var missing []string
	for _, name := range names {
		if t.ColumnIndex(name) < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnError{File: file, Columns: missing}
	}
	return nil
}

func delimiterFor(path string) rune {
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return ','
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "\uFEFF")
	return v
}
