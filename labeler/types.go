package labeler

import (
	"strconv"
	"strings"
)

// Label is one of the three closed label values assigned to a comment.
type Label int

const (
	// LabelMin and LabelMax bound the valid label range.
	LabelMin Label = 1
	LabelMax Label = 3
)

// Valid reports whether the label is one of the allowed values.
func (l Label) Valid() bool {
	return l >= LabelMin && l <= LabelMax
}

// String renders the label the way it appears in the output CSV.
func (l Label) String() string {
	return strconv.Itoa(int(l))
}

// ParseLabel converts a CSV cell into a label. Blank or out-of-range
// cells are reported as not ok rather than as errors so callers can
// treat them as "unlabeled".
func ParseLabel(s string) (Label, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// Persisted files written by spreadsheet tools sometimes carry "2.0".
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if rest := strings.TrimRight(s[i+1:], "0"); rest == "" {
			s = s[:i]
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	l := Label(n)
	if !l.Valid() {
		return 0, false
	}
	return l, true
}

// StatusFilter selects comments by whether a label is already assigned.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusUnlabeled StatusFilter = "unlabeled"
	StatusLabeled   StatusFilter = "labeled"
)

// Columns names the schema columns of the two input files. Zero values
// fall back to the conventional names used by the upstream datasets.
type Columns struct {
	Text  string `json:"text"`
	Video string `json:"video"`
	Frame string `json:"frame"`
	Label string `json:"label"`
}

// DefaultColumns returns the built-in column names.
func DefaultColumns() Columns {
	return Columns{
		Text:  "text_original",
		Video: "videoId",
		Frame: "frame",
		Label: "label",
	}
}

// ApplyDefaults populates unset column names.
func (c *Columns) ApplyDefaults() {
	def := DefaultColumns()
	if strings.TrimSpace(c.Text) == "" {
		c.Text = def.Text
	}
	if strings.TrimSpace(c.Video) == "" {
		c.Video = def.Video
	}
	if strings.TrimSpace(c.Frame) == "" {
		c.Frame = def.Frame
	}
	if strings.TrimSpace(c.Label) == "" {
		c.Label = def.Label
	}
}

// Table holds a delimited file in memory: a header row plus data rows.
// Cells are stored as read, minus BOM and surrounding whitespace. Any
// columns beyond the ones named in Columns pass through untouched.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex locates a header column by case-insensitive name.
// Returns -1 when the column is absent.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Header {
		if strings.EqualFold(col, name) {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, col), or "" when the row is ragged.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Clone returns a deep copy so callers can mutate safely.
func (t *Table) Clone() *Table {
	out := &Table{
		Header: append([]string(nil), t.Header...),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}
