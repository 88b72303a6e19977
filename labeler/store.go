package labeler

import "sync"

// Store maps comment row indices to labels. Absence means unlabeled.
type Store struct {
	mu     sync.RWMutex
	labels map[int]Label
}

// NewStore returns an empty label store.
func NewStore() *Store {
	return &Store{labels: make(map[int]Label)}
}

// Get returns the label for a row, if any.
func (s *Store) Get(row int) (Label, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.labels[row]
	return l, ok
}

// Set assigns a label to a row, overwriting any previous value.
func (s *Store) Set(row int, l Label) error {
	if !l.Valid() {
		return ErrInvalidLabel
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels[row] = l
	return nil
}

// Unset removes the label from a row, returning it to unlabeled.
func (s *Store) Unset(row int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.labels, row)
}

// Len returns the number of labeled rows.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.labels)
}

// Labels returns a snapshot of the row-to-label mapping.
func (s *Store) Labels() map[int]Label {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]Label, len(s.labels))
	for k, v := range s.labels {
		out[k] = v
	}
	return out
}

// Reset drops all labels.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = make(map[int]Label)
}

// MergeInto returns a copy of the table with labelCol appended (or
// overwritten when already present). Unlabeled rows get a blank cell;
// every other column is left as-is.
func (s *Store) MergeInto(t *Table, labelCol string) *Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := t.Clone()
	col := out.ColumnIndex(labelCol)
	if col < 0 {
		col = len(out.Header)
		out.Header = append(out.Header, labelCol)
	}
	for i := range out.Rows {
		for len(out.Rows[i]) <= col {
			out.Rows[i] = append(out.Rows[i], "")
		}
		if l, ok := s.labels[i]; ok {
			out.Rows[i][col] = l.String()
		} else {
			out.Rows[i][col] = ""
		}
	}
	return out
}
