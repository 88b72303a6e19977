package labeler

// Progress summarizes labeling state for the visible view.
type Progress struct {
	Total     int
	Labeled   int
	Unlabeled int
	Percent   float64
}

// Session owns all mutable state of one labeling run: the two loaded
// tables, the label store, the current filter selections and the seed
// labels carried over from a previous save. Tables are immutable once
// loaded; re-loading a file replaces them entirely.
type Session struct {
	cols Columns

	comments *Table
	videos   *Table
	store    *Store
	seeds    map[string]Label

	videoID string
	frame   string // "" = frame filter off
	status  StatusFilter
}

// NewSession creates an empty session.
func NewSession(cols Columns) *Session {
	cols.ApplyDefaults()
	return &Session{
		cols:   cols,
		store:  NewStore(),
		status: StatusAll,
	}
}

// SeedLabels installs persisted labels to be applied to comment rows by
// natural key. When a comments table is already loaded they are applied
// immediately; otherwise they wait for the next SetComments.
func (s *Session) SeedLabels(seeds map[string]Label) {
	s.seeds = seeds
	if s.comments != nil {
		s.applySeeds()
	}
}

// SetComments replaces the comments table, resetting the label store
// and re-applying seed labels. The current selections survive when they
// still make sense.
func (s *Session) SetComments(t *Table) {
	s.comments = t
	s.store.Reset()
	s.applySeeds()
}

// SetVideos replaces the videos table. The selected video is cleared
// when it no longer appears.
func (s *Session) SetVideos(t *Table) {
	s.videos = t
	if s.videoID == "" {
		return
	}
	for _, id := range VideoIDs(t, s.cols) {
		if id == s.videoID {
			return
		}
	}
	s.videoID = ""
}

func (s *Session) applySeeds() {
	if len(s.seeds) == 0 || s.comments == nil {
		return
	}
	videoCol := s.comments.ColumnIndex(s.cols.Video)
	textCol := s.comments.ColumnIndex(s.cols.Text)
	if videoCol < 0 || textCol < 0 {
		return
	}
	for i := range s.comments.Rows {
		key := CommentKey(s.comments.Cell(i, videoCol), s.comments.Cell(i, textCol))
		if l, ok := s.seeds[key]; ok {
			_ = s.store.Set(i, l)
		}
	}
}

// SetVideoID selects the video whose comments are shown.
func (s *Session) SetVideoID(id string) { s.videoID = id }

// SetFrame enables the frame filter ("" turns it off).
func (s *Session) SetFrame(frame string) { s.frame = frame }

// SetStatus selects the label-status predicate.
func (s *Session) SetStatus(status StatusFilter) { s.status = status }

// Columns returns the active column names.
func (s *Session) Columns() Columns { return s.cols }

// Comments returns the loaded comments table, possibly nil.
func (s *Session) Comments() *Table { return s.comments }

// Videos returns the loaded videos table, possibly nil.
func (s *Session) Videos() *Table { return s.videos }

// Store returns the label store.
func (s *Session) Store() *Store { return s.store }

// VideoID returns the current selection.
func (s *Session) VideoID() string { return s.videoID }

// Frame returns the active frame filter, "" when off.
func (s *Session) Frame() string { return s.frame }

// Status returns the active status filter.
func (s *Session) Status() StatusFilter { return s.status }

// Configured reports whether both files are loaded and a video is
// selected, i.e. the session left the unconfigured state.
func (s *Session) Configured() bool {
	return s.comments != nil && s.videos != nil && s.videoID != ""
}

// Visible recomputes the filtered view. ErrEmptyResult is returned when
// the session is configured but the filters match nothing.
func (s *Session) Visible() ([]int, error) {
	if !s.Configured() {
		return nil, nil
	}
	rows := FilterRows(s.comments, s.videos, s.cols, s.videoID, s.frame, s.status, s.store)
	if len(rows) == 0 {
		return nil, ErrEmptyResult
	}
	return rows, nil
}

// ProgressFor summarizes labeling progress over the given rows.
func (s *Session) ProgressFor(rows []int) Progress {
	p := Progress{Total: len(rows)}
	for _, row := range rows {
		if _, ok := s.store.Get(row); ok {
			p.Labeled++
		}
	}
	p.Unlabeled = p.Total - p.Labeled
	if p.Total > 0 {
		p.Percent = float64(p.Labeled) / float64(p.Total) * 100
	}
	return p
}
