package app

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"yashubustudio/labeler/labeler"
)

var errNoComments = errors.New("no comments loaded")

// CommentRow is one visible comment prepared for the UI.
type CommentRow struct {
	Row     int
	Text    string
	Label   labeler.Label
	Labeled bool
}

// Service wraps the labeling session for the UI. Every mutation
// recomputes the visible state synchronously; the mutex only guards
// against UI callbacks and background file loads overlapping.
type Service struct {
	mu      sync.RWMutex
	cfg     labeler.Config
	session *labeler.Session
	logger  *zap.Logger
}

// NewService builds a session from the configuration and seeds it from
// the existing output file when one is present. A broken output file is
// logged and ignored so the session starts empty.
func NewService(cfg labeler.Config, logger *zap.Logger) *Service {
	cfg.ApplyDefaults()
	s := &Service{
		cfg:     cfg,
		session: labeler.NewSession(cfg.Columns),
		logger:  logger,
	}
	seeds, err := labeler.LoadSeedLabels(cfg.OutputPath, cfg.Columns)
	if err != nil {
		logger.Warn("既存ラベルを読み込めませんでした。空の状態で開始します", zap.Error(err))
		return s
	}
	if len(seeds) > 0 {
		s.session.SeedLabels(seeds)
		logger.Info("既存ラベルを読み込みました",
			zap.String("path", cfg.OutputPath), zap.Int("count", len(seeds)))
	}
	return s
}

// Config returns a copy of the current configuration.
func (s *Service) Config() labeler.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// SetWindowSize records the window size for the next start.
func (s *Service) SetWindowSize(width, height float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Window = labeler.WindowConfig{Width: width, Height: height}
}

// LoadComments loads and validates the comments file, replacing the
// previous table only on success. Returns the row count.
func (s *Service) LoadComments(path string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := labeler.LoadComments(path, s.cfg.Columns)
	if err != nil {
		s.logger.Warn("コメントファイルの読み込みに失敗しました", zap.String("path", path), zap.Error(err))
		return 0, err
	}
	s.session.SetComments(t)
	s.cfg.LastCommentsPath = path
	s.logger.Info("コメントファイルを読み込みました", zap.String("path", path), zap.Int("rows", t.Len()))
	return t.Len(), nil
}

// LoadVideos loads and validates the videos file, replacing the
// previous table only on success. Returns the row count.
func (s *Service) LoadVideos(path string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := labeler.LoadVideos(path, s.cfg.Columns)
	if err != nil {
		s.logger.Warn("動画ファイルの読み込みに失敗しました", zap.String("path", path), zap.Error(err))
		return 0, err
	}
	s.session.SetVideos(t)
	s.cfg.LastVideosPath = path
	s.logger.Info("動画ファイルを読み込みました", zap.String("path", path), zap.Int("rows", t.Len()))
	return t.Len(), nil
}

// VideoIDs returns the selectable video ids.
func (s *Service) VideoIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return labeler.VideoIDs(s.session.Videos(), s.cfg.Columns)
}

// Frames returns the selectable frame values.
func (s *Service) Frames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return labeler.Frames(s.session.Videos(), s.cfg.Columns)
}

// SetVideoID selects the video to label.
func (s *Service) SetVideoID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SetVideoID(id)
}

// SetFrame enables the frame filter; "" turns it off.
func (s *Service) SetFrame(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SetFrame(frame)
}

// SetStatus selects the label-status filter.
func (s *Service) SetStatus(status labeler.StatusFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SetStatus(status)
}

// VideoID returns the current video selection.
func (s *Service) VideoID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.VideoID()
}

// Visible recomputes the filtered view and its progress summary. The
// error is labeler.ErrEmptyResult when the filters match nothing.
func (s *Service) Visible() ([]CommentRow, labeler.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows, err := s.session.Visible()
	prog := s.session.ProgressFor(rows)
	comments := s.session.Comments()
	if comments == nil {
		return nil, prog, err
	}
	textCol := comments.ColumnIndex(s.cfg.Columns.Text)
	out := make([]CommentRow, 0, len(rows))
	for _, row := range rows {
		cr := CommentRow{Row: row, Text: comments.Cell(row, textCol)}
		cr.Label, cr.Labeled = s.session.Store().Get(row)
		out = append(out, cr)
	}
	return out, prog, err
}

// SetLabel assigns a label value ("1".."3") to a comment row.
func (s *Service) SetLabel(row int, value string) error {
	l, ok := labeler.ParseLabel(value)
	if !ok {
		return labeler.ErrInvalidLabel
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Store().Set(row, l)
}

// ClearLabel returns a comment row to unlabeled.
func (s *Service) ClearLabel(row int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Store().Unset(row)
}

// Save merges all labels into the full comments table and overwrites
// the output file. Returns the output path and the labeled row count.
// The store is untouched on failure so the user can retry.
func (s *Service) Save() (string, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comments := s.session.Comments()
	if comments == nil {
		return "", 0, &labeler.WriteError{Path: s.cfg.OutputPath, Err: errNoComments}
	}
	if err := labeler.SaveLabeled(s.cfg.OutputPath, comments, s.session.Store(), s.cfg.Columns); err != nil {
		s.logger.Warn("保存に失敗しました", zap.String("path", s.cfg.OutputPath), zap.Error(err))
		return "", 0, err
	}
	count := s.session.Store().Len()
	s.logger.Info("ラベルを保存しました", zap.String("path", s.cfg.OutputPath), zap.Int("labeled", count))
	return s.cfg.OutputPath, count, nil
}
