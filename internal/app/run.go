package app

import (
	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"yashubustudio/labeler/labeler"
)

const fyneAppID = "studio.yashubu.labeler"

// Run loads configuration, restores the previous session and starts
// the desktop UI. The configuration is written back when the window
// closes.
func Run() error {
	cfg, err := labeler.LoadConfig("")
	if err != nil {
		return err
	}

	pane := newLogPane(300)
	logger := newLogger(pane)
	defer func() { _ = logger.Sync() }()

	svc := NewService(cfg, logger)

	a := fyneapp.NewWithID(fyneAppID)
	u := buildUI(a, svc, pane)
	u.restoreLastSession()
	u.w.ShowAndRun()

	if err := labeler.SaveConfig("", svc.Config()); err != nil {
		logger.Warn("設定の保存に失敗しました", zap.Error(err))
	}
	return nil
}
