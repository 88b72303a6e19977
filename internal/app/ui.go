package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"yashubustudio/labeler/labeler"
)

var labelOptions = []string{"1", "2", "3"}

var statusChoices = []struct {
	Label string
	Value labeler.StatusFilter
}{
	{Label: "すべて", Value: labeler.StatusAll},
	{Label: "未ラベルのみ", Value: labeler.StatusUnlabeled},
	{Label: "ラベル済みのみ", Value: labeler.StatusLabeled},
}

type uiState struct {
	service *Service
	w       fyne.Window

	commentsBtn *widget.Button
	videosBtn   *widget.Button
	saveBtn     *widget.Button
	dataInfo    *widget.Label
	videoSelect *widget.Select
	frameCheck  *widget.Check
	frameSelect *widget.Select
	statusRadio *widget.RadioGroup
	progress    *widget.Label
	emptyInfo   *widget.Label
	status      *widget.Label
	statusBind  binding.String
	log         *widget.Entry
	list        *widget.List

	rows []CommentRow
}

func buildUI(a fyne.App, svc *Service, pane *logPane) *uiState {
	u := &uiState{service: svc}
	cfg := svc.Config()
	u.w = a.NewWindow("Comment Labeler (フレーム別コメントラベリング)")

	u.statusBind = binding.NewString()
	_ = u.statusBind.Set("準備完了")
	u.status = widget.NewLabelWithData(u.statusBind)

	u.log = widget.NewEntryWithData(pane.bind)
	u.log.MultiLine = true
	u.log.Wrapping = fyne.TextWrapWord
	u.log.SetPlaceHolder("処理ログ")
	u.log.Disable()

	u.commentsBtn = widget.NewButtonWithIcon("コメントCSV読込", theme.FolderOpenIcon(), func() { u.onPickComments() })
	u.videosBtn = widget.NewButtonWithIcon("動画CSV読込", theme.FolderOpenIcon(), func() { u.onPickVideos() })
	u.saveBtn = widget.NewButtonWithIcon("保存", theme.DocumentSaveIcon(), func() { u.onSave() })

	u.dataInfo = widget.NewLabel("ファイル未読込")

	u.videoSelect = widget.NewSelect(nil, func(id string) {
		u.service.SetVideoID(id)
		u.refresh()
	})
	u.videoSelect.PlaceHolder = "動画IDを選択"

	u.frameSelect = widget.NewSelect(nil, func(frame string) {
		if u.frameCheck.Checked {
			u.service.SetFrame(frame)
			u.refresh()
		}
	})
	u.frameSelect.PlaceHolder = "フレームを選択"
	u.frameSelect.Disable()

	u.frameCheck = widget.NewCheck("フレームで絞り込み", func(checked bool) {
		if checked {
			u.frameSelect.Enable()
			u.service.SetFrame(u.frameSelect.Selected)
		} else {
			u.frameSelect.Disable()
			u.service.SetFrame("")
		}
		u.refresh()
	})

	statusLabels := make([]string, len(statusChoices))
	for i, c := range statusChoices {
		statusLabels[i] = c.Label
	}
	u.statusRadio = widget.NewRadioGroup(statusLabels, func(sel string) {
		for _, c := range statusChoices {
			if c.Label == sel {
				u.service.SetStatus(c.Value)
				u.refresh()
				return
			}
		}
	})
	u.statusRadio.Required = true
	u.statusRadio.SetSelected(statusChoices[0].Label)

	u.progress = widget.NewLabel("件数: 0 / ラベル済み: 0 / 未ラベル: 0 / 進捗: 0.0%")
	u.emptyInfo = widget.NewLabel("条件に一致するコメントがありません")
	u.emptyInfo.Hide()

	u.list = widget.NewList(
		func() int { return len(u.rows) },
		func() fyne.CanvasObject { return newCommentItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			item := obj.(*commentItem)
			if id >= len(u.rows) {
				return
			}
			row := u.rows[id]
			item.update(row, func(sel string) { u.onLabelChanged(row.Row, sel) })
			height := wrappedHeightFor(row.Text, 520)
			if height < 44 {
				height = 44
			}
			u.list.SetItemHeight(id, height)
		},
	)

	left := container.NewVBox(
		widget.NewLabelWithStyle("データ読込", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		u.commentsBtn,
		u.videosBtn,
		u.dataInfo,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("動画選択", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		u.videoSelect,
		u.frameCheck,
		u.frameSelect,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("ラベル状態", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		u.statusRadio,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("進捗", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		u.progress,
		u.saveBtn,
		u.status,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("ログ", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewMax(u.log),
	)

	right := container.NewBorder(u.emptyInfo, nil, nil, nil, u.list)
	split := container.NewHSplit(container.NewVScroll(left), right)
	split.Offset = 0.3

	u.w.SetContent(split)
	u.w.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	u.w.SetOnClosed(func() {
		size := u.w.Canvas().Size()
		u.service.SetWindowSize(size.Width, size.Height)
	})
	return u
}

// restoreLastSession re-loads the files used last time when they still
// exist, so a restarted session continues where it left off.
func (u *uiState) restoreLastSession() {
	cfg := u.service.Config()
	if cfg.LastCommentsPath != "" {
		if _, err := os.Stat(cfg.LastCommentsPath); err == nil {
			u.loadComments(cfg.LastCommentsPath)
		}
	}
	if cfg.LastVideosPath != "" {
		if _, err := os.Stat(cfg.LastVideosPath); err == nil {
			u.loadVideos(cfg.LastVideosPath)
		}
	}
}

func (u *uiState) onPickComments() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		u.loadComments(rc.URI().Path())
	}, u.w)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".tsv"}))
	fd.Show()
}

func (u *uiState) onPickVideos() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		u.loadVideos(rc.URI().Path())
	}, u.w)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".tsv"}))
	fd.Show()
}

func (u *uiState) loadComments(path string) {
	count, err := u.service.LoadComments(path)
	if err != nil {
		dialog.ShowError(err, u.w)
		return
	}
	u.setStatus(fmt.Sprintf("コメント読込: %s (%d件)", filepath.Base(path), count))
	u.updateDataInfo()
	u.refresh()
}

func (u *uiState) loadVideos(path string) {
	count, err := u.service.LoadVideos(path)
	if err != nil {
		dialog.ShowError(err, u.w)
		return
	}
	u.videoSelect.Options = u.service.VideoIDs()
	u.videoSelect.Refresh()
	if sel := u.service.VideoID(); sel != "" && sel != u.videoSelect.Selected {
		u.videoSelect.SetSelected(sel)
	}
	u.frameSelect.Options = u.service.Frames()
	u.frameSelect.Refresh()
	u.setStatus(fmt.Sprintf("動画読込: %s (%d件)", filepath.Base(path), count))
	u.updateDataInfo()
	u.refresh()
}

func (u *uiState) updateDataInfo() {
	cfg := u.service.Config()
	comments := "未読込"
	if cfg.LastCommentsPath != "" {
		comments = filepath.Base(cfg.LastCommentsPath)
	}
	videos := "未読込"
	if cfg.LastVideosPath != "" {
		videos = filepath.Base(cfg.LastVideosPath)
	}
	u.dataInfo.SetText(fmt.Sprintf("コメント: %s\n動画: %s", comments, videos))
}

func (u *uiState) onLabelChanged(row int, sel string) {
	if sel == "" {
		u.service.ClearLabel(row)
	} else if err := u.service.SetLabel(row, sel); err != nil {
		dialog.ShowError(err, u.w)
		return
	}
	u.refresh()
}

func (u *uiState) onSave() {
	path, count, err := u.service.Save()
	if err != nil {
		dialog.ShowError(err, u.w)
		return
	}
	u.setStatus(fmt.Sprintf("保存しました: %s (%d件)", filepath.Base(path), count))
}

// refresh recomputes the visible view from the current selections, the
// one synchronous step behind every interaction.
func (u *uiState) refresh() {
	rows, prog, err := u.service.Visible()
	u.rows = rows
	if errors.Is(err, labeler.ErrEmptyResult) {
		u.emptyInfo.Show()
	} else {
		u.emptyInfo.Hide()
	}
	u.progress.SetText(fmt.Sprintf("件数: %d / ラベル済み: %d / 未ラベル: %d / 進捗: %.1f%%",
		prog.Total, prog.Labeled, prog.Unlabeled, prog.Percent))
	u.list.Refresh()
}

func (u *uiState) setStatus(text string) {
	_ = u.statusBind.Set(text)
}

// commentItem is one row of the labeling list: the comment text and a
// horizontal 1/2/3 radio group. Deselecting the active value clears the
// label.
type commentItem struct {
	widget.BaseWidget
	text      *widget.Label
	radio     *widget.RadioGroup
	onChanged func(string)
}

func newCommentItem() *commentItem {
	c := &commentItem{
		text:  widget.NewLabel(""),
		radio: widget.NewRadioGroup(labelOptions, nil),
	}
	c.text.Wrapping = fyne.TextWrapWord
	c.radio.Horizontal = true
	c.radio.OnChanged = func(sel string) {
		if c.onChanged != nil {
			c.onChanged(sel)
		}
	}
	c.ExtendBaseWidget(c)
	return c
}

func (c *commentItem) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, c.radio, c.text))
}

// update rebinds a recycled list item. The callback is detached while
// the selection is replayed so programmatic updates do not loop back
// into the store.
func (c *commentItem) update(row CommentRow, onChanged func(string)) {
	c.onChanged = nil
	c.text.SetText(row.Text)
	if row.Labeled {
		c.radio.SetSelected(row.Label.String())
	} else {
		c.radio.SetSelected("")
	}
	c.onChanged = onChanged
}

func wrappedHeightFor(text string, colWidth float32) float32 {
	lbl := widget.NewLabel(text)
	lbl.Wrapping = fyne.TextWrapWord
	lbl.Resize(fyne.NewSize(colWidth, 0))
	return lbl.MinSize().Height + 8
}
