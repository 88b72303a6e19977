package labeler

import "sort"

// VideoIDs extracts the sorted distinct video ids from the videos
// table. Only these ids are offered for selection.
func VideoIDs(videos *Table, cols Columns) []string {
	cols.ApplyDefaults()
	return distinctColumn(videos, cols.Video)
}

// Frames extracts the sorted distinct frame values from the videos
// table.
func Frames(videos *Table, cols Columns) []string {
	cols.ApplyDefaults()
	return distinctColumn(videos, cols.Frame)
}

func distinctColumn(t *Table, name string) []string {
	if t == nil {
		return nil
	}
	col := t.ColumnIndex(name)
	if col < 0 {
		return nil
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := range t.Rows {
		v := t.Cell(i, col)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// FilterRows computes the visible subset of comment rows, in original
// order. A comment survives when its videoId equals the selection, when
// the frame filter is off (frame == "") or some video row with that
// videoId carries the chosen frame, and when the status predicate holds
// against the store. A video paired with several frames matches each of
// them.
func FilterRows(comments, videos *Table, cols Columns, videoID, frame string, status StatusFilter, store *Store) []int {
	cols.ApplyDefaults()
	if comments == nil || videoID == "" {
		return nil
	}
	videoCol := comments.ColumnIndex(cols.Video)
	if videoCol < 0 {
		return nil
	}
	var withFrame map[string]struct{}
	if frame != "" {
		withFrame = videosWithFrame(videos, cols, frame)
	}
	out := make([]int, 0)
	for i := range comments.Rows {
		if comments.Cell(i, videoCol) != videoID {
			continue
		}
		if withFrame != nil {
			if _, ok := withFrame[videoID]; !ok {
				continue
			}
		}
		if !statusMatches(status, store, i) {
			continue
		}
		out = append(out, i)
	}
	return out
}

// videosWithFrame collects the video ids that have at least one row
// with the given frame.
func videosWithFrame(videos *Table, cols Columns, frame string) map[string]struct{} {
	out := make(map[string]struct{})
	if videos == nil {
		return out
	}
	videoCol := videos.ColumnIndex(cols.Video)
	frameCol := videos.ColumnIndex(cols.Frame)
	if videoCol < 0 || frameCol < 0 {
		return out
	}
	for i := range videos.Rows {
		if videos.Cell(i, frameCol) == frame {
			out[videos.Cell(i, videoCol)] = struct{}{}
		}
	}
	return out
}

func statusMatches(status StatusFilter, store *Store, row int) bool {
	if store == nil {
		return status != StatusLabeled
	}
	_, labeled := store.Get(row)
	switch status {
	case StatusUnlabeled:
		return !labeled
	case StatusLabeled:
		return labeled
	default:
		return true
	}
}
