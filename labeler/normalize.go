package labeler

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText performs NFKC normalization and collapses whitespace so
// the same comment matches across sessions even when a spreadsheet tool
// rewrote the file in between.
func NormalizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

// CommentKey builds the natural key used to reconcile persisted labels
// with freshly loaded comment rows.
func CommentKey(videoID, text string) string {
	return strings.TrimSpace(videoID) + "|" + NormalizeText(text)
}
