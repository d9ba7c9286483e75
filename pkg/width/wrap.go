// ABOUTME: Word-aware cell wrapping, wrapped-height measurement, and truncation
// ABOUTME: Height feeds the virtualization engine's row-height oracle

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap breaks s into lines of at most maxWidth columns, preferring word
// boundaries and splitting words only when a single word exceeds maxWidth.
// Embedded newlines always break.
func Wrap(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine(para, maxWidth)...)
	}
	return lines
}

// Height returns the number of terminal lines s occupies when wrapped to
// maxWidth columns. Never less than 1.
func Height(s string, maxWidth int) int {
	if maxWidth <= 0 {
		return 1
	}
	n := len(Wrap(s, maxWidth))
	if n < 1 {
		return 1
	}
	return n
}

// wrapLine wraps a single newline-free line at word boundaries.
func wrapLine(s string, maxWidth int) []string {
	if Visible(s) <= maxWidth {
		return []string{s}
	}

	var lines []string
	var cur strings.Builder
	curWidth := 0
	for _, word := range strings.Split(s, " ") {
		ww := Visible(word)
		switch {
		case curWidth == 0:
			// Line start: place the word, splitting it if oversized.
			for ww > maxWidth {
				head, tail := splitAt(word, maxWidth)
				lines = append(lines, head)
				word, ww = tail, Visible(tail)
			}
			cur.WriteString(word)
			curWidth = ww
		case curWidth+1+ww <= maxWidth:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curWidth += 1 + ww
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
			for ww > maxWidth {
				head, tail := splitAt(word, maxWidth)
				lines = append(lines, head)
				word, ww = tail, Visible(tail)
			}
			cur.WriteString(word)
			curWidth = ww
		}
	}
	lines = append(lines, cur.String())
	return lines
}

// splitAt splits s so the head occupies at most maxWidth columns, breaking
// between grapheme clusters.
func splitAt(s string, maxWidth int) (head, tail string) {
	w := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			i = skipEscape(s, i)
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := clusterWidth(cluster)
		if w+cw > maxWidth {
			return s[:i], s[i:]
		}
		w += cw
		i = len(s) - len(rest)
	}
	return s, ""
}

// Truncate shortens s to at most maxWidth columns, replacing the tail with
// an ellipsis when truncation occurs.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Visible(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	head, _ := splitAt(s, maxWidth-1)
	return head + "…"
}

// Pad right-pads s with spaces to exactly maxWidth columns, truncating first
// if it is too wide.
func Pad(s string, maxWidth int) string {
	s = Truncate(s, maxWidth)
	if pad := maxWidth - Visible(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// PadLeft left-pads s with spaces to exactly maxWidth columns.
func PadLeft(s string, maxWidth int) string {
	s = Truncate(s, maxWidth)
	if pad := maxWidth - Visible(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
