// ABOUTME: Display-width measurement for table cells with grapheme-aware segmentation
// ABOUTME: ANSI sequences count as zero width; pure-ASCII strings take a fast path

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Visible returns the display width of s in terminal columns. ANSI escape
// sequences contribute zero width; grapheme clusters may span more than one
// cell for East Asian characters and emoji.
func Visible(s string) int {
	if s == "" {
		return 0
	}
	if plainASCII(s) {
		return len(s)
	}
	w := 0
	i := 0
	state := -1
	for i < len(s) {
		if s[i] == '\x1b' {
			i = skipEscape(s, i)
			continue
		}
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s[i:], state)
		w += clusterWidth(cluster)
		state = newState
		i = len(s) - len(rest)
	}
	return w
}

// Strip removes all ANSI escape sequences from s.
func Strip(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			i = skipEscape(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// plainASCII reports whether s is printable ASCII with no escapes.
func plainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// clusterWidth returns the display width of one grapheme cluster.
func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// skipEscape advances past the ANSI escape sequence starting at s[i] and
// returns the index of the first byte after it. CSI sequences end at a final
// byte in 0x40-0x7E; OSC sequences end at BEL or ST.
func skipEscape(s string, i int) int {
	i++ // ESC
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[':
		for i++; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7E {
				return i + 1
			}
		}
		return i
	case ']':
		for i++; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return i
	default:
		return i + 1
	}
}
