// ABOUTME: Markdown renderer wrapper around glamour for the row detail overlay
// ABOUTME: Caches rendered results keyed by content hash + width

package ui

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer wraps glamour to render markdown with caching. Detail
// views re-render on every frame; the cache makes repainting the same row
// at the same width free.
type MarkdownRenderer struct {
	cache map[string]string // "hash:width" -> rendered
}

// NewMarkdownRenderer creates a MarkdownRenderer with an empty cache.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{cache: make(map[string]string)}
}

// Render returns the terminal-styled rendering of the given markdown.
// On any glamour failure the raw text comes back unchanged.
func (r *MarkdownRenderer) Render(md string, width int) string {
	if md == "" {
		return ""
	}

	key := mdCacheKey(md, width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	rendered = strings.TrimRight(rendered, "\n ")

	r.cache[key] = rendered
	return rendered
}

func mdCacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
