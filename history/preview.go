package history

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/mattn/go-runewidth"
)

// titlePatterns pick a display title out of a code snippet, tried in order.
// Declaration patterns for the common panel languages; Go/Python first
// since those dominate terminal use, then the JS/TS shapes.
var titlePatterns = []*regexp.Regexp{
	// Go function or method
	regexp.MustCompile(`func\s+(?:\([^)]*\)\s*)?([A-Za-z_][A-Za-z0-9_]*)\s*\(`),
	// Python def / class
	regexp.MustCompile(`(?:def|class)\s+([A-Za-z_][A-Za-z0-9_]*)`),
	// React component: function ComponentName( or const ComponentName =
	regexp.MustCompile(`(?:function|const|let|var)\s+([A-Z][a-zA-Z0-9]*)\s*[=(]`),
	// Regular function: function name(
	regexp.MustCompile(`function\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\(`),
	// Arrow function: const name = ( or const name = async (
	regexp.MustCompile(`(?:const|let|var)\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*=\s*(?:async\s*)?\(`),
	// Class declaration: class ClassName
	regexp.MustCompile(`class\s+([A-Z][a-zA-Z0-9]*)`),
	// Method: methodName( ... ) {
	regexp.MustCompile(`(?:async\s+)?([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\([^)]*\)\s*\{`),
	// Hook usage: useEffect, useState, etc.
	regexp.MustCompile(`(use[A-Z][a-zA-Z]*)\s*\(`),
	// Export default function/class
	regexp.MustCompile(`export\s+default\s+(?:function|class)\s+([a-zA-Z_$][a-zA-Z0-9_$]*)`),
}

// ExtractCodeTitle derives a short display title from a snippet: the first
// declared name it can find, else the first meaningful line truncated.
func ExtractCodeTitle(code string) string {
	trimmed := strings.TrimSpace(code)

	for _, pattern := range titlePatterns {
		if m := pattern.FindStringSubmatch(trimmed); len(m) > 1 && m[1] != "" {
			return m[1]
		}
	}

	// Fallback: first meaningful line (skip comments, whitespace).
	for _, line := range strings.Split(trimmed, "\n") {
		cleaned := strings.TrimSpace(line)
		if cleaned == "" || strings.HasPrefix(cleaned, "//") || strings.HasPrefix(cleaned, "/*") || strings.HasPrefix(cleaned, "#") {
			continue
		}
		r := []rune(cleaned)
		if len(r) > 25 {
			return string(r[:25]) + "..."
		}
		return cleaned
	}

	return "Code snippet"
}

// mdParser builds a parser matching the original renderer settings: hard
// line breaks, autolinking, raw HTML stripped.
func mdParser() *parser.Parser {
	return parser.NewWithExtensions(parser.CommonExtensions | parser.HardLineBreak | parser.Autolink)
}

// RenderMarkdown converts explanation markdown to HTML for previews and
// exports. Raw HTML in the source is skipped, never passed through.
func RenderMarkdown(content string) string {
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.SkipHTML,
	})
	return string(markdown.ToHTML([]byte(content), mdParser(), renderer))
}

// PreviewHTML renders the item list as HTML fragments for a history pane.
// The store's capacity is the only bound; display caps are a presentation
// concern this layer does not own.
func (s *Store) PreviewHTML() string {
	items := s.All()
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for _, item := range items {
		title := ExtractCodeTitle(item.Code)
		firstLine := strings.SplitN(strings.TrimSpace(item.Code), "\n", 2)[0]
		preview := runewidth.Truncate(firstLine, 30, "...")

		fmt.Fprintf(&b, `
            <div class="history-item" data-id="%s">
                <span class="history-lang">%s</span>
                <span class="history-code">%s</span>
            </div>`,
			html.EscapeString(item.ID),
			html.EscapeString(title),
			html.EscapeString(preview),
		)
	}
	return b.String()
}

// ExplanationHTML renders a single item's explanation body.
func ExplanationHTML(item Item) string {
	return RenderMarkdown(item.Explanation)
}
