package ui

import (
	markdown "github.com/MichaelMure/go-term-markdown"
	tea "github.com/charmbracelet/bubbletea"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"

	"ustaad/config"
)

// renderMarkdownAsync renders explanation markdown for the terminal off the
// update loop. seq ties the result back to the stream generation that
// requested it so a stale render never clobbers newer content.
func renderMarkdownAsync(seq int, content string, width int) tea.Cmd {
	return func() tea.Msg {
		if width < 20 {
			width = 20
		}

		// Autolink off: terminal emulators handle URL detection themselves,
		// and linkified output renders as noise in a narrow panel.
		ext := markdown.Extensions() &^ parser.Autolink
		p := parser.NewWithExtensions(ext)
		r := markdown.NewRenderer(width-4, 0)
		doc := p.Parse([]byte(content))
		rendered := gomarkdown.Render(doc, r)

		if config.Debug {
			config.DebugLog.Printf("[UI] Rendered markdown seq=%d chars=%d", seq, len(content))
		}

		return markdownRenderedMsg{seq: seq, rendered: string(rendered)}
	}
}
