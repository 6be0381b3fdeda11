// Package ui is the terminal side panel: it renders the streamed
// explanation, the follow-up thread, the history overlay, and the key-setup
// view, and forwards user actions to the session as events.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ustaad/history"
	"ustaad/session"
)

type viewMode int

const (
	modeExplain viewMode = iota
	modeHistory
	modeSetup
	modeConfirm
)

// threadEntry is a finished follow-up pair ready for display.
type threadEntry struct {
	question string
	answer   string
}

// Panel is the bubbletea model for the assistant side panel.
type Panel struct {
	sess *session.Session

	viewport       viewport.Model
	input          textinput.Model
	loadingSpinner spinner.Model

	width  int
	height int
	ready  bool

	mode viewMode

	// Streaming state. explanation holds the cumulative raw markdown;
	// rendered holds the last finished terminal render.
	streaming         bool
	followupStreaming bool
	explanation       string
	thread            []threadEntry
	liveQuestion      string
	liveAnswer        string
	rendered          string
	renderSeq         int

	language string

	// Status flash
	flash    string
	flashErr bool

	// History overlay
	historyItems       []history.Item
	historyFilter      textinput.Model
	historyFilterMode  bool
	selectedHistoryIdx int

	// Key-setup view
	setupProvider string
	setupInput    textinput.Model

	// Very-large-selection confirmation
	confirmLineCount int
	confirmAnswer    chan<- bool
}

// NewPanel creates the panel for one session. language labels the code
// header; it comes from the editor selection.
func NewPanel(sess *session.Session, language string) Panel {
	input := textinput.New()
	input.Placeholder = "Follow-up sawaal poochho..."
	input.CharLimit = 500

	filter := textinput.New()
	filter.Placeholder = "Search history..."

	setupInput := textinput.New()
	setupInput.Placeholder = "API key paste karo"
	setupInput.EchoMode = textinput.EchoPassword

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	return Panel{
		sess:           sess,
		input:          input,
		historyFilter:  filter,
		setupInput:     setupInput,
		loadingSpinner: sp,
		language:       language,
	}
}

func (p Panel) Init() tea.Cmd {
	return p.loadingSpinner.Tick
}

// postEvent forwards an inbound event to the session off the update loop.
// Results come back through the sink.
func (p Panel) postEvent(ev session.Event) tea.Cmd {
	sess := p.sess
	return func() tea.Msg {
		if err := sess.HandleEvent(context.Background(), ev); err != nil {
			return notifyMsg{text: err.Error(), err: true}
		}
		return nil
	}
}

// filteredHistory applies the fuzzy filter to the overlay list.
func (p Panel) filteredHistory() []history.Item {
	query := strings.TrimSpace(p.historyFilter.Value())
	if query == "" {
		return p.historyItems
	}
	return p.sess.History().Search(query)
}

// body assembles the raw-markdown transcript: explanation, finished
// follow-up pairs, and any in-flight follow-up answer.
func (p Panel) body() string {
	var b strings.Builder
	b.WriteString(p.explanation)
	for _, e := range p.thread {
		fmt.Fprintf(&b, "\n\n---\n\n**Q: %s**\n\n%s", e.question, e.answer)
	}
	if p.followupStreaming {
		fmt.Fprintf(&b, "\n\n---\n\n**Q: %s**\n\n%s", p.liveQuestion, p.liveAnswer)
	}
	return b.String()
}

// refreshViewport pushes the current transcript into the viewport. During
// streaming the raw markdown is shown directly; the styled render replaces
// it once markdownRenderedMsg arrives.
func (p *Panel) refreshViewport(followTail bool) {
	if !p.ready {
		return
	}
	if p.streaming || p.followupStreaming || p.rendered == "" {
		p.viewport.SetContent(p.body())
	} else {
		p.viewport.SetContent(p.rendered)
	}
	if followTail {
		p.viewport.GotoBottom()
	}
}
