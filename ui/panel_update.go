package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"ustaad/session"
)

const flashDuration = 3 * time.Second

func (p Panel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		headerHeight := 3
		footerHeight := 3
		if !p.ready {
			p.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		p.refreshViewport(false)
		return p, nil

	case spinner.TickMsg:
		if !p.streaming && !p.followupStreaming {
			return p, nil
		}
		var cmd tea.Cmd
		p.loadingSpinner, cmd = p.loadingSpinner.Update(msg)
		return p, cmd

	case sinkMsg:
		return p.handleSinkMessage(msg.msg)

	case notifyMsg:
		p.flash = msg.text
		p.flashErr = msg.err
		return p, tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashTickMsg{} })

	case flashTickMsg:
		p.flash = ""
		p.flashErr = false
		return p, nil

	case confirmLargeMsg:
		p.mode = modeConfirm
		p.confirmLineCount = msg.lineCount
		p.confirmAnswer = msg.answer
		return p, nil

	case setupRequestMsg:
		p.mode = modeSetup
		p.setupProvider = msg.provider
		p.setupInput.SetValue("")
		p.setupInput.Focus()
		return p, textinput.Blink

	case explainFinishedMsg:
		if msg.err != nil {
			p.flash = msg.err.Error()
			p.flashErr = true
			return p, tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashTickMsg{} })
		}
		return p, nil

	case markdownRenderedMsg:
		if msg.seq != p.renderSeq {
			// A newer stream superseded this render.
			return p, nil
		}
		p.rendered = msg.rendered
		p.refreshViewport(true)
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p Panel) handleSinkMessage(msg session.SinkMessage) (tea.Model, tea.Cmd) {
	switch msg.Command {
	case session.CmdStreamUpdate:
		p.streaming = true
		p.explanation = msg.Content
		p.thread = nil
		p.rendered = ""
		p.refreshViewport(true)
		return p, p.loadingSpinner.Tick

	case session.CmdStreamComplete:
		p.streaming = false
		p.renderSeq++
		p.refreshViewport(true)
		return p, renderMarkdownAsync(p.renderSeq, p.body(), p.viewport.Width)

	case session.CmdStreamError:
		p.streaming = false
		p.flash = msg.Error
		p.flashErr = true
		p.refreshViewport(false)
		return p, tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashTickMsg{} })

	case session.CmdFollowupStreamUpdate:
		p.followupStreaming = true
		p.liveAnswer = msg.Content
		p.refreshViewport(true)
		return p, p.loadingSpinner.Tick

	case session.CmdFollowupStreamComplete:
		p.followupStreaming = false
		p.liveAnswer = ""
		p.liveQuestion = ""
		p.thread = append(p.thread, threadEntry{question: msg.Question, answer: msg.Answer})
		p.renderSeq++
		p.refreshViewport(true)
		return p, renderMarkdownAsync(p.renderSeq, p.body(), p.viewport.Width)

	case session.CmdFollowupError:
		p.followupStreaming = false
		p.liveAnswer = ""
		p.liveQuestion = ""
		p.flash = msg.Error
		p.flashErr = true
		p.refreshViewport(false)
		return p, tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashTickMsg{} })

	case session.CmdShowHistoryItem:
		if msg.Item == nil {
			return p, nil
		}
		p.mode = modeExplain
		p.streaming = false
		p.followupStreaming = false
		p.explanation = msg.Item.Explanation
		p.language = msg.Item.Language
		p.thread = nil
		p.rendered = ""
		p.renderSeq++
		p.refreshViewport(true)
		return p, renderMarkdownAsync(p.renderSeq, p.explanation, p.viewport.Width)

	case session.CmdHistoryCleared:
		p.historyItems = nil
		p.selectedHistoryIdx = 0
		p.flash = "History clear ho gayi!"
		return p, tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashTickMsg{} })
	}

	return p, nil
}

func (p Panel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		p.sess.Dispose()
		return p, tea.Quit
	}

	switch p.mode {
	case modeConfirm:
		return p.handleConfirmKey(msg)
	case modeSetup:
		return p.handleSetupKey(msg)
	case modeHistory:
		return p.handleHistoryKey(msg)
	default:
		return p.handleExplainKey(msg)
	}
}

func (p Panel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		p.mode = modeExplain
		if p.confirmAnswer != nil {
			p.confirmAnswer <- true
			p.confirmAnswer = nil
		}
		return p, p.loadingSpinner.Tick
	case "n", "N", "esc":
		p.mode = modeExplain
		if p.confirmAnswer != nil {
			p.confirmAnswer <- false
			p.confirmAnswer = nil
		}
		return p, nil
	}
	return p, nil
}

func (p Panel) handleSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		key := strings.TrimSpace(p.setupInput.Value())
		if key == "" {
			return p, nil
		}
		p.mode = modeExplain
		p.setupInput.Blur()
		return p, p.postEvent(session.Event{
			Command:  session.EventSaveAPIKey,
			Provider: p.setupProvider,
			APIKey:   key,
		})
	case tea.KeyEsc:
		p.mode = modeExplain
		p.setupInput.Blur()
		return p, nil
	case tea.KeyCtrlO:
		return p, p.postEvent(session.Event{
			Command: session.EventOpenExternalURL,
			URL:     keySetupURL(p.setupProvider),
		})
	}

	var cmd tea.Cmd
	p.setupInput, cmd = p.setupInput.Update(msg)
	return p, cmd
}

func (p Panel) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if p.historyFilterMode {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			p.historyFilterMode = false
			p.historyFilter.Blur()
			p.selectedHistoryIdx = 0
			return p, nil
		}
		var cmd tea.Cmd
		p.historyFilter, cmd = p.historyFilter.Update(msg)
		p.selectedHistoryIdx = 0
		return p, cmd
	}

	items := p.filteredHistory()

	switch msg.String() {
	case "esc", "h", "q":
		p.mode = modeExplain
		p.historyFilter.SetValue("")
		return p, nil
	case "j", "down":
		if p.selectedHistoryIdx < len(items)-1 {
			p.selectedHistoryIdx++
		}
		return p, nil
	case "k", "up":
		if p.selectedHistoryIdx > 0 {
			p.selectedHistoryIdx--
		}
		return p, nil
	case "/":
		p.historyFilterMode = true
		p.historyFilter.Focus()
		return p, textinput.Blink
	case "c":
		return p, p.postEvent(session.Event{Command: session.EventClearHistory})
	case "enter":
		if len(items) == 0 {
			return p, nil
		}
		p.historyFilter.SetValue("")
		return p, p.postEvent(session.Event{
			Command: session.EventLoadHistory,
			ID:      items[p.selectedHistoryIdx].ID,
		})
	}
	return p, nil
}

func (p Panel) handleExplainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if p.input.Focused() {
		switch msg.Type {
		case tea.KeyEnter:
			question := strings.TrimSpace(p.input.Value())
			if question == "" {
				return p, nil
			}
			p.input.SetValue("")
			p.input.Blur()
			p.liveQuestion = question
			return p, tea.Batch(
				p.postEvent(session.Event{Command: session.EventAskFollowup, Question: question}),
				p.loadingSpinner.Tick,
			)
		case tea.KeyEsc:
			p.input.Blur()
			return p, nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	switch msg.String() {
	case "q":
		p.sess.Dispose()
		return p, tea.Quit
	case "h":
		p.mode = modeHistory
		p.historyItems = p.sess.History().All()
		p.selectedHistoryIdx = 0
		return p, nil
	case "i", "tab":
		p.input.Focus()
		return p, textinput.Blink
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// keySetupURL is where each provider hands out API keys.
func keySetupURL(provider string) string {
	if provider == "openai" {
		return "https://platform.openai.com/api-keys"
	}
	return "https://aistudio.google.com/apikey"
}
