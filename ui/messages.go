package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"ustaad/session"
)

// sinkMsg wraps a session push message for the bubbletea update loop.
type sinkMsg struct {
	msg session.SinkMessage
}

// notifyMsg carries a transient notification for the status flash.
type notifyMsg struct {
	text string
	err  bool
}

// flashTickMsg clears the status flash after its display window.
type flashTickMsg struct{}

// confirmLargeMsg asks the user to confirm summarizing a very large
// selection. The explain goroutine blocks on answer until the panel
// resolves the modal.
type confirmLargeMsg struct {
	lineCount int
	answer    chan<- bool
}

// setupRequestMsg switches the panel to the key-setup view because no API
// key is stored for the named provider.
type setupRequestMsg struct {
	provider string
}

// explainFinishedMsg reports that the explain goroutine returned, with any
// error the session did not handle itself.
type explainFinishedMsg struct {
	err error
}

// markdownRenderedMsg delivers an async terminal-markdown render.
type markdownRenderedMsg struct {
	seq      int
	rendered string
}

// Constructors for the messages the session hooks feed into the program.

// NotifyMsg builds a status-flash message.
func NotifyMsg(text string, isError bool) tea.Msg {
	return notifyMsg{text: text, err: isError}
}

// ConfirmLargeMsg builds the very-large-selection confirmation request.
// The caller blocks on answer until the user decides.
func ConfirmLargeMsg(lineCount int, answer chan<- bool) tea.Msg {
	return confirmLargeMsg{lineCount: lineCount, answer: answer}
}

// SetupRequestMsg builds the switch-to-key-setup request.
func SetupRequestMsg(provider string) tea.Msg {
	return setupRequestMsg{provider: provider}
}

// ExplainFinishedMsg reports the explain goroutine's unhandled error.
func ExplainFinishedMsg(err error) tea.Msg {
	return explainFinishedMsg{err: err}
}
