package session

import (
	"time"

	"ustaad/history"
)

// Outbound command vocabulary. These strings are the wire protocol between
// the session core and the presentation layer and must stay stable.
const (
	CmdStreamUpdate           = "streamUpdate"
	CmdStreamComplete         = "streamComplete"
	CmdStreamError            = "streamError"
	CmdShowHistoryItem        = "showHistoryItem"
	CmdHistoryCleared         = "historyCleared"
	CmdFollowupStreamUpdate   = "followupStreamUpdate"
	CmdFollowupStreamComplete = "followupStreamComplete"
	CmdFollowupError          = "followupError"
)

// Inbound event vocabulary, same stability contract.
const (
	EventLoadHistory     = "loadHistory"
	EventClearHistory    = "clearHistory"
	EventAskFollowup     = "askFollowup"
	EventSetupAPIKey     = "setupApiKey"
	EventSaveAPIKey      = "saveApiKey"
	EventOpenExternalURL = "openExternalUrl"
)

// SinkMessage is a push message to the panel. Command selects which payload
// fields are populated.
type SinkMessage struct {
	Command string `json:"command"`

	// streamUpdate / followupStreamUpdate: cumulative text so far.
	Content string `json:"content,omitempty"`

	// streamError / followupError: classified user-facing message.
	Error string `json:"error,omitempty"`

	// showHistoryItem.
	Item            *history.Item `json:"item,omitempty"`
	ExplanationHTML string        `json:"explanationHtml,omitempty"`

	// streamComplete: lightweight record — the explanation text itself is
	// already known to the panel from the last streamUpdate.
	Record *CompletionRecord `json:"historyItem,omitempty"`

	// followupStreamComplete.
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

// CompletionRecord identifies a finished explanation.
type CompletionRecord struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Language  string    `json:"language"`
	Timestamp time.Time `json:"timestamp"`
}

// Sink receives push messages. Implementations must tolerate being posted
// to after disposal by dropping messages; a disposed sink is a no-op
// target, never an error.
type Sink interface {
	Post(msg SinkMessage)
}

// Event is an inbound panel event.
type Event struct {
	Command  string `json:"command"`
	ID       string `json:"id,omitempty"`
	Question string `json:"question,omitempty"`
	Provider string `json:"provider,omitempty"`
	APIKey   string `json:"apiKey,omitempty"`
	URL      string `json:"url,omitempty"`
}
