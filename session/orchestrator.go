// Package session orchestrates the ask flow: validate the selection, build
// the persona prompt, stream the provider's response into the panel sink,
// and finalize history and conversation context.
//
// One Session exists per panel. Entry points are called from different
// goroutines (the explain goroutine, bubbletea command goroutines), so the
// busy guard is an atomic compare-and-swap: exactly one streaming flow wins
// and every concurrent caller gets ErrBusy rather than an interleaved
// stream. History and conversation context are mutated only at completion
// points, never mid-stream.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"ustaad/config"
	"ustaad/editor"
	"ustaad/history"
	"ustaad/prompt"
	"ustaad/provider"
)

// ErrNoAPIKey signals that no key is stored for the configured provider;
// the caller should switch the panel to the key-setup view.
var ErrNoAPIKey = errors.New("no API key configured")

// ErrBusy signals a second request while one is in flight.
var ErrBusy = errors.New("a request is already in progress")

// Validation messages, surfaced directly without classification.
const (
	msgNoEditor       = "Arey beta, pehle koi file toh kholo!"
	msgNoSelection    = "Beta, pehle code select karo jo samajhna hai!"
	msgNoConversation = "Pehle koi code explain karwao, phir sawaal poochna!"
	msgEmptyQuestion  = "Sawaal toh likho bhai!"
	msgKeySaved       = "API key save ho gayi! Ab dubara try karo."

	notifyPrefix = "Ustaad ko problem aa gayi: "
)

// Hooks are the host collaborators a Session needs beyond its stores.
// Zero-value fields get working defaults.
type Hooks struct {
	// Notify raises a transient notification. Default: drop.
	Notify func(message string)

	// ConfirmLarge asks the user whether a very large selection should be
	// summarized anyway. Default: proceed.
	ConfirmLarge func(lineCount int) bool

	// Probe is the pre-flight connectivity gate. Default: CheckConnectivity.
	Probe func(ctx context.Context) bool

	// NewProvider constructs the backend adapter. Default: provider.NewProvider.
	NewProvider func(cfg provider.Config) (provider.Provider, error)

	// OpenURL opens an external link. Default: drop.
	OpenURL func(url string) error
}

func (h *Hooks) fillDefaults() {
	if h.Notify == nil {
		h.Notify = func(string) {}
	}
	if h.ConfirmLarge == nil {
		h.ConfirmLarge = func(int) bool { return true }
	}
	if h.Probe == nil {
		h.Probe = CheckConnectivity
	}
	if h.NewProvider == nil {
		h.NewProvider = provider.NewProvider
	}
	if h.OpenURL == nil {
		h.OpenURL = func(string) error { return nil }
	}
}

// Session owns one panel's request lifecycle and conversation state.
type Session struct {
	cfg     *config.Config
	source  editor.Source
	history *history.Store
	sink    Sink
	hooks   Hooks

	// mu guards the conversation slot; the streaming flows themselves are
	// serialized by the busy flag.
	mu    sync.Mutex
	convo *ConversationContext
	busy  atomic.Bool
}

// New creates a session. source may be nil when no document is open; the
// first Explain then fails validation with a user-facing message.
func New(cfg *config.Config, source editor.Source, hist *history.Store, sink Sink, hooks Hooks) *Session {
	hooks.fillDefaults()
	return &Session{
		cfg:     cfg,
		source:  source,
		history: hist,
		sink:    sink,
		hooks:   hooks,
	}
}

// Conversation returns the current conversation context, nil before the
// first completed explanation.
func (s *Session) Conversation() *ConversationContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.convo
}

func (s *Session) setConversation(c *ConversationContext) {
	s.mu.Lock()
	s.convo = c
	s.mu.Unlock()
}

// History returns the session's history store.
func (s *Session) History() *history.Store {
	return s.history
}

// Dispose drops the conversation context when the panel closes.
func (s *Session) Dispose() {
	s.setConversation(nil)
}

// Explain runs the top-level ask flow.
//
// Validation failures and provider failures are reported to the user
// (notification + terminal pane state) and return nil: the flow handled
// them. ErrNoAPIKey and ErrBusy are returned for the caller to act on.
func (s *Session) Explain(ctx context.Context) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer s.busy.Store(false)

	if s.source == nil {
		s.hooks.Notify(msgNoEditor)
		return nil
	}

	sel, err := s.source.Selection()
	if err != nil {
		s.hooks.Notify(msgNoEditor)
		return nil
	}
	if strings.TrimSpace(sel.Text) == "" {
		s.hooks.Notify(msgNoSelection)
		return nil
	}

	lineCount := sel.LineCount()
	isLarge := lineCount > LargeSelectionThreshold
	if lineCount > VeryLargeSelectionThreshold && !s.hooks.ConfirmLarge(lineCount) {
		// Declined: back to idle with no side effects.
		return nil
	}

	in, err := buildInput(s.source, sel)
	if err != nil {
		// Local document failure, nothing network-shaped to classify.
		s.hooks.Notify(err.Error())
		return nil
	}

	apiKey := s.cfg.Credentials.Get(s.cfg.Provider)
	if apiKey == "" {
		return ErrNoAPIKey
	}

	// A new top-level request discards the previous conversation.
	s.setConversation(nil)

	// The id exists before the provider call so history and completion
	// records agree even across retries.
	id := history.NewID()

	if !s.hooks.Probe(ctx) {
		// Skip the doomed round-trip; classify the short-circuit the same
		// way the failed call would have been.
		s.failExplain(provider.ErrOffline)
		return nil
	}

	systemPrompt := prompt.SystemPrompt(prompt.Persona(s.cfg.PersonaIntensity))
	userPrompt := buildUserPrompt(sel.Language, in.code, in.contextInfo, isLarge)

	p, err := s.hooks.NewProvider(provider.Config{
		Type:   provider.Type(s.cfg.Provider),
		APIKey: apiKey,
		Model:  s.cfg.Model(),
	})
	if err != nil {
		s.failExplain(err)
		return nil
	}

	if config.Debug {
		config.DebugLog.Printf("[Session] Explain: provider=%s model=%s lines=%d large=%v", s.cfg.Provider, s.cfg.Model(), lineCount, isLarge)
	}

	full, err := p.StreamExplanation(ctx, systemPrompt, userPrompt, func(content string) {
		s.sink.Post(SinkMessage{Command: CmdStreamUpdate, Content: content})
	})
	if err != nil {
		s.failExplain(err)
		return nil
	}

	item := history.Item{
		ID:          id,
		Code:        sel.Text,
		Language:    sel.Language,
		Explanation: full,
		Timestamp:   time.Now(),
	}
	if err := s.history.Add(item); err != nil && config.Debug {
		config.DebugLog.Printf("[Session] Warning: failed to persist history: %v", err)
	}

	s.setConversation(&ConversationContext{
		Code:        sel.Text,
		Language:    sel.Language,
		Explanation: full,
	})

	s.sink.Post(SinkMessage{
		Command: CmdStreamComplete,
		Record: &CompletionRecord{
			ID:        item.ID,
			Code:      item.Code,
			Language:  item.Language,
			Timestamp: item.Timestamp,
		},
	})
	return nil
}

// Followup runs the follow-up sub-flow against the current conversation.
// A failure mutates nothing: the conversation keeps its existing entries.
func (s *Session) Followup(ctx context.Context, question string) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer s.busy.Store(false)

	convo := s.Conversation()
	if convo == nil {
		s.hooks.Notify(msgNoConversation)
		s.sink.Post(SinkMessage{Command: CmdFollowupError, Error: msgNoConversation})
		return nil
	}
	if strings.TrimSpace(question) == "" {
		s.hooks.Notify(msgEmptyQuestion)
		s.sink.Post(SinkMessage{Command: CmdFollowupError, Error: msgEmptyQuestion})
		return nil
	}

	apiKey := s.cfg.Credentials.Get(s.cfg.Provider)
	if apiKey == "" {
		return ErrNoAPIKey
	}

	if !s.hooks.Probe(ctx) {
		s.failFollowup(provider.ErrOffline)
		return nil
	}

	systemPrompt := prompt.SystemPrompt(prompt.Persona(s.cfg.PersonaIntensity))
	userPrompt := buildFollowupPrompt(convo, question)

	p, err := s.hooks.NewProvider(provider.Config{
		Type:   provider.Type(s.cfg.Provider),
		APIKey: apiKey,
		Model:  s.cfg.Model(),
	})
	if err != nil {
		s.failFollowup(err)
		return nil
	}

	answer, err := p.StreamExplanation(ctx, systemPrompt, userPrompt, func(content string) {
		s.sink.Post(SinkMessage{Command: CmdFollowupStreamUpdate, Content: content})
	})
	if err != nil {
		s.failFollowup(err)
		return nil
	}

	// Append only if the conversation was not replaced or disposed while
	// the answer streamed.
	s.mu.Lock()
	if s.convo == convo {
		convo.Followups = append(convo.Followups, Followup{
			Question: question,
			Answer:   answer,
		})
	}
	s.mu.Unlock()

	s.sink.Post(SinkMessage{
		Command:  CmdFollowupStreamComplete,
		Question: question,
		Answer:   answer,
	})
	return nil
}

// HandleEvent dispatches an inbound panel event.
func (s *Session) HandleEvent(ctx context.Context, ev Event) error {
	switch ev.Command {
	case EventLoadHistory:
		item, ok := s.history.GetByID(ev.ID)
		if !ok {
			return nil
		}
		s.sink.Post(SinkMessage{
			Command:         CmdShowHistoryItem,
			Item:            &item,
			ExplanationHTML: history.ExplanationHTML(item),
		})
		return nil

	case EventClearHistory:
		if err := s.history.Clear(); err != nil {
			return err
		}
		s.sink.Post(SinkMessage{Command: CmdHistoryCleared})
		return nil

	case EventAskFollowup:
		return s.Followup(ctx, ev.Question)

	case EventSetupAPIKey:
		s.hooks.Notify("API key set karne ke liye 'ustaad set-key' command chalao.")
		return nil

	case EventSaveAPIKey:
		s.cfg.Credentials.Set(ev.Provider, ev.APIKey)
		if err := s.cfg.Credentials.Save(s.cfg.DataDir()); err != nil {
			return err
		}
		s.hooks.Notify(msgKeySaved)
		return nil

	case EventOpenExternalURL:
		return s.hooks.OpenURL(ev.URL)

	default:
		// Unknown events are dropped, not errors: the vocabulary may grow
		// on the panel side before it grows here.
		return nil
	}
}

func (s *Session) failExplain(err error) {
	msg := provider.Classify(err, s.cfg.Provider)
	s.hooks.Notify(notifyPrefix + msg)
	s.sink.Post(SinkMessage{Command: CmdStreamError, Error: msg})
}

func (s *Session) failFollowup(err error) {
	msg := provider.Classify(err, s.cfg.Provider)
	s.hooks.Notify(notifyPrefix + msg)
	s.sink.Post(SinkMessage{Command: CmdFollowupError, Error: msg})
}
