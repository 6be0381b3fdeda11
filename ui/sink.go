package ui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"ustaad/session"
)

// sender is the part of *tea.Program the sink needs.
type sender interface {
	Send(msg tea.Msg)
}

// ProgramSink delivers session push messages into the bubbletea loop.
// After Dispose, posts are dropped silently; the session never learns or
// cares that the panel went away mid-stream.
type ProgramSink struct {
	program  sender
	disposed atomic.Bool
}

// NewProgramSink wraps a running bubbletea program.
func NewProgramSink(p sender) *ProgramSink {
	return &ProgramSink{program: p}
}

// Post implements session.Sink.
func (s *ProgramSink) Post(msg session.SinkMessage) {
	if s.disposed.Load() {
		return
	}
	s.program.Send(sinkMsg{msg: msg})
}

// Dispose detaches the sink from the program.
func (s *ProgramSink) Dispose() {
	s.disposed.Store(true)
}
