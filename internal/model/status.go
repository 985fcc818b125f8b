package model

import "fmt"

// WriterState is the lifecycle of the output writer within one run.
type WriterState string

const (
	WriterInitializing  WriterState = "initializing"
	WriterWritingHeader WriterState = "writing_header"
	WriterPerItemLoop   WriterState = "per_item_loop"
	WriterFinalized     WriterState = "finalized"
)

var allowedWriterTransitions = map[WriterState]map[WriterState]bool{
	WriterInitializing: {
		WriterWritingHeader: true,
		WriterFinalized:     true, // empty playlist
	},
	WriterWritingHeader: {
		WriterPerItemLoop: true,
	},
	WriterPerItemLoop: {
		WriterPerItemLoop: true,
		WriterFinalized:   true,
	},
	WriterFinalized: {},
}

func IsKnownWriterState(state WriterState) bool {
	_, ok := allowedWriterTransitions[state]
	return ok
}

func CanTransitionWriter(from, to WriterState) bool {
	next, ok := allowedWriterTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// WriterTracker enforces forward-only writer transitions.
type WriterTracker struct {
	state WriterState
}

func NewWriterTracker() *WriterTracker {
	return &WriterTracker{state: WriterInitializing}
}

func (t *WriterTracker) State() WriterState {
	return t.state
}

func (t *WriterTracker) Transition(to WriterState) error {
	if !CanTransitionWriter(t.state, to) {
		return fmt.Errorf("invalid writer state transition: %q -> %q", t.state, to)
	}
	t.state = to
	return nil
}
