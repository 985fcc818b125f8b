package model

import "testing"

func TestCanTransitionWriter_AllowsExpectedPaths(t *testing.T) {
	cases := []struct {
		from WriterState
		to   WriterState
	}{
		{WriterInitializing, WriterWritingHeader},
		{WriterInitializing, WriterFinalized},
		{WriterWritingHeader, WriterPerItemLoop},
		{WriterPerItemLoop, WriterPerItemLoop},
		{WriterPerItemLoop, WriterFinalized},
	}

	for _, tc := range cases {
		if !CanTransitionWriter(tc.from, tc.to) {
			t.Fatalf("expected transition %q -> %q to be allowed", tc.from, tc.to)
		}
	}
}

func TestCanTransitionWriter_RejectsBackwardPaths(t *testing.T) {
	cases := []struct {
		from WriterState
		to   WriterState
	}{
		{WriterWritingHeader, WriterInitializing},
		{WriterPerItemLoop, WriterWritingHeader},
		{WriterFinalized, WriterPerItemLoop},
		{WriterFinalized, WriterFinalized},
		{WriterInitializing, WriterPerItemLoop},
		{"not_a_state", WriterFinalized},
	}

	for _, tc := range cases {
		if CanTransitionWriter(tc.from, tc.to) {
			t.Fatalf("expected transition %q -> %q to be rejected", tc.from, tc.to)
		}
	}
}

func TestWriterTracker_BlocksIllegalTransition(t *testing.T) {
	tr := NewWriterTracker()
	if tr.State() != WriterInitializing {
		t.Fatalf("unexpected initial state %q", tr.State())
	}
	if err := tr.Transition(WriterPerItemLoop); err == nil {
		t.Fatalf("expected illegal transition error")
	}
	if err := tr.Transition(WriterWritingHeader); err != nil {
		t.Fatalf("header transition: %v", err)
	}
	if err := tr.Transition(WriterPerItemLoop); err != nil {
		t.Fatalf("loop transition: %v", err)
	}
	if err := tr.Transition(WriterFinalized); err != nil {
		t.Fatalf("finalize transition: %v", err)
	}
	if !IsKnownWriterState(tr.State()) {
		t.Fatalf("expected known state, got %q", tr.State())
	}
}
