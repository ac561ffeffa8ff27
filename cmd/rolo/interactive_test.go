package main

import (
	"strings"
	"testing"
)

func TestReplModel_TranscriptStartsWithGreeting(t *testing.T) {
	m := newReplModel(testSession(t))

	if !strings.Contains(stripANSI(m.transcript.String()), "Welcome to the assistant bot!") {
		t.Errorf("transcript = %q, want the greeting", m.transcript.String())
	}
}

func TestReplModel_AppendExchangeEchoesInputAndOutput(t *testing.T) {
	m := newReplModel(testSession(t))

	m.appendExchange("add Ann 1234567890")

	text := stripANSI(m.transcript.String())
	if !strings.Contains(text, "Enter a command: add Ann 1234567890") {
		t.Errorf("transcript does not echo the input:\n%s", text)
	}
	if !strings.Contains(text, "Contact added.") {
		t.Errorf("transcript does not contain the command output:\n%s", text)
	}
}

func TestReplModel_QuitRequested(t *testing.T) {
	m := newReplModel(testSession(t))

	tests := []struct {
		line string
		want bool
	}{
		{"close", true},
		{"exit", true},
		{"EXIT", true},
		{"hello", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := m.quitRequested(tt.line); got != tt.want {
			t.Errorf("quitRequested(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestReplModel_ExitSavesThroughDispatch(t *testing.T) {
	s := testSession(t)
	m := newReplModel(s)

	m.appendExchange("add Ann 1234567890")
	m.appendExchange("exit")

	if m.saveErr != nil {
		t.Fatalf("saveErr = %v", m.saveErr)
	}
	bk, err := s.store.Load()
	if err != nil {
		t.Fatalf("loading snapshot: %v", err)
	}
	if _, ok := bk.Find("Ann"); !ok {
		t.Error("contact was not persisted by the exit command")
	}
}

func TestReplModel_ViewBeforeReady(t *testing.T) {
	m := newReplModel(testSession(t))

	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before first WindowSizeMsg = %q", got)
	}
}
