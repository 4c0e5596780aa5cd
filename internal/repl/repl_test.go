package repl

import (
	"strings"
	"testing"

	"github.com/agentstation/bpec/internal/merge"
	"github.com/agentstation/bpec/internal/vocab"
)

func TestRunEchoesUntilQuit(t *testing.T) {
	v := vocab.New(256)
	v.InitBase()
	rules := merge.New(0)

	var out strings.Builder
	s := &Session{
		Vocab: v,
		Rules: rules,
		In:    strings.NewReader("ab\nquit\n"),
		Out:   &out,
	}
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Round-trip match: yes") {
		t.Fatalf("output missing round-trip line: %s", got)
	}
	if !strings.Contains(got, "Token count: 2") {
		t.Fatalf("output missing token count: %s", got)
	}
}

func TestRunHandlesHelp(t *testing.T) {
	v := vocab.New(256)
	v.InitBase()
	rules := merge.New(0)

	var out strings.Builder
	s := &Session{Vocab: v, Rules: rules, In: strings.NewReader(":help\nexit\n"), Out: &out}
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Commands:") {
		t.Fatalf("help text missing: %s", out.String())
	}
}
