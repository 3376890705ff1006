package bot

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"random":       KindRandom,
		" Greedy ":     KindGreedy,
		"LOOKAHEAD\n": KindLookahead,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		if err != nil {
			t.Fatalf("ParseKind(%q) err: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q): expected %s, got %s", in, want, got)
		}
	}
	if _, err := ParseKind("alphazero"); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestNew_EveryKind(t *testing.T) {
	for _, k := range Kinds() {
		b, err := New(k, WithSeed(1))
		if err != nil {
			t.Fatalf("New(%s) err: %v", k, err)
		}
		if b.Name() != k.String() {
			t.Fatalf("expected name %q, got %q", k.String(), b.Name())
		}
	}
	if _, err := New(Kind(99)); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
	if _, err := NewByName("nobody"); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
	if Kind(99).String() != "kind(99)" {
		t.Fatalf("unexpected name for unknown kind: %s", Kind(99))
	}
}

func TestNew_SearchBrainLookaheadFlag(t *testing.T) {
	g, _ := New(KindGreedy)
	l, _ := New(KindLookahead)
	if g.(*SearchBrain).Lookahead() || !l.(*SearchBrain).Lookahead() {
		t.Fatalf("lookahead flag wrong for greedy/lookahead")
	}
}

func TestMinTurnsRemaining(t *testing.T) {
	cases := []struct {
		discard, players, want int
	}{
		{0, 3, 3},
		{4, 3, 2},
		{9, 2, 0},
		{10, 3, 0},
		{12, 3, 0},
		{2, 0, 0},
	}
	for _, c := range cases {
		if got := MinTurnsRemaining(c.discard, c.players); got != c.want {
			t.Fatalf("MinTurnsRemaining(%d, %d): expected %d, got %d", c.discard, c.players, c.want, got)
		}
	}
}
