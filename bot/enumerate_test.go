package bot

import (
	"testing"

	"github.com/ChaseHBehrens/Fantasy-Realms-AI/card"
)

func TestEnumerate_CountsAndOrder(t *testing.T) {
	pile := card.Of(card.CardDragon, card.CardKing)
	unknown := card.Unknown(baseHand, pile)

	moves := enumerate(baseHand, pile, unknown)
	if len(moves) != 7*2+7 {
		t.Fatalf("expected %d moves, got %d", 7*2+7, len(moves))
	}
	// slot-major, pile in ascending card order
	if moves[0] != (move{draw: DrawDiscard(card.CardKing), slot: 0}) {
		t.Fatalf("unexpected first move %+v", moves[0])
	}
	if moves[1] != (move{draw: DrawDiscard(card.CardDragon), slot: 0}) {
		t.Fatalf("unexpected second move %+v", moves[1])
	}
	if moves[2].slot != 1 {
		t.Fatalf("expected slot 1 after pile exhausted, got %d", moves[2].slot)
	}
	for i, m := range moves[14:] {
		if m.draw.Source != FromDeck || m.slot != i {
			t.Fatalf("deck move %d: unexpected %+v", i, m)
		}
	}
}

func TestEnumerate_EmptyPileHasNoVisibleMoves(t *testing.T) {
	moves := enumerate(baseHand, 0, card.Unknown(baseHand, 0))
	if len(moves) != card.HandSize {
		t.Fatalf("expected %d deck moves, got %d", card.HandSize, len(moves))
	}
}

func TestEnumerate_EmptyUnknownSkipsDeck(t *testing.T) {
	pile := card.Of(card.CardKing)
	moves := enumerate(baseHand, pile, 0)
	if len(moves) != card.HandSize {
		t.Fatalf("expected %d visible moves, got %d", card.HandSize, len(moves))
	}
	for _, m := range moves {
		if m.draw.Source != FromDiscard {
			t.Fatalf("unexpected deck move %+v", m)
		}
	}
	if got := enumerate(baseHand, 0, 0); len(got) != 0 {
		t.Fatalf("expected no moves, got %d", len(got))
	}
}

func TestSwap_ReturnsFormerCardToPile(t *testing.T) {
	pile := card.Of(card.CardKing)
	h, d := swap(baseHand, pile, 3, card.CardKing)
	if h[3] != card.CardKing || baseHand[3] != card.CardForest {
		t.Fatalf("swap must copy: got %s from %s", h, baseHand)
	}
	if d.Contains(card.CardKing) || !d.Contains(card.CardForest) || d.Len() != 1 {
		t.Fatalf("unexpected pile %s", d)
	}
}

func TestSwap_SameCardIsNoop(t *testing.T) {
	pile := card.Of(card.CardKing)
	h, d := swap(baseHand, pile, 2, baseHand[2])
	if h != baseHand || d != pile {
		t.Fatalf("expected unchanged state, got %s %s", h, d)
	}

	e := evaluator{oracle: suitOracle}
	noop := e.value(baseHand, pile, nil, 0)
	if got := e.value(h, d, nil, 0); got != noop {
		t.Fatalf("expected noop score %v, got %v", noop, got)
	}
}

func TestMoveOutcomes_DeckCoversEveryUnknown(t *testing.T) {
	unknown := card.Of(card.CardKing, card.CardQueen, card.CardDragon)
	var seen card.Collection
	n := 0
	move{draw: DrawDeck(), slot: 5}.outcomes(baseHand, 0, unknown, func(h card.Hand, d card.Collection) {
		seen = seen.Add(h[5])
		if !d.Contains(baseHand[5]) {
			t.Fatalf("former card not returned to pile: %s", d)
		}
		n++
	})
	if n != 3 || seen != unknown {
		t.Fatalf("expected outcomes for %s, got %d covering %s", unknown, n, seen)
	}
}
