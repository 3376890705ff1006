package bot

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ChaseHBehrens/Fantasy-Realms-AI/card"
	"github.com/ChaseHBehrens/Fantasy-Realms-AI/oracle"
)

var baseHand = card.Hand{
	card.CardMountain, card.CardCavern, card.CardBellTower, card.CardForest,
	card.CardEarthElemental, card.CardFountainOfLife, card.CardSwamp,
}

// valueOracle scores a hand as the sum of per-card values; unlisted cards
// are worth def. The discard pile is ignored.
func valueOracle(values map[card.Card]int, def int) oracle.Func {
	return func(hand card.Hand, _ card.Collection) int {
		total := 0
		for _, c := range hand {
			if v, ok := values[c]; ok {
				total += v
			} else {
				total += def
			}
		}
		return total
	}
}

// suitOracle rewards base strength plus 5 for every card sharing its suit
// with another card in hand.
var suitOracle = oracle.Func(func(hand card.Hand, _ card.Collection) int {
	counts := make(map[card.Suit]int, len(hand))
	for _, c := range hand {
		counts[c.Suit()]++
	}
	total := 0
	for _, c := range hand {
		total += c.BaseStrength()
		if counts[c.Suit()] > 1 {
			total += 5
		}
	}
	return total
})

// everythingElse returns a known set that leaves exactly keep unknown.
func everythingElse(hand card.Hand, discard card.Collection, keep ...card.Card) card.Collection {
	return card.Catalog().
		Difference(hand.Collection()).
		Difference(discard).
		Difference(card.Of(keep...))
}

// randomView deals a legal position from a shuffled catalog.
func randomView(rng *rand.Rand) View {
	deck := card.List(card.All())
	deck.Shuffle(rng)
	hand, _ := deck.PopHand()

	pile, _ := deck.PopCards(rng.Intn(GameEndDiscardSize))
	view := View{Hand: hand, Discard: card.Of(pile...)}
	for i := rng.Intn(3) + 1; i > 0; i-- {
		known, _ := deck.PopCards(rng.Intn(4))
		view.OpponentsKnown = append(view.OpponentsKnown, card.Of(known...))
	}
	view.TurnsRemaining = MinTurnsRemaining(view.Discard.Len(), len(view.OpponentsKnown)+1)
	return view
}

// applyTurn returns the hand after drawing drawn and discarding discard.
func applyTurn(hand card.Hand, drawn, discard card.Card) card.Hand {
	if discard == drawn {
		return hand
	}
	return hand.Replace(hand.Slot(discard), drawn)
}

func expectUsagePanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", r)
		}
		var usage *UsageError
		if !errors.As(err, &usage) {
			t.Fatalf("expected *UsageError, got %T", err)
		}
		if !errors.Is(err, target) {
			t.Fatalf("expected %v, got %v", target, err)
		}
	}()
	fn()
}

func mustBrain(t *testing.T, kind Kind, opts ...Option) Brain {
	t.Helper()
	b, err := New(kind, opts...)
	if err != nil {
		t.Fatalf("New(%s) err: %v", kind, err)
	}
	return b
}
