package bot

import "github.com/ChaseHBehrens/Fantasy-Realms-AI/card"

// move is a draw into one slot. Deck moves stand for every unknown card
// being drawn; their value is the mean over those outcomes.
type move struct {
	draw DrawAction
	slot int
}

// enumerate lists every one-move outcome in discovery order: all visible
// moves (slot ascending, then pile order), then one deck move per slot.
// Deck moves are left out when nothing is unknown.
func enumerate(hand card.Hand, discard, unknown card.Collection) []move {
	size := card.HandSize * discard.Len()
	if !unknown.Empty() {
		size += card.HandSize
	}
	out := make([]move, 0, size)
	for slot := 0; slot < card.HandSize; slot++ {
		discard.Each(func(c card.Card) {
			out = append(out, move{draw: DrawDiscard(c), slot: slot})
		})
	}
	if unknown.Empty() {
		return out
	}
	for slot := 0; slot < card.HandSize; slot++ {
		out = append(out, move{draw: DrawDeck(), slot: slot})
	}
	return out
}

// outcomes calls fn with every state the move can lead to.
func (m move) outcomes(hand card.Hand, discard, unknown card.Collection, fn func(card.Hand, card.Collection)) {
	if m.draw.Source == FromDiscard {
		fn(swap(hand, discard, m.slot, m.draw.Card))
		return
	}
	unknown.Each(func(c card.Card) {
		fn(swap(hand, discard, m.slot, c))
	})
}

// swap puts draw into slot and returns the former occupant to the pile.
// Both results are copies. Drawing the card already held is a no-op.
func swap(hand card.Hand, discard card.Collection, slot int, draw card.Card) (card.Hand, card.Collection) {
	old := hand[slot]
	if old == draw {
		return hand, discard
	}
	return hand.Replace(slot, draw), discard.Remove(draw).Add(old)
}
