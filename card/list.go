package card

import "math/rand"

// List is an ordered pile of cards, used to deal hypothetical positions.
type List []Card

// Shuffle permutes the list in place with the given source.
func (ds List) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(ds), func(i, j int) {
		ds[i], ds[j] = ds[j], ds[i]
	})
}

func (ds List) Count() int {
	return len(ds)
}

// PopCard removes the last card, CardInvalid when empty.
func (ds *List) PopCard() Card {
	total := ds.Count()
	if total == 0 {
		return CardInvalid
	}
	c := (*ds)[total-1]
	*ds = (*ds)[:total-1]
	return c
}

// PopCards removes size cards from the front.
func (ds *List) PopCards(size int) ([]Card, bool) {
	if size > ds.Count() {
		return nil, false
	}
	cards := make([]Card, size)
	copy(cards, (*ds)[:size])
	*ds = (*ds)[size:]
	return cards, true
}

// PopHand deals a Hand from the front of the list.
func (ds *List) PopHand() (Hand, bool) {
	cards, ok := ds.PopCards(HandSize)
	if !ok {
		return Hand{}, false
	}
	var h Hand
	copy(h[:], cards)
	return h, true
}

func (ds List) Collection() Collection {
	return Of(ds...)
}
