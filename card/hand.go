package card

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards a player holds between turns.
const HandSize = 7

// Hand is a fixed seven slot hand. Slot order is only used for stable
// iteration; scoring never depends on it.
type Hand [HandSize]Card

// NewHand copies exactly HandSize cards into a Hand.
func NewHand(cards []Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("hand needs %d cards, got %d", HandSize, len(cards))
	}
	copy(h[:], cards)
	return h, h.Validate()
}

// Validate reports invalid or repeated cards.
func (h Hand) Validate() error {
	var seen Collection
	for i, c := range h {
		if !c.Valid() {
			return fmt.Errorf("slot %d holds an invalid card", i)
		}
		if seen.Contains(c) {
			return fmt.Errorf("%s appears more than once", c)
		}
		seen = seen.Add(c)
	}
	return nil
}

func (h Hand) Collection() Collection {
	return Of(h[:]...)
}

// Replace returns a copy of h with slot set to c.
func (h Hand) Replace(slot int, c Card) Hand {
	h[slot] = c
	return h
}

// Slot returns the slot holding c, or -1.
func (h Hand) Slot(c Card) int {
	for i, cc := range h {
		if cc == c {
			return i
		}
	}
	return -1
}

func (h Hand) String() string {
	names := make([]string, len(h))
	for i, c := range h {
		names[i] = c.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
