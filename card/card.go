package card

import (
	"fmt"
	"strings"
)

// Card identifies one entry of the fixed catalog.
//
// Encoding: 1..CatalogSize in suit order (five per suit, three wilds last).
// The zero value is CardInvalid.
type Card byte

func (c Card) String() string {
	if !c.Valid() {
		return "Invalid"
	}
	return catalog[c].name
}

// Valid reports whether c is a catalog card.
func (c Card) Valid() bool {
	return c > CardInvalid && int(c) <= CatalogSize
}

// Suit returns the card's suit, SuitInvalid for CardInvalid.
func (c Card) Suit() Suit {
	if !c.Valid() {
		return SuitInvalid
	}
	return catalog[c].suit
}

// BaseStrength is the printed strength before any bonus or penalty.
func (c Card) BaseStrength() int {
	if !c.Valid() {
		return 0
	}
	return catalog[c].strength
}

// Parse resolves a card by name. Matching ignores case, spaces, '-' and '_',
// so "bell tower", "BellTower" and "bell_tower" are all CardBellTower.
func Parse(name string) (Card, error) {
	key := normalizeName(name)
	if key == "" {
		return CardInvalid, fmt.Errorf("invalid card name: %q", name)
	}
	if c, ok := byName[key]; ok {
		return c, nil
	}
	return CardInvalid, fmt.Errorf("unknown card: %q", strings.TrimSpace(name))
}

// ParseList parses a comma separated list of card names. Empty entries are skipped.
func ParseList(s string) ([]Card, error) {
	var out []Card
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := Parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// All returns every catalog card in encoding order.
func All() []Card {
	out := make([]Card, 0, CatalogSize)
	for c := Card(1); int(c) <= CatalogSize; c++ {
		out = append(out, c)
	}
	return out
}

var byName = func() map[string]Card {
	m := make(map[string]Card, CatalogSize)
	for c := Card(1); int(c) <= CatalogSize; c++ {
		m[normalizeName(catalog[c].name)] = c
	}
	return m
}()

func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '\t', '\n', '\r', '-', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
