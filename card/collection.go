package card

import (
	"math/bits"
	"strings"
)

// Collection is an unordered set of catalog cards stored as a bitset.
// Bit i is set when Card(i) is a member. It is a value type; every
// operation returns a new Collection.
type Collection uint64

// catalogMask has one bit per valid card.
const catalogMask Collection = ((1 << (CatalogSize + 1)) - 1) &^ 1

// Of builds a collection from cards. Invalid cards are ignored.
func Of(cards ...Card) Collection {
	var out Collection
	for _, c := range cards {
		out = out.Add(c)
	}
	return out
}

// Catalog returns the collection holding every card.
func Catalog() Collection { return catalogMask }

func (s Collection) Add(c Card) Collection {
	if !c.Valid() {
		return s
	}
	return s | 1<<c
}

func (s Collection) Remove(c Card) Collection {
	if !c.Valid() {
		return s
	}
	return s &^ (1 << c)
}

func (s Collection) Contains(c Card) bool {
	return c.Valid() && s&(1<<c) != 0
}

func (s Collection) Union(o Collection) Collection { return s | o }

func (s Collection) Intersect(o Collection) Collection { return s & o }

func (s Collection) Difference(o Collection) Collection { return s &^ o }

// Complement is relative to the full catalog.
func (s Collection) Complement() Collection { return catalogMask &^ s }

func (s Collection) Len() int { return bits.OnesCount64(uint64(s & catalogMask)) }

func (s Collection) Empty() bool { return s&catalogMask == 0 }

// Each calls fn for every member in ascending card order.
func (s Collection) Each(fn func(Card)) {
	rest := uint64(s & catalogMask)
	for rest != 0 {
		i := bits.TrailingZeros64(rest)
		fn(Card(i))
		rest &= rest - 1
	}
}

// Cards returns the members in ascending card order.
func (s Collection) Cards() []Card {
	out := make([]Card, 0, s.Len())
	s.Each(func(c Card) { out = append(out, c) })
	return out
}

func (s Collection) String() string {
	names := make([]string, 0, s.Len())
	s.Each(func(c Card) { names = append(names, c.String()) })
	return "{" + strings.Join(names, ", ") + "}"
}

// Unknown returns the cards that could still be unseen: the catalog minus
// the hand, the discard pile and everything opponents are known to hold.
func Unknown(hand Hand, discard Collection, known ...Collection) Collection {
	seen := hand.Collection().Union(discard)
	for _, k := range known {
		seen = seen.Union(k)
	}
	return seen.Complement()
}
