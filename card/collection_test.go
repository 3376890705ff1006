package card

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollection_Algebra(t *testing.T) {
	a := Of(CardKing, CardQueen, CardDragon)
	b := Of(CardQueen, CardUnicorn)

	if got := a.Union(b).Len(); got != 4 {
		t.Fatalf("union: expected 4, got %d", got)
	}
	if diff := cmp.Diff([]Card{CardKing, CardDragon}, a.Difference(b).Cards()); diff != "" {
		t.Fatalf("difference mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Card{CardQueen}, a.Intersect(b).Cards()); diff != "" {
		t.Fatalf("intersect mismatch (-want +got):\n%s", diff)
	}
	if !a.Contains(CardDragon) || a.Contains(CardUnicorn) {
		t.Fatalf("membership wrong for %s", a)
	}
	if got := a.Remove(CardKing).Remove(CardKing).Len(); got != 2 {
		t.Fatalf("remove: expected 2, got %d", got)
	}
}

func TestCollection_ComplementIsRelativeToCatalog(t *testing.T) {
	var empty Collection
	if got := empty.Complement().Len(); got != CatalogSize {
		t.Fatalf("expected %d, got %d", CatalogSize, got)
	}
	if !Catalog().Complement().Empty() {
		t.Fatalf("expected empty complement of catalog")
	}
	if empty.Complement().Contains(CardInvalid) {
		t.Fatalf("complement must not contain the invalid card")
	}
	s := Of(CardMirage)
	if s.Complement().Len() != CatalogSize-1 || s.Complement().Contains(CardMirage) {
		t.Fatalf("complement of %s is wrong", s)
	}
}

func TestCollection_IteratesAscending(t *testing.T) {
	s := Of(CardShapeshifter, CardMountain, CardKnights)
	want := []Card{CardMountain, CardKnights, CardShapeshifter}
	if diff := cmp.Diff(want, s.Cards()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if Of(CardInvalid).Len() != 0 {
		t.Fatalf("invalid card must not be added")
	}
}

func TestUnknown(t *testing.T) {
	hand := Hand{CardMountain, CardCavern, CardBellTower, CardForest, CardEarthElemental, CardFountainOfLife, CardSwamp}
	discard := Of(CardKing, CardQueen)
	known := []Collection{Of(CardDragon), Of(CardUnicorn, CardHydra)}

	u := Unknown(hand, discard, known...)
	if got, want := u.Len(), CatalogSize-7-2-3; got != want {
		t.Fatalf("expected %d unknown cards, got %d", want, got)
	}
	for _, c := range []Card{CardMountain, CardKing, CardDragon, CardHydra} {
		if u.Contains(c) {
			t.Fatalf("%s should not be unknown", c)
		}
	}
	if !u.Contains(CardWildfire) {
		t.Fatalf("Wildfire should be unknown")
	}
}

func TestList_DealsDistinctHands(t *testing.T) {
	deck := List(All())
	deck.Shuffle(rand.New(rand.NewSource(7)))

	h1, ok := deck.PopHand()
	if !ok {
		t.Fatalf("expected first hand")
	}
	h2, ok := deck.PopHand()
	if !ok {
		t.Fatalf("expected second hand")
	}
	if err := h1.Validate(); err != nil {
		t.Fatalf("hand 1 invalid: %v", err)
	}
	if !h1.Collection().Intersect(h2.Collection()).Empty() {
		t.Fatalf("hands overlap: %s %s", h1, h2)
	}
	if deck.Count() != CatalogSize-14 {
		t.Fatalf("expected %d left, got %d", CatalogSize-14, deck.Count())
	}
	last := deck[len(deck)-1]
	if got := deck.PopCard(); got != last {
		t.Fatalf("expected %s, got %s", last, got)
	}
}
