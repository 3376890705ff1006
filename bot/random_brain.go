package bot

import (
	"math/rand"

	"github.com/ChaseHBehrens/Fantasy-Realms-AI/card"
)

// RandomBrain draws uniformly among every discard-pile card and the deck,
// then discards uniformly among the hand and the drawn card.
type RandomBrain struct {
	rng *rand.Rand
}

// NewRandomBrain creates a RandomBrain with its own seeded source.
func NewRandomBrain(seed int64) *RandomBrain {
	return &RandomBrain{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBrain) Name() string { return KindRandom.String() }

func (b *RandomBrain) DecideDraw(view View) Plan {
	mustValid("DecideDraw", view.Validate())
	choices := view.Discard.Cards()
	pick := b.rng.Intn(len(choices) + 1)
	if pick == len(choices) {
		return Plan{CandidateTurn: CandidateTurn{Draw: DrawDeck()}}
	}
	return Plan{CandidateTurn: CandidateTurn{Draw: DrawDiscard(choices[pick])}}
}

func (b *RandomBrain) DecideDiscard(view View, drawn card.Card, plan Plan) card.Card {
	mustValid("DecideDiscard", view.ValidateDrawn(drawn, plan))
	pick := b.rng.Intn(card.HandSize + 1)
	if pick == card.HandSize {
		return drawn
	}
	return view.Hand[pick]
}
