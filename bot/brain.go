// Package bot decides turns for automated players.
//
// A turn is two calls. DecideDraw picks where to draw from; DecideDiscard
// picks what to throw away once the drawn card is known. Brains are pure:
// the discard chosen while drawing travels in the returned Plan. Agent adds
// the per-instance memory orchestrators expect from the two-call protocol.
package bot

import (
	"fmt"

	"github.com/ChaseHBehrens/Fantasy-Realms-AI/card"
)

// View is a read-only snapshot of what the deciding player can see.
type View struct {
	Hand           card.Hand
	Discard        card.Collection
	OpponentsKnown []card.Collection
	// TurnsRemaining is the minimum number of turns this player still gets.
	TurnsRemaining int
}

// Unknown returns the cards that may still be in the face-down pile or in
// unseen parts of opponents' hands. Recomputed on every call.
func (v View) Unknown() card.Collection {
	return card.Unknown(v.Hand, v.Discard, v.OpponentsKnown...)
}

// DrawSource says where a card is drawn from.
type DrawSource uint8

const (
	FromDeck DrawSource = iota
	FromDiscard
)

func (s DrawSource) String() string {
	switch s {
	case FromDeck:
		return "deck"
	case FromDiscard:
		return "discard"
	}
	return "?"
}

// DrawAction is the draw half of a turn. Card is only set for FromDiscard.
type DrawAction struct {
	Source DrawSource
	Card   card.Card
}

func DrawDeck() DrawAction { return DrawAction{Source: FromDeck} }

func DrawDiscard(c card.Card) DrawAction { return DrawAction{Source: FromDiscard, Card: c} }

func (a DrawAction) String() string {
	if a.Source == FromDiscard {
		return fmt.Sprintf("discard:%s", a.Card)
	}
	return a.Source.String()
}

// CandidateTurn is one evaluated (draw, discard) pair.
type CandidateTurn struct {
	Draw       DrawAction
	Discard    card.Card
	Evaluation float64
}

// Plan is the result of a draw decision. When Committed is set the discard
// was fixed while drawing and DecideDiscard returns it unchanged.
type Plan struct {
	CandidateTurn
	Committed bool
}

// Brain is the interface every strategy implements.
type Brain interface {
	// Name returns a human-readable identifier for display and selection.
	Name() string
	// DecideDraw chooses the draw for this turn.
	DecideDraw(view View) Plan
	// DecideDiscard chooses the card to discard after drawing drawn.
	DecideDiscard(view View, drawn card.Card, plan Plan) card.Card
}
