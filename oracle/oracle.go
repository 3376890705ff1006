// Package oracle adapts hand-scoring functions for the decision engine.
//
// The scoring formula itself lives outside this module. An Oracle only has
// to be total, deterministic and free of side effects; the engine may call
// it thousands of times per decision.
package oracle

import "github.com/ChaseHBehrens/Fantasy-Realms-AI/card"

// Oracle scores a hand against the discard pile at the end of the game.
type Oracle interface {
	Score(hand card.Hand, discard card.Collection) int
}

// Func lets an ordinary function act as an Oracle.
type Func func(hand card.Hand, discard card.Collection) int

func (f Func) Score(hand card.Hand, discard card.Collection) int { return f(hand, discard) }

// BaseStrength sums printed strengths and ignores every bonus and penalty.
// It is the reference oracle used when no scoring service is configured.
type BaseStrength struct{}

func (BaseStrength) Score(hand card.Hand, _ card.Collection) int {
	total := 0
	for _, c := range hand {
		total += c.BaseStrength()
	}
	return total
}
