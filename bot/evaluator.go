package bot

import (
	"golang.org/x/sync/errgroup"

	"github.com/ChaseHBehrens/Fantasy-Realms-AI/card"
	"github.com/ChaseHBehrens/Fantasy-Realms-AI/oracle"
)

// maxLookahead caps the extra search plies. Deeper values behave like 1.
const maxLookahead = 1

// evaluator scores hypothetical states with an oracle, optionally looking
// one turn further ahead.
type evaluator struct {
	oracle  oracle.Oracle
	workers int
}

// value is the score of a state with turns still to play. With no turns
// left it is the oracle score. Otherwise it is the best of standing pat and
// every one-move continuation, deck draws counted at their mean.
func (e *evaluator) value(hand card.Hand, discard card.Collection, known []card.Collection, turns int) float64 {
	if turns <= 0 {
		return float64(e.oracle.Score(hand, discard))
	}
	if turns > maxLookahead {
		return e.value(hand, discard, known, maxLookahead)
	}
	unknown := card.Unknown(hand, discard, known...)
	best := float64(e.oracle.Score(hand, discard))
	for _, m := range enumerate(hand, discard, unknown) {
		if v := e.moveValue(m, hand, discard, unknown, known, turns-1); v > best {
			best = v
		}
	}
	return best
}

// moveValue averages value over the move's outcomes. Every unseen card is
// taken as equally likely.
func (e *evaluator) moveValue(m move, hand card.Hand, discard, unknown card.Collection, known []card.Collection, turns int) float64 {
	sum, n := 0.0, 0
	m.outcomes(hand, discard, unknown, func(h card.Hand, d card.Collection) {
		sum += e.value(h, d, known, turns)
		n++
	})
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// bestTurn picks the draw for view. Standing pat is the starting point and
// is reported as a deck draw; a move replaces the running best only when
// strictly better, so ties go to the first move in discovery order.
func (e *evaluator) bestTurn(view View, turns int) CandidateTurn {
	known := view.OpponentsKnown
	unknown := view.Unknown()
	best := CandidateTurn{
		Draw:       DrawDeck(),
		Discard:    view.Hand[0],
		Evaluation: e.value(view.Hand, view.Discard, known, turns),
	}
	moves := enumerate(view.Hand, view.Discard, unknown)
	scores := e.scoreMoves(moves, func(m move) float64 {
		return e.moveValue(m, view.Hand, view.Discard, unknown, known, turns)
	})
	for i, m := range moves {
		if scores[i] > best.Evaluation {
			best = CandidateTurn{Draw: m.draw, Discard: view.Hand[m.slot], Evaluation: scores[i]}
		}
	}
	return best
}

// bestDiscard decides what to throw away once drawn is in hand. Discarding
// drawn itself keeps the hand and is the starting point; then each slot in
// order.
func (e *evaluator) bestDiscard(view View, drawn card.Card, turns int) CandidateTurn {
	known := view.OpponentsKnown
	best := CandidateTurn{
		Draw:       DrawDeck(),
		Discard:    drawn,
		Evaluation: e.value(view.Hand, view.Discard, known, turns),
	}
	for slot, held := range view.Hand {
		h, d := swap(view.Hand, view.Discard, slot, drawn)
		if v := e.value(h, d, known, turns); v > best.Evaluation {
			best = CandidateTurn{Draw: DrawDeck(), Discard: held, Evaluation: v}
		}
	}
	return best
}

// scoreMoves evaluates moves, in parallel when more than one worker is
// configured. Results are indexed by discovery order so the reduction in
// bestTurn does not depend on scheduling.
func (e *evaluator) scoreMoves(moves []move, score func(move) float64) []float64 {
	out := make([]float64, len(moves))
	if e.workers <= 1 || len(moves) < 2 {
		for i, m := range moves {
			out[i] = score(m)
		}
		return out
	}
	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			out[i] = score(m)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
