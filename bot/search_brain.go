package bot

import (
	"go.uber.org/zap"

	"github.com/ChaseHBehrens/Fantasy-Realms-AI/card"
)

// SearchBrain plays the move with the best evaluation at the end of its
// turn. Visible discard-pile cards are scored directly; a deck draw is
// scored as the mean over every card that could be drawn. With lookahead
// enabled each outcome is searched one more turn before scoring.
type SearchBrain struct {
	kind   Kind
	eval   evaluator
	logger *zap.Logger
}

func newSearchBrain(kind Kind, o options) *SearchBrain {
	return &SearchBrain{
		kind:   kind,
		eval:   evaluator{oracle: o.oracle, workers: o.workers},
		logger: o.logger,
	}
}

func (b *SearchBrain) Name() string { return b.kind.String() }

// Lookahead reports whether the brain searches past the current turn.
func (b *SearchBrain) Lookahead() bool { return b.kind == KindLookahead }

func (b *SearchBrain) turns(view View) int {
	if !b.Lookahead() {
		return 0
	}
	return view.TurnsRemaining
}

// DecideDraw implements Brain. A discard-pile swap commits its discard in
// the returned Plan; a deck draw leaves it for DecideDiscard.
func (b *SearchBrain) DecideDraw(view View) Plan {
	mustValid("DecideDraw", view.Validate())
	best := b.eval.bestTurn(view, b.turns(view))
	plan := Plan{CandidateTurn: best, Committed: best.Draw.Source == FromDiscard}
	b.logger.Debug("bot search finished",
		zap.String("strategy", b.Name()),
		zap.Int("discard_pile", view.Discard.Len()),
		zap.Int("turns_remaining", view.TurnsRemaining),
		zap.Stringer("draw", plan.Draw),
		zap.Float64("evaluation", plan.Evaluation),
	)
	return plan
}

// DecideDiscard implements Brain. A committed discard is returned as is.
func (b *SearchBrain) DecideDiscard(view View, drawn card.Card, plan Plan) card.Card {
	if plan.Committed {
		return plan.Discard
	}
	mustValid("DecideDiscard", view.ValidateDrawn(drawn, plan))
	return b.eval.bestDiscard(view, drawn, b.turns(view)).Discard
}
