package bot

import (
	"errors"
	"fmt"

	"github.com/ChaseHBehrens/Fantasy-Realms-AI/card"
)

var (
	ErrInvalidHand     = errors.New("invalid hand")
	ErrCardConflict    = errors.New("card is in more than one place")
	ErrNoPendingDraw   = errors.New("discard requested without a pending draw")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// UsageError reports a call that breaks the engine's preconditions.
// Brains panic with it; Agent returns it.
type UsageError struct {
	Op  string
	Err error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("bot: %s: %v", e.Op, e.Err)
}

func (e *UsageError) Unwrap() error { return e.Err }

func mustValid(op string, err error) {
	if err != nil {
		panic(&UsageError{Op: op, Err: err})
	}
}

// Validate checks that the hand is seven distinct cards and that no card is
// in two visible places at once.
func (v View) Validate() error {
	if err := v.Hand.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHand, err)
	}
	seen := v.Hand.Collection()
	if overlap := seen.Intersect(v.Discard); !overlap.Empty() {
		return fmt.Errorf("%w: %s in hand and discard pile", ErrCardConflict, overlap)
	}
	seen = seen.Union(v.Discard)
	for i, known := range v.OpponentsKnown {
		if overlap := seen.Intersect(known); !overlap.Empty() {
			return fmt.Errorf("%w: %s known for opponent %d", ErrCardConflict, overlap, i)
		}
		seen = seen.Union(known)
	}
	return nil
}

// ValidateDrawn checks the drawn card handed to DecideDiscard. Committed
// plans ignore the drawn card, so nothing is checked for them.
func (v View) ValidateDrawn(drawn card.Card, plan Plan) error {
	if plan.Committed {
		return nil
	}
	if err := v.Validate(); err != nil {
		return err
	}
	if !drawn.Valid() {
		return fmt.Errorf("%w: drawn card is invalid", ErrCardConflict)
	}
	if v.Hand.Collection().Contains(drawn) {
		return fmt.Errorf("%w: drawn %s is already in hand", ErrCardConflict, drawn)
	}
	if plan.Draw.Source == FromDiscard {
		return nil
	}
	if v.Discard.Contains(drawn) {
		return fmt.Errorf("%w: drawn %s is in the discard pile", ErrCardConflict, drawn)
	}
	for i, known := range v.OpponentsKnown {
		if known.Contains(drawn) {
			return fmt.Errorf("%w: drawn %s is known for opponent %d", ErrCardConflict, drawn, i)
		}
	}
	return nil
}
