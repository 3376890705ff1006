package bot

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ChaseHBehrens/Fantasy-Realms-AI/card"
)

// Agent drives a Brain through the two-call turn protocol. It remembers the
// Plan from DecideDraw until the matching DecideDiscard. An Agent serves
// one seat and is not safe for concurrent use.
type Agent struct {
	id      uuid.UUID
	brain   Brain
	logger  *zap.Logger
	pending *Plan
}

// NewAgent creates an agent around brain. A nil logger disables logging.
func NewAgent(brain Brain, logger *zap.Logger) *Agent {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New()
	return &Agent{
		id:     id,
		brain:  brain,
		logger: logger.With(zap.String("agent", brain.Name()), zap.Stringer("agent_id", id)),
	}
}

// NewAgentByName builds the brain for a strategy name and wraps it.
func NewAgentByName(name string, opts ...Option) (*Agent, error) {
	o := buildOptions(opts)
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	brain, err := newBrain(kind, o)
	if err != nil {
		return nil, err
	}
	return NewAgent(brain, o.logger), nil
}

func (a *Agent) ID() uuid.UUID { return a.id }

func (a *Agent) Name() string { return a.brain.Name() }

func (a *Agent) Brain() Brain { return a.brain }

// Pending returns the plan awaiting DecideDiscard, if any.
func (a *Agent) Pending() (Plan, bool) {
	if a.pending == nil {
		return Plan{}, false
	}
	return *a.pending, true
}

// DecideDraw clears any remembered plan, decides the draw and remembers the
// new plan for DecideDiscard.
func (a *Agent) DecideDraw(view View) (DrawAction, error) {
	a.pending = nil
	if err := view.Validate(); err != nil {
		return DrawAction{}, &UsageError{Op: "DecideDraw", Err: err}
	}
	plan := a.brain.DecideDraw(view)
	a.pending = &plan

	fields := []zap.Field{
		zap.Stringer("draw", plan.Draw),
		zap.Float64("evaluation", plan.Evaluation),
	}
	if plan.Committed {
		fields = append(fields, zap.Stringer("discard", plan.Discard))
	}
	a.logger.Debug("bot draw decided", fields...)
	return plan.Draw, nil
}

// DecideDiscard answers the pending draw. A committed discard is returned
// whatever drawn is.
func (a *Agent) DecideDiscard(view View, drawn card.Card) (card.Card, error) {
	if a.pending == nil {
		return card.CardInvalid, &UsageError{Op: "DecideDiscard", Err: ErrNoPendingDraw}
	}
	plan := *a.pending
	if err := view.ValidateDrawn(drawn, plan); err != nil {
		return card.CardInvalid, &UsageError{Op: "DecideDiscard", Err: err}
	}
	a.pending = nil

	discard := a.brain.DecideDiscard(view, drawn, plan)
	a.logger.Debug("bot discard decided",
		zap.Stringer("drawn", drawn),
		zap.Stringer("discard", discard),
		zap.Bool("committed", plan.Committed),
	)
	return discard, nil
}
