package bot

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ChaseHBehrens/Fantasy-Realms-AI/oracle"
)

// Kind enumerates the available strategies.
type Kind uint8

const (
	KindRandom Kind = iota + 1
	KindGreedy
	KindLookahead
)

var kindNames = map[Kind]string{
	KindRandom:    "random",
	KindGreedy:    "greedy",
	KindLookahead: "lookahead",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Kinds returns every strategy in declaration order.
func Kinds() []Kind {
	return []Kind{KindRandom, KindGreedy, KindLookahead}
}

// ParseKind resolves a strategy name, ignoring case and surrounding space.
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if kindNames[k] == key {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, strings.TrimSpace(name))
}

type options struct {
	oracle  oracle.Oracle
	workers int
	logger  *zap.Logger
	seed    int64
}

// Option configures New and NewAgent.
type Option func(*options)

// WithOracle sets the scoring oracle. Defaults to oracle.BaseStrength.
// With more than one worker the oracle must be safe for concurrent use.
func WithOracle(o oracle.Oracle) Option {
	return func(opts *options) { opts.oracle = o }
}

// WithWorkers scores top-level moves on up to n goroutines.
func WithWorkers(n int) Option {
	return func(opts *options) { opts.workers = n }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(opts *options) { opts.logger = l }
}

// WithSeed seeds the random strategy. 0 means time-based.
func WithSeed(seed int64) Option {
	return func(opts *options) { opts.seed = seed }
}

func buildOptions(opts []Option) options {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.oracle == nil {
		o.oracle = oracle.BaseStrength{}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	return o
}

// New creates the brain for kind.
func New(kind Kind, opts ...Option) (Brain, error) {
	return newBrain(kind, buildOptions(opts))
}

// NewByName creates a brain from its strategy name.
func NewByName(name string, opts ...Option) (Brain, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return New(kind, opts...)
}

func newBrain(kind Kind, o options) (Brain, error) {
	switch kind {
	case KindRandom:
		return NewRandomBrain(o.seed), nil
	case KindGreedy, KindLookahead:
		return newSearchBrain(kind, o), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, kind)
	}
}
