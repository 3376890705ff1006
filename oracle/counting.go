package oracle

import (
	"sync/atomic"

	"github.com/ChaseHBehrens/Fantasy-Realms-AI/card"
)

// Counting records how many times the wrapped Oracle is consulted.
type Counting struct {
	next  Oracle
	calls atomic.Int64
}

func NewCounting(next Oracle) *Counting {
	return &Counting{next: next}
}

func (o *Counting) Score(hand card.Hand, discard card.Collection) int {
	o.calls.Add(1)
	return o.next.Score(hand, discard)
}

// Calls returns the number of Score calls so far.
func (o *Counting) Calls() int64 { return o.calls.Load() }

// Reset zeroes the counter and returns the previous value.
func (o *Counting) Reset() int64 { return o.calls.Swap(0) }
