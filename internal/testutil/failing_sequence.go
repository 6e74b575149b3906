package testutil

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/stride/internal/domain"
)

// IDSource matches repository.Sequence without importing it, so repository
// tests can use these helpers.
type IDSource interface {
	NextID(ctx context.Context) (domain.ID, error)
}

// FailOnNthSequence wraps an IDSource and injects Err on the Nth NextID call.
// Calls are counted starting at 1; every other call passes through.
type FailOnNthSequence struct {
	Seq    IDSource
	FailOn int32
	Err    error

	count atomic.Int32
}

func (s *FailOnNthSequence) NextID(ctx context.Context) (domain.ID, error) {
	if s.count.Add(1) == s.FailOn {
		return 0, s.Err
	}
	return s.Seq.NextID(ctx)
}

// FixedClock returns a clock func that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
