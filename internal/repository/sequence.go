package repository

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/stride/internal/domain"
)

// MemorySequence allocates ids from an atomic counter. Allocation is safe
// under concurrent callers and never repeats a value.
type MemorySequence struct {
	next atomic.Int64
}

// NewMemorySequence returns a sequence whose first id is 1.
func NewMemorySequence() *MemorySequence {
	return &MemorySequence{}
}

func (s *MemorySequence) NextID(ctx context.Context) (domain.ID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return domain.ID(s.next.Add(1)), nil
}
