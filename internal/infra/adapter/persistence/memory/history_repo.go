// Package memory provides process-local repository implementations.
package memory

import (
	"context"
	"sync"
	"time"

	"numconv/internal/domain/entity"
	"numconv/internal/repository"
)

// DefaultCapacity is the number of entries kept per operation.
const DefaultCapacity = 5

// HistoryRepo keeps, per operation, only the most recent Capacity entries.
// Entries are held newest first.
type HistoryRepo struct {
	mu       sync.RWMutex
	capacity int
	logs     map[entity.Operation][]*entity.HistoryEntry
	observe  func(op entity.Operation, n int)
}

// Option configures a HistoryRepo.
type Option func(*HistoryRepo)

// WithLengthObserver registers fn to receive the new entry count of an
// operation after every change. fn runs while the write lock is held, so
// successive calls for one operation are never reordered; it must not
// call back into the repository.
func WithLengthObserver(fn func(op entity.Operation, n int)) Option {
	return func(r *HistoryRepo) { r.observe = fn }
}

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// NewHistoryRepo returns an empty repository. A non-positive capacity
// falls back to DefaultCapacity.
func NewHistoryRepo(capacity int, opts ...Option) *HistoryRepo {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	r := &HistoryRepo{
		capacity: capacity,
		logs:     make(map[entity.Operation][]*entity.HistoryEntry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// notify must be called with mu held for writing.
func (r *HistoryRepo) notify(op entity.Operation) {
	if r.observe != nil {
		r.observe(op, len(r.logs[op]))
	}
}

// Capacity returns the per-operation cap.
func (r *HistoryRepo) Capacity() int {
	return r.capacity
}

func (r *HistoryRepo) Append(ctx context.Context, entry *entity.HistoryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entry == nil {
		return &entity.ValidationError{Field: "entry", Message: "is required"}
	}
	if !entry.Operation.Valid() {
		return &entity.ValidationError{Field: "operation", Message: "is invalid"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *entry
	log := r.logs[entry.Operation]
	next := make([]*entity.HistoryEntry, 0, r.capacity)
	next = append(next, &cp)
	for _, e := range log {
		if len(next) == r.capacity {
			break
		}
		next = append(next, e)
	}
	r.logs[entry.Operation] = next
	r.notify(entry.Operation)
	return nil
}

// Recent returns up to limit entries for op, newest first. A non-positive
// limit returns everything retained.
func (r *HistoryRepo) Recent(ctx context.Context, op entity.Operation, limit int) ([]*entity.HistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.logs[op]
	if limit <= 0 || limit > len(log) {
		limit = len(log)
	}
	out := make([]*entity.HistoryEntry, 0, limit)
	for _, e := range log[:limit] {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *HistoryRepo) Clear(ctx context.Context, op entity.Operation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.logs, op)
	r.notify(op)
	return nil
}

// PurgeOlderThan drops entries created before cutoff and returns how many were removed.
func (r *HistoryRepo) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for op, log := range r.logs {
		kept := log[:0:0]
		for _, e := range log {
			if e.CreatedAt.Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		if len(kept) == 0 {
			delete(r.logs, op)
		} else {
			r.logs[op] = kept
		}
		if len(kept) != len(log) {
			r.notify(op)
		}
	}
	return removed, nil
}
