package repository

import (
	"context"
	"time"

	"numconv/internal/domain/entity"
)

// HistoryRepository stores the rolling per-operation display log.
type HistoryRepository interface {
	Append(ctx context.Context, entry *entity.HistoryEntry) error
	Recent(ctx context.Context, op entity.Operation, limit int) ([]*entity.HistoryEntry, error)
	Clear(ctx context.Context, op entity.Operation) error
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
