package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numconv/internal/domain/entity"
	"numconv/internal/infra/adapter/persistence/memory"
)

var base = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func entry(op entity.Operation, i int) *entity.HistoryEntry {
	in := fmt.Sprint(i)
	return entity.NewHistoryEntry(op, in, in, "line "+in, base.Add(time.Duration(i)*time.Minute))
}

func displays(entries []*entity.HistoryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Display)
	}
	return out
}

func TestHistoryRepo_KeepsNewestFive(t *testing.T) {
	repo := memory.NewHistoryRepo(0)
	ctx := context.Background()
	assert.Equal(t, memory.DefaultCapacity, repo.Capacity())

	for i := 1; i <= 7; i++ {
		require.NoError(t, repo.Append(ctx, entry(entity.OpPrime, i)))
	}

	got, err := repo.Recent(ctx, entity.OpPrime, 0)
	require.NoError(t, err)

	want := []string{"line 7", "line 6", "line 5", "line 4", "line 3"}
	if diff := cmp.Diff(want, displays(got)); diff != "" {
		t.Errorf("Recent mismatch (-want +got):\n%s", diff)
	}
}

func TestHistoryRepo_OperationsAreIndependent(t *testing.T) {
	repo := memory.NewHistoryRepo(3)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, entry(entity.OpParity, 1)))
	require.NoError(t, repo.Append(ctx, entry(entity.OpFactorial, 2)))

	got, err := repo.Recent(ctx, entity.OpParity, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"line 1"}, displays(got))

	got, err = repo.Recent(ctx, entity.OpIntToRoman, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistoryRepo_RecentLimitAndCopy(t *testing.T) {
	repo := memory.NewHistoryRepo(5)
	ctx := context.Background()
	for i := 1; i <= 4; i++ {
		require.NoError(t, repo.Append(ctx, entry(entity.OpFactorial, i)))
	}

	got, err := repo.Recent(ctx, entity.OpFactorial, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"line 4", "line 3"}, displays(got))

	got[0].Display = "mutated"
	again, err := repo.Recent(ctx, entity.OpFactorial, 1)
	require.NoError(t, err)
	assert.Equal(t, "line 4", again[0].Display)
}

func TestHistoryRepo_Clear(t *testing.T) {
	repo := memory.NewHistoryRepo(5)
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, entry(entity.OpRomanToInt, 1)))
	require.NoError(t, repo.Append(ctx, entry(entity.OpPrime, 2)))

	require.NoError(t, repo.Clear(ctx, entity.OpRomanToInt))

	got, _ := repo.Recent(ctx, entity.OpRomanToInt, 0)
	assert.Empty(t, got)
	got, _ = repo.Recent(ctx, entity.OpPrime, 0)
	assert.Len(t, got, 1)
}

func TestHistoryRepo_PurgeOlderThan(t *testing.T) {
	repo := memory.NewHistoryRepo(5)
	ctx := context.Background()
	for i := 1; i <= 4; i++ {
		require.NoError(t, repo.Append(ctx, entry(entity.OpParity, i)))
	}
	require.NoError(t, repo.Append(ctx, entry(entity.OpPrime, 1)))

	removed, err := repo.PurgeOlderThan(ctx, base.Add(3*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	got, _ := repo.Recent(ctx, entity.OpParity, 0)
	assert.Equal(t, []string{"line 4", "line 3"}, displays(got))
	got, _ = repo.Recent(ctx, entity.OpPrime, 0)
	assert.Empty(t, got)
}

func TestHistoryRepo_Validation(t *testing.T) {
	repo := memory.NewHistoryRepo(5)
	ctx := context.Background()

	assert.Error(t, repo.Append(ctx, nil))
	assert.Error(t, repo.Append(ctx, &entity.HistoryEntry{Operation: "sqrt"}))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, repo.Append(cancelled, entry(entity.OpPrime, 1)), context.Canceled)
	_, err := repo.Recent(cancelled, entity.OpPrime, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHistoryRepo_ConcurrentAppend(t *testing.T) {
	repo := memory.NewHistoryRepo(5)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Append(ctx, entry(entity.OpFactorial, i))
			_, _ = repo.Recent(ctx, entity.OpFactorial, 0)
		}(i)
	}
	wg.Wait()

	got, err := repo.Recent(ctx, entity.OpFactorial, 0)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

type lengthLog struct {
	mu    sync.Mutex
	calls []string
	last  map[entity.Operation]int
}

func (l *lengthLog) observe(op entity.Operation, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.last == nil {
		l.last = make(map[entity.Operation]int)
	}
	l.calls = append(l.calls, fmt.Sprintf("%s=%d", op, n))
	l.last[op] = n
}

func TestHistoryRepo_LengthObserver(t *testing.T) {
	var log lengthLog
	repo := memory.NewHistoryRepo(2, memory.WithLengthObserver(log.observe))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, entry(entity.OpPrime, 1)))
	require.NoError(t, repo.Append(ctx, entry(entity.OpPrime, 2)))
	require.NoError(t, repo.Append(ctx, entry(entity.OpPrime, 3)))
	require.NoError(t, repo.Append(ctx, entry(entity.OpParity, 4)))

	removed, err := repo.PurgeOlderThan(ctx, base.Add(3*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	// nothing left to drop, so no notification
	_, err = repo.PurgeOlderThan(ctx, base)
	require.NoError(t, err)

	require.NoError(t, repo.Clear(ctx, entity.OpParity))

	want := []string{
		"prime=1",
		"prime=2",
		"prime=2",
		"parity=1",
		"prime=1",
		"parity=0",
	}
	if diff := cmp.Diff(want, log.calls); diff != "" {
		t.Errorf("observed lengths mismatch (-want +got):\n%s", diff)
	}
}

func TestHistoryRepo_LengthObserverMatchesStoreUnderContention(t *testing.T) {
	var log lengthLog
	repo := memory.NewHistoryRepo(5, memory.WithLengthObserver(log.observe))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%10 == 9 {
				_ = repo.Clear(ctx, entity.OpRomanToInt)
				return
			}
			_ = repo.Append(ctx, entry(entity.OpRomanToInt, i))
		}(i)
	}
	wg.Wait()

	got, err := repo.Recent(ctx, entity.OpRomanToInt, 0)
	require.NoError(t, err)
	assert.Equal(t, len(got), log.last[entity.OpRomanToInt])
}
