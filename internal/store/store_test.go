package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "solves.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord(t *testing.T, createdAt time.Time) SolveRecord {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return SolveRecord{
		ID:        id.String(),
		Puzzle:    "5,3,,,7,,,,\n6,,,1,9,5,,,",
		Solution:  "5,3,4,6,7,8,9,1,2\n6,7,2,1,9,5,3,4,8",
		Status:    "solved",
		Nodes:     42,
		MaxDepth:  7,
		Duration:  15 * time.Millisecond,
		CreatedAt: createdAt,
	}
}

func TestRecordSolveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := testRecord(t, time.Now())
	require.NoError(t, s.RecordSolve(ctx, rec))

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Puzzle, got.Puzzle)
	assert.Equal(t, rec.Solution, got.Solution)
	assert.Equal(t, "solved", got.Status)
	assert.Equal(t, 42, got.Nodes)
	assert.Equal(t, 7, got.MaxDepth)
	assert.Equal(t, 15*time.Millisecond, got.Duration)
	assert.WithinDuration(t, rec.CreatedAt, got.CreatedAt, time.Millisecond)
}

func TestRecordSolve_Idempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := testRecord(t, time.Now())
	require.NoError(t, s.RecordSolve(ctx, rec))

	dup := rec
	dup.Nodes = 999
	require.NoError(t, s.RecordSolve(ctx, dup))

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Nodes, "duplicate IDs are ignored, not overwritten")
}

func TestRecordSolve_UnsolvableHasNoSolution(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := testRecord(t, time.Now())
	rec.Solution = ""
	rec.Status = "unsolvable"
	require.NoError(t, s.RecordSolve(ctx, rec))

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Solution)
	assert.Equal(t, "unsolvable", got.Status)
}

func TestList_NewestFirstWithLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	var ids []string
	for i := 0; i < 3; i++ {
		rec := testRecord(t, base.Add(time.Duration(i)*time.Minute))
		ids = append(ids, rec.ID)
		require.NoError(t, s.RecordSolve(ctx, rec))
	}

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[2], all[0].ID)
	assert.Equal(t, ids[0], all[2].ID)

	two, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, ids[2], two[0].ID)
}

func TestGet_NotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(context.Background(), "no-such-id")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solves.db")
	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}
