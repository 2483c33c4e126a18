package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviethruster/thruster-server/internal/errors"
)

func newWatchlistService(t *testing.T) *WatchlistService {
	t.Helper()

	cat, _ := newTestCatalog(t)
	return NewWatchlistService(cat, newTestMetadata(), newTestStore(t), discardLogger())
}

func TestWatchlistAddAndList(t *testing.T) {
	svc := newWatchlistService(t)
	ctx := context.Background()

	entry, err := svc.Add(ctx, "user_1", 103)
	require.NoError(t, err)
	assert.Equal(t, "Titanic", entry.Title)
	assert.NotZero(t, entry.ID)

	items, err := svc.List(ctx, "user_1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Titanic", items[0].Entry.Title)
	assert.Equal(t, 7.9, items[0].Details.Rating)
}

func TestWatchlistAddUnknownMovie(t *testing.T) {
	svc := newWatchlistService(t)

	_, err := svc.Add(context.Background(), "user_1", 999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestWatchlistAllowsDuplicates(t *testing.T) {
	svc := newWatchlistService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "user_1", 101)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "user_1", 101)
	require.NoError(t, err)

	items, err := svc.List(ctx, "user_1")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestWatchlistRemoveDeletesAllCopies(t *testing.T) {
	svc := newWatchlistService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "user_1", 101)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "user_1", 101)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "user_1", 102)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "user_1", 101))

	items, err := svc.List(ctx, "user_1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 102, items[0].Entry.MovieID)
}

func TestWatchlistRemoveMissingIsNoop(t *testing.T) {
	svc := newWatchlistService(t)

	assert.NoError(t, svc.Remove(context.Background(), "user_1", 101))
}

func TestWatchlistIsPerUser(t *testing.T) {
	svc := newWatchlistService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "user_1", 101)
	require.NoError(t, err)

	items, err := svc.List(ctx, "user_2")
	require.NoError(t, err)
	assert.Empty(t, items)
}
