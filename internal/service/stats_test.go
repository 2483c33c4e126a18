package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/store/sqlite"
)

func appendHistory(t *testing.T, store *sqlite.Store, title, genres string, rating float64, at time.Time) {
	t.Helper()

	err := store.AppendRecommendation(context.Background(), &domain.RecommendationRecord{
		Title:         title,
		Genres:        genres,
		Rating:        rating,
		RecommendedAt: at,
	})
	require.NoError(t, err)
}

func TestDashboardEmptyHistory(t *testing.T) {
	svc := NewStatsService(newTestStore(t), discardLogger())

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalRecommendations)
	assert.Zero(t, stats.AverageRating)
	assert.Nil(t, stats.LatestAt)
	assert.Empty(t, stats.GenreCounts)
	assert.Empty(t, stats.DailyCounts)
}

func TestDashboardAggregates(t *testing.T) {
	store := newTestStore(t)
	svc := NewStatsService(store, discardLogger())

	day1 := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)

	appendHistory(t, store, "Avatar", "Action, Adventure", 7.5, day1)
	appendHistory(t, store, "Spectre", "Action, Thriller", 6.5, day1.Add(2*time.Hour))
	appendHistory(t, store, "Avatar", "Action, Adventure", 7.5, day2)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalRecommendations)
	assert.InDelta(t, 7.166, stats.AverageRating, 0.001)
	assert.Equal(t, 2, stats.UniqueTitles)

	require.NotNil(t, stats.LatestAt)
	assert.Equal(t, day2, stats.LatestAt.UTC())

	// Descending count order.
	require.Len(t, stats.GenreCounts, 3)
	assert.Equal(t, domain.GenreCount{Genre: "Action", Count: 3}, stats.GenreCounts[0])
	assert.Equal(t, domain.GenreCount{Genre: "Adventure", Count: 2}, stats.GenreCounts[1])
	assert.Equal(t, domain.GenreCount{Genre: "Thriller", Count: 1}, stats.GenreCounts[2])

	// Chronological day series.
	require.Len(t, stats.DailyCounts, 2)
	assert.Equal(t, domain.DailyActivity{Date: "2026-08-20", Count: 2}, stats.DailyCounts[0])
	assert.Equal(t, domain.DailyActivity{Date: "2026-08-21", Count: 1}, stats.DailyCounts[1])
}

func TestHistoryRecentDefaultLimit(t *testing.T) {
	store := newTestStore(t)
	svc := NewHistoryService(store, discardLogger())

	base := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	for i := range 12 {
		appendHistory(t, store, "Avatar", "Action", 7.0, base.Add(time.Duration(i)*time.Minute))
	}

	records, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, records, 10)

	all, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 12)
}

func TestHistoryClear(t *testing.T) {
	store := newTestStore(t)
	svc := NewHistoryService(store, discardLogger())

	appendHistory(t, store, "Avatar", "Action", 7.0, time.Now())
	appendHistory(t, store, "Spectre", "Action", 6.5, time.Now())

	removed, err := svc.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	all, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
