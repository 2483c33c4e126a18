package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviethruster/thruster-server/internal/errors"
)

func newRecommendService(t *testing.T) *RecommendService {
	t.Helper()

	cat, sim := newTestCatalog(t)
	return NewRecommendService(cat, sim, newTestMetadata(), newTestStore(t), 5, discardLogger())
}

func TestRecommendSimilarityOrder(t *testing.T) {
	svc := newRecommendService(t)

	recs, err := svc.Recommend(context.Background(), RecommendParams{
		Seed:  "Avatar",
		Count: 3,
		Mode:  ModeSimilarity,
	})
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// Neighbor order from Avatar's similarity row, seed excluded.
	assert.Equal(t, "Spectre", recs[0].Movie.Title)
	assert.Equal(t, "Brave", recs[1].Movie.Title)
	assert.Equal(t, "Titanic", recs[2].Movie.Title)

	// Every result is enriched.
	assert.Equal(t, 6.8, recs[0].Details.Rating)
}

func TestRecommendDefaultsToSimilarity(t *testing.T) {
	svc := newRecommendService(t)

	recs, err := svc.Recommend(context.Background(), RecommendParams{
		Seed:  "Avatar",
		Count: 1,
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Spectre", recs[0].Movie.Title)
}

func TestRecommendNonPositiveCount(t *testing.T) {
	svc := newRecommendService(t)

	for _, count := range []int{0, -1} {
		recs, err := svc.Recommend(context.Background(), RecommendParams{Seed: "Avatar", Count: count})
		require.NoError(t, err)
		assert.Empty(t, recs, "count %d", count)
	}
}

func TestRecommendDefaultCountAccessor(t *testing.T) {
	svc := newRecommendService(t)

	assert.Equal(t, 5, svc.DefaultCount())
}

func TestRecommendUnknownSeed(t *testing.T) {
	svc := newRecommendService(t)

	_, err := svc.Recommend(context.Background(), RecommendParams{Seed: "Nope", Count: 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestRecommendUnknownMode(t *testing.T) {
	svc := newRecommendService(t)

	_, err := svc.Recommend(context.Background(), RecommendParams{
		Seed:  "Avatar",
		Count: 3,
		Mode:  RecommendMode("psychic"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestRecommendGenreFilterNoBackfill(t *testing.T) {
	svc := newRecommendService(t)

	// Only Spectre among Avatar's 3 neighbors carries Action.
	recs, err := svc.Recommend(context.Background(), RecommendParams{
		Seed:  "Avatar",
		Count: 3,
		Genre: "Action",
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Spectre", recs[0].Movie.Title)
}

func TestRecommendMinRatingFilter(t *testing.T) {
	svc := newRecommendService(t)

	// Brave (4.2) drops below the 6.0 floor.
	recs, err := svc.Recommend(context.Background(), RecommendParams{
		Seed:      "Avatar",
		Count:     3,
		MinRating: 6.0,
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Spectre", recs[0].Movie.Title)
	assert.Equal(t, "Titanic", recs[1].Movie.Title)
}

func TestRecommendRandomMode(t *testing.T) {
	cat, sim := newTestCatalog(t)
	svc := NewRecommendService(cat, sim, newTestMetadata(), newTestStore(t), 5, discardLogger())

	recs, err := svc.Recommend(context.Background(), RecommendParams{
		Count: 2,
		Mode:  ModeRandom,
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.NotEqual(t, recs[0].Movie.ID, recs[1].Movie.ID)
}

func TestRecommendRecordsHistory(t *testing.T) {
	cat, sim := newTestCatalog(t)
	store := newTestStore(t)
	svc := NewRecommendService(cat, sim, newTestMetadata(), store, 5, discardLogger())

	_, err := svc.Recommend(context.Background(), RecommendParams{Seed: "Avatar", Count: 2})
	require.NoError(t, err)

	records, err := store.AllRecommendations(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first; both survivors were appended.
	titles := []string{records[0].Title, records[1].Title}
	assert.Contains(t, titles, "Spectre")
	assert.Contains(t, titles, "Brave")
	assert.Equal(t, []string{"Action", "Thriller"}, records[1].GenreList())
}
