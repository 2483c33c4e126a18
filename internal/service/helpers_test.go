package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/moviethruster/thruster-server/internal/catalog"
	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/metadata"
	"github.com/moviethruster/thruster-server/internal/store/sqlite"
)

// testMovies is the fixture catalog shared across service tests.
// Row order matters: it is the similarity matrix order.
var testMovies = []domain.Movie{
	{ID: 101, Title: "Avatar"},
	{ID: 102, Title: "Spectre"},
	{ID: 103, Title: "Titanic"},
	{ID: 104, Title: "Brave"},
}

// testSimilarity ranks, from Avatar's row: Spectre, Brave, Titanic.
var testSimilarity = [][]float32{
	{1.0, 0.9, 0.2, 0.5},
	{0.9, 1.0, 0.3, 0.4},
	{0.2, 0.3, 1.0, 0.1},
	{0.5, 0.4, 0.1, 1.0},
}

var testMoods = []domain.MoodMovie{
	{Title: "Avatar", Emotions: []string{"Happy", "Excited"}, Genres: []string{"Action"}},
	{Title: "Titanic", Emotions: []string{"Sad"}, Genres: []string{"Romance"}},
	{Title: "Ghost Reel", Emotions: []string{"Happy"}, Genres: []string{"Comedy"}},
}

// testDetails maps fixture ids to deterministic metadata.
var testDetails = map[int]domain.MovieDetails{
	101: {Overview: "Blue planet", Rating: 7.5, Genres: []string{"Action", "Adventure"}, ReleaseDate: "2009-12-18"},
	102: {Overview: "Bond again", Rating: 6.8, Genres: []string{"Action", "Thriller"}, ReleaseDate: "2015-10-26"},
	103: {Overview: "The ship sinks", Rating: 7.9, Genres: []string{"Drama", "Romance"}, ReleaseDate: "1997-12-19"},
	104: {Overview: "Scottish archery", Rating: 4.2, Genres: []string{"Animation"}, ReleaseDate: "2012-06-22"},
}

// fakeFetcher serves canned details and counts batch calls.
type fakeFetcher struct {
	mu      sync.Mutex
	details map[int]domain.MovieDetails
	calls   int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{details: testDetails}
}

func (f *fakeFetcher) FetchBatch(_ context.Context, ids []int) (map[int]domain.MovieDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	out := make(map[int]domain.MovieDetails, len(ids))
	for _, id := range ids {
		if d, ok := f.details[id]; ok {
			out[id] = d
		} else {
			out[id] = domain.MovieDetails{Overview: "No overview available", Genres: []string{"Unknown"}}
		}
	}
	return out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), discardLogger())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestCatalog(t *testing.T) (*catalog.Catalog, *catalog.SimilarityIndex) {
	t.Helper()

	cat, err := catalog.New(testMovies, testMoods)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	sim, err := catalog.NewSimilarityIndex(testSimilarity, cat.Len())
	if err != nil {
		t.Fatalf("build similarity index: %v", err)
	}
	return cat, sim
}

func newTestMetadata() *metadata.Service {
	return metadata.NewService(metadata.NewCache(0), newFakeFetcher(), discardLogger())
}
