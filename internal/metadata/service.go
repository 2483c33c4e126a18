package metadata

import (
	"context"
	"log/slog"

	"github.com/moviethruster/thruster-server/internal/domain"
)

// Service is the enrichment path shared by every feature that needs
// movie details: cache first, TMDB for the misses.
type Service struct {
	cache  *Cache
	client Fetcher
	logger *slog.Logger
}

// NewService creates a metadata service.
func NewService(cache *Cache, client Fetcher, logger *slog.Logger) *Service {
	return &Service{
		cache:  cache,
		client: client,
		logger: logger,
	}
}

// Details returns details for all ids, keyed by id.
func (s *Service) Details(ctx context.Context, ids []int) (map[int]domain.MovieDetails, error) {
	return s.cache.GetOrFetch(ctx, ids, s.client)
}

// One returns details for a single id.
func (s *Service) One(ctx context.Context, id int) (domain.MovieDetails, error) {
	results, err := s.Details(ctx, []int{id})
	if err != nil {
		return domain.MovieDetails{}, err
	}
	return results[id], nil
}

// CacheSize returns the number of cached entries, for the stats view.
func (s *Service) CacheSize() int {
	return s.cache.Len()
}
