package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/moviethruster/thruster-server/internal/catalog"
	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/errors"
	"github.com/moviethruster/thruster-server/internal/metadata"
	"github.com/moviethruster/thruster-server/internal/store"
	"github.com/moviethruster/thruster-server/internal/store/sqlite"
)

const (
	// discoverLimit is how many matches Discover collects before stopping.
	discoverLimit = 12
	// discoverChunk is how many catalog movies are enriched per batch
	// while scanning for matches.
	discoverChunk = 20
)

// PreferencesService manages per-user discovery filters and the
// preference-driven Discover feed.
type PreferencesService struct {
	catalog  *catalog.Catalog
	metadata *metadata.Service
	store    *sqlite.Store
	logger   *slog.Logger
}

// NewPreferencesService creates a preferences service.
func NewPreferencesService(cat *catalog.Catalog, meta *metadata.Service, store *sqlite.Store, logger *slog.Logger) *PreferencesService {
	return &PreferencesService{
		catalog:  cat,
		metadata: meta,
		store:    store,
		logger:   logger,
	}
}

// Save upserts the user's preferences.
func (s *PreferencesService) Save(ctx context.Context, userID string, genres []string, minRating float64) (*domain.Preferences, error) {
	if minRating < 0 || minRating > 10 {
		return nil, errors.Validationf("min rating must be between 0 and 10, got %v", minRating)
	}
	if genres == nil {
		genres = []string{}
	}

	prefs := &domain.Preferences{
		UserID:    userID,
		Genres:    genres,
		MinRating: minRating,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.store.SavePreferences(ctx, prefs); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "save preferences")
	}

	s.logger.Info("preferences saved", "user_id", userID, "genres", len(genres), "min_rating", minRating)
	return prefs, nil
}

// Get returns the user's preferences, falling back to the defaults
// (no genre filter, minimum rating 5.0) when none were saved.
func (s *PreferencesService) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	prefs, err := s.store.GetPreferences(ctx, userID)
	if err != nil {
		var storeErr *store.Error
		if errors.As(err, &storeErr) && storeErr.HTTPCode() == 404 {
			defaults := domain.DefaultPreferences(userID)
			return &defaults, nil
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "get preferences")
	}
	return prefs, nil
}

// Discover walks the catalog in row order, enriching movies chunk by
// chunk, and keeps those matching the user's preferences until 12 are
// found or the catalog is exhausted.
func (s *PreferencesService) Discover(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	prefs, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	movies := s.catalog.Movies()
	results := make([]domain.Recommendation, 0, discoverLimit)

	for start := 0; start < len(movies) && len(results) < discoverLimit; start += discoverChunk {
		end := min(start+discoverChunk, len(movies))
		chunk := movies[start:end]

		ids := make([]int, len(chunk))
		for i, m := range chunk {
			ids[i] = m.ID
		}

		details, err := s.metadata.Details(ctx, ids)
		if err != nil {
			return nil, err
		}

		for _, m := range chunk {
			if len(results) >= discoverLimit {
				break
			}
			d := details[m.ID]
			if !matchesPreferences(d, prefs) {
				continue
			}
			results = append(results, domain.Recommendation{Movie: m, Details: d})
		}
	}

	s.logger.Info("discover feed generated", "user_id", userID, "returned", len(results))
	return results, nil
}

// matchesPreferences keeps movies rated at or above the minimum whose
// genres intersect the preferred set. An empty preferred set matches
// every genre.
func matchesPreferences(d domain.MovieDetails, prefs *domain.Preferences) bool {
	if d.Rating < prefs.MinRating {
		return false
	}
	if len(prefs.Genres) == 0 {
		return true
	}
	for _, g := range prefs.Genres {
		if d.HasGenre(g) {
			return true
		}
	}
	return false
}
