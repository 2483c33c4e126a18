package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/moviethruster/thruster-server/internal/catalog"
	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/errors"
	"github.com/moviethruster/thruster-server/internal/metadata"
	"github.com/moviethruster/thruster-server/internal/store/sqlite"
)

// WatchlistItem is a saved entry paired with its movie details.
type WatchlistItem struct {
	Entry   domain.WatchlistEntry `json:"entry"`
	Details domain.MovieDetails   `json:"details"`
}

// WatchlistService manages per-user saved movies.
type WatchlistService struct {
	catalog  *catalog.Catalog
	metadata *metadata.Service
	store    *sqlite.Store
	logger   *slog.Logger
}

// NewWatchlistService creates a watchlist service.
func NewWatchlistService(cat *catalog.Catalog, meta *metadata.Service, store *sqlite.Store, logger *slog.Logger) *WatchlistService {
	return &WatchlistService{
		catalog:  cat,
		metadata: meta,
		store:    store,
		logger:   logger,
	}
}

// Add saves a catalog movie to the user's watchlist. The title is
// resolved from the catalog, never trusted from the caller. Adding the
// same movie twice creates a second entry.
func (s *WatchlistService) Add(ctx context.Context, userID string, movieID int) (*domain.WatchlistEntry, error) {
	movie, ok := s.catalog.ByID(movieID)
	if !ok {
		return nil, errors.NotFoundf("movie %d not in catalog", movieID)
	}

	entry := &domain.WatchlistEntry{
		UserID:  userID,
		MovieID: movie.ID,
		Title:   movie.Title,
		AddedAt: time.Now().UTC(),
	}
	if err := s.store.AddToWatchlist(ctx, entry); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "add to watchlist")
	}

	s.logger.Info("movie added to watchlist", "user_id", userID, "movie_id", movieID)
	return entry, nil
}

// Remove deletes every watchlist entry for the movie. Removing a movie
// that was never added succeeds silently.
func (s *WatchlistService) Remove(ctx context.Context, userID string, movieID int) error {
	if err := s.store.RemoveFromWatchlist(ctx, userID, movieID); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "remove from watchlist")
	}

	s.logger.Info("movie removed from watchlist", "user_id", userID, "movie_id", movieID)
	return nil
}

// List returns the user's watchlist, newest first, with details for
// each entry.
func (s *WatchlistService) List(ctx context.Context, userID string) ([]WatchlistItem, error) {
	entries, err := s.store.Watchlist(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "load watchlist")
	}

	ids := make([]int, len(entries))
	for i, e := range entries {
		ids[i] = e.MovieID
	}

	details, err := s.metadata.Details(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]WatchlistItem, len(entries))
	for i, e := range entries {
		items[i] = WatchlistItem{Entry: e, Details: details[e.MovieID]}
	}
	return items, nil
}
