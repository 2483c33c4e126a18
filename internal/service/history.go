package service

import (
	"context"
	"log/slog"

	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/errors"
	"github.com/moviethruster/thruster-server/internal/store/sqlite"
)

// defaultHistoryLimit applies when the caller doesn't specify one.
const defaultHistoryLimit = 10

// HistoryService exposes the recommendation log.
type HistoryService struct {
	store  *sqlite.Store
	logger *slog.Logger
}

// NewHistoryService creates a history service.
func NewHistoryService(store *sqlite.Store, logger *slog.Logger) *HistoryService {
	return &HistoryService{store: store, logger: logger}
}

// Recent returns the newest records, newest first. A non-positive limit
// falls back to the default of 10.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.RecommendationRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	records, err := s.store.RecentRecommendations(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "load recent recommendations")
	}
	return records, nil
}

// All returns the full log, newest first.
func (s *HistoryService) All(ctx context.Context) ([]domain.RecommendationRecord, error) {
	records, err := s.store.AllRecommendations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "load recommendation history")
	}
	return records, nil
}

// Clear wipes the log and reports how many records were removed.
func (s *HistoryService) Clear(ctx context.Context) (int64, error) {
	removed, err := s.store.ClearRecommendations(ctx)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeInternal, "clear recommendation history")
	}

	s.logger.Info("recommendation history cleared", "removed", removed)
	return removed, nil
}
