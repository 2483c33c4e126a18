package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/errors"
	"github.com/moviethruster/thruster-server/internal/store/sqlite"
)

// StatsService aggregates the recommendation log into dashboard figures.
type StatsService struct {
	store  *sqlite.Store
	logger *slog.Logger
}

// NewStatsService creates a stats service.
func NewStatsService(store *sqlite.Store, logger *slog.Logger) *StatsService {
	return &StatsService{store: store, logger: logger}
}

// Dashboard computes totals, the average rating, unique-title and
// per-genre counts, and a per-day activity series over the whole log.
func (s *StatsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	records, err := s.store.AllRecommendations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "load recommendation history")
	}

	stats := &domain.DashboardStats{
		TotalRecommendations: len(records),
		GenreCounts:          []domain.GenreCount{},
		DailyCounts:          []domain.DailyActivity{},
	}
	if len(records) == 0 {
		return stats, nil
	}

	var (
		ratingSum float64
		titles    = make(map[string]struct{})
		genres    = make(map[string]int)
		days      = make(map[string]int)
	)

	for _, r := range records {
		ratingSum += r.Rating
		titles[r.Title] = struct{}{}
		for _, g := range r.GenreList() {
			genres[g]++
		}
		days[r.RecommendedAt.UTC().Format("2006-01-02")]++

		if stats.LatestAt == nil || r.RecommendedAt.After(*stats.LatestAt) {
			at := r.RecommendedAt
			stats.LatestAt = &at
		}
	}

	stats.AverageRating = ratingSum / float64(len(records))
	stats.UniqueTitles = len(titles)
	stats.GenreCounts = sortedGenreCounts(genres)
	stats.DailyCounts = sortedDailyCounts(days)

	return stats, nil
}

// sortedGenreCounts orders genres by descending count, then name.
func sortedGenreCounts(genres map[string]int) []domain.GenreCount {
	counts := make([]domain.GenreCount, 0, len(genres))
	for g, n := range genres {
		counts = append(counts, domain.GenreCount{Genre: g, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Genre < counts[j].Genre
	})
	return counts
}

// sortedDailyCounts orders days chronologically.
func sortedDailyCounts(days map[string]int) []domain.DailyActivity {
	counts := make([]domain.DailyActivity, 0, len(days))
	for d, n := range days {
		counts = append(counts, domain.DailyActivity{Date: d, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Date < counts[j].Date })
	return counts
}
