package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/moviethruster/thruster-server/internal/catalog"
	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/errors"
	"github.com/moviethruster/thruster-server/internal/metadata"
)

// moodLimit caps how many mood matches are resolved and enriched.
const moodLimit = 15

// MoodService recommends from the static emotion-tagged movie table.
type MoodService struct {
	catalog  *catalog.Catalog
	metadata *metadata.Service
	logger   *slog.Logger
}

// NewMoodService creates a mood recommendation service.
func NewMoodService(cat *catalog.Catalog, meta *metadata.Service, logger *slog.Logger) *MoodService {
	return &MoodService{
		catalog:  cat,
		metadata: meta,
		logger:   logger,
	}
}

// ByMood returns up to 15 movies whose emotion tags contain the emotion
// OR whose genre tags contain the genre. Tagged titles missing from the
// catalog are skipped silently.
func (s *MoodService) ByMood(ctx context.Context, emotion, genre string) ([]domain.Recommendation, error) {
	emotion = strings.ToLower(strings.TrimSpace(emotion))
	genre = strings.TrimSpace(genre)
	if emotion == "" && genre == "" {
		return nil, errors.Validation("emotion or genre is required")
	}

	var matched []domain.Movie
	for _, mood := range s.catalog.Moods() {
		if len(matched) >= moodLimit {
			break
		}
		if !moodMatches(mood, emotion, genre) {
			continue
		}
		movie, ok := s.catalog.ByTitle(mood.Title)
		if !ok {
			continue
		}
		matched = append(matched, movie)
	}

	ids := make([]int, len(matched))
	for i, m := range matched {
		ids[i] = m.ID
	}

	details, err := s.metadata.Details(ctx, ids)
	if err != nil {
		return nil, err
	}

	results := make([]domain.Recommendation, len(matched))
	for i, m := range matched {
		results[i] = domain.Recommendation{Movie: m, Details: details[m.ID]}
	}

	s.logger.Info("mood recommendations generated",
		"emotion", emotion,
		"genre", genre,
		"returned", len(results),
	)

	return results, nil
}

func moodMatches(mood domain.MoodMovie, emotion, genre string) bool {
	if emotion != "" {
		for _, e := range mood.Emotions {
			if strings.ToLower(e) == emotion {
				return true
			}
		}
	}
	if genre != "" {
		for _, g := range mood.Genres {
			if g == genre {
				return true
			}
		}
	}
	return false
}
