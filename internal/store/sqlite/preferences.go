package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/store"
)

// SavePreferences inserts or replaces the user's preference row.
func (s *Store) SavePreferences(ctx context.Context, prefs *domain.Preferences) error {
	genres := strings.Join(prefs.Genres, ",")

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_preferences (user_id, preferred_genres, min_rating, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET
		     preferred_genres = excluded.preferred_genres,
		     min_rating = excluded.min_rating,
		     updated_at = excluded.updated_at`,
		prefs.UserID, genres, prefs.MinRating, formatTime(prefs.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// GetPreferences returns the user's saved preferences.
// Returns store.ErrNotFound when the user never saved any; callers decide
// whether to substitute defaults.
func (s *Store) GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT user_id, preferred_genres, min_rating, updated_at
		 FROM user_preferences
		 WHERE user_id = ?`,
		userID,
	)

	var (
		p       domain.Preferences
		genres  string
		updated string
	)
	err := row.Scan(&p.UserID, &genres, &p.MinRating, &updated)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound.WithMessage("preferences not found")
	}
	if err != nil {
		return nil, fmt.Errorf("query preferences: %w", err)
	}

	p.Genres = splitGenres(genres)
	p.UpdatedAt, err = parseTime(updated)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &p, nil
}

func splitGenres(joined string) []string {
	if joined == "" {
		return []string{}
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			out = append(out, g)
		}
	}
	return out
}
