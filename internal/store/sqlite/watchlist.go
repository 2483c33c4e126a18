package sqlite

import (
	"context"
	"fmt"

	"github.com/moviethruster/thruster-server/internal/domain"
)

const watchlistColumns = `id, user_id, movie_id, movie_title, added_date`

func scanWatchlistEntry(scanner interface{ Scan(dest ...any) error }) (domain.WatchlistEntry, error) {
	var (
		e    domain.WatchlistEntry
		date string
	)

	if err := scanner.Scan(&e.ID, &e.UserID, &e.MovieID, &e.Title, &date); err != nil {
		return domain.WatchlistEntry{}, err
	}

	t, err := parseTime(date)
	if err != nil {
		return domain.WatchlistEntry{}, fmt.Errorf("parse added date: %w", err)
	}
	e.AddedAt = t

	return e, nil
}

// AddToWatchlist appends an entry. Duplicates are permitted: adding a
// movie already on the list inserts a second row.
func (s *Store) AddToWatchlist(ctx context.Context, entry *domain.WatchlistEntry) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO watchlist (user_id, movie_id, movie_title, added_date)
		 VALUES (?, ?, ?, ?)`,
		entry.UserID, entry.MovieID, entry.Title, formatTime(entry.AddedAt),
	)
	if err != nil {
		return fmt.Errorf("insert watchlist entry: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}

// RemoveFromWatchlist deletes every row matching the user and movie.
// Removing a movie that is not on the list is a no-op, not an error.
func (s *Store) RemoveFromWatchlist(ctx context.Context, userID string, movieID int) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM watchlist WHERE user_id = ? AND movie_id = ?`,
		userID, movieID,
	)
	if err != nil {
		return fmt.Errorf("delete watchlist entry: %w", err)
	}
	return nil
}

// Watchlist returns the user's entries, most recently added first.
func (s *Store) Watchlist(ctx context.Context, userID string) ([]domain.WatchlistEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+watchlistColumns+`
		 FROM watchlist
		 WHERE user_id = ?
		 ORDER BY added_date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query watchlist: %w", err)
	}
	defer rows.Close()

	entries := []domain.WatchlistEntry{}
	for rows.Next() {
		e, err := scanWatchlistEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
