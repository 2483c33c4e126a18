package domain

import "time"

// WatchlistEntry is one saved movie on a user's watchlist.
// The same movie may appear more than once; Add never dedupes.
type WatchlistEntry struct {
	ID      int64     `json:"id"`
	UserID  string    `json:"user_id"`
	MovieID int       `json:"movie_id"`
	Title   string    `json:"title"`
	AddedAt time.Time `json:"added_at"`
}
