package domain

import "time"

// DefaultMinRating applies when a user has never saved preferences.
const DefaultMinRating = 5.0

// Preferences holds a user's discovery filters.
type Preferences struct {
	UserID    string    `json:"user_id"`
	Genres    []string  `json:"genres"`
	MinRating float64   `json:"min_rating"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultPreferences returns the preferences used when none were saved:
// no genre filter and a minimum rating of 5.0.
func DefaultPreferences(userID string) Preferences {
	return Preferences{
		UserID:    userID,
		Genres:    []string{},
		MinRating: DefaultMinRating,
	}
}
