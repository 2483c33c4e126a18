package tmdb

import "github.com/moviethruster/thruster-server/internal/domain"

// Fallback values used when a fetch fails entirely. They are honest
// placeholders, not guesses: the rating is zero and the release date is
// a fixed sentinel, so downstream filters treat failed movies uniformly.
const (
	fallbackOverview = "Details temporarily unavailable"
	fallbackRelease  = "2000-01-01"
	fallbackUnknown  = "Unknown"
)

// FallbackDetails returns the details substituted for a failed fetch.
// Every field is populated so callers can render it like any other movie.
func FallbackDetails() domain.MovieDetails {
	return domain.MovieDetails{
		PosterURL:           PlaceholderPoster,
		Overview:            fallbackOverview,
		Rating:              0.0,
		ReleaseDate:         fallbackRelease,
		Genres:              []string{fallbackUnknown},
		Budget:              0,
		Revenue:             0,
		RuntimeMinutes:      0,
		SpokenLanguages:     []string{fallbackUnknown},
		Tagline:             PlaceholderTagline,
		ProductionCompanies: []string{fallbackUnknown},
	}
}
