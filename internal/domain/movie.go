// Package domain defines the core types shared across services and stores.
package domain

// Movie is a single catalog entry. The catalog is loaded once at startup
// and immutable afterwards; Row is the movie's position in the catalog and
// in the similarity matrix.
type Movie struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Row   int    `json:"-"`
}

// MovieDetails holds the metadata fetched from TMDB for a single movie.
// Every field is always populated; fetch failures and absent upstream
// fields resolve to placeholder values instead of errors.
type MovieDetails struct {
	PosterURL           string   `json:"poster_url"`
	Overview            string   `json:"overview"`
	Rating              float64  `json:"rating"`
	ReleaseDate         string   `json:"release_date"`
	Genres              []string `json:"genres"`
	Budget              int64    `json:"budget"`
	Revenue             int64    `json:"revenue"`
	RuntimeMinutes      int      `json:"runtime_minutes"`
	SpokenLanguages     []string `json:"spoken_languages"`
	Tagline             string   `json:"tagline"`
	ProductionCompanies []string `json:"production_companies"`
	IMDBID              string   `json:"imdb_id,omitempty"`
	Homepage            string   `json:"homepage,omitempty"`
}

// HasGenre reports whether the details list the given genre (exact match).
func (d MovieDetails) HasGenre(genre string) bool {
	for _, g := range d.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Recommendation pairs a catalog movie with its fetched details.
type Recommendation struct {
	Movie   Movie        `json:"movie"`
	Details MovieDetails `json:"details"`
}

// MoodMovie is an entry of the static emotion-tagged movie table.
type MoodMovie struct {
	Title    string   `json:"title"`
	Emotions []string `json:"emotions"`
	Genres   []string `json:"genres"`
}
