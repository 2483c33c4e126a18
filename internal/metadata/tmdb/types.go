package tmdb

import "github.com/moviethruster/thruster-server/internal/domain"

// Placeholder values substituted for fields TMDB did not return.
const (
	PlaceholderPoster   = "https://via.placeholder.com/500x750?text=No+Poster"
	PlaceholderOverview = "No overview available"
	PlaceholderRelease  = "Unknown"
	PlaceholderTagline  = "No tagline available"
)

// movieResponse mirrors the TMDB movie endpoint payload, limited to the
// fields the application uses.
type movieResponse struct {
	PosterPath          string         `json:"poster_path"`
	Overview            string         `json:"overview"`
	VoteAverage         float64        `json:"vote_average"`
	ReleaseDate         string         `json:"release_date"`
	Genres              []namedEntry   `json:"genres"`
	Budget              int64          `json:"budget"`
	Revenue             int64          `json:"revenue"`
	Runtime             int            `json:"runtime"`
	SpokenLanguages     []languageInfo `json:"spoken_languages"`
	Tagline             string         `json:"tagline"`
	ProductionCompanies []namedEntry   `json:"production_companies"`
	IMDBID              string         `json:"imdb_id"`
	Homepage            string         `json:"homepage"`
}

type namedEntry struct {
	Name string `json:"name"`
}

type languageInfo struct {
	EnglishName string `json:"english_name"`
	Name        string `json:"name"`
}

// toDetails maps the raw payload to domain details, filling placeholders
// for absent fields. A successful response never produces an error.
func (r movieResponse) toDetails() domain.MovieDetails {
	d := domain.MovieDetails{
		PosterURL:      PlaceholderPoster,
		Overview:       r.Overview,
		Rating:         r.VoteAverage,
		ReleaseDate:    r.ReleaseDate,
		Budget:         r.Budget,
		Revenue:        r.Revenue,
		RuntimeMinutes: r.Runtime,
		Tagline:        r.Tagline,
		IMDBID:         r.IMDBID,
		Homepage:       r.Homepage,
	}

	if r.PosterPath != "" {
		d.PosterURL = posterBaseURL + r.PosterPath
	}
	if d.Overview == "" {
		d.Overview = PlaceholderOverview
	}
	if d.ReleaseDate == "" {
		d.ReleaseDate = PlaceholderRelease
	}
	if d.Tagline == "" {
		d.Tagline = PlaceholderTagline
	}

	d.Genres = make([]string, 0, len(r.Genres))
	for _, g := range r.Genres {
		d.Genres = append(d.Genres, g.Name)
	}

	d.SpokenLanguages = make([]string, 0, len(r.SpokenLanguages))
	for _, l := range r.SpokenLanguages {
		name := l.EnglishName
		if name == "" {
			name = l.Name
		}
		d.SpokenLanguages = append(d.SpokenLanguages, name)
	}

	d.ProductionCompanies = make([]string, 0, len(r.ProductionCompanies))
	for _, p := range r.ProductionCompanies {
		d.ProductionCompanies = append(d.ProductionCompanies, p.Name)
	}

	return d
}
