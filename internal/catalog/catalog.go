// Package catalog holds the fixed movie catalog and its similarity index.
// Both are loaded once at startup and never mutated afterwards, so all
// methods are safe for concurrent use without locking.
package catalog

import (
	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/errors"
)

// Catalog is the immutable movie list with title and id lookups.
type Catalog struct {
	movies  []domain.Movie
	byTitle map[string]int // title -> row (first occurrence wins)
	byID    map[int]int    // movie id -> row
	moods   []domain.MoodMovie
}

// New builds a catalog from the loaded movie list and mood table.
// An empty movie list is a startup integrity failure.
func New(movies []domain.Movie, moods []domain.MoodMovie) (*Catalog, error) {
	if len(movies) == 0 {
		return nil, errors.InvalidState("catalog is empty")
	}

	c := &Catalog{
		movies:  make([]domain.Movie, len(movies)),
		byTitle: make(map[string]int, len(movies)),
		byID:    make(map[int]int, len(movies)),
		moods:   moods,
	}

	for i, m := range movies {
		m.Row = i
		c.movies[i] = m

		if _, dup := c.byID[m.ID]; dup {
			return nil, errors.InvalidStatef("duplicate movie id %d in catalog", m.ID)
		}
		c.byID[m.ID] = i

		if _, exists := c.byTitle[m.Title]; !exists {
			c.byTitle[m.Title] = i
		}
	}

	return c, nil
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// ByRow returns the movie at the given catalog row.
func (c *Catalog) ByRow(row int) (domain.Movie, bool) {
	if row < 0 || row >= len(c.movies) {
		return domain.Movie{}, false
	}
	return c.movies[row], true
}

// ByTitle returns the movie with the given exact title.
func (c *Catalog) ByTitle(title string) (domain.Movie, bool) {
	row, ok := c.byTitle[title]
	if !ok {
		return domain.Movie{}, false
	}
	return c.movies[row], true
}

// ByID returns the movie with the given TMDB id.
func (c *Catalog) ByID(id int) (domain.Movie, bool) {
	row, ok := c.byID[id]
	if !ok {
		return domain.Movie{}, false
	}
	return c.movies[row], true
}

// Page returns one page of the catalog in row order, along with the total
// number of entries. Page numbers start at 1; out-of-range pages are empty.
func (c *Catalog) Page(page, perPage int) ([]domain.Movie, int) {
	total := len(c.movies)
	if page < 1 || perPage <= 0 {
		return nil, total
	}

	start := (page - 1) * perPage
	if start >= total {
		return nil, total
	}
	end := min(start+perPage, total)

	out := make([]domain.Movie, end-start)
	copy(out, c.movies[start:end])
	return out, total
}

// Movies returns all catalog entries in row order. Callers must not mutate
// the returned slice.
func (c *Catalog) Movies() []domain.Movie {
	return c.movies
}

// Moods returns the static emotion-tagged movie table.
func (c *Catalog) Moods() []domain.MoodMovie {
	return c.moods
}
