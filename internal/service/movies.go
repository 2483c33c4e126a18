package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/moviethruster/thruster-server/internal/catalog"
	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/errors"
	"github.com/moviethruster/thruster-server/internal/metadata"
	"github.com/moviethruster/thruster-server/internal/search"
)

const (
	// browsePageSize is the number of movies per catalog page.
	browsePageSize = 10
	// searchResultCap bounds how many search hits feed the pager.
	searchResultCap = 100
)

// BrowseResult is one page of the catalog, enriched with details.
type BrowseResult struct {
	Movies  []domain.Recommendation
	Page    int
	Pages   int
	Total   int
	PerPage int
}

// MoviesService serves catalog browsing, search, and single-movie details.
type MoviesService struct {
	catalog  *catalog.Catalog
	search   *search.Index
	metadata *metadata.Service
	logger   *slog.Logger
}

// NewMoviesService creates a movie browsing service.
func NewMoviesService(cat *catalog.Catalog, idx *search.Index, meta *metadata.Service, logger *slog.Logger) *MoviesService {
	return &MoviesService{
		catalog:  cat,
		search:   idx,
		metadata: meta,
		logger:   logger,
	}
}

// Browse returns one page of the catalog, optionally narrowed by a title
// search query, with details for every movie on the page.
func (s *MoviesService) Browse(ctx context.Context, page int, query string) (*BrowseResult, error) {
	if page < 1 {
		page = 1
	}

	var (
		pageMovies []domain.Movie
		total      int
	)

	if strings.TrimSpace(query) != "" {
		matches, err := s.searchMovies(query)
		if err != nil {
			return nil, err
		}
		total = len(matches)
		pageMovies = paginate(matches, page, browsePageSize)
	} else {
		pageMovies, total = s.catalog.Page(page, browsePageSize)
	}

	ids := make([]int, len(pageMovies))
	for i, m := range pageMovies {
		ids[i] = m.ID
	}

	details, err := s.metadata.Details(ctx, ids)
	if err != nil {
		return nil, err
	}

	enriched := make([]domain.Recommendation, len(pageMovies))
	for i, m := range pageMovies {
		enriched[i] = domain.Recommendation{Movie: m, Details: details[m.ID]}
	}

	return &BrowseResult{
		Movies:  enriched,
		Page:    page,
		Pages:   (total + browsePageSize - 1) / browsePageSize,
		Total:   total,
		PerPage: browsePageSize,
	}, nil
}

// Count returns the catalog size, for health checks.
func (s *MoviesService) Count() int {
	return s.catalog.Len()
}

// Details returns a single movie with its metadata.
func (s *MoviesService) Details(ctx context.Context, movieID int) (*domain.Recommendation, error) {
	movie, ok := s.catalog.ByID(movieID)
	if !ok {
		return nil, errors.NotFoundf("movie %d not in catalog", movieID)
	}

	details, err := s.metadata.One(ctx, movieID)
	if err != nil {
		return nil, err
	}

	return &domain.Recommendation{Movie: movie, Details: details}, nil
}

func (s *MoviesService) searchMovies(query string) ([]domain.Movie, error) {
	ids, err := s.search.SearchTitles(query, searchResultCap)
	if err != nil {
		return nil, err
	}

	movies := make([]domain.Movie, 0, len(ids))
	for _, id := range ids {
		if movie, ok := s.catalog.ByID(id); ok {
			movies = append(movies, movie)
		}
	}
	return movies, nil
}

func paginate(movies []domain.Movie, page, perPage int) []domain.Movie {
	start := (page - 1) * perPage
	if start >= len(movies) {
		return nil
	}
	end := min(start+perPage, len(movies))
	return movies[start:end]
}
