package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moviethruster/thruster-server/internal/domain"
)

func (s *Server) registerMovieRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listMovies",
		Method:      http.MethodGet,
		Path:        "/api/v1/movies",
		Summary:     "Browse the catalog",
		Description: "Returns one page of the movie catalog, optionally narrowed by a title search",
		Tags:        []string{"Movies"},
	}, s.handleListMovies)

	huma.Register(s.api, huma.Operation{
		OperationID: "getMovie",
		Method:      http.MethodGet,
		Path:        "/api/v1/movies/{id}",
		Summary:     "Get movie details",
		Description: "Returns a single catalog movie with its metadata",
		Tags:        []string{"Movies"},
	}, s.handleGetMovie)
}

// === DTOs ===

// MovieResponse is one catalog movie with its details.
type MovieResponse struct {
	ID      int                 `json:"id" doc:"TMDB movie ID"`
	Title   string              `json:"title" doc:"Movie title"`
	Details domain.MovieDetails `json:"details" doc:"Fetched movie metadata"`
}

// MovieListInput holds query parameters for catalog browsing.
type MovieListInput struct {
	Page  int    `query:"page" default:"1" minimum:"1" doc:"Page number, starting at 1"`
	Query string `query:"q" doc:"Optional title search query"`
}

// MovieListResponse is one page of the catalog.
type MovieListResponse struct {
	Movies  []MovieResponse `json:"movies" doc:"Movies on this page"`
	Page    int             `json:"page" doc:"Current page number"`
	Pages   int             `json:"pages" doc:"Total number of pages"`
	Total   int             `json:"total" doc:"Total matching movies"`
	PerPage int             `json:"per_page" doc:"Movies per page"`
}

// MovieListOutput wraps the movie list for Huma.
type MovieListOutput struct {
	Body MovieListResponse
}

// MovieInput holds the path parameter for a single movie.
type MovieInput struct {
	ID int `path:"id" doc:"TMDB movie ID"`
}

// MovieOutput wraps a single movie for Huma.
type MovieOutput struct {
	Body MovieResponse
}

// === Handlers ===

func (s *Server) handleListMovies(ctx context.Context, input *MovieListInput) (*MovieListOutput, error) {
	result, err := s.services.Movies.Browse(ctx, input.Page, input.Query)
	if err != nil {
		return nil, err
	}

	return &MovieListOutput{
		Body: MovieListResponse{
			Movies:  mapMovieResponses(result.Movies),
			Page:    result.Page,
			Pages:   result.Pages,
			Total:   result.Total,
			PerPage: result.PerPage,
		},
	}, nil
}

func (s *Server) handleGetMovie(ctx context.Context, input *MovieInput) (*MovieOutput, error) {
	rec, err := s.services.Movies.Details(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &MovieOutput{Body: mapMovieResponse(*rec)}, nil
}

// === Helpers ===

func mapMovieResponse(rec domain.Recommendation) MovieResponse {
	return MovieResponse{
		ID:      rec.Movie.ID,
		Title:   rec.Movie.Title,
		Details: rec.Details,
	}
}

func mapMovieResponses(recs []domain.Recommendation) []MovieResponse {
	out := make([]MovieResponse, len(recs))
	for i, rec := range recs {
		out[i] = mapMovieResponse(rec)
	}
	return out
}
