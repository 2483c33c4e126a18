package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moviethruster/thruster-server/internal/service"
)

func (s *Server) registerWatchlistRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getWatchlist",
		Method:      http.MethodGet,
		Path:        "/api/v1/watchlist",
		Summary:     "Get watchlist",
		Description: "Returns the authenticated user's watchlist with movie details",
		Tags:        []string{"Watchlist"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetWatchlist)

	huma.Register(s.api, huma.Operation{
		OperationID: "addToWatchlist",
		Method:      http.MethodPost,
		Path:        "/api/v1/watchlist",
		Summary:     "Add movie to watchlist",
		Description: "Saves a catalog movie to the authenticated user's watchlist",
		Tags:        []string{"Watchlist"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleAddToWatchlist)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeFromWatchlist",
		Method:      http.MethodDelete,
		Path:        "/api/v1/watchlist/{movieID}",
		Summary:     "Remove movie from watchlist",
		Description: "Removes every watchlist entry for the movie",
		Tags:        []string{"Watchlist"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleRemoveFromWatchlist)
}

// === DTOs ===

// WatchlistEntryResponse is one saved movie with its details.
type WatchlistEntryResponse struct {
	ID      int64         `json:"id" doc:"Entry ID"`
	Movie   MovieResponse `json:"movie" doc:"The saved movie"`
	AddedAt time.Time     `json:"added_at" doc:"When the movie was saved"`
}

// WatchlistResponse is the user's full watchlist.
type WatchlistResponse struct {
	Entries []WatchlistEntryResponse `json:"entries" doc:"Watchlist entries, newest first"`
	Count   int                      `json:"count" doc:"Number of entries"`
}

// WatchlistOutput wraps the watchlist for Huma.
type WatchlistOutput struct {
	Body WatchlistResponse
}

// AddWatchlistRequest is the request body for adding a movie.
type AddWatchlistRequest struct {
	MovieID int `json:"movie_id" validate:"required" doc:"TMDB movie ID to save"`
}

// AddWatchlistInput wraps the add request for Huma.
type AddWatchlistInput struct {
	Body AddWatchlistRequest
}

// AddWatchlistResponse confirms the saved entry.
type AddWatchlistResponse struct {
	ID      int64     `json:"id" doc:"Entry ID"`
	MovieID int       `json:"movie_id" doc:"Saved movie ID"`
	Title   string    `json:"title" doc:"Saved movie title"`
	AddedAt time.Time `json:"added_at" doc:"When the movie was saved"`
}

// AddWatchlistOutput wraps the add response for Huma.
type AddWatchlistOutput struct {
	Body AddWatchlistResponse
}

// RemoveWatchlistInput holds the path parameter for removal.
type RemoveWatchlistInput struct {
	MovieID int `path:"movieID" doc:"TMDB movie ID to remove"`
}

// MessageResponse contains a simple message.
type MessageResponse struct {
	Message string `json:"message" doc:"Success message"`
}

// MessageOutput wraps the message response for Huma.
type MessageOutput struct {
	Body MessageResponse
}

// === Handlers ===

func (s *Server) handleGetWatchlist(ctx context.Context, _ *struct{}) (*WatchlistOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.services.Watchlist.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]WatchlistEntryResponse, len(items))
	for i, item := range items {
		entries[i] = mapWatchlistItem(item)
	}

	return &WatchlistOutput{Body: WatchlistResponse{Entries: entries, Count: len(entries)}}, nil
}

func (s *Server) handleAddToWatchlist(ctx context.Context, input *AddWatchlistInput) (*AddWatchlistOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := s.services.Watchlist.Add(ctx, userID, input.Body.MovieID)
	if err != nil {
		return nil, err
	}

	return &AddWatchlistOutput{
		Body: AddWatchlistResponse{
			ID:      entry.ID,
			MovieID: entry.MovieID,
			Title:   entry.Title,
			AddedAt: entry.AddedAt,
		},
	}, nil
}

func (s *Server) handleRemoveFromWatchlist(ctx context.Context, input *RemoveWatchlistInput) (*MessageOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.services.Watchlist.Remove(ctx, userID, input.MovieID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Removed from watchlist"}}, nil
}

// === Helpers ===

func mapWatchlistItem(item service.WatchlistItem) WatchlistEntryResponse {
	return WatchlistEntryResponse{
		ID: item.Entry.ID,
		Movie: MovieResponse{
			ID:      item.Entry.MovieID,
			Title:   item.Entry.Title,
			Details: item.Details,
		},
		AddedAt: item.Entry.AddedAt,
	}
}
