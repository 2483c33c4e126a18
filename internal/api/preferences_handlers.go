package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moviethruster/thruster-server/internal/domain"
)

func (s *Server) registerPreferencesRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getPreferences",
		Method:      http.MethodGet,
		Path:        "/api/v1/preferences",
		Summary:     "Get preferences",
		Description: "Returns the authenticated user's discovery preferences, or the defaults when none were saved",
		Tags:        []string{"Preferences"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetPreferences)

	huma.Register(s.api, huma.Operation{
		OperationID: "savePreferences",
		Method:      http.MethodPut,
		Path:        "/api/v1/preferences",
		Summary:     "Save preferences",
		Description: "Saves the authenticated user's discovery preferences",
		Tags:        []string{"Preferences"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleSavePreferences)
}

// === DTOs ===

// PreferencesResponse contains a user's discovery preferences.
type PreferencesResponse struct {
	Genres    []string   `json:"genres" doc:"Preferred genres; empty matches all"`
	MinRating float64    `json:"min_rating" doc:"Minimum rating for the discover feed"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" doc:"Last save time; absent for defaults"`
}

// PreferencesOutput wraps the preferences for Huma.
type PreferencesOutput struct {
	Body PreferencesResponse
}

// SavePreferencesRequest is the request body for saving preferences.
type SavePreferencesRequest struct {
	Genres    []string `json:"genres" doc:"Preferred genres; empty matches all"`
	MinRating float64  `json:"min_rating" validate:"min=0,max=10" minimum:"0" maximum:"10" doc:"Minimum rating between 0 and 10"`
}

// SavePreferencesInput wraps the save request for Huma.
type SavePreferencesInput struct {
	Body SavePreferencesRequest
}

// === Handlers ===

func (s *Server) handleGetPreferences(ctx context.Context, _ *struct{}) (*PreferencesOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	prefs, err := s.services.Preferences.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &PreferencesOutput{Body: mapPreferencesResponse(prefs)}, nil
}

func (s *Server) handleSavePreferences(ctx context.Context, input *SavePreferencesInput) (*PreferencesOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	prefs, err := s.services.Preferences.Save(ctx, userID, input.Body.Genres, input.Body.MinRating)
	if err != nil {
		return nil, err
	}

	return &PreferencesOutput{Body: mapPreferencesResponse(prefs)}, nil
}

// === Helpers ===

func mapPreferencesResponse(prefs *domain.Preferences) PreferencesResponse {
	resp := PreferencesResponse{
		Genres:    prefs.Genres,
		MinRating: prefs.MinRating,
	}
	if !prefs.UpdatedAt.IsZero() {
		at := prefs.UpdatedAt
		resp.UpdatedAt = &at
	}
	return resp
}
