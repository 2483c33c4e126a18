package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moviethruster/thruster-server/internal/service"
)

func (s *Server) registerRecommendationRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getRecommendations",
		Method:      http.MethodGet,
		Path:        "/api/v1/recommendations",
		Summary:     "Get recommendations",
		Description: "Returns movies similar to a seed title, or a random selection, enriched with metadata and filtered by genre and rating",
		Tags:        []string{"Recommendations"},
	}, s.handleGetRecommendations)

	huma.Register(s.api, huma.Operation{
		OperationID: "getMoodRecommendations",
		Method:      http.MethodGet,
		Path:        "/api/v1/recommendations/mood",
		Summary:     "Get mood recommendations",
		Description: "Returns movies matching an emotion or genre from the mood table",
		Tags:        []string{"Recommendations"},
	}, s.handleGetMoodRecommendations)

	huma.Register(s.api, huma.Operation{
		OperationID: "getDiscoverFeed",
		Method:      http.MethodGet,
		Path:        "/api/v1/recommendations/discover",
		Summary:     "Get personalized discover feed",
		Description: "Returns catalog movies matching the authenticated user's saved preferences",
		Tags:        []string{"Recommendations"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetDiscoverFeed)
}

// === DTOs ===

// RecommendationsInput holds query parameters for recommendations.
type RecommendationsInput struct {
	Title     string  `query:"title" doc:"Seed movie title (required in similarity mode)"`
	Count     *int    `query:"count" minimum:"0" maximum:"50" doc:"Number of candidates to select; omitted picks the server default, zero returns none"`
	Mode      string  `query:"mode" enum:"similarity,random" default:"similarity" doc:"Candidate selection mode"`
	Genre     string  `query:"genre" doc:"Optional exact genre filter"`
	MinRating float64 `query:"min_rating" minimum:"0" maximum:"10" doc:"Optional minimum rating filter"`
}

// RecommendationsResponse is a list of recommended movies.
type RecommendationsResponse struct {
	Recommendations []MovieResponse `json:"recommendations" doc:"Recommended movies in selection order"`
	Count           int             `json:"count" doc:"Number of recommendations returned"`
}

// RecommendationsOutput wraps the recommendations for Huma.
type RecommendationsOutput struct {
	Body RecommendationsResponse
}

// MoodInput holds query parameters for mood recommendations.
type MoodInput struct {
	Emotion string `query:"emotion" doc:"Emotion tag (case-insensitive)"`
	Genre   string `query:"genre" doc:"Genre tag (exact match)"`
}

// === Handlers ===

func (s *Server) handleGetRecommendations(ctx context.Context, input *RecommendationsInput) (*RecommendationsOutput, error) {
	count := s.services.Recommend.DefaultCount()
	if input.Count != nil {
		count = *input.Count
	}

	recs, err := s.services.Recommend.Recommend(ctx, service.RecommendParams{
		Seed:      input.Title,
		Count:     count,
		Mode:      service.RecommendMode(input.Mode),
		Genre:     input.Genre,
		MinRating: input.MinRating,
	})
	if err != nil {
		return nil, err
	}

	return &RecommendationsOutput{
		Body: RecommendationsResponse{
			Recommendations: mapMovieResponses(recs),
			Count:           len(recs),
		},
	}, nil
}

func (s *Server) handleGetMoodRecommendations(ctx context.Context, input *MoodInput) (*RecommendationsOutput, error) {
	recs, err := s.services.Mood.ByMood(ctx, input.Emotion, input.Genre)
	if err != nil {
		return nil, err
	}

	return &RecommendationsOutput{
		Body: RecommendationsResponse{
			Recommendations: mapMovieResponses(recs),
			Count:           len(recs),
		},
	}, nil
}

func (s *Server) handleGetDiscoverFeed(ctx context.Context, _ *struct{}) (*RecommendationsOutput, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := s.services.Preferences.Discover(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &RecommendationsOutput{
		Body: RecommendationsResponse{
			Recommendations: mapMovieResponses(recs),
			Count:           len(recs),
		},
	}, nil
}
