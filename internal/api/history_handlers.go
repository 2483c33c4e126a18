package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moviethruster/thruster-server/internal/domain"
)

func (s *Server) registerHistoryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getRecentHistory",
		Method:      http.MethodGet,
		Path:        "/api/v1/history",
		Summary:     "Get recent recommendation history",
		Description: "Returns the newest recommendation records, newest first",
		Tags:        []string{"History"},
	}, s.handleGetRecentHistory)

	huma.Register(s.api, huma.Operation{
		OperationID: "getAllHistory",
		Method:      http.MethodGet,
		Path:        "/api/v1/history/all",
		Summary:     "Get full recommendation history",
		Description: "Returns every recommendation record, newest first",
		Tags:        []string{"History"},
	}, s.handleGetAllHistory)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearHistory",
		Method:      http.MethodDelete,
		Path:        "/api/v1/history",
		Summary:     "Clear recommendation history",
		Description: "Deletes the entire recommendation log",
		Tags:        []string{"History"},
	}, s.handleClearHistory)
}

// === DTOs ===

// HistoryInput holds query parameters for recent history.
type HistoryInput struct {
	Limit int `query:"limit" default:"10" minimum:"1" maximum:"500" doc:"Maximum records to return"`
}

// HistoryResponse is a list of recommendation records.
type HistoryResponse struct {
	Records []domain.RecommendationRecord `json:"records" doc:"Recommendation records, newest first"`
	Count   int                           `json:"count" doc:"Number of records returned"`
}

// HistoryOutput wraps the history response for Huma.
type HistoryOutput struct {
	Body HistoryResponse
}

// ClearHistoryResponse reports how many records were deleted.
type ClearHistoryResponse struct {
	Removed int64 `json:"removed" doc:"Number of records deleted"`
}

// ClearHistoryOutput wraps the clear response for Huma.
type ClearHistoryOutput struct {
	Body ClearHistoryResponse
}

// === Handlers ===

func (s *Server) handleGetRecentHistory(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	records, err := s.services.History.Recent(ctx, input.Limit)
	if err != nil {
		return nil, err
	}

	return &HistoryOutput{Body: HistoryResponse{Records: records, Count: len(records)}}, nil
}

func (s *Server) handleGetAllHistory(ctx context.Context, _ *struct{}) (*HistoryOutput, error) {
	records, err := s.services.History.All(ctx)
	if err != nil {
		return nil, err
	}

	return &HistoryOutput{Body: HistoryResponse{Records: records, Count: len(records)}}, nil
}

func (s *Server) handleClearHistory(ctx context.Context, _ *struct{}) (*ClearHistoryOutput, error) {
	removed, err := s.services.History.Clear(ctx)
	if err != nil {
		return nil, err
	}

	return &ClearHistoryOutput{Body: ClearHistoryResponse{Removed: removed}}, nil
}
