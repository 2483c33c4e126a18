package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moviethruster/thruster-server/internal/domain"
)

func (s *Server) registerStatsRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getDashboardStats",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats/dashboard",
		Summary:     "Get dashboard statistics",
		Description: "Returns aggregate statistics over the recommendation history",
		Tags:        []string{"Stats"},
	}, s.handleGetDashboardStats)
}

// StatsOutput wraps the dashboard stats for Huma.
type StatsOutput struct {
	Body domain.DashboardStats
}

func (s *Server) handleGetDashboardStats(ctx context.Context, _ *struct{}) (*StatsOutput, error) {
	stats, err := s.services.Stats.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsOutput{Body: *stats}, nil
}
