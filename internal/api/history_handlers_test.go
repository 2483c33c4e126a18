package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviethruster/thruster-server/internal/domain"
)

func TestHistoryAndClear(t *testing.T) {
	ts := setupTestServer(t)

	// Generate some history through the recommendation path.
	resp := ts.api.Get("/api/v1/recommendations?title=Avatar&count=3")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/history/all")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[HistoryResponse]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)
	assert.Equal(t, 3, envelope.Data.Count)

	// Clear it.
	resp = ts.api.Delete("/api/v1/history")
	require.Equal(t, http.StatusOK, resp.Code)

	var clearEnvelope testEnvelope[ClearHistoryResponse]
	err = json.Unmarshal(resp.Body.Bytes(), &clearEnvelope)
	require.NoError(t, err)
	assert.Equal(t, int64(3), clearEnvelope.Data.Removed)

	resp = ts.api.Get("/api/v1/history/all")
	require.Equal(t, http.StatusOK, resp.Code)
	err = json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)
	assert.Equal(t, 0, envelope.Data.Count)
}

func TestDashboardStats(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/recommendations?title=Avatar&count=3")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/stats/dashboard")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[domain.DashboardStats]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	assert.Equal(t, 3, envelope.Data.TotalRecommendations)
	assert.Equal(t, 3, envelope.Data.UniqueTitles)
	assert.NotNil(t, envelope.Data.LatestAt)
	assert.NotEmpty(t, envelope.Data.GenreCounts)
	assert.Equal(t, "Action", envelope.Data.GenreCounts[0].Genre)
}
