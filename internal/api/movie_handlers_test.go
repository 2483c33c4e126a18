package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMovies(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/movies")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[MovieListResponse]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	assert.True(t, envelope.Success)
	assert.Equal(t, 4, envelope.Data.Total)
	assert.Equal(t, 1, envelope.Data.Page)
	require.Len(t, envelope.Data.Movies, 4)
	assert.Equal(t, "Avatar", envelope.Data.Movies[0].Title)
	assert.Equal(t, "Blue planet", envelope.Data.Movies[0].Details.Overview)
}

func TestListMoviesWithQuery(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/movies?q=titanic")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[MovieListResponse]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	require.Len(t, envelope.Data.Movies, 1)
	assert.Equal(t, "Titanic", envelope.Data.Movies[0].Title)
}

func TestGetMovie(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/movies/103")
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[MovieResponse]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)

	assert.Equal(t, "Titanic", envelope.Data.Title)
	assert.Equal(t, 7.9, envelope.Data.Details.Rating)
}

func TestGetMovieNotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/movies/999")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	var envelope testEnvelope[struct{}]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)
	assert.False(t, envelope.Success)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}
