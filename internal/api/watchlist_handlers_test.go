package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchlistFlow(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := ts.createTestUser(t)
	authHeader := "Authorization: Bearer " + token

	// Add a movie.
	resp := ts.api.Post("/api/v1/watchlist", authHeader, map[string]any{"movie_id": 103})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var addEnvelope testEnvelope[AddWatchlistResponse]
	err := json.Unmarshal(resp.Body.Bytes(), &addEnvelope)
	require.NoError(t, err)
	assert.Equal(t, "Titanic", addEnvelope.Data.Title)

	// List it back with details.
	resp = ts.api.Get("/api/v1/watchlist", authHeader)
	require.Equal(t, http.StatusOK, resp.Code)

	var listEnvelope testEnvelope[WatchlistResponse]
	err = json.Unmarshal(resp.Body.Bytes(), &listEnvelope)
	require.NoError(t, err)
	require.Equal(t, 1, listEnvelope.Data.Count)
	assert.Equal(t, "Titanic", listEnvelope.Data.Entries[0].Movie.Title)
	assert.Equal(t, 7.9, listEnvelope.Data.Entries[0].Movie.Details.Rating)

	// Remove it.
	resp = ts.api.Delete("/api/v1/watchlist/103", authHeader)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/watchlist", authHeader)
	require.Equal(t, http.StatusOK, resp.Code)
	err = json.Unmarshal(resp.Body.Bytes(), &listEnvelope)
	require.NoError(t, err)
	assert.Equal(t, 0, listEnvelope.Data.Count)
}

func TestWatchlistAddUnknownMovie(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := ts.createTestUser(t)

	resp := ts.api.Post("/api/v1/watchlist", "Authorization: Bearer "+token, map[string]any{"movie_id": 999})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestWatchlistRequiresAuth(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/watchlist")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = ts.api.Post("/api/v1/watchlist", map[string]any{"movie_id": 103})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestPreferencesFlow(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := ts.createTestUser(t)
	authHeader := "Authorization: Bearer " + token

	// Defaults before anything is saved.
	resp := ts.api.Get("/api/v1/preferences", authHeader)
	require.Equal(t, http.StatusOK, resp.Code)

	var envelope testEnvelope[PreferencesResponse]
	err := json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)
	assert.Empty(t, envelope.Data.Genres)
	assert.Equal(t, 5.0, envelope.Data.MinRating)
	assert.Nil(t, envelope.Data.UpdatedAt)

	// Save new preferences.
	resp = ts.api.Put("/api/v1/preferences", authHeader, map[string]any{
		"genres":     []string{"Action"},
		"min_rating": 7.0,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	// Read them back.
	resp = ts.api.Get("/api/v1/preferences", authHeader)
	require.Equal(t, http.StatusOK, resp.Code)
	err = json.Unmarshal(resp.Body.Bytes(), &envelope)
	require.NoError(t, err)
	assert.Equal(t, []string{"Action"}, envelope.Data.Genres)
	assert.Equal(t, 7.0, envelope.Data.MinRating)
	assert.NotNil(t, envelope.Data.UpdatedAt)
}

func TestPreferencesRejectsBadRating(t *testing.T) {
	ts := setupTestServer(t)
	token, _ := ts.createTestUser(t)

	resp := ts.api.Put("/api/v1/preferences", "Authorization: Bearer "+token, map[string]any{
		"genres":     []string{},
		"min_rating": 11.0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
