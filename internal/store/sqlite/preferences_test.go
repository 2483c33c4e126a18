package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/errors"
	"github.com/moviethruster/thruster-server/internal/store"
)

func TestPreferencesSaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	prefs := &domain.Preferences{
		UserID:    "user-1",
		Genres:    []string{"Action", "Drama"},
		MinRating: 6.5,
		UpdatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := s.SavePreferences(ctx, prefs); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.GetPreferences(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Genres) != 2 || got.Genres[0] != "Action" || got.Genres[1] != "Drama" {
		t.Errorf("genres round-trip failed: %v", got.Genres)
	}
	if got.MinRating != 6.5 {
		t.Errorf("min rating round-trip failed: %v", got.MinRating)
	}
}

func TestPreferencesUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &domain.Preferences{UserID: "user-1", Genres: []string{"Action"}, MinRating: 5, UpdatedAt: time.Now()}
	if err := s.SavePreferences(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := &domain.Preferences{UserID: "user-1", Genres: []string{"Comedy"}, MinRating: 8, UpdatedAt: time.Now()}
	if err := s.SavePreferences(ctx, second); err != nil {
		t.Fatalf("save again: %v", err)
	}

	got, err := s.GetPreferences(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Genres) != 1 || got.Genres[0] != "Comedy" || got.MinRating != 8 {
		t.Errorf("second save should replace the first, got %+v", got)
	}
}

func TestPreferencesMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetPreferences(context.Background(), "nobody")
	if err == nil {
		t.Fatal("expected not found error")
	}
	var storeErr *store.Error
	if !errors.As(err, &storeErr) || storeErr.HTTPCode() != 404 {
		t.Errorf("expected store not found error, got %v", err)
	}
}

func TestPreferencesEmptyGenres(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	prefs := &domain.Preferences{UserID: "user-1", Genres: nil, MinRating: 5, UpdatedAt: time.Now()}
	if err := s.SavePreferences(ctx, prefs); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.GetPreferences(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Genres == nil || len(got.Genres) != 0 {
		t.Errorf("expected empty non-nil genre slice, got %#v", got.Genres)
	}
}
