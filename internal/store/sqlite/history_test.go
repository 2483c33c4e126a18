package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/moviethruster/thruster-server/internal/domain"
)

func appendRecord(t *testing.T, s *Store, title string, at time.Time) {
	t.Helper()
	rec := &domain.RecommendationRecord{
		Title:         title,
		Genres:        "Action, Adventure",
		Rating:        7.5,
		RecommendedAt: at,
	}
	if err := s.AppendRecommendation(context.Background(), rec); err != nil {
		t.Fatalf("append recommendation: %v", err)
	}
	if rec.ID == 0 {
		t.Error("append should backfill the row id")
	}
}

func TestAppendAndRecent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	appendRecord(t, s, "Avatar", base)
	appendRecord(t, s, "Spectre", base.Add(time.Hour))
	appendRecord(t, s, "Inception", base.Add(2*time.Hour))

	recent, err := s.RecentRecommendations(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	if recent[0].Title != "Inception" || recent[1].Title != "Spectre" {
		t.Errorf("expected newest first, got %q, %q", recent[0].Title, recent[1].Title)
	}
	if recent[0].Genres != "Action, Adventure" {
		t.Errorf("genres round-trip failed: %q", recent[0].Genres)
	}
	if !recent[0].RecommendedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("timestamp round-trip failed: %v", recent[0].RecommendedAt)
	}
}

func TestRecentNonPositiveLimit(t *testing.T) {
	s := newTestStore(t)

	appendRecord(t, s, "Avatar", time.Now())

	recent, err := s.RecentRecommendations(context.Background(), 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("limit 0 should return nothing, got %d rows", len(recent))
	}
}

func TestAllRecommendations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	all, err := s.AllRecommendations(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty history, got %d rows", len(all))
	}

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"A", "B", "C"} {
		appendRecord(t, s, title, base.Add(time.Duration(i)*time.Minute))
	}

	all, err = s.AllRecommendations(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(all))
	}
	if all[0].Title != "C" {
		t.Errorf("expected newest first, got %q", all[0].Title)
	}
}

func TestClearRecommendations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	appendRecord(t, s, "Avatar", time.Now())
	appendRecord(t, s, "Spectre", time.Now())

	removed, err := s.ClearRecommendations(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 rows removed, got %d", removed)
	}

	all, err := s.AllRecommendations(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty history after clear, got %d rows", len(all))
	}

	// Clearing an empty log is fine.
	removed, err = s.ClearRecommendations(ctx)
	if err != nil {
		t.Errorf("clear on empty log: %v", err)
	}
	if removed != 0 {
		t.Errorf("expected 0 rows removed from empty log, got %d", removed)
	}
}
