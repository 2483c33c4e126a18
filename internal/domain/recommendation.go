package domain

import (
	"strings"
	"time"
)

// RecommendationRecord is one row of the recommendation history log.
// Genres are stored comma-joined, matching the dashboard aggregation format.
type RecommendationRecord struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Genres        string    `json:"genres"`
	Rating        float64   `json:"rating"`
	RecommendedAt time.Time `json:"recommended_at"`
}

// GenreList splits the comma-joined genres back into a slice.
func (r RecommendationRecord) GenreList() []string {
	if r.Genres == "" {
		return nil
	}
	parts := strings.Split(r.Genres, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			out = append(out, g)
		}
	}
	return out
}
