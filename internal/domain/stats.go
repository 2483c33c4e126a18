package domain

import "time"

// DashboardStats aggregates the recommendation history for the stats view.
type DashboardStats struct {
	TotalRecommendations int             `json:"total_recommendations"`
	AverageRating        float64         `json:"average_rating"`
	UniqueTitles         int             `json:"unique_titles"`
	LatestAt             *time.Time      `json:"latest_at,omitempty"`
	GenreCounts          []GenreCount    `json:"genre_counts"`
	DailyCounts          []DailyActivity `json:"daily_counts"`
}

// GenreCount is the number of recommended movies carrying a genre.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// DailyActivity is the number of recommendations recorded on a day.
type DailyActivity struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}
