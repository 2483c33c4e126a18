// Package main provides a tool to generate a demo catalog data directory.
//
// It writes movies.json, moods.json, and similarity.bin with a small synthetic
// catalog so the server can be exercised without the real dataset.
//
// Usage:
//
//	go run ./cmd/seed --data ~/thruster/data
//	go run ./cmd/seed --data ~/thruster/data --movies 200
package main

import (
	"encoding/json/v2"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/moviethruster/thruster-server/internal/catalog"
	"github.com/moviethruster/thruster-server/internal/domain"
)

var (
	dataDir    = flag.String("data", "", "Data directory to write into (required)")
	movieCount = flag.Int("movies", 50, "Number of synthetic movies to generate")
)

var titleAdjectives = []string{
	"Silent", "Crimson", "Forgotten", "Electric", "Midnight",
	"Golden", "Broken", "Distant", "Hidden", "Burning",
}

var titleNouns = []string{
	"Horizon", "Empire", "Garden", "Voyage", "Signal",
	"Harbor", "Letters", "Summit", "Echo", "Reckoning",
}

var moodTable = []domain.MoodMovie{
	{Title: "Silent Horizon", Emotions: []string{"Happy", "Excited"}, Genres: []string{"Adventure"}},
	{Title: "Crimson Empire", Emotions: []string{"Excited"}, Genres: []string{"Action"}},
	{Title: "Forgotten Garden", Emotions: []string{"Sad"}, Genres: []string{"Drama", "Romance"}},
	{Title: "Electric Voyage", Emotions: []string{"Happy"}, Genres: []string{"Comedy"}},
	{Title: "Midnight Signal", Emotions: []string{"Fearful"}, Genres: []string{"Thriller", "Horror"}},
}

func main() {
	flag.Parse()

	if *dataDir == "" {
		log.Fatal("--data is required")
	}
	if *movieCount < 2 {
		log.Fatal("--movies must be at least 2")
	}

	if err := os.MkdirAll(*dataDir, 0o750); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	movies := generateMovies(*movieCount)

	if err := writeMovies(filepath.Join(*dataDir, catalog.MoviesFile), movies); err != nil {
		log.Fatalf("Failed to write movies: %v", err)
	}
	fmt.Printf("Wrote %d movies to %s\n", len(movies), catalog.MoviesFile)

	if err := writeJSON(filepath.Join(*dataDir, catalog.MoodsFile), moodTable); err != nil {
		log.Fatalf("Failed to write moods: %v", err)
	}
	fmt.Printf("Wrote %d mood entries to %s\n", len(moodTable), catalog.MoodsFile)

	if err := writeSimilarity(filepath.Join(*dataDir, catalog.SimilarityFile), len(movies)); err != nil {
		log.Fatalf("Failed to write similarity matrix: %v", err)
	}
	fmt.Printf("Wrote %dx%d similarity matrix to %s\n", len(movies), len(movies), catalog.SimilarityFile)
}

// movieRecord matches the catalog JSON column names.
type movieRecord struct {
	MovieID int    `json:"movie_id"`
	Title   string `json:"title"`
}

func generateMovies(count int) []movieRecord {
	movies := make([]movieRecord, 0, count)
	seen := make(map[string]bool, count)

	for i := 0; len(movies) < count; i++ {
		adj := titleAdjectives[i%len(titleAdjectives)]
		noun := titleNouns[(i/len(titleAdjectives))%len(titleNouns)]
		title := adj + " " + noun
		if seen[title] {
			title = fmt.Sprintf("%s %d", title, i)
		}
		seen[title] = true

		// TMDB-style ids, offset so they never collide with row indexes.
		movies = append(movies, movieRecord{MovieID: 1000 + i, Title: title})
	}
	return movies
}

func writeMovies(path string, movies []movieRecord) error {
	return writeJSON(path, movies)
}

func writeJSON(path string, v any) error {
	file, err := os.Create(path) //#nosec G304 -- path comes from the --data flag
	if err != nil {
		return err
	}
	defer file.Close()

	if err := json.MarshalWrite(file, v); err != nil {
		return err
	}
	return file.Close()
}

// writeSimilarity generates a symmetric random similarity matrix with a
// unit diagonal, then writes it in the catalog's binary format.
func writeSimilarity(path string, n int) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- demo data, not security-sensitive

	rows := make([][]float32, n)
	for i := range rows {
		rows[i] = make([]float32, n)
	}
	for i := 0; i < n; i++ {
		rows[i][i] = 1.0
		for j := i + 1; j < n; j++ {
			score := rng.Float32()
			rows[i][j] = score
			rows[j][i] = score
		}
	}

	file, err := os.Create(path) //#nosec G304 -- path comes from the --data flag
	if err != nil {
		return err
	}
	defer file.Close()

	if err := catalog.WriteSimilarity(file, rows); err != nil {
		return err
	}
	return file.Close()
}
