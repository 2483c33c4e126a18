package catalog

import (
	"bufio"
	"encoding/binary"
	"encoding/json/v2"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/errors"
)

// Data file names expected under the data directory.
const (
	MoviesFile     = "movies.json"
	MoodsFile      = "moods.json"
	SimilarityFile = "similarity.bin"
)

// movieRecord matches the catalog JSON column names.
type movieRecord struct {
	MovieID int    `json:"movie_id"`
	Title   string `json:"title"`
}

// Load reads the catalog and similarity matrix from the data directory.
// moods.json is optional; a missing file leaves the mood table empty.
func Load(dir string) (*Catalog, *SimilarityIndex, error) {
	movies, err := loadMovies(filepath.Join(dir, MoviesFile))
	if err != nil {
		return nil, nil, fmt.Errorf("load movies: %w", err)
	}

	moods, err := loadMoods(filepath.Join(dir, MoodsFile))
	if err != nil {
		return nil, nil, fmt.Errorf("load moods: %w", err)
	}

	cat, err := New(movies, moods)
	if err != nil {
		return nil, nil, err
	}

	rows, err := ReadSimilarity(filepath.Join(dir, SimilarityFile))
	if err != nil {
		return nil, nil, fmt.Errorf("load similarity matrix: %w", err)
	}

	index, err := NewSimilarityIndex(rows, cat.Len())
	if err != nil {
		return nil, nil, err
	}

	return cat, index, nil
}

func loadMovies(path string) ([]domain.Movie, error) {
	file, err := os.Open(path) //#nosec G304 -- path comes from validated config
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var records []movieRecord
	if err := json.UnmarshalRead(file, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	movies := make([]domain.Movie, len(records))
	for i, r := range records {
		movies[i] = domain.Movie{ID: r.MovieID, Title: r.Title}
	}
	return movies, nil
}

func loadMoods(path string) ([]domain.MoodMovie, error) {
	file, err := os.Open(path) //#nosec G304 -- path comes from validated config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var moods []domain.MoodMovie
	if err := json.UnmarshalRead(file, &moods); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return moods, nil
}

// ReadSimilarity reads the binary similarity matrix: a little-endian
// uint32 dimension followed by n*n float32 scores in row-major order.
func ReadSimilarity(path string) ([][]float32, error) {
	file, err := os.Open(path) //#nosec G304 -- path comes from validated config
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := bufio.NewReader(file)

	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("read matrix dimension: %w", err)
	}
	if n == 0 {
		return nil, errors.InvalidState("similarity matrix is empty")
	}

	flat := make([]float32, int(n)*int(n))
	if err := binary.Read(r, binary.LittleEndian, flat); err != nil {
		return nil, fmt.Errorf("read matrix values: %w", err)
	}

	rows := make([][]float32, n)
	for i := range rows {
		rows[i] = flat[i*int(n) : (i+1)*int(n)]
	}
	return rows, nil
}

// WriteSimilarity writes a square matrix in the format ReadSimilarity expects.
func WriteSimilarity(w io.Writer, rows [][]float32) error {
	bw := bufio.NewWriter(w)

	n := uint32(len(rows)) //#nosec G115 -- catalog sizes are far below uint32 range
	if err := binary.Write(bw, binary.LittleEndian, n); err != nil {
		return fmt.Errorf("write matrix dimension: %w", err)
	}

	for i, row := range rows {
		if len(row) != len(rows) {
			return errors.InvalidStatef("similarity matrix row %d has %d columns, want %d", i, len(row), len(rows))
		}
		if err := binary.Write(bw, binary.LittleEndian, row); err != nil {
			return fmt.Errorf("write matrix row %d: %w", i, err)
		}
	}

	return bw.Flush()
}
