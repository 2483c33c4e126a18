package catalog

import (
	"math/rand/v2"
	"sort"

	"github.com/moviethruster/thruster-server/internal/errors"
)

// SimilarityIndex answers nearest-neighbor queries over the precomputed
// similarity matrix. The matrix is row-indexed by catalog position and
// square; scores are higher for more similar movies.
type SimilarityIndex struct {
	rows [][]float32
}

// NewSimilarityIndex validates the matrix against the catalog size.
// A non-square matrix or a size mismatch is a startup integrity failure.
func NewSimilarityIndex(rows [][]float32, catalogLen int) (*SimilarityIndex, error) {
	if len(rows) != catalogLen {
		return nil, errors.InvalidStatef("similarity matrix has %d rows for %d catalog entries", len(rows), catalogLen)
	}
	for i, row := range rows {
		if len(row) != catalogLen {
			return nil, errors.InvalidStatef("similarity matrix row %d has %d columns, want %d", i, len(row), catalogLen)
		}
	}
	return &SimilarityIndex{rows: rows}, nil
}

// Len returns the matrix dimension.
func (x *SimilarityIndex) Len() int {
	return len(x.rows)
}

// Neighbors returns the top count catalog rows most similar to seedRow,
// in descending score order. seedRow itself is excluded. Ties are broken
// by ascending row index. Fewer than count rows are returned when the
// catalog is small.
func (x *SimilarityIndex) Neighbors(seedRow, count int) ([]int, error) {
	if seedRow < 0 || seedRow >= len(x.rows) {
		return nil, errors.NotFoundf("similarity row %d out of range", seedRow)
	}
	if count <= 0 {
		return nil, nil
	}

	scores := x.rows[seedRow]
	candidates := make([]int, 0, len(scores)-1)
	for row := range scores {
		if row != seedRow {
			candidates = append(candidates, row)
		}
	}

	// Stable sort keeps equal-score rows in ascending row order.
	sort.SliceStable(candidates, func(a, b int) bool {
		return scores[candidates[a]] > scores[candidates[b]]
	})

	if count > len(candidates) {
		count = len(candidates)
	}
	return candidates[:count], nil
}

// RandomSample returns min(count, len) distinct catalog rows chosen uniformly.
func (x *SimilarityIndex) RandomSample(count int) []int {
	if count <= 0 {
		return nil
	}
	n := len(x.rows)
	if count > n {
		count = n
	}
	return rand.Perm(n)[:count]
}
