package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviethruster/thruster-server/internal/errors"
)

func testMatrix() [][]float32 {
	// Row 0: 2 is the closest neighbor, then 1, then 3.
	// Row 1: ties between 0 and 2.
	return [][]float32{
		{1.0, 0.5, 0.9, 0.1},
		{0.7, 1.0, 0.7, 0.2},
		{0.9, 0.6, 1.0, 0.3},
		{0.1, 0.2, 0.3, 1.0},
	}
}

func TestNewSimilarityIndexValidation(t *testing.T) {
	_, err := NewSimilarityIndex(testMatrix(), 4)
	require.NoError(t, err)

	_, err = NewSimilarityIndex(testMatrix(), 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidState))

	ragged := [][]float32{{1, 0}, {0}}
	_, err = NewSimilarityIndex(ragged, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidState))
}

func TestNeighborsOrdering(t *testing.T) {
	idx, err := NewSimilarityIndex(testMatrix(), 4)
	require.NoError(t, err)

	got, err := idx.Neighbors(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3}, got)
}

func TestNeighborsExcludesSeed(t *testing.T) {
	idx, err := NewSimilarityIndex(testMatrix(), 4)
	require.NoError(t, err)

	got, err := idx.Neighbors(2, 4)
	require.NoError(t, err)
	assert.NotContains(t, got, 2)
	assert.Len(t, got, 3, "seed row is excluded even when count exceeds the catalog")
}

func TestNeighborsTieBreaksByRow(t *testing.T) {
	idx, err := NewSimilarityIndex(testMatrix(), 4)
	require.NoError(t, err)

	// Row 1 scores 0 and 2 identically; the lower row index comes first.
	got, err := idx.Neighbors(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, got)
}

func TestNeighborsOutOfRange(t *testing.T) {
	idx, err := NewSimilarityIndex(testMatrix(), 4)
	require.NoError(t, err)

	_, err = idx.Neighbors(4, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	_, err = idx.Neighbors(-1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestNeighborsNonPositiveCount(t *testing.T) {
	idx, err := NewSimilarityIndex(testMatrix(), 4)
	require.NoError(t, err)

	got, err := idx.Neighbors(0, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = idx.Neighbors(0, -5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRandomSample(t *testing.T) {
	idx, err := NewSimilarityIndex(testMatrix(), 4)
	require.NoError(t, err)

	got := idx.RandomSample(3)
	assert.Len(t, got, 3)

	seen := make(map[int]bool)
	for _, row := range got {
		assert.GreaterOrEqual(t, row, 0)
		assert.Less(t, row, 4)
		assert.False(t, seen[row], "sampled rows must be distinct")
		seen[row] = true
	}

	assert.Len(t, idx.RandomSample(10), 4, "sample is clamped to the catalog size")
	assert.Empty(t, idx.RandomSample(0))
}
