package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/moviethruster/thruster-server/internal/catalog"
	"github.com/moviethruster/thruster-server/internal/domain"
	"github.com/moviethruster/thruster-server/internal/errors"
	"github.com/moviethruster/thruster-server/internal/metadata"
	"github.com/moviethruster/thruster-server/internal/store/sqlite"
)

// RecommendMode selects the candidate source.
type RecommendMode string

const (
	// ModeSimilarity picks the nearest neighbors of a seed title.
	ModeSimilarity RecommendMode = "similarity"
	// ModeRandom picks a uniform random sample of the catalog.
	ModeRandom RecommendMode = "random"
)

// RecommendParams configures one recommendation request.
type RecommendParams struct {
	// Seed is the exact catalog title to recommend from. Required in
	// similarity mode, ignored in random mode.
	Seed string
	// Count is the number of candidates to select before filtering.
	// Zero or negative yields an empty result.
	Count int
	// Mode defaults to similarity.
	Mode RecommendMode
	// Genre, when set, keeps only movies whose details carry it.
	Genre string
	// MinRating, when positive, keeps only movies rated at or above it.
	MinRating float64
}

// RecommendService selects, enriches, filters, and records recommendations.
type RecommendService struct {
	catalog      *catalog.Catalog
	sim          *catalog.SimilarityIndex
	metadata     *metadata.Service
	store        *sqlite.Store
	defaultCount int
	logger       *slog.Logger
}

// NewRecommendService creates a recommendation service. defaultCount is
// what callers should use when a request omits the candidate count; it is
// never applied implicitly, an explicit non-positive count yields an empty
// result.
func NewRecommendService(
	cat *catalog.Catalog,
	sim *catalog.SimilarityIndex,
	meta *metadata.Service,
	store *sqlite.Store,
	defaultCount int,
	logger *slog.Logger,
) *RecommendService {
	return &RecommendService{
		catalog:      cat,
		sim:          sim,
		metadata:     meta,
		store:        store,
		defaultCount: defaultCount,
		logger:       logger,
	}
}

// DefaultCount returns the configured candidate count for requests that
// don't specify one.
func (s *RecommendService) DefaultCount() int {
	return s.defaultCount
}

// Recommend runs the full pipeline: select candidates, enrich them with
// details, apply filters, record the survivors, and return them in
// selection order.
//
// Filtering happens after selection and never backfills: asking for 10
// action movies may return fewer when some neighbors aren't action.
func (s *RecommendService) Recommend(ctx context.Context, params RecommendParams) ([]domain.Recommendation, error) {
	if params.Count <= 0 {
		return []domain.Recommendation{}, nil
	}

	rows, err := s.selectCandidates(params)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Movie, 0, len(rows))
	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		movie, ok := s.catalog.ByRow(row)
		if !ok {
			continue
		}
		candidates = append(candidates, movie)
		ids = append(ids, movie.ID)
	}

	details, err := s.metadata.Details(ctx, ids)
	if err != nil {
		return nil, err
	}

	results := make([]domain.Recommendation, 0, len(candidates))
	for _, movie := range candidates {
		d := details[movie.ID]

		if params.Genre != "" && !d.HasGenre(params.Genre) {
			continue
		}
		if params.MinRating > 0 && d.Rating < params.MinRating {
			continue
		}

		s.record(ctx, movie, d)
		results = append(results, domain.Recommendation{Movie: movie, Details: d})
	}

	s.logger.Info("recommendations generated",
		"mode", string(normalizeMode(params.Mode)),
		"requested", params.Count,
		"returned", len(results),
	)

	return results, nil
}

func (s *RecommendService) selectCandidates(params RecommendParams) ([]int, error) {
	switch normalizeMode(params.Mode) {
	case ModeSimilarity:
		movie, ok := s.catalog.ByTitle(params.Seed)
		if !ok {
			return nil, errors.NotFoundf("unknown movie title: %s", params.Seed)
		}
		return s.sim.Neighbors(movie.Row, params.Count)
	case ModeRandom:
		return s.sim.RandomSample(params.Count), nil
	default:
		return nil, errors.Validationf("unknown recommendation mode: %s", params.Mode)
	}
}

// record appends one history row. Persistence failures are logged and
// swallowed so a flaky disk never blocks recommendations.
func (s *RecommendService) record(ctx context.Context, movie domain.Movie, d domain.MovieDetails) {
	rec := &domain.RecommendationRecord{
		Title:         movie.Title,
		Genres:        strings.Join(d.Genres, ", "),
		Rating:        d.Rating,
		RecommendedAt: time.Now().UTC(),
	}
	if err := s.store.AppendRecommendation(ctx, rec); err != nil {
		s.logger.Warn("failed to record recommendation", "title", movie.Title, "error", err)
	}
}

func normalizeMode(mode RecommendMode) RecommendMode {
	if mode == "" {
		return ModeSimilarity
	}
	return mode
}
