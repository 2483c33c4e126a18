// Package search provides full-text title search over the movie catalog.
//
// The catalog is small and immutable, so the Bleve index lives in memory
// and is rebuilt from the catalog on every startup.
package search

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"github.com/moviethruster/thruster-server/internal/domain"
)

// Index wraps a Bleve index over catalog titles.
type Index struct {
	index  bleve.Index
	logger *slog.Logger
}

type movieDoc struct {
	Title string `json:"title"`
}

// NewIndex creates an empty in-memory index.
func NewIndex(logger *slog.Logger) (*Index, error) {
	mapping := bleve.NewIndexMapping()

	doc := bleve.NewDocumentMapping()
	titleField := bleve.NewTextFieldMapping()
	doc.AddFieldMappingsAt("title", titleField)
	mapping.DefaultMapping = doc

	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("create search index: %w", err)
	}

	return &Index{index: idx, logger: logger}, nil
}

// IndexCatalog indexes every catalog title in one batch.
func (s *Index) IndexCatalog(movies []domain.Movie) error {
	batch := s.index.NewBatch()
	for _, m := range movies {
		if err := batch.Index(strconv.Itoa(m.ID), movieDoc{Title: m.Title}); err != nil {
			return fmt.Errorf("index movie %d: %w", m.ID, err)
		}
	}
	if err := s.index.Batch(batch); err != nil {
		return fmt.Errorf("apply index batch: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("search index built", "movies", len(movies))
	}
	return nil
}

// SearchTitles returns up to limit movie ids whose titles match the
// query, best matches first. Matching combines fuzzy term matching with
// a prefix match so partial words still hit.
func (s *Index) SearchTitles(queryString string, limit int) ([]int, error) {
	queryString = strings.TrimSpace(queryString)
	if queryString == "" || limit <= 0 {
		return nil, nil
	}

	match := bleve.NewMatchQuery(queryString)
	match.SetField("title")
	match.SetFuzziness(1)

	prefix := bleve.NewPrefixQuery(strings.ToLower(queryString))
	prefix.SetField("title")

	query := bleve.NewDisjunctionQuery(match, prefix)
	req := bleve.NewSearchRequestOptions(query, limit, 0, false)

	result, err := s.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search titles: %w", err)
	}

	ids := make([]int, 0, len(result.Hits))
	for _, hit := range result.Hits {
		id, err := strconv.Atoi(hit.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Close releases the index.
func (s *Index) Close() error {
	return s.index.Close()
}
