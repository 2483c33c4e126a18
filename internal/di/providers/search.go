package providers

import (
	"github.com/samber/do/v2"

	"github.com/moviethruster/thruster-server/internal/logger"
	"github.com/moviethruster/thruster-server/internal/search"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.Index
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the Bleve title index, populated from the catalog.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)
	bundle := do.MustInvoke[*CatalogBundle](i)

	index, err := search.NewIndex(log.Logger)
	if err != nil {
		return nil, err
	}

	if err := index.IndexCatalog(bundle.Catalog.Movies()); err != nil {
		_ = index.Close()
		return nil, err
	}

	log.Info("Search index built", "documents", bundle.Catalog.Len())

	return &SearchIndexHandle{Index: index}, nil
}
