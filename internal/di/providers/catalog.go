package providers

import (
	"github.com/samber/do/v2"

	"github.com/moviethruster/thruster-server/internal/catalog"
	"github.com/moviethruster/thruster-server/internal/config"
	"github.com/moviethruster/thruster-server/internal/logger"
)

// CatalogBundle holds the movie catalog together with its similarity index.
// Both are loaded from the same data directory and must stay row-aligned,
// so they travel as one unit.
type CatalogBundle struct {
	Catalog    *catalog.Catalog
	Similarity *catalog.SimilarityIndex
}

// ProvideCatalog loads the movie catalog and similarity matrix from disk.
func ProvideCatalog(i do.Injector) (*CatalogBundle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	cat, sim, err := catalog.Load(cfg.Data.BasePath)
	if err != nil {
		return nil, err
	}

	log.Info("Catalog loaded",
		"movies", cat.Len(),
		"moods", len(cat.Moods()),
	)

	return &CatalogBundle{Catalog: cat, Similarity: sim}, nil
}
