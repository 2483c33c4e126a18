package providers

import (
	"github.com/samber/do/v2"

	"github.com/moviethruster/thruster-server/internal/config"
	"github.com/moviethruster/thruster-server/internal/logger"
	"github.com/moviethruster/thruster-server/internal/metadata"
	"github.com/moviethruster/thruster-server/internal/metadata/tmdb"
)

// ProvideTMDBClient provides the TMDB API client.
func ProvideTMDBClient(i do.Injector) (*tmdb.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	opts := []tmdb.Option{
		tmdb.WithTimeout(cfg.TMDB.Timeout),
		tmdb.WithStrict(cfg.TMDB.Strict),
	}
	if cfg.TMDB.BaseURL != "" {
		opts = append(opts, tmdb.WithBaseURL(cfg.TMDB.BaseURL))
	}

	client := tmdb.NewClient(cfg.TMDB.APIKey, log.Logger, opts...)

	if cfg.TMDB.APIKey == "" {
		log.Warn("No TMDB API key configured, all metadata resolves to fallback details")
	} else {
		log.Info("TMDB client initialized", "strict", cfg.TMDB.Strict)
	}

	return client, nil
}

// ProvideMetadataService provides the cached metadata service.
func ProvideMetadataService(i do.Injector) (*metadata.Service, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	client := do.MustInvoke[*tmdb.Client](i)

	cache := metadata.NewCache(cfg.Cache.Capacity)
	log.Info("Metadata cache initialized", "capacity", cfg.Cache.Capacity)

	return metadata.NewService(cache, client, log.Logger), nil
}
