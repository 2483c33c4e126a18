package providers

import (
	"github.com/samber/do/v2"

	"github.com/moviethruster/thruster-server/internal/auth"
	"github.com/moviethruster/thruster-server/internal/config"
	"github.com/moviethruster/thruster-server/internal/logger"
	"github.com/moviethruster/thruster-server/internal/metadata"
	"github.com/moviethruster/thruster-server/internal/service"
)

// ProvideAuthService provides the authentication service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokenService := do.MustInvoke[*auth.TokenService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(storeHandle.Store, tokenService, log.Logger), nil
}

// ProvideMoviesService provides the catalog browsing service.
func ProvideMoviesService(i do.Injector) (*service.MoviesService, error) {
	bundle := do.MustInvoke[*CatalogBundle](i)
	searchHandle := do.MustInvoke[*SearchIndexHandle](i)
	meta := do.MustInvoke[*metadata.Service](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewMoviesService(bundle.Catalog, searchHandle.Index, meta, log.Logger), nil
}

// ProvideRecommendService provides the recommendation service.
func ProvideRecommendService(i do.Injector) (*service.RecommendService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	bundle := do.MustInvoke[*CatalogBundle](i)
	meta := do.MustInvoke[*metadata.Service](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewRecommendService(
		bundle.Catalog,
		bundle.Similarity,
		meta,
		storeHandle.Store,
		cfg.Engine.DefaultCount,
		log.Logger,
	), nil
}

// ProvideMoodService provides the mood recommendation service.
func ProvideMoodService(i do.Injector) (*service.MoodService, error) {
	bundle := do.MustInvoke[*CatalogBundle](i)
	meta := do.MustInvoke[*metadata.Service](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewMoodService(bundle.Catalog, meta, log.Logger), nil
}

// ProvideWatchlistService provides the watchlist service.
func ProvideWatchlistService(i do.Injector) (*service.WatchlistService, error) {
	bundle := do.MustInvoke[*CatalogBundle](i)
	meta := do.MustInvoke[*metadata.Service](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewWatchlistService(bundle.Catalog, meta, storeHandle.Store, log.Logger), nil
}

// ProvidePreferencesService provides the preferences and discover service.
func ProvidePreferencesService(i do.Injector) (*service.PreferencesService, error) {
	bundle := do.MustInvoke[*CatalogBundle](i)
	meta := do.MustInvoke[*metadata.Service](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewPreferencesService(bundle.Catalog, meta, storeHandle.Store, log.Logger), nil
}

// ProvideHistoryService provides the recommendation history service.
func ProvideHistoryService(i do.Injector) (*service.HistoryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewHistoryService(storeHandle.Store, log.Logger), nil
}

// ProvideStatsService provides the dashboard statistics service.
func ProvideStatsService(i do.Injector) (*service.StatsService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewStatsService(storeHandle.Store, log.Logger), nil
}
