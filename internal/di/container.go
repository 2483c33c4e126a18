// Package di provides dependency injection configuration for the Thruster server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/moviethruster/thruster-server/internal/auth"
	"github.com/moviethruster/thruster-server/internal/config"
	"github.com/moviethruster/thruster-server/internal/di/providers"
	"github.com/moviethruster/thruster-server/internal/logger"
	"github.com/moviethruster/thruster-server/internal/metadata"
	"github.com/moviethruster/thruster-server/internal/metadata/tmdb"
	"github.com/moviethruster/thruster-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideAuthKey)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Catalog layer
	do.Provide(injector, providers.ProvideCatalog)
	do.Provide(injector, providers.ProvideSearchIndex)

	// Metadata layer
	do.Provide(injector, providers.ProvideTMDBClient)
	do.Provide(injector, providers.ProvideMetadataService)

	// Auth layer
	do.Provide(injector, providers.ProvideTokenService)

	// Business services
	do.Provide(injector, providers.ProvideAuthService)
	do.Provide(injector, providers.ProvideMoviesService)
	do.Provide(injector, providers.ProvideRecommendService)
	do.Provide(injector, providers.ProvideMoodService)
	do.Provide(injector, providers.ProvideWatchlistService)
	do.Provide(injector, providers.ProvidePreferencesService)
	do.Provide(injector, providers.ProvideHistoryService)
	do.Provide(injector, providers.ProvideStatsService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[providers.AuthKey](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.CatalogBundle](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*tmdb.Client](injector)
	_ = do.MustInvoke[*metadata.Service](injector)
	_ = do.MustInvoke[*auth.TokenService](injector)

	// Business services
	_ = do.MustInvoke[*service.AuthService](injector)
	_ = do.MustInvoke[*service.MoviesService](injector)
	_ = do.MustInvoke[*service.RecommendService](injector)
	_ = do.MustInvoke[*service.MoodService](injector)
	_ = do.MustInvoke[*service.WatchlistService](injector)
	_ = do.MustInvoke[*service.PreferencesService](injector)
	_ = do.MustInvoke[*service.HistoryService](injector)
	_ = do.MustInvoke[*service.StatsService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
