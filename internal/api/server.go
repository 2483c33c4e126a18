// Package api provides the HTTP API server and handlers for the Thruster
// movie discovery service.
package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/moviethruster/thruster-server/internal/logger"
	"github.com/moviethruster/thruster-server/internal/service"
	"github.com/moviethruster/thruster-server/internal/store/sqlite"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Auth        *service.AuthService
	Movies      *service.MoviesService
	Recommend   *service.RecommendService
	Mood        *service.MoodService
	Watchlist   *service.WatchlistService
	Preferences *service.PreferencesService
	History     *service.HistoryService
	Stats       *service.StatsService
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store           *sqlite.Store
	services        *Services
	router          *chi.Mux
	api             huma.API
	logger          *logger.Logger
	authRateLimiter *RateLimiter
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(store *sqlite.Store, services *Services, log *logger.Logger) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(authMiddleware(services.Auth))

	authRateLimiter := NewRateLimiter(20, time.Minute, 10)
	router.Use(authRateLimitMiddleware(authRateLimiter, log))

	humaConfig := huma.DefaultConfig("Thruster API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "PASETO",
		},
	}
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)

	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		store:           store,
		services:        services,
		router:          router,
		api:             api,
		logger:          log,
		authRateLimiter: authRateLimiter,
	}

	s.registerHealthRoutes()
	s.registerAuthRoutes()
	s.registerUserRoutes()
	s.registerMovieRoutes()
	s.registerRecommendationRoutes()
	s.registerHistoryRoutes()
	s.registerStatsRoutes()
	s.registerWatchlistRoutes()
	s.registerPreferencesRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
