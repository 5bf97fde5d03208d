package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pokescout/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger(cfg.Logger))
	router.Use(Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	health := NewHealthController(cfg.Database, cfg.PokemonCount, cfg.SyncRuns, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	// Mutating routes require the API key when one is configured
	requireKey := auth.NewMiddleware(cfg.Auth).RequireKey()

	api := router.Group("/api/v1")

	if cfg.PokemonService != nil {
		pokemon := NewPokemonController(cfg.PokemonService)
		api.GET("/pokemon", pokemon.List)
		api.GET("/pokemon/:name", pokemon.Get)
		api.POST("/pokemon/:name", requireKey, pokemon.Create)
		api.PUT("/pokemon/:name", requireKey, pokemon.Refresh)
		api.PATCH("/pokemon/:name", requireKey, pokemon.Refresh)
		api.DELETE("/pokemon/:name", requireKey, pokemon.Delete)
	}

	if cfg.BatchSyncer != nil {
		refresh := NewRefreshController(cfg.BatchSyncer, cfg.SyncRuns, cfg.DefaultPokemon)
		api.POST("/refresh", requireKey, refresh.Refresh)
		api.GET("/refresh/status", refresh.Status)
	}

	return router
}
