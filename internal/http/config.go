package http

import (
	"github.com/rs/zerolog"

	"github.com/mrlokans/pokescout/internal/config"
	"github.com/mrlokans/pokescout/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	PokemonService PokemonService
	BatchSyncer    BatchSyncer
	SyncRuns       SyncRunReader
	PokemonCount   PokemonCounter
	Database       *database.Database

	// Names synced by POST /api/v1/refresh
	DefaultPokemon []string

	// Write protection
	Auth config.Auth

	Logger zerolog.Logger

	// Application info
	Version string
}
