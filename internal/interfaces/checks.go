package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/pokescout/internal/cli"
	"github.com/mrlokans/pokescout/internal/database/pokemon"
	"github.com/mrlokans/pokescout/internal/database/syncruns"
	"github.com/mrlokans/pokescout/internal/http"
	"github.com/mrlokans/pokescout/internal/pokeapi"
	"github.com/mrlokans/pokescout/internal/scheduler"
	"github.com/mrlokans/pokescout/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// PokemonRepository / PokemonCounter implementations
var _ services.PokemonRepository = (*pokemon.Repository)(nil)
var _ http.PokemonCounter = (*pokemon.Repository)(nil)

// SyncRunRecorder / SyncRunReader implementations
var _ services.SyncRunRecorder = (*syncruns.Repository)(nil)
var _ http.SyncRunReader = (*syncruns.Repository)(nil)

// =============================================================================
// External Services
// =============================================================================

// PokemonFetcher implementations
var _ services.PokemonFetcher = (*pokeapi.Client)(nil)

// =============================================================================
// Service Layer
// =============================================================================

// Controllers, the scheduler and the CLI all drive the same service
var _ http.PokemonService = (*services.PokemonService)(nil)
var _ http.BatchSyncer = (*services.PokemonService)(nil)
var _ scheduler.BatchSyncer = (*services.PokemonService)(nil)
var _ cli.BatchSyncer = (*services.PokemonService)(nil)
