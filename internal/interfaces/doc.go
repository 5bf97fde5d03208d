// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - PokemonRepository: stored Pokémon records (internal/services/interfaces.go)
//   - SyncRunRecorder: batch sync history writes (internal/services/interfaces.go)
//   - SyncRunReader: latest batch sync run (internal/http/stores.go)
//
// ## External Service Interfaces
//
//   - PokemonFetcher: upstream lookup by name (internal/services/interfaces.go)
//
// ## Service Interfaces
//
//   - PokemonService: single-record CRUD used by controllers (internal/http/stores.go)
//   - BatchSyncer: batch create-or-refresh, declared separately by internal/http,
//     internal/scheduler and internal/cli so each depends only on what it calls
//
// # Implementations
//
//	PokemonRepository -> database/pokemon.Repository (gorm + SQLite)
//	SyncRunRecorder   -> database/syncruns.Repository
//	PokemonFetcher    -> pokeapi.Client (resty)
//	PokemonService    -> services.PokemonService
//
// Mocks for the service dependencies are generated into internal/mocks/services
// with mockgen; see the go:generate directive in internal/services/interfaces.go.
//
// All implementations are checked at compile time in checks.go.
package interfaces
