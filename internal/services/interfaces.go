package services

import (
	"context"

	"github.com/mrlokans/pokescout/internal/entities"
	"github.com/mrlokans/pokescout/internal/pokeapi"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/services/mock_services.go -package=mock_services

// PokemonRepository provides persistence for Pokémon records.
// FindByName returns nil, nil when the name is not stored.
type PokemonRepository interface {
	FindByName(name string) (*entities.Pokemon, error)
	FindAll() ([]entities.Pokemon, error)
	Insert(p *entities.Pokemon) error
	Update(p *entities.Pokemon) error
	DeleteByName(name string) (bool, error)
}

// PokemonFetcher retrieves fresh attributes from the upstream provider.
type PokemonFetcher interface {
	Fetch(ctx context.Context, name string) (*pokeapi.Pokemon, error)
}

// SyncRunRecorder persists the history of batch syncs.
type SyncRunRecorder interface {
	Start(trigger entities.SyncTrigger, total int) (*entities.SyncRun, error)
	Complete(run *entities.SyncRun) error
}
