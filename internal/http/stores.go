package http

import (
	"context"

	"github.com/mrlokans/pokescout/internal/entities"
	"github.com/mrlokans/pokescout/internal/services"
)

// This file consolidates the interfaces controllers depend on.
// Each controller defines its own slice of behaviour; the concrete
// implementations live in internal/services and internal/database.

// PokemonService is the subset of services.PokemonService used by PokemonController.
type PokemonService interface {
	Get(name string) (*entities.Pokemon, error)
	ListAll() ([]entities.Pokemon, error)
	Create(ctx context.Context, name string) (*entities.Pokemon, error)
	Refresh(ctx context.Context, name string) (*entities.Pokemon, error)
	Delete(name string) error
}

// BatchSyncer runs a batch sync over a list of names.
type BatchSyncer interface {
	BatchSync(ctx context.Context, trigger entities.SyncTrigger, names []string) (*services.SyncSummary, error)
}

// PokemonCounter reports how many records are stored.
type PokemonCounter interface {
	Count() (int64, error)
}

// SyncRunReader provides read access to batch sync history.
type SyncRunReader interface {
	Latest() (*entities.SyncRun, error)
}
