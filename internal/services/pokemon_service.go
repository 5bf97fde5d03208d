package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	dbpokemon "github.com/mrlokans/pokescout/internal/database/pokemon"
	"github.com/mrlokans/pokescout/internal/entities"
	"github.com/mrlokans/pokescout/internal/logging"
	"github.com/mrlokans/pokescout/internal/pokeapi"
)

// PokemonService keeps the local store in sync with the upstream provider.
// Every operation normalizes the requested name first.
type PokemonService struct {
	repo    PokemonRepository
	fetcher PokemonFetcher
	runs    SyncRunRecorder
	log     zerolog.Logger
}

// NewPokemonService creates a new PokemonService.
func NewPokemonService(repo PokemonRepository, fetcher PokemonFetcher, log zerolog.Logger) *PokemonService {
	return &PokemonService{
		repo:    repo,
		fetcher: fetcher,
		log:     logging.Component(log, "pokemon_service"),
	}
}

// WithSyncRecorder enables persisting batch sync runs.
func (s *PokemonService) WithSyncRecorder(runs SyncRunRecorder) *PokemonService {
	s.runs = runs
	return s
}

// Get returns the stored record without contacting the upstream provider.
func (s *PokemonService) Get(name string) (*entities.Pokemon, error) {
	n, err := Normalize(name)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.FindByName(n)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", n, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, n)
	}
	return p, nil
}

// ListAll returns every stored record in insertion order.
func (s *PokemonService) ListAll() ([]entities.Pokemon, error) {
	all, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}
	return all, nil
}

// Create fetches name from upstream and stores it. It fails with
// ErrAlreadyExists before any fetch when the name is already stored.
func (s *PokemonService) Create(ctx context.Context, name string) (*entities.Pokemon, error) {
	n, err := Normalize(name)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByName(n)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", n, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, n)
	}
	return s.create(ctx, n)
}

func (s *PokemonService) create(ctx context.Context, name string) (*entities.Pokemon, error) {
	data, err := s.fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	p := &entities.Pokemon{Name: name}
	applyAttributes(p, data)

	if err := s.repo.Insert(p); err != nil {
		// Lost a race against a concurrent create for the same name
		if errors.Is(err, dbpokemon.ErrDuplicateName) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, name)
		}
		return nil, fmt.Errorf("store %s: %w", name, err)
	}

	s.log.Info().Str("name", name).Uint("id", p.ID).Msg("pokemon created")
	return p, nil
}

// Refresh re-fetches a stored record and overwrites its attributes in place.
func (s *PokemonService) Refresh(ctx context.Context, name string) (*entities.Pokemon, error) {
	p, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	return s.refresh(ctx, p)
}

func (s *PokemonService) refresh(ctx context.Context, p *entities.Pokemon) (*entities.Pokemon, error) {
	data, err := s.fetcher.Fetch(ctx, p.Name)
	if err != nil {
		return nil, err
	}

	applyAttributes(p, data)
	if err := s.repo.Update(p); err != nil {
		// Deleted while the fetch was in flight
		if errors.Is(err, dbpokemon.ErrNotStored) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p.Name)
		}
		return nil, fmt.Errorf("update %s: %w", p.Name, err)
	}

	s.log.Info().Str("name", p.Name).Uint("id", p.ID).Msg("pokemon refreshed")
	return p, nil
}

// Delete removes a stored record.
func (s *PokemonService) Delete(name string) error {
	n, err := Normalize(name)
	if err != nil {
		return err
	}
	deleted, err := s.repo.DeleteByName(n)
	if err != nil {
		return fmt.Errorf("delete %s: %w", n, err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrNotFound, n)
	}

	s.log.Info().Str("name", n).Msg("pokemon deleted")
	return nil
}

// applyAttributes copies upstream data onto p. ID and Name are left untouched.
func applyAttributes(p *entities.Pokemon, data *pokeapi.Pokemon) {
	p.Height = data.Height
	p.Weight = data.Weight
	p.BaseExperience = data.BaseExperience
	p.Types = datatypes.JSONSlice[string](nonNil(data.Types))
	p.Abilities = datatypes.JSONSlice[string](nonNil(data.Abilities))
	p.Moves = datatypes.JSONSlice[string](nonNil(data.Moves))

	stats := data.Stats
	if stats == nil {
		stats = map[string]int{}
	}
	p.Stats = datatypes.NewJSONType(stats)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
