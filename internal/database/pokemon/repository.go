// Package pokemon provides database operations for stored Pokémon records.
//
// This package implements the PokemonRepository interface defined in
// internal/services/interfaces.go.
//
// # Interface Implementation
//
//	var _ services.PokemonRepository = (*Repository)(nil)
//
// # Usage
//
//	repo := pokemon.NewRepository(db)
//	p, err := repo.FindByName("pikachu") // p == nil when absent
package pokemon

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/pokescout/internal/entities"
)

// ErrDuplicateName is returned when an insert collides with the unique name index.
var ErrDuplicateName = errors.New("pokemon with this name already stored")

// ErrNotStored is returned by Update when no row has the record's ID.
var ErrNotStored = errors.New("pokemon is not stored")

// Repository handles all pokemon database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new pokemon repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByName returns the record with the given name, or nil if none exists.
func (r *Repository) FindByName(name string) (*entities.Pokemon, error) {
	var p entities.Pokemon
	err := r.db.Where("name = ?", name).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindAll returns every stored record in insertion order.
func (r *Repository) FindAll() ([]entities.Pokemon, error) {
	pokemon := []entities.Pokemon{}
	err := r.db.Order("id ASC").Find(&pokemon).Error
	return pokemon, err
}

// Insert stores a new record and sets its ID.
func (r *Repository) Insert(p *entities.Pokemon) error {
	err := r.db.Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("insert %s: %w", p.Name, ErrDuplicateName)
	}
	return err
}

// Update overwrites all columns of an existing record, matched by ID.
// It never inserts: a record deleted since it was read yields ErrNotStored.
func (r *Repository) Update(p *entities.Pokemon) error {
	if p.ID == 0 {
		return fmt.Errorf("update %s: record has no id", p.Name)
	}
	result := r.db.Model(p).Select("*").Updates(p)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("update %s: %w", p.Name, ErrDuplicateName)
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update %s: %w", p.Name, ErrNotStored)
	}
	return nil
}

// DeleteByName removes the record with the given name.
// Reports whether a row was removed.
func (r *Repository) DeleteByName(name string) (bool, error) {
	result := r.db.Where("name = ?", name).Delete(&entities.Pokemon{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Count returns the number of stored records.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Pokemon{}).Count(&count).Error
	return count, err
}
