package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Pokemon is a locally stored copy of a Pokémon's attributes as reported by PokeAPI.
// Height and weight keep PokeAPI units (decimetres and hectograms).
type Pokemon struct {
	ID             uint                               `gorm:"primaryKey" json:"id"`
	Name           string                             `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Height         int                                `json:"height"`
	Weight         int                                `json:"weight"`
	BaseExperience int                                `json:"base_experience"`
	Types          datatypes.JSONSlice[string]        `json:"types"`
	Abilities      datatypes.JSONSlice[string]        `json:"abilities"`
	Stats          datatypes.JSONType[map[string]int] `json:"stats"`
	Moves          datatypes.JSONSlice[string]        `json:"moves"`
	CreatedAt      time.Time                          `json:"created_at"`
	UpdatedAt      time.Time                          `json:"updated_at"`
}

func (Pokemon) TableName() string {
	return "pokemon"
}
