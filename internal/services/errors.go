package services

import "errors"

// ErrNotFound indicates the requested Pokémon is not stored locally
var ErrNotFound = errors.New("pokemon not found")

// ErrAlreadyExists indicates a create for a name that is already stored
var ErrAlreadyExists = errors.New("pokemon already exists")

// ErrInvalidName indicates a name that is empty after normalization
var ErrInvalidName = errors.New("invalid pokemon name")
