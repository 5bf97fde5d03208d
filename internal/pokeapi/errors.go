package pokeapi

import (
	"errors"
	"fmt"
)

// ErrUpstreamNotFound indicates PokeAPI has no Pokémon with the requested name
var ErrUpstreamNotFound = errors.New("upstream pokemon not found")

// ErrUpstreamUnavailable indicates PokeAPI could not be reached or failed to answer
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// ErrUpstreamMalformedResponse indicates PokeAPI answered 200 with an unusable body
var ErrUpstreamMalformedResponse = errors.New("upstream returned malformed response")

// StatusError represents an unexpected non-200 status from PokeAPI.
// It unwraps to ErrUpstreamUnavailable.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("PokeAPI error: HTTP %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrUpstreamUnavailable
}
