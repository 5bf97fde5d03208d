package services

import (
	"fmt"
	"strings"
)

// nameCorrections maps known misspellings to their PokeAPI names.
var nameCorrections = map[string]string{
	"pikuchu":    "pikachu",
	"terodactyl": "aerodactyl",
}

// Normalize trims and lowercases name and applies the correction table.
func Normalize(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if corrected, ok := nameCorrections[n]; ok {
		return corrected, nil
	}
	return n, nil
}
