// Package pokeapitest provides an in-process PokeAPI stand-in for tests.
package pokeapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Species describes a Pokémon served by the fake upstream.
type Species struct {
	Height         int
	Weight         int
	BaseExperience int
	Types          []string
	Abilities      []string
	Stats          map[string]int
	Moves          []string
}

// Server serves GET /api/v2/pokemon/{name} from an in-memory table.
// Unknown names answer 404.
type Server struct {
	*httptest.Server

	mu      sync.Mutex
	species map[string]Species
	hits    map[string]int
	failing map[string]int
}

func NewServer(species map[string]Species) *Server {
	s := &Server{
		species: make(map[string]Species, len(species)),
		hits:    make(map[string]int),
		failing: make(map[string]int),
	}
	for name, sp := range species {
		s.species[name] = sp
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Set adds or replaces a species.
func (s *Server) Set(name string, sp Species) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.species[name] = sp
}

// FailWith makes requests for name answer with the given status.
func (s *Server) FailWith(name string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[name] = status
}

// Hits reports how many requests were made for name.
func (s *Server) Hits(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[name]
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/v2/pokemon/"
	if r.Method != http.MethodGet || !strings.HasPrefix(r.URL.Path, prefix) {
		http.NotFound(w, r)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, prefix)

	s.mu.Lock()
	s.hits[name]++
	status, failing := s.failing[name]
	sp, ok := s.species[name]
	s.mu.Unlock()

	if failing {
		w.WriteHeader(status)
		return
	}
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Body(name, sp))
}

// Body renders sp in PokeAPI's response shape.
func Body(name string, sp Species) map[string]any {
	named := func(n string) map[string]any { return map[string]any{"name": n, "url": ""} }

	types := make([]any, 0, len(sp.Types))
	for i, t := range sp.Types {
		types = append(types, map[string]any{"slot": i + 1, "type": named(t)})
	}
	abilities := make([]any, 0, len(sp.Abilities))
	for i, a := range sp.Abilities {
		abilities = append(abilities, map[string]any{"slot": i + 1, "is_hidden": false, "ability": named(a)})
	}
	stats := make([]any, 0, len(sp.Stats))
	for stat, base := range sp.Stats {
		stats = append(stats, map[string]any{"base_stat": base, "effort": 0, "stat": named(stat)})
	}
	moves := make([]any, 0, len(sp.Moves))
	for _, m := range sp.Moves {
		moves = append(moves, map[string]any{"move": named(m)})
	}

	return map[string]any{
		"id":              1,
		"name":            name,
		"height":          sp.Height,
		"weight":          sp.Weight,
		"base_experience": sp.BaseExperience,
		"types":           types,
		"abilities":       abilities,
		"stats":           stats,
		"moves":           moves,
	}
}

// Pikachu is a representative fixture.
func Pikachu() Species {
	return Species{
		Height:         4,
		Weight:         60,
		BaseExperience: 112,
		Types:          []string{"electric"},
		Abilities:      []string{"static", "lightning-rod"},
		Stats:          map[string]int{"hp": 35, "attack": 55, "speed": 90},
		Moves:          []string{"thunder-shock", "quick-attack"},
	}
}

// Generic returns a minimal valid species.
func Generic(kind string) Species {
	return Species{
		Height:         10,
		Weight:         100,
		BaseExperience: 50,
		Types:          []string{kind},
		Abilities:      []string{"pressure"},
		Stats:          map[string]int{"hp": 50},
		Moves:          []string{"tackle"},
	}
}
