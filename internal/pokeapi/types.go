package pokeapi

// Pokemon is the flattened attribute bag extracted from a PokeAPI response.
type Pokemon struct {
	Name           string
	Height         int
	Weight         int
	BaseExperience int
	Types          []string
	Abilities      []string
	Stats          map[string]int
	Moves          []string
}

// PokeAPI response types (internal)

type namedResource struct {
	Name string `json:"name" validate:"required"`
}

type pokemonResponse struct {
	Name   string `json:"name" validate:"required"`
	Height *int   `json:"height" validate:"required,gte=0"`
	Weight *int   `json:"weight" validate:"required,gte=0"`
	// PokeAPI sends null for some alternate forms
	BaseExperience *int              `json:"base_experience"`
	Abilities      []abilitySlot     `json:"abilities" validate:"dive"`
	Types          []typeSlot        `json:"types" validate:"dive"`
	Stats          []statValue       `json:"stats" validate:"dive"`
	Moves          []moveAssociation `json:"moves" validate:"dive"`
}

type abilitySlot struct {
	Ability  namedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type typeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type statValue struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     namedResource `json:"stat"`
}

type moveAssociation struct {
	Move namedResource `json:"move"`
}

func (r *pokemonResponse) toPokemon() *Pokemon {
	p := &Pokemon{
		Name:      r.Name,
		Height:    *r.Height,
		Weight:    *r.Weight,
		Types:     make([]string, 0, len(r.Types)),
		Abilities: make([]string, 0, len(r.Abilities)),
		Stats:     make(map[string]int, len(r.Stats)),
		Moves:     make([]string, 0, len(r.Moves)),
	}
	if r.BaseExperience != nil {
		p.BaseExperience = *r.BaseExperience
	}
	for _, t := range r.Types {
		p.Types = append(p.Types, t.Type.Name)
	}
	for _, a := range r.Abilities {
		p.Abilities = append(p.Abilities, a.Ability.Name)
	}
	for _, s := range r.Stats {
		p.Stats[s.Stat.Name] = s.BaseStat
	}
	for _, m := range r.Moves {
		p.Moves = append(p.Moves, m.Move.Name)
	}
	return p
}
