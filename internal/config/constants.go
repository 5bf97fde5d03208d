package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./pokemon.db"

	// DefaultPokeAPIBaseURL is the public PokeAPI host; the client appends /api/v2
	DefaultPokeAPIBaseURL = "https://pokeapi.co"
)

// DefaultPokemon is the scouting list synced by the batch refresh.
// "terodactyl" is intentionally misspelled; the service maps it to "aerodactyl".
var DefaultPokemon = []string{
	"pikachu",
	"dhelmise",
	"charizard",
	"parasect",
	"terodactyl",
	"kingler",
}
