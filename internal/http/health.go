package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pokescout/internal/database"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// HealthController reports database reachability, the number of stored
// Pokémon and the outcome of the latest batch sync.
type HealthController struct {
	db      *database.Database
	pokemon PokemonCounter
	runs    SyncRunReader
	version string
}

// NewHealthController creates a health controller. pokemon and runs may be
// nil, in which case their checks are omitted.
func NewHealthController(db *database.Database, pokemon PokemonCounter, runs SyncRunReader, version string) *HealthController {
	return &HealthController{
		db:      db,
		pokemon: pokemon,
		runs:    runs,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	healthy := true

	if h.db == nil {
		checks["database"] = "not configured"
	} else if err := h.db.Ping(); err != nil {
		checks["database"] = "error: " + err.Error()
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	if healthy && h.pokemon != nil {
		if count, err := h.pokemon.Count(); err != nil {
			checks["pokemon"] = "error: " + err.Error()
			healthy = false
		} else {
			checks["pokemon"] = strconv.FormatInt(count, 10) + " stored"
		}
	}

	// A failed sync degrades nothing; it is reported for visibility only
	if healthy && h.runs != nil {
		run, err := h.runs.Latest()
		switch {
		case err != nil:
			checks["last_sync"] = "error: " + err.Error()
		case run == nil:
			checks["last_sync"] = "never"
		default:
			checks["last_sync"] = string(run.Status)
		}
	}

	health := HealthResponse{
		Status:  "healthy",
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if !healthy {
		health.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

func (h *HealthController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
