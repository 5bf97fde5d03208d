package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/pokescout/internal/auth"
	"github.com/mrlokans/pokescout/internal/config"
	"github.com/mrlokans/pokescout/internal/database"
	dbpokemon "github.com/mrlokans/pokescout/internal/database/pokemon"
	"github.com/mrlokans/pokescout/internal/database/syncruns"
	"github.com/mrlokans/pokescout/internal/entities"
	"github.com/mrlokans/pokescout/internal/pokeapi"
	"github.com/mrlokans/pokescout/internal/pokeapi/pokeapitest"
	"github.com/mrlokans/pokescout/internal/services"
)

type testApp struct {
	router   *gin.Engine
	upstream *pokeapitest.Server
}

func setupTestApp(t *testing.T, authCfg config.Auth) testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// dhelmise is deliberately absent upstream
	upstream := pokeapitest.NewServer(map[string]pokeapitest.Species{
		"pikachu": {
			Height:    4,
			Weight:    60,
			Types:     []string{"electric"},
			Abilities: []string{"static"},
		},
		"charizard":  pokeapitest.Generic("fire"),
		"parasect":   pokeapitest.Generic("bug"),
		"aerodactyl": pokeapitest.Generic("rock"),
		"kingler":    pokeapitest.Generic("water"),
	})
	t.Cleanup(upstream.Close)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "api.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	client := pokeapi.NewClient(config.PokeAPI{BaseURL: upstream.URL, Timeout: time.Second}, zerolog.Nop())
	runs := syncruns.NewRepository(db.DB)
	repo := dbpokemon.NewRepository(db.DB)
	svc := services.NewPokemonService(repo, client, zerolog.Nop()).WithSyncRecorder(runs)

	router := NewRouter(RouterConfig{
		PokemonService: svc,
		BatchSyncer:    svc,
		SyncRuns:       runs,
		PokemonCount:   repo,
		Database:       db,
		DefaultPokemon: config.DefaultPokemon,
		Auth:           authCfg,
		Logger:         zerolog.Nop(),
		Version:        "test",
	})
	return testApp{router: router, upstream: upstream}
}

func TestAPI_CreateThenConflict(t *testing.T) {
	app := setupTestApp(t, config.Auth{})

	w := doRequest(app.router, "POST", "/api/v1/pokemon/pikachu")
	require.Equal(t, http.StatusCreated, w.Code)

	var created entities.Pokemon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "pikachu", created.Name)
	assert.Equal(t, 4, created.Height)
	assert.Equal(t, 60, created.Weight)
	assert.Equal(t, []string{"electric"}, []string(created.Types))

	w = doRequest(app.router, "POST", "/api/v1/pokemon/pikachu")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, CodeAlreadyExists, decodeError(t, w).Code)
	assert.Equal(t, 1, app.upstream.Hits("pikachu"))
}

func TestAPI_TypoIsCorrected(t *testing.T) {
	app := setupTestApp(t, config.Auth{})

	w := doRequest(app.router, "POST", "/api/v1/pokemon/pikuchu")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"pikachu"`)

	w = doRequest(app.router, "GET", "/api/v1/pokemon/PIKUCHU")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, app.upstream.Hits("pikuchu"))
}

func TestAPI_UnknownUpstream(t *testing.T) {
	app := setupTestApp(t, config.Auth{})

	w := doRequest(app.router, "POST", "/api/v1/pokemon/dhelmise")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, CodeUpstreamNotFound, decodeError(t, w).Code)

	w = doRequest(app.router, "GET", "/api/v1/pokemon")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAPI_UpstreamFailureIsBadGateway(t *testing.T) {
	app := setupTestApp(t, config.Auth{})
	app.upstream.FailWith("kingler", http.StatusServiceUnavailable)

	w := doRequest(app.router, "POST", "/api/v1/pokemon/kingler")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, CodeUpstreamUnavailable, decodeError(t, w).Code)
}

func TestAPI_Lifecycle(t *testing.T) {
	app := setupTestApp(t, config.Auth{})

	require.Equal(t, http.StatusCreated, doRequest(app.router, "POST", "/api/v1/pokemon/kingler").Code)

	w := doRequest(app.router, "PATCH", "/api/v1/pokemon/kingler")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusNoContent, doRequest(app.router, "DELETE", "/api/v1/pokemon/kingler").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(app.router, "GET", "/api/v1/pokemon/kingler").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(app.router, "PUT", "/api/v1/pokemon/kingler").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(app.router, "DELETE", "/api/v1/pokemon/kingler").Code)
}

func TestAPI_RefreshDefaultList(t *testing.T) {
	app := setupTestApp(t, config.Auth{})

	// A pre-existing record is refreshed rather than created
	require.Equal(t, http.StatusCreated, doRequest(app.router, "POST", "/api/v1/pokemon/charizard").Code)

	w := doRequest(app.router, "POST", "/api/v1/refresh")
	require.Equal(t, http.StatusMultiStatus, w.Code)

	var summary services.SyncSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, 4, summary.Created)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 5, summary.Created+summary.Updated)

	require.Len(t, summary.Results, 6)
	assert.Equal(t, "dhelmise", summary.Results[1].Name)
	assert.Equal(t, services.SyncActionFailed, summary.Results[1].Action)
	assert.Equal(t, "aerodactyl", summary.Results[4].Name)

	w = doRequest(app.router, "GET", "/api/v1/pokemon")
	var all []entities.Pokemon
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 5)

	w = doRequest(app.router, "GET", "/api/v1/refresh/status")
	require.Equal(t, http.StatusOK, w.Code)
	var run entities.SyncRun
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
	assert.Equal(t, summary.RunID, run.ID)
	assert.Equal(t, entities.SyncStatusPartial, run.Status)
	assert.Equal(t, entities.SyncTriggerHTTP, run.Trigger)
}

func TestAPI_WriteProtection(t *testing.T) {
	const key = "integration-test-key"
	hash, err := auth.HashKey(key, bcrypt.MinCost)
	require.NoError(t, err)
	app := setupTestApp(t, config.Auth{APIKeyHash: hash})

	w := doRequest(app.router, "POST", "/api/v1/pokemon/pikachu")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, app.upstream.Hits("pikachu"))

	assert.Equal(t, http.StatusUnauthorized, doRequest(app.router, "POST", "/api/v1/refresh").Code)
	assert.Equal(t, http.StatusOK, doRequest(app.router, "GET", "/api/v1/pokemon").Code)

	req, _ := http.NewRequest("POST", "/api/v1/pokemon/pikachu", nil)
	req.Header.Set("Authorization", "Bearer "+key)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAPI_HealthAndPing(t *testing.T) {
	app := setupTestApp(t, config.Auth{})

	w := doRequest(app.router, "GET", "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version": "test"`)
	assert.Contains(t, w.Body.String(), `"pokemon": "0 stored"`)
	assert.Contains(t, w.Body.String(), `"last_sync": "never"`)

	w = doRequest(app.router, "POST", "/api/v1/pokemon/pikachu")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(app.router, "GET", "/health")
	assert.Contains(t, w.Body.String(), `"pokemon": "1 stored"`)

	w = doRequest(app.router, "GET", "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
