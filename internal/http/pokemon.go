package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PokemonController exposes single-record CRUD over stored Pokémon.
type PokemonController struct {
	service PokemonService
}

func NewPokemonController(service PokemonService) *PokemonController {
	return &PokemonController{service: service}
}

// List returns every stored record.
// GET /api/v1/pokemon
func (pc *PokemonController) List(c *gin.Context) {
	all, err := pc.service.ListAll()
	if err != nil {
		respondInternalError(c, err, "list pokemon")
		return
	}
	c.JSON(http.StatusOK, all)
}

// Get returns one stored record without contacting PokeAPI.
// GET /api/v1/pokemon/:name
func (pc *PokemonController) Get(c *gin.Context) {
	p, err := pc.service.Get(c.Param("name"))
	if err != nil {
		respondServiceError(c, err, "get pokemon")
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create fetches a Pokémon from PokeAPI and stores it.
// POST /api/v1/pokemon/:name
func (pc *PokemonController) Create(c *gin.Context) {
	p, err := pc.service.Create(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err, "create pokemon")
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Refresh re-fetches a stored Pokémon and overwrites its attributes.
// PUT|PATCH /api/v1/pokemon/:name
func (pc *PokemonController) Refresh(c *gin.Context) {
	p, err := pc.service.Refresh(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err, "refresh pokemon")
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete removes a stored Pokémon.
// DELETE /api/v1/pokemon/:name
func (pc *PokemonController) Delete(c *gin.Context) {
	if err := pc.service.Delete(c.Param("name")); err != nil {
		respondServiceError(c, err, "delete pokemon")
		return
	}
	c.Status(http.StatusNoContent)
}
