package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/mrlokans/pokescout/internal/config"
	"github.com/mrlokans/pokescout/internal/logging"
)

const apiPrefix = "/api/v2"

// Client fetches Pokémon records from PokeAPI.
type Client struct {
	http     *resty.Client
	validate *validator.Validate
	log      zerolog.Logger
}

// NewClient creates a PokeAPI client. The configured timeout bounds every
// request including body transfer.
func NewClient(cfg config.PokeAPI, log zerolog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")+apiPrefix).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetLogger(logging.NewRestyLogger(log))
	if cfg.UserAgent != "" {
		rc.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{
		http:     rc,
		validate: validator.New(),
		log:      logging.Component(log, "pokeapi"),
	}
}

// Fetch retrieves a single Pokémon by its lowercase PokeAPI name.
func (c *Client) Fetch(ctx context.Context, name string) (*Pokemon, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("fetch pokemon: empty name")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Get("/pokemon/{name}")
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w: %w", name, ErrUpstreamUnavailable, err)
	}

	c.log.Debug().
		Str("name", name).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("upstream response")

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("fetch %s: %w", name, ErrUpstreamNotFound)
	default:
		return nil, fmt.Errorf("fetch %s: %w", name, &StatusError{StatusCode: resp.StatusCode()})
	}

	return c.decode(name, resp.Body())
}

func (c *Client) decode(name string, body []byte) (*Pokemon, error) {
	var raw pokemonResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", name, ErrUpstreamMalformedResponse, err)
	}
	if err := c.validate.Struct(&raw); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("decode %s: %w: field %s failed %q", name, ErrUpstreamMalformedResponse, verrs[0].Namespace(), verrs[0].Tag())
		}
		return nil, fmt.Errorf("decode %s: %w: %w", name, ErrUpstreamMalformedResponse, err)
	}
	return raw.toPokemon(), nil
}
