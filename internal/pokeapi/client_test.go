package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/pokescout/internal/config"
	"github.com/mrlokans/pokescout/internal/pokeapi/pokeapitest"
)

func newTestClient(baseURL string, timeout time.Duration) *Client {
	return NewClient(config.PokeAPI{
		BaseURL:   baseURL,
		Timeout:   timeout,
		UserAgent: "pokescout-test",
	}, zerolog.Nop())
}

func TestFetch_Success(t *testing.T) {
	upstream := pokeapitest.NewServer(map[string]pokeapitest.Species{
		"pikachu": pokeapitest.Pikachu(),
	})
	defer upstream.Close()

	client := newTestClient(upstream.URL, time.Second)
	p, err := client.Fetch(context.Background(), "pikachu")
	require.NoError(t, err)

	assert.Equal(t, "pikachu", p.Name)
	assert.Equal(t, 4, p.Height)
	assert.Equal(t, 60, p.Weight)
	assert.Equal(t, 112, p.BaseExperience)
	assert.Equal(t, []string{"electric"}, p.Types)
	assert.Equal(t, []string{"static", "lightning-rod"}, p.Abilities)
	assert.Equal(t, map[string]int{"hp": 35, "attack": 55, "speed": 90}, p.Stats)
	assert.Equal(t, []string{"thunder-shock", "quick-attack"}, p.Moves)
	assert.Equal(t, 1, upstream.Hits("pikachu"))
}

func TestFetch_SendsHeadersAndPath(t *testing.T) {
	var gotPath, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL+"/", time.Second)
	_, _ = client.Fetch(context.Background(), "  Kingler ")

	assert.Equal(t, "/api/v2/pokemon/kingler", gotPath)
	assert.Equal(t, "pokescout-test", gotUA)
}

func TestFetch_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"not found", http.StatusNotFound, ErrUpstreamNotFound},
		{"server error", http.StatusInternalServerError, ErrUpstreamUnavailable},
		{"rate limited", http.StatusTooManyRequests, ErrUpstreamUnavailable},
		{"bad gateway", http.StatusBadGateway, ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := newTestClient(server.URL, time.Second).Fetch(context.Background(), "pikachu")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetch_StatusErrorCarriesCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, time.Second).Fetch(context.Background(), "pikachu")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := newTestClient(server.URL, 50*time.Millisecond).Fetch(context.Background(), "pikachu")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestFetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url, time.Second).Fetch(context.Background(), "pikachu")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestFetch_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"missing height", `{"name":"pikachu","weight":60}`},
		{"missing weight", `{"name":"pikachu","height":4}`},
		{"missing name", `{"height":4,"weight":60}`},
		{"wrong type", `{"name":"pikachu","height":"tall","weight":60}`},
		{"nameless type", `{"name":"pikachu","height":4,"weight":60,"types":[{"slot":1,"type":{}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL, time.Second).Fetch(context.Background(), "pikachu")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUpstreamMalformedResponse)
		})
	}
}

func TestFetch_NullBaseExperience(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"pikachu-gmax","height":210,"weight":10000,"base_experience":null}`))
	}))
	defer server.Close()

	p, err := newTestClient(server.URL, time.Second).Fetch(context.Background(), "pikachu-gmax")
	require.NoError(t, err)
	assert.Equal(t, 0, p.BaseExperience)
	assert.Empty(t, p.Types)
	assert.NotNil(t, p.Stats)
}

func TestFetch_EmptyName(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:1", time.Second).Fetch(context.Background(), "  ")
	assert.Error(t, err)
}
