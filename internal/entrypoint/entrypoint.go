package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mrlokans/pokescout/internal/auth"
	"github.com/mrlokans/pokescout/internal/config"
	"github.com/mrlokans/pokescout/internal/database"
	dbpokemon "github.com/mrlokans/pokescout/internal/database/pokemon"
	"github.com/mrlokans/pokescout/internal/database/syncruns"
	"github.com/mrlokans/pokescout/internal/entities"
	http_controllers "github.com/mrlokans/pokescout/internal/http"
	"github.com/mrlokans/pokescout/internal/pokeapi"
	"github.com/mrlokans/pokescout/internal/scheduler"
	"github.com/mrlokans/pokescout/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App holds the components shared by the serve and sync commands.
type App struct {
	Config   *config.Config
	Log      zerolog.Logger
	DB       *database.Database
	Service  *services.PokemonService
	Pokemon  *dbpokemon.Repository
	SyncRuns *syncruns.Repository
}

// Bootstrap opens the database and wires the service layer.
func Bootstrap(cfg *config.Config, log zerolog.Logger) (*App, error) {
	if cfg.Auth.APIKeyHash != "" {
		if err := auth.ValidateHash(cfg.Auth.APIKeyHash); err != nil {
			return nil, fmt.Errorf("AUTH_API_KEY_HASH is not a bcrypt hash: %w", err)
		}
	}

	db, err := database.NewDatabase(cfg.Database.Path, log)
	if err != nil {
		return nil, err
	}

	client := pokeapi.NewClient(cfg.PokeAPI, log)
	repo := dbpokemon.NewRepository(db.DB)
	runs := syncruns.NewRepository(db.DB)
	svc := services.NewPokemonService(repo, client, log).
		WithSyncRecorder(runs)

	return &App{
		Config:   cfg,
		Log:      log,
		DB:       db,
		Service:  svc,
		Pokemon:  repo,
		SyncRuns: runs,
	}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}

// Router builds the HTTP handler for this app.
func (a *App) Router(version string) *gin.Engine {
	return http_controllers.NewRouter(http_controllers.RouterConfig{
		PokemonService: a.Service,
		BatchSyncer:    a.Service,
		SyncRuns:       a.SyncRuns,
		PokemonCount:   a.Pokemon,
		Database:       a.DB,
		DefaultPokemon: a.Config.Sync.DefaultPokemon,
		Auth:           a.Config.Auth,
		Logger:         a.Log,
		Version:        version,
	})
}

// Serve runs srv until ctx is cancelled, then shuts it down within the
// configured timeout.
func Serve(ctx context.Context, router http.Handler, cfg *config.Config, log zerolog.Logger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", timeout).Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the scheduler)
	if onShutdown != nil {
		onShutdown(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("server exiting")
	return nil
}

// Run serves the API until SIGINT or SIGTERM.
func Run(cfg *config.Config, log zerolog.Logger, version string) error {
	log.Info().Str("version", version).Msg("starting pokescout")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := Bootstrap(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	if cfg.Auth.APIKeyHash == "" {
		log.Warn().Msg("AUTH_API_KEY_HASH is not set, write endpoints are unprotected")
	}

	if cfg.Sync.OnStartup {
		initialSync(ctx, app)
	}

	var sched *scheduler.BatchSyncScheduler
	if cfg.Sync.ScheduleEnabled {
		sched = scheduler.NewBatchSyncScheduler(app.Service, cfg.Sync.DefaultPokemon, cfg.Sync.Schedule, log)
		if err := sched.Start(ctx); err != nil {
			return err
		}
	}

	return Serve(ctx, app.Router(version), cfg, log, func(context.Context) {
		if sched != nil {
			sched.Stop()
		}
	})
}

// initialSync populates the store before serving. Failures are logged only.
func initialSync(ctx context.Context, app *App) {
	summary, err := app.Service.BatchSync(ctx, entities.SyncTriggerStartup, app.Config.Sync.DefaultPokemon)
	if err != nil {
		app.Log.Error().Err(err).Msg("initial sync could not start")
		return
	}
	app.Log.Info().
		Int("created", summary.Created).
		Int("updated", summary.Updated).
		Int("failed", summary.Failed).
		Msg("initial sync complete")
}
