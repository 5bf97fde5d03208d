package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

type LogFormat string

const (
	LogFormatJSON    LogFormat = "json"    // One JSON object per line (default)
	LogFormatConsole LogFormat = "console" // Human-readable, for local development
)

type (
	Config struct {
		HTTP
		Global
		Database
		PokeAPI
		Sync
		Log
		Auth
	}

	HTTP struct {
		Port int32  `validate:"gt=0,lte=65535"`
		Host string `validate:"required"`
	}
	Global struct {
		ShutdownTimeoutInSeconds int `validate:"gte=0"`
	}
	Database struct {
		Path string `validate:"required"`
	}
	PokeAPI struct {
		BaseURL   string        `validate:"required,url"`
		Timeout   time.Duration `validate:"gt=0"`
		UserAgent string
	}
	Sync struct {
		DefaultPokemon  []string `validate:"dive,required"`
		OnStartup       bool
		ScheduleEnabled bool
		Schedule        string `validate:"required_if=ScheduleEnabled true"`
	}
	Log struct {
		Level  string    `validate:"oneof=trace debug info warn error fatal panic disabled"`
		Format LogFormat `validate:"oneof=json console"`
	}
	Auth struct {
		// APIKeyHash is a bcrypt hash of the key required on write endpoints.
		// Empty disables write protection.
		APIKeyHash string
	}
)

// splitList parses a comma separated env value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	v.SetDefault("pokeapi_base_url", DefaultPokeAPIBaseURL)
	v.SetDefault("pokeapi_timeout", "10s")
	v.SetDefault("pokeapi_user_agent", "pokescout/1.0")

	v.SetDefault("sync_default_pokemon", strings.Join(DefaultPokemon, ","))
	v.SetDefault("sync_on_startup", true)
	v.SetDefault("sync_schedule_enabled", false)
	v.SetDefault("sync_schedule", "0 3 * * *") // Daily at 03:00

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", string(LogFormatJSON))

	v.SetDefault("auth_api_key_hash", "")

	cfg := &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		PokeAPI: PokeAPI{
			BaseURL:   v.GetString("POKEAPI_BASE_URL"),
			Timeout:   v.GetDuration("POKEAPI_TIMEOUT"),
			UserAgent: v.GetString("POKEAPI_USER_AGENT"),
		},
		Sync: Sync{
			DefaultPokemon:  splitList(v.GetString("SYNC_DEFAULT_POKEMON")),
			OnStartup:       v.GetBool("SYNC_ON_STARTUP"),
			ScheduleEnabled: v.GetBool("SYNC_SCHEDULE_ENABLED"),
			Schedule:        v.GetString("SYNC_SCHEDULE"),
		},
		Log: Log{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: LogFormat(strings.ToLower(v.GetString("LOG_FORMAT"))),
		},
		Auth: Auth{
			APIKeyHash: v.GetString("AUTH_API_KEY_HASH"),
		},
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the assembled configuration so a bad environment fails at startup.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
