package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrlokans/pokescout/internal/cli"
	"github.com/mrlokans/pokescout/internal/config"
	"github.com/mrlokans/pokescout/internal/entrypoint"
	"github.com/mrlokans/pokescout/internal/logging"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:           "pokescout",
		Short:         "Sync Pokémon data from PokeAPI into a local store and serve it over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve)
	root.AddCommand(newSyncCommand())
	root.AddCommand(newHashKeyCommand())
	root.AddCommand(newVersionCommand())
	return root
}

func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, log, nil
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			return entrypoint.Run(cfg, log, Version)
		},
	}
}

func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync [names...]",
		Short: "Create or refresh Pokémon once; defaults to SYNC_DEFAULT_POKEMON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			app, err := entrypoint.Bootstrap(cfg, log)
			if err != nil {
				return err
			}
			defer app.Close()

			names := args
			if len(names) == 0 {
				names = cfg.Sync.DefaultPokemon
			}
			return cli.NewBatchSyncCommand(app.Service, names, cmd.OutOrStdout()).Run(cmd.Context())
		},
	}
}

func newHashKeyCommand() *cobra.Command {
	var generate bool

	cmd := &cobra.Command{
		Use:   "hash-key [key]",
		Short: "Print the bcrypt hash of an API key for AUTH_API_KEY_HASH",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hk := cli.NewHashKeyCommand(cmd.OutOrStdout())
			if len(args) == 1 {
				hk.Key = args[0]
			}
			hk.Generate = generate
			return hk.Run()
		},
	}
	cmd.Flags().BoolVar(&generate, "generate", false, "Generate a random key and print it with its hash")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pokescout %s (%s)\n", Version, Commit)
		},
	}
}
