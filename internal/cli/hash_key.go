package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mrlokans/pokescout/internal/auth"
)

// HashKeyCommand prints the bcrypt hash of an API key for AUTH_API_KEY_HASH.
// With Generate set, a random key is created first and printed too.
type HashKeyCommand struct {
	Key      string
	Generate bool
	Cost     int
	Out      io.Writer
}

func NewHashKeyCommand(out io.Writer) *HashKeyCommand {
	return &HashKeyCommand{Cost: auth.DefaultCost, Out: out}
}

func (cmd *HashKeyCommand) Run() error {
	key := cmd.Key
	if cmd.Generate {
		if key != "" {
			return fmt.Errorf("pass either a key or --generate, not both")
		}
		generated, err := auth.GenerateKey()
		if err != nil {
			return fmt.Errorf("generate key: %w", err)
		}
		key = generated
	}
	if key == "" {
		return fmt.Errorf("an API key is required")
	}

	hash, err := auth.HashKey(key, cmd.Cost)
	if err != nil {
		return err
	}

	if cmd.Generate {
		fmt.Fprintf(cmd.Out, "API key: %s\n", color.New(color.Bold).Sprint(key))
		color.New(color.FgYellow).Fprintln(cmd.Out, "Store this key now, it cannot be recovered from the hash.")
	}
	fmt.Fprintf(cmd.Out, "AUTH_API_KEY_HASH=%s\n", hash)
	return nil
}
