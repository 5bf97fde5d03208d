package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mrlokans/pokescout/internal/entities"
	"github.com/mrlokans/pokescout/internal/services"
)

// ErrSyncIncomplete is returned when at least one name failed to sync.
var ErrSyncIncomplete = errors.New("batch sync finished with failures")

// BatchSyncer runs a batch sync over a list of names.
type BatchSyncer interface {
	BatchSync(ctx context.Context, trigger entities.SyncTrigger, names []string) (*services.SyncSummary, error)
}

// BatchSyncCommand syncs a list of Pokémon once and prints a summary.
type BatchSyncCommand struct {
	Names  []string
	Syncer BatchSyncer
	Out    io.Writer
}

func NewBatchSyncCommand(syncer BatchSyncer, names []string, out io.Writer) *BatchSyncCommand {
	return &BatchSyncCommand{Names: names, Syncer: syncer, Out: out}
}

func (cmd *BatchSyncCommand) Run(ctx context.Context) error {
	if len(cmd.Names) == 0 {
		return fmt.Errorf("no pokemon to sync")
	}

	summary, err := cmd.Syncer.BatchSync(ctx, entities.SyncTriggerCLI, cmd.Names)
	if err != nil {
		return err
	}

	cmd.printSummary(summary)

	if summary.HasFailures() {
		return fmt.Errorf("%w: %d of %d failed", ErrSyncIncomplete, summary.Failed, summary.Total)
	}
	return nil
}

func (cmd *BatchSyncCommand) printSummary(summary *services.SyncSummary) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)
	bold := color.New(color.Bold)

	for _, r := range summary.Results {
		switch r.Action {
		case services.SyncActionCreated:
			green.Fprintf(cmd.Out, "  + %-20s created\n", r.Name)
		case services.SyncActionUpdated:
			yellow.Fprintf(cmd.Out, "  ~ %-20s updated\n", r.Name)
		default:
			red.Fprintf(cmd.Out, "  x %-20s %s\n", r.Name, r.Error)
		}
	}

	fmt.Fprintln(cmd.Out)
	bold.Fprintf(cmd.Out, "Synced %d pokemon: %d created, %d updated, %d failed\n",
		summary.Total, summary.Created, summary.Updated, summary.Failed)
	if summary.RunID != 0 {
		fmt.Fprintf(cmd.Out, "Sync run #%d recorded\n", summary.RunID)
	}
}
