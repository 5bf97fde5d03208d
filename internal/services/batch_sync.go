package services

import (
	"context"
	"fmt"

	"github.com/mrlokans/pokescout/internal/entities"
)

type SyncAction string

const (
	SyncActionCreated SyncAction = "created"
	SyncActionUpdated SyncAction = "updated"
	SyncActionFailed  SyncAction = "failed"
)

// SyncResult is the outcome for one name of a batch sync.
type SyncResult struct {
	Name   string     `json:"name"`
	Action SyncAction `json:"action"`
	Error  string     `json:"error,omitempty"`
}

// SyncSummary aggregates a batch sync.
type SyncSummary struct {
	RunID   uint         `json:"run_id,omitempty"`
	Total   int          `json:"total"`
	Created int          `json:"created"`
	Updated int          `json:"updated"`
	Failed  int          `json:"failed"`
	Results []SyncResult `json:"results"`
}

// HasFailures reports whether any name failed to sync.
func (s *SyncSummary) HasFailures() bool {
	return s.Failed > 0
}

// BatchSync creates or refreshes every name in order. A failure for one name
// is recorded in the summary and does not stop the batch. The returned error
// is non-nil only when the run could not be recorded as started.
func (s *PokemonService) BatchSync(ctx context.Context, trigger entities.SyncTrigger, names []string) (*SyncSummary, error) {
	summary := &SyncSummary{
		Total:   len(names),
		Results: make([]SyncResult, 0, len(names)),
	}

	var run *entities.SyncRun
	if s.runs != nil {
		var err error
		run, err = s.runs.Start(trigger, len(names))
		if err != nil {
			return nil, fmt.Errorf("start sync run: %w", err)
		}
		summary.RunID = run.ID
	}

	s.log.Info().Str("trigger", string(trigger)).Int("total", len(names)).Msg("batch sync started")

	for _, name := range names {
		result := s.syncOne(ctx, name)
		summary.Results = append(summary.Results, result)

		switch result.Action {
		case SyncActionCreated:
			summary.Created++
		case SyncActionUpdated:
			summary.Updated++
		default:
			summary.Failed++
			s.log.Warn().Str("name", result.Name).Str("error", result.Error).Msg("batch sync item failed")
		}
	}

	s.log.Info().
		Str("trigger", string(trigger)).
		Int("created", summary.Created).
		Int("updated", summary.Updated).
		Int("failed", summary.Failed).
		Msg("batch sync finished")

	if run != nil {
		run.Created = summary.Created
		run.Updated = summary.Updated
		run.Failed = summary.Failed
		for _, r := range summary.Results {
			if r.Action == SyncActionFailed {
				run.Failures = append(run.Failures, r.Name+": "+r.Error)
			}
		}
		if err := s.runs.Complete(run); err != nil {
			s.log.Error().Err(err).Uint("run_id", run.ID).Msg("failed to record sync run completion")
		}
	}

	return summary, nil
}

func (s *PokemonService) syncOne(ctx context.Context, name string) SyncResult {
	n, err := Normalize(name)
	if err != nil {
		return SyncResult{Name: name, Action: SyncActionFailed, Error: err.Error()}
	}

	existing, err := s.repo.FindByName(n)
	if err != nil {
		return SyncResult{Name: n, Action: SyncActionFailed, Error: err.Error()}
	}

	if existing == nil {
		if _, err := s.create(ctx, n); err != nil {
			return SyncResult{Name: n, Action: SyncActionFailed, Error: err.Error()}
		}
		return SyncResult{Name: n, Action: SyncActionCreated}
	}

	if _, err := s.refresh(ctx, existing); err != nil {
		return SyncResult{Name: n, Action: SyncActionFailed, Error: err.Error()}
	}
	return SyncResult{Name: n, Action: SyncActionUpdated}
}
