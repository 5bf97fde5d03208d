package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/mrlokans/pokescout/internal/entities"
	"github.com/mrlokans/pokescout/internal/logging"
	"github.com/mrlokans/pokescout/internal/services"
)

// syncTimeout bounds a single scheduled batch sync.
const syncTimeout = 5 * time.Minute

// BatchSyncer runs a batch sync over a list of names.
type BatchSyncer interface {
	BatchSync(ctx context.Context, trigger entities.SyncTrigger, names []string) (*services.SyncSummary, error)
}

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidateSchedule checks a five-field cron expression or descriptor.
func ValidateSchedule(schedule string) error {
	_, err := parser.Parse(schedule)
	return err
}

// BatchSyncScheduler periodically refreshes the default Pokémon list.
type BatchSyncScheduler struct {
	syncer   BatchSyncer
	names    []string
	schedule string
	log      zerolog.Logger

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	isRunning bool
	isSyncing bool
}

// NewBatchSyncScheduler creates a new scheduler instance
func NewBatchSyncScheduler(syncer BatchSyncer, names []string, schedule string, log zerolog.Logger) *BatchSyncScheduler {
	return &BatchSyncScheduler{
		syncer:   syncer,
		names:    names,
		schedule: schedule,
		log:      logging.Component(log, "scheduler"),
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithLogger(logging.NewCronLogger(log)),
		),
	}
}

// Start schedules the job. Cancelling ctx stops the scheduler.
func (s *BatchSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.runSync)
	if err != nil {
		return fmt.Errorf("failed to schedule sync job: %w", err)
	}
	s.entryID = entryID

	s.ctx, s.cancel = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	s.log.Info().
		Str("schedule", s.schedule).
		Time("next_run", s.cron.Entry(entryID).Next).
		Msg("batch sync scheduler started")

	// Monitor for context cancellation
	go func(done <-chan struct{}) {
		<-done
		s.Stop()
	}(s.ctx.Done())

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running sync to finish.
func (s *BatchSyncScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	s.cron.Remove(s.entryID)
	cancel := s.cancel
	s.mu.Unlock()

	// Stop accepting new jobs and wait for running jobs to complete
	<-s.cron.Stop().Done()
	cancel()

	s.log.Info().Msg("batch sync scheduler stopped")
}

// IsRunning returns whether the scheduler is active
func (s *BatchSyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next sync will occur, or nil when stopped.
func (s *BatchSyncScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	t := s.cron.Entry(s.entryID).Next
	return &t
}

func (s *BatchSyncScheduler) runSync() {
	s.mu.Lock()
	if s.isSyncing {
		s.mu.Unlock()
		s.log.Info().Msg("scheduled sync skipped, previous run still in progress")
		return
	}
	s.isSyncing = true
	parent := s.ctx
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isSyncing = false
		s.mu.Unlock()
	}()

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, syncTimeout)
	defer cancel()

	summary, err := s.syncer.BatchSync(ctx, entities.SyncTriggerSchedule, s.names)
	if err != nil {
		s.log.Error().Err(err).Msg("scheduled sync failed to start")
		return
	}
	s.log.Info().
		Int("created", summary.Created).
		Int("updated", summary.Updated).
		Int("failed", summary.Failed).
		Msg("scheduled sync finished")
}
