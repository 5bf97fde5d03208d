// Package syncruns provides database operations for batch sync history.
//
// This package implements the SyncRunRecorder interface used by the pokemon service.
//
// # Interface Implementation
//
//	var _ services.SyncRunRecorder = (*Repository)(nil)
//
// # Usage
//
//	repo := syncruns.NewRepository(db)
//	run, err := repo.Start(entities.SyncTriggerHTTP, 6)
package syncruns

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mrlokans/pokescout/internal/entities"
)

// Repository handles all sync run database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sync run repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Start records a new running sync.
func (r *Repository) Start(trigger entities.SyncTrigger, total int) (*entities.SyncRun, error) {
	run := &entities.SyncRun{
		Trigger:   trigger,
		Status:    entities.SyncStatusRunning,
		Total:     total,
		Failures:  datatypes.JSONSlice[string]{},
		StartedAt: time.Now(),
	}
	if err := r.db.Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

// Complete stores the final counters of a run and derives its status.
func (r *Repository) Complete(run *entities.SyncRun) error {
	now := time.Now()
	run.CompletedAt = &now

	switch {
	case run.Failed == 0:
		run.Status = entities.SyncStatusCompleted
	case run.Failed >= run.Total:
		run.Status = entities.SyncStatusFailed
	default:
		run.Status = entities.SyncStatusPartial
	}
	if run.Failures == nil {
		run.Failures = datatypes.JSONSlice[string]{}
	}

	return r.db.Save(run).Error
}

// Latest returns the most recently started run, or nil if none exist.
func (r *Repository) Latest() (*entities.SyncRun, error) {
	var run entities.SyncRun
	err := r.db.Order("started_at DESC, id DESC").First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}
