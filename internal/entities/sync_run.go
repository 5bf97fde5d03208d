package entities

import (
	"time"

	"gorm.io/datatypes"
)

type SyncTrigger string

const (
	SyncTriggerStartup  SyncTrigger = "startup"
	SyncTriggerHTTP     SyncTrigger = "http"
	SyncTriggerSchedule SyncTrigger = "schedule"
	SyncTriggerCLI      SyncTrigger = "cli"
)

type SyncStatus string

const (
	SyncStatusRunning   SyncStatus = "running"
	SyncStatusCompleted SyncStatus = "completed"
	SyncStatusPartial   SyncStatus = "partial" // Some names failed
	SyncStatusFailed    SyncStatus = "failed"  // Every name failed
)

// SyncRun records one batch synchronisation of the default Pokémon list.
type SyncRun struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Trigger     SyncTrigger                 `gorm:"size:20" json:"trigger"`
	Status      SyncStatus                  `gorm:"size:20;index" json:"status"`
	Total       int                         `json:"total"`
	Created     int                         `json:"created"`
	Updated     int                         `json:"updated"`
	Failed      int                         `json:"failed"`
	Failures    datatypes.JSONSlice[string] `json:"failures,omitempty"`
	StartedAt   time.Time                   `json:"started_at"`
	CompletedAt *time.Time                  `json:"completed_at,omitempty"`
}

func (SyncRun) TableName() string {
	return "sync_runs"
}
