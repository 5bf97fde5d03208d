package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pokescout/internal/entities"
)

type RefreshController struct {
	syncer BatchSyncer
	runs   SyncRunReader
	names  []string
}

func NewRefreshController(syncer BatchSyncer, runs SyncRunReader, names []string) *RefreshController {
	return &RefreshController{syncer: syncer, runs: runs, names: names}
}

// Refresh syncs the default list and reports per-name outcomes.
// Responds 207 Multi-Status when any name failed.
// POST /api/v1/refresh
func (rc *RefreshController) Refresh(c *gin.Context) {
	summary, err := rc.syncer.BatchSync(c.Request.Context(), entities.SyncTriggerHTTP, rc.names)
	if err != nil {
		respondInternalError(c, err, "batch sync")
		return
	}

	status := http.StatusOK
	if summary.HasFailures() {
		status = http.StatusMultiStatus
	}
	c.JSON(status, summary)
}

// Status returns the most recent batch sync run.
// GET /api/v1/refresh/status
func (rc *RefreshController) Status(c *gin.Context) {
	if rc.runs == nil {
		respondNotFound(c, "sync run")
		return
	}

	run, err := rc.runs.Latest()
	if err != nil {
		respondInternalError(c, err, "latest sync run")
		return
	}
	if run == nil {
		respondNotFound(c, "sync run")
		return
	}
	c.JSON(http.StatusOK, run)
}
