package jobs

import (
	"fmt"
	"log/slog"

	"geodelivery/internal/core/domain/model/geo"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	referenceDataAuditJob *ReferenceDataAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	directory *geo.Directory,
	borders *geo.AdjacencyGraph,
	auditSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		referenceDataAuditJob: NewReferenceDataAuditJob(directory, borders, auditSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.referenceDataAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start reference data audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.referenceDataAuditJob.Stop()
}
