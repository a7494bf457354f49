// Package jobs provides the scheduled background tasks of the marketplace,
// built on github.com/robfig/cron/v3 and coordinated by JobManager.
package jobs

import (
	"fmt"

	"rentalhub/internal/core/application/usecases/queries"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueRentalJob *OverdueRentalJob
}

// NewJobManager creates a job manager with all required jobs wired to their
// query handlers.
func NewJobManager(
	overdueRentalsHandler queries.GetOverdueRentalsQueryHandler,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		overdueRentalJob: NewOverdueRentalJob(overdueRentalsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueRentalJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue rental job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueRentalJob.Stop()
}
