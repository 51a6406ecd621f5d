package jobs

import (
	"fmt"
	"log/slog"

	"grubdash/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderBacklogJob *OrderBacklogJob
}

// NewJobManager creates a new job manager with all required jobs. An empty
// backlogSchedule leaves the backlog job out.
func NewJobManager(
	listOrdersHandler queries.ListOrdersQueryHandler,
	backlogSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if backlogSchedule != "" {
		jm.orderBacklogJob = NewOrderBacklogJob(listOrdersHandler, backlogSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.orderBacklogJob != nil {
		if err := jm.orderBacklogJob.Start(); err != nil {
			return fmt.Errorf("failed to start order backlog job: %w", err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.orderBacklogJob != nil {
		jm.orderBacklogJob.Stop()
	}
}

// Enabled reports how many jobs are configured.
func (jm *JobManager) Enabled() int {
	if jm.orderBacklogJob != nil {
		return 1
	}
	return 0
}
