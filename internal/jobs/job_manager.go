package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"dronedelivery/internal/core/application/usecases/commands"
)

// Schedule carries the intervals and timeouts for the background jobs.
type Schedule struct {
	AssignmentInterval time.Duration
	SweepInterval      time.Duration
	HeartbeatTimeout   time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobAssignmentJob  *JobAssignmentJob
	heartbeatSweepJob *HeartbeatSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignJobsHandler commands.AssignJobsCommandHandler,
	sweepHeartbeatsHandler commands.SweepHeartbeatsCommandHandler,
	schedule Schedule,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		jobAssignmentJob: NewJobAssignmentJob(
			assignJobsHandler, schedule.AssignmentInterval, logger),
		heartbeatSweepJob: NewHeartbeatSweepJob(
			sweepHeartbeatsHandler, schedule.SweepInterval, schedule.HeartbeatTimeout, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.jobAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start job assignment job: %w", err)
	}

	if err := jm.heartbeatSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.jobAssignmentJob.Stop()
		return fmt.Errorf("failed to start heartbeat sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.heartbeatSweepJob.Stop()
	jm.jobAssignmentJob.Stop()
}
