package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dronedelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// JobAssignmentJob runs the scheduled assignment pass that matches open
// jobs with available drones, oldest job first, nearest drone first.
type JobAssignmentJob struct {
	handler  commands.AssignJobsCommandHandler
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewJobAssignmentJob creates a job running the assignment pass on the
// given interval.
func NewJobAssignmentJob(
	handler commands.AssignJobsCommandHandler,
	interval time.Duration,
	logger *slog.Logger,
) *JobAssignmentJob {
	return &JobAssignmentJob{
		handler:  handler,
		interval: interval,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "job_assignment_job"),
	}
}

// Start schedules the assignment pass.
func (j *JobAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()
		cmd := commands.NewAssignJobsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Job assignment pass failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Job assignment job started", "interval", j.interval.String())
	return nil
}

// Stop stops the assignment job.
func (j *JobAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Job assignment job stopped")
}
