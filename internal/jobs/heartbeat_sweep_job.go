package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dronedelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// HeartbeatSweepJob periodically marks drones broken when their last
// heartbeat is older than the configured timeout. A drone that went silent
// while carrying cargo gets the same handoff treatment as one reporting a
// breakdown itself.
type HeartbeatSweepJob struct {
	handler  commands.SweepHeartbeatsCommandHandler
	interval time.Duration
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewHeartbeatSweepJob creates a job sweeping stale heartbeats on the
// given interval.
func NewHeartbeatSweepJob(
	handler commands.SweepHeartbeatsCommandHandler,
	interval time.Duration,
	timeout time.Duration,
	logger *slog.Logger,
) *HeartbeatSweepJob {
	return &HeartbeatSweepJob{
		handler:  handler,
		interval: interval,
		timeout:  timeout,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "heartbeat_sweep_job"),
	}
}

// Start schedules the heartbeat sweep.
func (j *HeartbeatSweepJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSweepHeartbeatsCommand(j.timeout)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Heartbeat sweep misconfigured", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Heartbeat sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Heartbeat sweep job started",
		"interval", j.interval.String(), "timeout", j.timeout.String())
	return nil
}

// Stop stops the heartbeat sweep job.
func (j *HeartbeatSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Heartbeat sweep job stopped")
}
