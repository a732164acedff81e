// Package jobs provides scheduled background tasks for the drone delivery
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. JobAssignmentJob - Periodically matches open jobs with available drones
// 2. HeartbeatSweepJob - Periodically retires drones whose heartbeats went stale
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignJobsHandler, sweepHandler, config, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use "@every" cron expressions with intervals taken from the
// application configuration. Assignment defaults to every 10 seconds, the
// heartbeat sweep to every minute.
//
// # Error Handling
//
// - The assignment pass already tolerates lost reservation races internally
// - Sweep errors are joined per drone and logged in one entry
// - Failed job starts will stop any already running jobs
package jobs
