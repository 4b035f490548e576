package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	requestExpiryJob *RequestExpiryJob
	logger           *slog.Logger
}

// NewJobManager creates a new job manager with all required jobs.
// A requestTTL of zero or less disables request expiry.
func NewJobManager(
	expireHandler commands.ExpireStaleRequestsCommandHandler,
	requestTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}
	if requestTTL > 0 {
		jm.requestExpiryJob = NewRequestExpiryJob(expireHandler, requestTTL, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.requestExpiryJob == nil {
		jm.logger.InfoContext(context.Background(), "Request expiry disabled")
		return nil
	}

	if err := jm.requestExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start request expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.requestExpiryJob != nil {
		jm.requestExpiryJob.Stop()
	}
}
