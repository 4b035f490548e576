package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RequestExpiryJob cancels orders that stayed Requested for longer than the
// configured time to live. Runs at the start of every minute.
type RequestExpiryJob struct {
	handler commands.ExpireStaleRequestsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRequestExpiryJob creates the job. ttl must be positive; the JobManager
// does not start the job otherwise.
func NewRequestExpiryJob(
	handler commands.ExpireStaleRequestsCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *RequestExpiryJob {
	return &RequestExpiryJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "request_expiry_job"),
	}
}

// Start schedules the job.
func (j *RequestExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Request expiry job started (running every minute)", "ttl", j.ttl.String())
	return nil
}

// RunOnce performs a single expiry pass and returns how many orders it
// cancelled. Failures are logged, not returned.
func (j *RequestExpiryJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewExpireStaleRequestsCommand(j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Request expiry job misconfigured", "error", err)
		return 0
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Request expiry job failed", "error", err, "expired", expired)
		return expired
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Stale order requests expired", "count", expired)
	}
	return expired
}

// Stop stops the job and waits for a running pass to finish.
func (j *RequestExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Request expiry job stopped")
}
