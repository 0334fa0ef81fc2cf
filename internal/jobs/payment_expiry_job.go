package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// ExpiryHandler is the command handler the payment expiry job drives.
type ExpiryHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireAwaitingPaymentCommand) (commands.ExpireAwaitingPaymentResult, error)
}

// PaymentExpiryJob cancels orders that stayed in AwaitingPayment for longer than ttl.
// A tick that fires while the previous pass is still running is skipped.
type PaymentExpiryJob struct {
	handler  ExpiryHandler
	ttl      time.Duration
	schedule string
	expired  *prometheus.CounterVec
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

// NewPaymentExpiryJob creates the job. schedule is a cron spec with a seconds field,
// for example "0 * * * * *" for once a minute. expired counts orders by outcome
// ("expired" or "failed").
func NewPaymentExpiryJob(
	handler ExpiryHandler,
	ttl time.Duration,
	schedule string,
	expired *prometheus.CounterVec,
	logger *slog.Logger,
) *PaymentExpiryJob {
	return &PaymentExpiryJob{
		handler:  handler,
		ttl:      ttl,
		schedule: schedule,
		expired:  expired,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "payment_expiry_job"),
		now:      time.Now,
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *PaymentExpiryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid payment expiry schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment expiry job started",
		"schedule", j.schedule, "ttl", j.ttl.String())
	return nil
}

// Run performs one expiry pass. It is what the scheduler calls and is exported so
// the pass can be triggered directly.
func (j *PaymentExpiryJob) Run(ctx context.Context) {
	cutoff := j.now().UTC().Add(-j.ttl)

	cmd, err := commands.NewExpireAwaitingPaymentCommand(cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment expiry job failed", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Payment expiry job failed", "cutoff", cutoff, "error", err)
		return
	}

	j.expired.WithLabelValues("expired").Add(float64(result.Expired))
	j.expired.WithLabelValues("failed").Add(float64(result.Failed))

	if result.Expired > 0 || result.Failed > 0 {
		j.logger.InfoContext(ctx, "Payment expiry pass finished",
			"expired", result.Expired, "failed", result.Failed, "cutoff", cutoff)
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *PaymentExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Payment expiry job stopped")
}
