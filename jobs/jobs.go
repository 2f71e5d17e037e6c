package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultReconcileSchedule = "5 0 * * *"
	OTPSweepSchedule         = "@hourly"
	jobTimeout               = 5 * time.Minute
)

// Runner is the work the scheduler triggers.
type Runner interface {
	Reconcile(ctx context.Context) (int, error)
	ClearExpiredOTPs(ctx context.Context) (int64, error)
}

/*
* Reconcile hospital and doctor rosters on the given schedule, 00:05 by default
* Sweep expired otps every hour
* The caller stops the returned scheduler on shutdown
 */
func StartDailyScheduler(runner Runner, reconcileSchedule string) (*cron.Cron, error) {
	c, err := NewScheduler(runner, reconcileSchedule)
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Info().Str("reconcile", reconcileSchedule).Msg("Jobs scheduler started")
	return c, nil
}

func NewScheduler(runner Runner, reconcileSchedule string) (*cron.Cron, error) {
	if reconcileSchedule == "" {
		reconcileSchedule = DefaultReconcileSchedule
	}
	c := cron.New(cron.WithLogger(cronLogger{log.Logger}), cron.WithChain(cron.Recover(cronLogger{log.Logger})))
	if _, err := c.AddFunc(reconcileSchedule, func() { RunReconcile(runner) }); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(OTPSweepSchedule, func() { RunOTPSweep(runner) }); err != nil {
		return nil, err
	}
	return c, nil
}

func RunReconcile(runner Runner) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	log.Info().Msg("Running affiliation reconcile...")
	n, err := runner.Reconcile(ctx)
	if err != nil {
		log.Error().Err(err).Int("processed", n).Msg("Error from Reconcile")
		return
	}
	log.Info().Int("processed", n).Msg("Affiliation reconcile finished")
}

func RunOTPSweep(runner Runner) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	n, err := runner.ClearExpiredOTPs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from ClearExpiredOTPs")
		return
	}
	log.Info().Int64("cleared", n).Msg("Expired OTPs cleared")
}

// cronLogger routes cron's own messages through zerolog.
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
