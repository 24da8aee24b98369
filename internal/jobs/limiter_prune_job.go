package jobs

import (
	"context"
	"log/slog"
	"time"
)

// Pruner drops per-client state that has been idle for longer than idle.
type Pruner interface {
	Prune(idle time.Duration) int
}

type LimiterPruneJob struct {
	limiter  Pruner
	idle     time.Duration
	interval time.Duration
	logger   *slog.Logger
}

func NewLimiterPruneJob(limiter Pruner, idle, interval time.Duration, logger *slog.Logger) *LimiterPruneJob {
	return &LimiterPruneJob{
		limiter:  limiter,
		idle:     idle,
		interval: interval,
		logger:   logger,
	}
}

func (j *LimiterPruneJob) Name() string {
	return "limiter-prune"
}

func (j *LimiterPruneJob) Interval() time.Duration {
	return j.interval
}

func (j *LimiterPruneJob) Run(ctx context.Context) error {
	return runEvery(ctx, j.logger, j.Name(), j.interval, func(context.Context) error {
		if removed := j.limiter.Prune(j.idle); removed > 0 {
			j.logger.Debug("pruned idle rate limiters", "removed", removed)
		}
		return nil
	})
}
