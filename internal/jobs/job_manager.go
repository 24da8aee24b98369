package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storefront-gateway/internal/metrics"
)

type Job interface {
	Name() string
	Run(ctx context.Context) error
	Interval() time.Duration
}

type JobManager struct {
	jobs        []Job
	logger      *slog.Logger
	wg          sync.WaitGroup
	cancelFuncs map[string]context.CancelFunc
	mu          sync.Mutex
}

func NewJobManager(logger *slog.Logger) *JobManager {
	return &JobManager{
		jobs:        make([]Job, 0),
		logger:      logger,
		cancelFuncs: make(map[string]context.CancelFunc),
	}
}

func (jm *JobManager) Register(job Job) {
	jm.mu.Lock()
	defer jm.mu.Unlock()
	jm.jobs = append(jm.jobs, job)
}

// Start launches every registered job that is not already running.
func (jm *JobManager) Start(ctx context.Context) {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	for _, job := range jm.jobs {
		if _, exists := jm.cancelFuncs[job.Name()]; exists {
			continue
		}

		jobCtx, cancel := context.WithCancel(ctx)
		jm.cancelFuncs[job.Name()] = cancel

		jm.wg.Add(1)
		go func(j Job) {
			defer jm.wg.Done()
			jm.logger.Info("Starting Job", "name", j.Name(), "interval", j.Interval())
			if err := j.Run(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				jm.logger.Error("Job failed", "job", j.Name(), "error", err)
			}
		}(job)
	}
}

// Running returns the names of started jobs.
func (jm *JobManager) Running() []string {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	names := make([]string, 0, len(jm.cancelFuncs))
	for _, job := range jm.jobs {
		if _, ok := jm.cancelFuncs[job.Name()]; ok {
			names = append(names, job.Name())
		}
	}
	return names
}

func (jm *JobManager) Shutdown(ctx context.Context) {
	jm.logger.Debug("Shutting down job manager...")
	jm.stopAllJobs()

	done := make(chan struct{})
	go func() {
		jm.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		jm.logger.Debug("All jobs stopped cleanly")
	case <-ctx.Done():
		jm.logger.Warn("Jobs failed to shutdown, exiting...")
		return
	}
}

func (jm *JobManager) stopAllJobs() {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	for _, job := range jm.jobs {
		if cancel, exists := jm.cancelFuncs[job.Name()]; exists {
			jm.logger.Debug("Stopping Job", "job", job.Name())
			cancel()
			delete(jm.cancelFuncs, job.Name())
		}
	}
}

// runEvery calls fn immediately and then on every tick until ctx ends.
func runEvery(ctx context.Context, logger *slog.Logger, name string, interval time.Duration, fn func(context.Context) error) error {
	if interval <= 0 {
		return fmt.Errorf("%s: %w: %s", name, errNonPositiveInterval, interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	run := func() {
		if err := fn(ctx); err != nil {
			metrics.JobRuns.WithLabelValues(name, resultFailure).Inc()
			logger.Error("job run failed", "job", name, "error", err)
			return
		}
		metrics.JobRuns.WithLabelValues(name, resultSuccess).Inc()
	}

	run()
	for {
		select {
		case <-ctx.Done():
			logger.Debug("job canceled", "job", name)
			return ctx.Err()
		case <-ticker.C:
			run()
		}
	}
}
