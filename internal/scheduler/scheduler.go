package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Job is a unit of periodic work. Jobs report failures through their
// return value; the scheduler logs them and keeps ticking.
type Job func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	run      Job
}

// Scheduler runs registered jobs on fixed intervals, one goroutine per
// job. Each job also runs once at startup so fresh processes converge
// immediately instead of waiting a full interval.
type Scheduler struct {
	jobs []job
}

func New() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Add(name string, interval time.Duration, run Job) {
	s.jobs = append(s.jobs, job{name: name, interval: interval, run: run})
}

// Start launches every registered job and returns. Jobs stop when ctx
// is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		go s.loop(ctx, j)
	}
}

func (s *Scheduler) loop(ctx context.Context, j job) {
	s.runJob(ctx, j)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("scheduler job stopped", zap.String("job", j.name))
			return
		case <-ticker.C:
			s.runJob(ctx, j)
		}
	}
}

// Tick runs every registered job exactly once, synchronously.
func (s *Scheduler) Tick(ctx context.Context) {
	for _, j := range s.jobs {
		s.runJob(ctx, j)
	}
}

func (s *Scheduler) runJob(ctx context.Context, j job) {
	if err := j.run(ctx); err != nil {
		zap.L().Error("scheduler job failed",
			zap.String("job", j.name),
			zap.Error(err))
	}
}
