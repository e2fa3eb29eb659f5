// Package schedule runs named jobs at a fixed wall-clock time each day.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Job fires once per day at At (a "15:04" wall-clock time, bot-local).
type Job struct {
	Name string
	At   string
	Run  func(now time.Time)
}

// Scheduler owns a set of daily jobs. Each job runs on its own goroutine and
// a panic in one never disturbs the others.
type Scheduler struct {
	jobs []Job
}

func New() *Scheduler {
	return &Scheduler{}
}

// Add registers a job. At must parse as "15:04".
func (s *Scheduler) Add(job Job) error {
	if _, err := time.Parse("15:04", job.At); err != nil {
		return fmt.Errorf("job %s: bad time %q: %w", job.Name, job.At, err)
	}
	s.jobs = append(s.jobs, job)
	return nil
}

// Start launches every job loop. It returns immediately; the loops stop when
// ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	for _, job := range s.jobs {
		go s.loop(ctx, job)
	}
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	for {
		now := time.Now()
		next := NextRun(now, job.At)
		log.Info().Str("job", job.Name).Time("next", next).Msg("job scheduled")

		select {
		case <-ctx.Done():
			return
		case <-time.After(next.Sub(now)):
		}

		fire := time.Now()
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error().Interface("panic", rec).Str("job", job.Name).Msg("scheduled job panicked")
				}
			}()
			job.Run(fire)
		}()
	}
}

// NextRun returns the first instant strictly after now whose wall-clock time
// matches at.
func NextRun(now time.Time, at string) time.Time {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return now.Add(24 * time.Hour)
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
