// Package fireforget runs side effects that the user-visible path must never
// wait for. Failures end up in the log and nowhere else.
package fireforget

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Runner supervises detached tasks. The zero value is ready to use. Wait
// exists so tests can join on pending writes; production code never calls it
// mid-flight.
type Runner struct {
	wg sync.WaitGroup
}

// Go runs fn on its own goroutine. An error or panic is logged under name
// and then dropped. It never reaches the caller.
func (r *Runner) Go(name string, fn func() error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Interface("panic", rec).Str("task", name).Msg("detached task panicked")
			}
		}()
		if err := fn(); err != nil {
			log.Warn().Err(err).Str("task", name).Msg("detached task failed")
		}
	}()
}

// Wait blocks until every task started so far has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}
