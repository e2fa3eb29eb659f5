// /internal/fireforget/fireforget_test.go
package fireforget

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunnerWaitJoinsAllTasks(t *testing.T) {
	var r Runner
	var done atomic.Int32

	for i := 0; i < 10; i++ {
		r.Go("task", func() error {
			done.Add(1)
			return nil
		})
	}
	r.Wait()

	assert.Equal(t, int32(10), done.Load())
}

func TestRunnerSwallowsErrors(t *testing.T) {
	var r Runner
	r.Go("failing", func() error { return errors.New("disk full") })
	assert.NotPanics(t, r.Wait)
}

func TestRunnerRecoversPanics(t *testing.T) {
	var r Runner
	var after atomic.Bool

	r.Go("panicking", func() error { panic("oh no") })
	r.Go("normal", func() error {
		after.Store(true)
		return nil
	})
	r.Wait()

	assert.True(t, after.Load(), "a panicking task never blocks the others")
}
