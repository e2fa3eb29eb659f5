// /internal/track/window_test.go
package track

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowTrackerCountsWithinWindow(t *testing.T) {
	w := NewWindowTracker(60 * time.Second)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, w.RecordAndCount("u:c", base))
	assert.Equal(t, 2, w.RecordAndCount("u:c", base.Add(10*time.Second)))
	assert.Equal(t, 3, w.RecordAndCount("u:c", base.Add(20*time.Second)))
}

func TestWindowTrackerBoundaryIsInclusive(t *testing.T) {
	w := NewWindowTracker(60 * time.Second)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	w.RecordAndCount("u:c", base)
	w.RecordAndCount("u:c", base.Add(10*time.Second))

	// At t=70s the entry from t=10s sits exactly on the cutoff and still
	// counts; only the t=0 entry has aged out.
	assert.Equal(t, 2, w.RecordAndCount("u:c", base.Add(70*time.Second)))
}

func TestWindowTrackerKeysAreIndependent(t *testing.T) {
	w := NewWindowTracker(time.Minute)
	now := time.Now()

	assert.Equal(t, 1, w.RecordAndCount("a:1", now))
	assert.Equal(t, 1, w.RecordAndCount("a:2", now))
	assert.Equal(t, 2, w.RecordAndCount("a:1", now))
}
