// /internal/track/warning_test.go
package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarningLedgerIncrements(t *testing.T) {
	l := NewWarningLedger(DefaultLedgerTTL)

	assert.Equal(t, 1, l.Increment("u:c"))
	assert.Equal(t, 2, l.Increment("u:c"))
	assert.Equal(t, 3, l.Increment("u:c"))
	assert.Equal(t, 3, l.Count("u:c"))
}

func TestWarningLedgerClear(t *testing.T) {
	l := NewWarningLedger(DefaultLedgerTTL)

	l.Increment("u:c")
	l.Increment("u:c")
	l.Clear("u:c")

	assert.Equal(t, 0, l.Count("u:c"))
	assert.Equal(t, 1, l.Increment("u:c"))
}

func TestWarningLedgerUnknownKeyIsZero(t *testing.T) {
	l := NewWarningLedger(DefaultLedgerTTL)
	assert.Equal(t, 0, l.Count("nobody"))
}

func TestWarningLedgerKeysAreIndependent(t *testing.T) {
	l := NewWarningLedger(DefaultLedgerTTL)

	l.Increment("u:general")
	assert.Equal(t, 0, l.Count("u:offtopic"))
}
