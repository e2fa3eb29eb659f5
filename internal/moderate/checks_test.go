// /internal/moderate/checks_test.go
package moderate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripsCapsOverRatioAndLength(t *testing.T) {
	// 13 runes, all uppercase.
	assert.True(t, tripsCaps("SCREAMINGLOUD", 0.70, 10))
}

func TestTripsCapsNotOverMinLength(t *testing.T) {
	// Exactly 10 runes never trips regardless of ratio.
	assert.False(t, tripsCaps("AAAABBBBCC", 0.70, 10))
}

func TestTripsCapsMixedCaseUnderRatio(t *testing.T) {
	assert.False(t, tripsCaps("Hello there friends", 0.70, 10))
}

func TestTripsCapsNoLetters(t *testing.T) {
	assert.False(t, tripsCaps("1234567890!!!", 0.70, 10))
}

func TestTripsCapsExactRatioDoesNotTrip(t *testing.T) {
	// 14 uppercase in 20 runes is exactly 0.70, not over it.
	assert.False(t, tripsCaps("AAAAAAAAAAAAAAbbbbbb", 0.70, 10))
}

func TestTripsCapsDigitsDiluteRatio(t *testing.T) {
	// The ratio is over total length: 4 uppercase in 11 runes stays well
	// under the threshold even though every letter is uppercase.
	assert.False(t, tripsCaps("GO GO 12345", 0.70, 10))
}

func TestDistinctMentions(t *testing.T) {
	assert.Equal(t, 0, distinctMentions(nil))
	assert.Equal(t, 1, distinctMentions([]string{"a"}))
	assert.Equal(t, 2, distinctMentions([]string{"a", "b", "a"}))
}
