// Package wmark tracks how far a stream of events has progressed so callers
// can decide the minimum watermark that is safe to emit.
package wmark

import (
	"fmt"
	"math"

	"latewatch.dev/latewatch/util/ds"
)

// DefaultNumStoredSamples is a reasonable sample count for most callers.
const DefaultNumStoredSamples = 16

// noSample marks a slot that never held a real reading. A caller value of
// math.MinInt64 is indistinguishable from it, so values must be greater.
const noSample = math.MinInt64

// TimestampHistory answers "what was the tracked value maxDelay time units
// ago?". Call Sample at regular intervals with the current time from a
// monotonic clock and the maximum value observed so far; the return is the
// reading from approximately maxDelay ago.
//
// The history covers the period from maxDelay ago to the present, divided
// into numStoredSamples equal intervals with one ring slot each. Each Sample
// call remaps slots to more recent intervals as time passes, discarding the
// old ones, then updates the tail slot and returns the head.
//
// maxDelay is expected to be much larger than numStoredSamples; it is
// rounded down to the nearest multiple of numStoredSamples.
//
// A TimestampHistory must be owned and called by a single goroutine.
type TimestampHistory struct {
	samples        *ds.Ring[int64]
	sampleInterval int64
	advanceAt      int64
}

// NewTimestampHistory returns a history covering maxDelay time units with
// numStoredSamples retained readings. Time units are the caller's choice and
// only need to match the now values later passed to Sample.
func NewTimestampHistory(maxDelay int64, numStoredSamples int) (*TimestampHistory, error) {
	if numStoredSamples < 1 {
		return nil, fmt.Errorf("numStoredSamples must be at least 1, got %d", numStoredSamples)
	}
	sampleInterval := maxDelay / int64(numStoredSamples)
	if sampleInterval < 1 {
		return nil, fmt.Errorf("maxDelay (%d) must be at least numStoredSamples (%d)", maxDelay, numStoredSamples)
	}

	return &TimestampHistory{
		// One extra slot so the head and tail never coincide.
		samples:        ds.NewRing(numStoredSamples+1, int64(noSample)),
		sampleInterval: sampleInterval,
		// Guarantees the first call advances through the whole ring.
		advanceAt: math.MinInt64,
	}, nil
}

// Sample records value as the current reading and returns the reading from
// approximately maxDelay time units ago. ok is false while sampling started
// less than maxDelay ago.
//
// now must not be less than the now of the previous call. If it is, the tail
// slot is still updated in place but the window does not advance.
func (h *TimestampHistory) Sample(now, value int64) (past int64, ok bool) {
	advanced := 0
	for h.advanceAt <= now && advanced < h.samples.Len() {
		// Seeding the new tail from the old one is the best estimate for an
		// interval during which Sample was never called.
		h.samples.Advance()
		h.advanceAt += h.sampleInterval
		advanced++
	}

	// The whole ring went stale, so stepping advanceAt one interval at a
	// time would leave it arbitrarily far in the past. Re-anchor it to now.
	if advanced == h.samples.Len() {
		h.advanceAt = now + h.sampleInterval
	}

	h.samples.SetTail(value)
	past = h.samples.Head()
	return past, past != noSample
}
