package wmark

import "time"

// A Watermarker keeps track of the time after which we expect no future
// events. As events arrive it advances the maximum observed timestamp.
// Callers can request the current watermark, which trails observation by at
// most maxDelay of wall-clock time: advancing the watermark to an event's
// timestamp is delayed by no more than maxDelay after that event was seen.
type Watermarker struct {
	maxTimestamp time.Time
	history      *TimestampHistory
}

// NewWatermarker returns a watermarker that lets the watermark lag
// observation by at most maxDelay.
func NewWatermarker(maxDelay time.Duration, numStoredSamples int) (*Watermarker, error) {
	history, err := NewTimestampHistory(maxDelay.Nanoseconds(), numStoredSamples)
	if err != nil {
		return nil, err
	}
	return &Watermarker{history: history}, nil
}

// As events arrive, keep track of the latest time we've seen.
func (w *Watermarker) AdvanceTime(eventTimestamp time.Time) {
	if eventTimestamp.After(w.maxTimestamp) {
		w.maxTimestamp = eventTimestamp
	}
}

// CurrentWatermark returns the minimum watermark that should have been
// emitted by now: the maximum event timestamp that had been observed
// maxDelay wall-clock units ago. now must come from a monotonic clock and
// must not decrease between calls. ok is false until events have been
// observed and a full maxDelay window has elapsed since the first call.
func (w *Watermarker) CurrentWatermark(now time.Time) (watermark time.Time, ok bool) {
	top := int64(noSample)
	if !w.maxTimestamp.IsZero() {
		top = w.maxTimestamp.UnixNano()
	}

	past, ok := w.history.Sample(now.UnixNano(), top)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, past), true
}
