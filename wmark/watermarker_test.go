package wmark_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"latewatch.dev/latewatch/wmark"
)

func TestNewWatermarker_Validation(t *testing.T) {
	// 10ns of allowed delay cannot be divided into 16 sample intervals.
	_, err := wmark.NewWatermarker(10*time.Nanosecond, 16)
	assert.ErrorContains(t, err, "maxDelay")

	_, err = wmark.NewWatermarker(time.Second, wmark.DefaultNumStoredSamples)
	assert.NoError(t, err)
}

func TestWatermarker_NoWatermarkWithoutEvents(t *testing.T) {
	w, err := wmark.NewWatermarker(160*time.Nanosecond, 16)
	require.NoError(t, err)

	// However much time passes, there is no event time to stand on.
	for now := int64(0); now <= 1000; now += 10 {
		_, ok := w.CurrentWatermark(time.Unix(0, now))
		assert.False(t, ok, "no watermark expected at now=%d", now)
	}
}

func TestWatermarker_TrailsObservationByMaxDelay(t *testing.T) {
	w, err := wmark.NewWatermarker(160*time.Nanosecond, 16)
	require.NoError(t, err)

	var watermark time.Time
	var ok bool
	for i := 0; i < 17; i++ {
		w.AdvanceTime(time.Unix(0, int64(1000+i*2)))
		watermark, ok = w.CurrentWatermark(time.Unix(0, int64(i*10)))
	}

	// One full delay window after the first observation, the watermark is
	// the event time the stream had reached back then.
	require.True(t, ok)
	assert.Equal(t, time.Unix(0, 1000), watermark)
}

func TestWatermarker_MaxTimestampNeverRegresses(t *testing.T) {
	w, err := wmark.NewWatermarker(160*time.Nanosecond, 16)
	require.NoError(t, err)

	w.AdvanceTime(time.Unix(0, 5000))
	w.AdvanceTime(time.Unix(0, 10)) // late event, must not pull time back

	var watermark time.Time
	var ok bool
	for i := 0; i < 17; i++ {
		watermark, ok = w.CurrentWatermark(time.Unix(0, int64(i*10)))
	}

	require.True(t, ok)
	assert.Equal(t, time.Unix(0, 5000), watermark)
}
