package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTicker_RunsRepeatedly(t *testing.T) {
	var calls atomic.Int32

	stop := New().ScheduleRecurring(5*time.Millisecond, func() {
		calls.Add(1)
	})
	defer stop()

	assert.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, time.Millisecond)
}

func TestTicker_StopHaltsExecution(t *testing.T) {
	var calls atomic.Int32

	stop := New().ScheduleRecurring(5*time.Millisecond, func() {
		calls.Add(1)
	})

	assert.Eventually(t, func() bool {
		return calls.Load() >= 1
	}, time.Second, time.Millisecond)

	stop()
	time.Sleep(20 * time.Millisecond)
	settled := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, calls.Load())
}

func TestTicker_StopIsIdempotent(t *testing.T) {
	stop := New().ScheduleRecurring(time.Hour, func() {})

	stop()
	stop()
}
