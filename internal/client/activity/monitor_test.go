package activity

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startMonitor(t *testing.T, idle, warning time.Duration) *Monitor {
	t.Helper()
	m := newMonitor(idle, warning, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	go m.Run(ctx)
	t.Cleanup(func() {
		cancel()
		m.Close()
	})
	return m
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestWarningThenTimeout_Ordering(t *testing.T) {
	m := startMonitor(t, 100*time.Millisecond, 50*time.Millisecond)

	var warned, timedOut atomic.Int32
	var warnedBeforeTimeout atomic.Bool

	m.AddListener(Listener{
		OnWarning: func(seconds int) {
			warned.Add(1)
			if timedOut.Load() == 0 {
				warnedBeforeTimeout.Store(true)
			}
		},
		OnTimeout: func() { timedOut.Add(1) },
	})

	waitFor(t, func() bool { return timedOut.Load() > 0 }, "timeout never fired")

	require.EqualValues(t, 1, warned.Load(), "warning should fire exactly once per episode")
	require.EqualValues(t, 1, timedOut.Load(), "timeout should fire exactly once")
	require.True(t, warnedBeforeTimeout.Load(), "warning must precede timeout")
}

func TestWarning_ReportsRemainingSeconds(t *testing.T) {
	m := startMonitor(t, 5*time.Second, 3*time.Second)

	var got atomic.Int32
	m.AddListener(Listener{OnWarning: func(seconds int) { got.Store(int32(seconds)) }})

	// budget is 5s with a 3s warning window: first check past the 2s mark
	// should report roughly 3 seconds left
	waitFor(t, func() bool { return got.Load() > 0 }, "warning never fired")
	require.InDelta(t, 3, got.Load(), 1)
}

func TestRecordActivity_ResetsBudgetOutsideWarning(t *testing.T) {
	m := startMonitor(t, 100*time.Millisecond, 30*time.Millisecond)

	var warned atomic.Int32
	m.AddListener(Listener{OnWarning: func(int) { warned.Add(1) }})

	// keep poking before the warning window opens
	for i := 0; i < 10; i++ {
		time.Sleep(20 * time.Millisecond)
		m.RecordActivity()
	}

	require.Zero(t, warned.Load(), "activity should silently defer the warning")
}

func TestRecordActivity_DuringWarning_NotifiesWithoutReset(t *testing.T) {
	m := startMonitor(t, 60*time.Millisecond, 40*time.Millisecond)

	var warned, activity, timedOut atomic.Int32
	m.AddListener(Listener{
		OnWarning:  func(int) { warned.Add(1) },
		OnActivity: func() { activity.Add(1) },
		OnTimeout:  func() { timedOut.Add(1) },
	})

	waitFor(t, func() bool { return warned.Load() > 0 }, "warning never fired")

	m.RecordActivity()
	require.EqualValues(t, 1, activity.Load())

	// activity alone must not stop the countdown
	waitFor(t, func() bool { return timedOut.Load() > 0 }, "timeout never fired after warning-time activity")
}

func TestExtendSession_ClearsWarningAndRestartsBudget(t *testing.T) {
	m := startMonitor(t, 60*time.Millisecond, 40*time.Millisecond)

	var warned, timedOut atomic.Int32
	m.AddListener(Listener{
		OnWarning: func(int) { warned.Add(1) },
		OnTimeout: func() { timedOut.Add(1) },
	})

	waitFor(t, func() bool { return warned.Load() > 0 }, "warning never fired")

	m.ExtendSession()
	time.Sleep(15 * time.Millisecond)
	require.Zero(t, timedOut.Load(), "extend should cancel the pending timeout")

	// a second idle episode warns again
	waitFor(t, func() bool { return warned.Load() >= 2 }, "warning did not re-arm after extend")
}

func TestUnsubscribeStopsCallbacks(t *testing.T) {
	m := startMonitor(t, 50*time.Millisecond, 30*time.Millisecond)

	var warned atomic.Int32
	unsubscribe := m.AddListener(Listener{OnWarning: func(int) { warned.Add(1) }})
	unsubscribe()

	time.Sleep(80 * time.Millisecond)
	require.Zero(t, warned.Load())
}

func TestRecordActivity_AfterTimeout_IsNoop(t *testing.T) {
	m := startMonitor(t, 30*time.Millisecond, 20*time.Millisecond)

	var timedOut, activity atomic.Int32
	m.AddListener(Listener{
		OnTimeout:  func() { timedOut.Add(1) },
		OnActivity: func() { activity.Add(1) },
	})

	waitFor(t, func() bool { return timedOut.Load() > 0 }, "timeout never fired")

	m.RecordActivity()
	require.Zero(t, activity.Load(), "activity after timeout should be ignored")
}
