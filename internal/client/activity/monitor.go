// Package activity tracks user inactivity for the signed-in session. It
// raises a countdown warning shortly before the idle budget runs out and a
// timeout event when it does.
package activity

import (
	"context"
	"sync"
	"time"
)

// Listener receives inactivity events. Callbacks run on the monitor's
// goroutine and must not block.
//
// OnWarning fires once per idle episode when the remaining budget drops to
// the warning window, with the whole seconds left. OnTimeout fires once
// when the budget is exhausted. OnActivity fires when input arrives while
// the warning is showing; resetting the budget at that point is the
// listener's call, not the monitor's.
type Listener struct {
	OnWarning  func(secondsRemaining int)
	OnTimeout  func()
	OnActivity func()
}

// Monitor watches wall-clock inactivity against a fixed idle budget.
type Monitor struct {
	idleTimeout   time.Duration
	warning       time.Duration
	checkInterval time.Duration

	mu           sync.Mutex
	lastActivity time.Time
	inWarning    bool
	expired      bool
	listeners    map[int]Listener
	nextID       int

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewMonitor creates a monitor with the given idle budget and warning
// window. The budget starts counting immediately.
func NewMonitor(idleTimeout, warning time.Duration) *Monitor {
	return newMonitor(idleTimeout, warning, time.Second)
}

func newMonitor(idleTimeout, warning, checkInterval time.Duration) *Monitor {
	return &Monitor{
		idleTimeout:   idleTimeout,
		warning:       warning,
		checkInterval: checkInterval,
		lastActivity:  time.Now(),
		listeners:     map[int]Listener{},
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Run drives the periodic checks until ctx is cancelled or Close is called.
func (m *Monitor) Run(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stop:
			return
		case <-ticker.C:
			m.check()
		}
	}
}

// Close stops the check loop.
func (m *Monitor) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
	<-m.done
}

// AddListener registers a listener and returns its unsubscribe function.
func (m *Monitor) AddListener(l Listener) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.listeners[id] = l

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

// RecordActivity notes user input. Outside the warning window it quietly
// resets the idle budget. During the warning it only notifies listeners;
// the countdown keeps running until someone extends.
func (m *Monitor) RecordActivity() {
	m.mu.Lock()

	if m.expired {
		m.mu.Unlock()
		return
	}

	if !m.inWarning {
		m.lastActivity = time.Now()
		m.mu.Unlock()
		return
	}

	listeners := m.snapshotListenersLocked()
	m.mu.Unlock()

	for _, l := range listeners {
		if l.OnActivity != nil {
			l.OnActivity()
		}
	}
}

// ExtendSession resets the idle budget and clears any active warning.
func (m *Monitor) ExtendSession() {
	m.mu.Lock()
	m.lastActivity = time.Now()
	m.inWarning = false
	m.expired = false
	m.mu.Unlock()
}

func (m *Monitor) check() {
	m.mu.Lock()

	if m.expired {
		m.mu.Unlock()
		return
	}

	remaining := m.idleTimeout - time.Since(m.lastActivity)

	switch {
	case remaining <= 0:
		m.expired = true
		m.inWarning = false
		listeners := m.snapshotListenersLocked()
		m.mu.Unlock()
		for _, l := range listeners {
			if l.OnTimeout != nil {
				l.OnTimeout()
			}
		}

	case remaining <= m.warning && !m.inWarning:
		m.inWarning = true
		listeners := m.snapshotListenersLocked()
		m.mu.Unlock()
		seconds := int(remaining / time.Second)
		for _, l := range listeners {
			if l.OnWarning != nil {
				l.OnWarning(seconds)
			}
		}

	default:
		m.mu.Unlock()
	}
}

func (m *Monitor) snapshotListenersLocked() []Listener {
	out := make([]Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		out = append(out, l)
	}
	return out
}
