package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/northlink/selfcare/internal/client/activity"
	"github.com/northlink/selfcare/internal/client/client"
	"github.com/northlink/selfcare/internal/client/models"
	"github.com/northlink/selfcare/internal/logging"
)

const (
	// defaultRefreshInterval is the silent-refresh cadence used until the
	// server reports an access-token lifetime.
	defaultRefreshInterval = 14 * time.Minute
	// minRefreshInterval is the floor applied after subtracting the margin.
	minRefreshInterval = 30 * time.Second

	reconcileTimeout = 10 * time.Second
	revokeTimeout    = 5 * time.Second
)

// ActivityMonitor is the slice of activity.Monitor the coordinator needs.
type ActivityMonitor interface {
	AddListener(l activity.Listener) func()
	ExtendSession()
}

// Coordinator owns the session state machine. All transitions happen under
// one mutex, and every async result carries a generation token taken when
// the work started; results whose token no longer matches are dropped, so
// a login finishing after a logout can never resurrect the session.
type Coordinator struct {
	store         client.Client
	monitor       ActivityMonitor
	logger        logging.Logger
	refreshMargin time.Duration

	mu               sync.Mutex
	state            State
	user             *models.User
	loading          bool
	warningActive    bool
	secondsRemaining int
	warningEpoch     int
	seq              uint64
	reconciling      bool

	subscribers map[int]func(Snapshot)
	nextSubID   int

	refreshCancel context.CancelFunc
	unsubActivity func()

	after func(time.Duration) <-chan time.Time
}

// NewCoordinator builds a coordinator in StateChecking. Call Start to
// resolve the initial state.
func NewCoordinator(store client.Client, monitor ActivityMonitor, logger logging.Logger, refreshMargin time.Duration) *Coordinator {
	return newCoordinator(store, monitor, logger, refreshMargin, time.After)
}

func newCoordinator(store client.Client, monitor ActivityMonitor, logger logging.Logger, refreshMargin time.Duration, after func(time.Duration) <-chan time.Time) *Coordinator {
	return &Coordinator{
		store:         store,
		monitor:       monitor,
		logger:        logger.With("module", "session"),
		refreshMargin: refreshMargin,
		state:         StateChecking,
		subscribers:   map[int]func(Snapshot){},
		after:         after,
	}
}

// Start validates any stored session and settles into Authenticated or
// Unauthenticated. Anonymous users resolve without a network round trip.
func (c *Coordinator) Start(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	token := c.seq
	c.mu.Unlock()

	user, err := c.store.GetCurrentUser(ctx)

	c.mu.Lock()
	if token != c.seq {
		c.mu.Unlock()
		return
	}
	if err != nil {
		if !errors.Is(err, client.ErrNoSession) {
			c.logger.Debug(ctx, "stored session rejected", "error", err.Error())
		}
		c.state = StateUnauthenticated
		c.user = nil
		c.mu.Unlock()
		c.notify()
		return
	}
	c.state = StateAuthenticated
	c.user = user
	c.mu.Unlock()
	c.notify()
	c.armSession(token)
}

// Subscribe registers fn, invokes it once with the current snapshot, and
// returns the unsubscribe function.
func (c *Coordinator) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	snap := c.snapshotLocked()
	c.mu.Unlock()

	fn(snap)

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// Snapshot returns the current session view.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Login runs the credential exchange. The returned result is meant for
// direct rendering; it never exposes a Go error. When the session changed
// underneath the in-flight call (say, a logout raced it) the stale result
// is dropped and an empty result returned.
func (c *Coordinator) Login(ctx context.Context, in client.LoginInput) LoginResult {
	c.mu.Lock()
	c.loading = true
	c.seq++
	token := c.seq
	c.mu.Unlock()
	c.notify()

	user, err := c.store.Login(ctx, in)

	c.mu.Lock()
	if token != c.seq {
		c.mu.Unlock()
		return LoginResult{}
	}
	c.loading = false
	if err != nil {
		c.state = StateUnauthenticated
		c.user = nil
		c.mu.Unlock()
		c.notify()

		msg := err.Error()
		if errors.Is(err, client.ErrUnavailable) {
			msg = NetworkErrorMessage
		}
		return LoginResult{Success: false, Error: msg}
	}

	c.state = StateAuthenticated
	c.user = user
	c.mu.Unlock()
	c.notify()
	c.armSession(token)

	return LoginResult{Success: true}
}

// Logout signs out. The local session is dropped no matter what the server
// says about the revocation; a customer asking to leave always leaves.
func (c *Coordinator) Logout(ctx context.Context) {
	c.mu.Lock()
	if c.state == StateLoggingOut || (c.state == StateUnauthenticated && !c.loading) {
		c.mu.Unlock()
		return
	}
	// bumping the generation here also cancels any login still in flight
	c.seq++
	c.state = StateLoggingOut
	c.loading = false
	c.warningActive = false
	c.secondsRemaining = 0
	c.mu.Unlock()
	c.notify()
	c.disarmSession()

	if err := c.store.Logout(ctx); err != nil {
		c.logger.Warn(ctx, "logout revocation failed", "error", err.Error())
	}

	c.mu.Lock()
	c.state = StateUnauthenticated
	c.user = nil
	c.mu.Unlock()
	c.notify()
}

// RefreshUser re-fetches the signed-in profile. Safe to call repeatedly;
// it is a no-op outside the authenticated states. Loading is raised for
// the duration of the check so presenters can show it. An authoritative
// rejection from the server drops the session, a transport failure keeps
// the cached profile.
func (c *Coordinator) RefreshUser(ctx context.Context) {
	c.mu.Lock()
	if c.state != StateAuthenticated && c.state != StateWarning {
		c.mu.Unlock()
		return
	}
	token := c.seq
	c.loading = true
	c.mu.Unlock()
	c.notify()

	user, err := c.store.GetCurrentUser(ctx)

	c.mu.Lock()
	// a stale result leaves loading alone; the generation that bumped seq
	// already reset it
	if token != c.seq || (c.state != StateAuthenticated && c.state != StateWarning) {
		c.mu.Unlock()
		return
	}
	c.loading = false
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrNoSession) {
			c.dropSessionLocked(ctx)
			return
		}
		c.mu.Unlock()
		c.notify()
		return
	}
	c.user = user
	c.mu.Unlock()
	c.notify()
}

// NotifyVisible reconciles the session after the terminal regains focus.
// Bursts of visibility events collapse into a single in-flight check.
func (c *Coordinator) NotifyVisible(ctx context.Context) {
	c.mu.Lock()
	if c.state != StateAuthenticated && c.state != StateWarning {
		c.mu.Unlock()
		return
	}
	if c.reconciling {
		c.mu.Unlock()
		return
	}
	c.reconciling = true
	c.mu.Unlock()

	c.RefreshUser(ctx)

	c.mu.Lock()
	c.reconciling = false
	c.mu.Unlock()
}

// Extend dismisses the idle warning and restarts the inactivity budget.
func (c *Coordinator) Extend() {
	c.monitor.ExtendSession()

	c.mu.Lock()
	if c.state != StateWarning {
		c.mu.Unlock()
		return
	}
	c.state = StateAuthenticated
	c.warningActive = false
	c.secondsRemaining = 0
	c.warningEpoch++
	c.mu.Unlock()
	c.notify()
}

// Close tears down the refresh loop and the activity subscription.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.seq++
	c.mu.Unlock()
	c.disarmSession()
}

// --- internals ---

func (c *Coordinator) snapshotLocked() Snapshot {
	return Snapshot{
		State:            c.state,
		User:             c.user,
		Loading:          c.loading,
		WarningActive:    c.warningActive,
		SecondsRemaining: c.secondsRemaining,
	}
}

func (c *Coordinator) notify() {
	c.mu.Lock()
	snap := c.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// armSession starts the silent-refresh loop and hooks into the activity
// monitor, keyed to the generation taken when the sign-in committed.
// Subscribers run before the arm and may sign out from their callback;
// when the generation has moved on, or the state is no longer
// Authenticated, the handles are discarded instead of installed.
func (c *Coordinator) armSession(token uint64) {
	ctx, cancel := context.WithCancel(context.Background())

	unsub := c.monitor.AddListener(activity.Listener{
		OnWarning:  c.onWarning,
		OnTimeout:  c.onTimeout,
		OnActivity: c.onActivity,
	})

	c.mu.Lock()
	if token != c.seq || c.state != StateAuthenticated {
		c.mu.Unlock()
		cancel()
		unsub()
		return
	}
	oldCancel := c.refreshCancel
	oldUnsub := c.unsubActivity
	c.refreshCancel = cancel
	c.unsubActivity = unsub
	c.mu.Unlock()

	if oldCancel != nil {
		oldCancel()
	}
	if oldUnsub != nil {
		oldUnsub()
	}

	c.monitor.ExtendSession()
	go c.runRefreshLoop(ctx)
}

func (c *Coordinator) disarmSession() {
	c.mu.Lock()
	cancel := c.refreshCancel
	unsub := c.unsubActivity
	c.refreshCancel = nil
	c.unsubActivity = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if unsub != nil {
		unsub()
	}
}

// runRefreshLoop rotates the token pair shortly before each access token
// expires. Transport errors are retried on the next tick; an authoritative
// rejection ends the session.
func (c *Coordinator) runRefreshLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.after(c.refreshInterval()):
			err := c.store.RefreshSession(ctx)
			if err == nil {
				continue
			}
			if errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrNoSession) {
				c.mu.Lock()
				if c.state == StateAuthenticated || c.state == StateWarning {
					c.dropSessionLocked(ctx)
				} else {
					c.mu.Unlock()
				}
				return
			}
			c.logger.Warn(ctx, "token refresh failed, will retry", "error", err.Error())
		}
	}
}

func (c *Coordinator) refreshInterval() time.Duration {
	lifetime := c.store.AccessTokenLifetime()
	if lifetime <= 0 {
		return defaultRefreshInterval
	}
	interval := lifetime - c.refreshMargin
	if interval < minRefreshInterval {
		interval = minRefreshInterval
	}
	return interval
}

// dropSessionLocked ends the session locally without a server call. Takes
// c.mu held, releases it, and fires notifications and teardown.
func (c *Coordinator) dropSessionLocked(ctx context.Context) {
	c.seq++
	c.state = StateUnauthenticated
	c.user = nil
	c.loading = false
	c.warningActive = false
	c.secondsRemaining = 0
	c.mu.Unlock()
	c.notify()
	c.disarmSession()
}

func (c *Coordinator) onWarning(seconds int) {
	c.mu.Lock()
	if c.state != StateAuthenticated {
		c.mu.Unlock()
		return
	}
	c.state = StateWarning
	c.warningActive = true
	c.secondsRemaining = seconds
	c.warningEpoch++
	epoch := c.warningEpoch
	c.mu.Unlock()
	c.notify()

	go c.runCountdown(epoch)
}

// runCountdown decrements SecondsRemaining once per second while the
// warning stays active, so subscribers can render a live countdown.
func (c *Coordinator) runCountdown(epoch int) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		if c.state != StateWarning || c.warningEpoch != epoch || c.secondsRemaining <= 0 {
			c.mu.Unlock()
			return
		}
		c.secondsRemaining--
		c.mu.Unlock()
		c.notify()
	}
}

// onTimeout ends the session after the idle budget runs out. The walk
// down mirrors an explicit logout: LoggingOut is published first, then the
// settled Unauthenticated state.
func (c *Coordinator) onTimeout() {
	c.mu.Lock()
	if c.state != StateAuthenticated && c.state != StateWarning {
		c.mu.Unlock()
		return
	}
	c.seq++
	c.state = StateLoggingOut
	c.loading = false
	c.warningActive = false
	c.secondsRemaining = 0
	c.mu.Unlock()
	c.notify()
	c.disarmSession()

	c.mu.Lock()
	c.state = StateUnauthenticated
	c.user = nil
	c.mu.Unlock()
	c.notify()

	// best-effort revocation; the local session is already gone
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), revokeTimeout)
		defer cancel()
		if err := c.store.Logout(ctx); err != nil {
			c.logger.Warn(ctx, "idle-timeout revocation failed", "error", err.Error())
		}
	}()
}

// onActivity fires when input arrives during the warning. The session is
// revalidated against the server: still valid means the warning clears and
// the budget restarts, rejected means the session ends.
func (c *Coordinator) onActivity() {
	c.mu.Lock()
	if c.state != StateWarning || c.reconciling {
		c.mu.Unlock()
		return
	}
	c.reconciling = true
	token := c.seq
	c.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
		defer cancel()

		user, err := c.store.GetCurrentUser(ctx)

		c.mu.Lock()
		c.reconciling = false
		if token != c.seq || c.state != StateWarning {
			c.mu.Unlock()
			return
		}
		if err != nil {
			if errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrNoSession) {
				c.dropSessionLocked(ctx)
				return
			}
			c.mu.Unlock()
			return
		}
		c.user = user
		c.state = StateAuthenticated
		c.warningActive = false
		c.secondsRemaining = 0
		c.warningEpoch++
		c.mu.Unlock()
		c.notify()
		c.monitor.ExtendSession()
	}()
}
