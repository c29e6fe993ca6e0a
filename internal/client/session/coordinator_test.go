package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northlink/selfcare/internal/client/activity"
	"github.com/northlink/selfcare/internal/client/client"
	"github.com/northlink/selfcare/internal/client/models"
	"github.com/northlink/selfcare/internal/logging"
)

// ---- fakes ----

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeStore struct {
	mu sync.Mutex

	loginUser *models.User
	loginErr  error
	loginGate chan struct{} // when set, Login blocks until closed

	currentUser  *models.User
	currentErr   error
	currentGate  chan struct{}
	currentCalls int

	logoutErr   error
	logoutCalls int

	refreshErr   error
	refreshCalls int

	lifetime time.Duration
}

func (f *fakeStore) Login(ctx context.Context, in client.LoginInput) (*models.User, error) {
	f.mu.Lock()
	gate := f.loginGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loginUser, f.loginErr
}

func (f *fakeStore) Logout(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeStore) GetCurrentUser(ctx context.Context) (*models.User, error) {
	f.mu.Lock()
	f.currentCalls++
	gate := f.currentGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentUser, f.currentErr
}

func (f *fakeStore) RefreshSession(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshCalls++
	return f.refreshErr
}

func (f *fakeStore) AccessTokenLifetime() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lifetime
}

func (f *fakeStore) Ping(ctx context.Context) error { return nil }
func (f *fakeStore) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {
	return nil, nil
}
func (f *fakeStore) GetInvoiceDownloadURL(ctx context.Context, invoiceID string) (string, error) {
	return "", nil
}
func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) numLogouts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logoutCalls
}

func (f *fakeStore) numRefreshes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshCalls
}

func (f *fakeStore) numCurrentCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentCalls
}

func (f *fakeStore) setCurrent(u *models.User, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.currentUser = u
	f.currentErr = err
}

type fakeMonitor struct {
	mu          sync.Mutex
	listeners   map[int]activity.Listener
	nextID      int
	extendCalls int
}

func newFakeMonitor() *fakeMonitor {
	return &fakeMonitor{listeners: map[int]activity.Listener{}}
}

func (m *fakeMonitor) AddListener(l activity.Listener) func() {
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

func (m *fakeMonitor) ExtendSession() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.extendCalls++
}

func (m *fakeMonitor) snapshot() []activity.Listener {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]activity.Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		out = append(out, l)
	}
	return out
}

func (m *fakeMonitor) fireWarning(seconds int) {
	for _, l := range m.snapshot() {
		if l.OnWarning != nil {
			l.OnWarning(seconds)
		}
	}
}

func (m *fakeMonitor) fireTimeout() {
	for _, l := range m.snapshot() {
		if l.OnTimeout != nil {
			l.OnTimeout()
		}
	}
}

func (m *fakeMonitor) fireActivity() {
	for _, l := range m.snapshot() {
		if l.OnActivity != nil {
			l.OnActivity()
		}
	}
}

func (m *fakeMonitor) listenerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listeners)
}

func (m *fakeMonitor) extends() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.extendCalls
}

// recorder collects every snapshot delivered to a subscriber.
type recorder struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (r *recorder) record(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *recorder) all() []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Snapshot, len(r.snaps))
	copy(out, r.snaps)
	return out
}

func alice() *models.User {
	return &models.User{ID: "u1", Name: "Alice", Email: "a@b.com", AccountNumber: "ACC-1"}
}

func newTestCoordinator(store *fakeStore, monitor *fakeMonitor) *Coordinator {
	return NewCoordinator(store, monitor, nopLogger{}, time.Minute)
}

func signIn(t *testing.T, c *Coordinator, store *fakeStore) {
	t.Helper()
	store.mu.Lock()
	store.loginUser = alice()
	store.currentUser = alice()
	store.mu.Unlock()
	result := c.Login(context.Background(), client.LoginInput{Identifier: "a@b.com", Password: "pass"})
	require.True(t, result.Success)
	require.Equal(t, StateAuthenticated, c.Snapshot().State)
}

// ---- tests ----

func TestInitialStateIsChecking(t *testing.T) {
	c := newTestCoordinator(&fakeStore{}, newFakeMonitor())
	require.Equal(t, StateChecking, c.Snapshot().State)
}

func TestStart_NoStoredSession(t *testing.T) {
	store := &fakeStore{currentErr: client.ErrNoSession}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)

	c.Start(context.Background())

	snap := c.Snapshot()
	require.Equal(t, StateUnauthenticated, snap.State)
	require.Nil(t, snap.User)
	require.Zero(t, monitor.listenerCount())
}

func TestStart_ResumesStoredSession(t *testing.T) {
	store := &fakeStore{currentUser: alice()}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)
	defer c.Close()

	c.Start(context.Background())

	snap := c.Snapshot()
	require.Equal(t, StateAuthenticated, snap.State)
	require.Equal(t, "u1", snap.User.ID)
	require.Equal(t, 1, monitor.listenerCount())
	require.Equal(t, 1, monitor.extends())
}

func TestLogin_Success(t *testing.T) {
	store := &fakeStore{loginUser: alice()}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)
	defer c.Close()
	c.mu.Lock()
	c.state = StateUnauthenticated
	c.mu.Unlock()

	rec := &recorder{}
	c.Subscribe(rec.record)

	result := c.Login(context.Background(), client.LoginInput{Identifier: "a@b.com", Password: "pass"})

	require.True(t, result.Success)
	require.Empty(t, result.Error)

	snap := c.Snapshot()
	require.Equal(t, StateAuthenticated, snap.State)
	require.Equal(t, "u1", snap.User.ID)
	require.False(t, snap.Loading)
	require.Equal(t, 1, monitor.listenerCount())

	// loading was observable while the call was in flight
	var sawLoading bool
	for _, s := range rec.all() {
		if s.Loading {
			sawLoading = true
		}
	}
	require.True(t, sawLoading)
}

func TestLogin_Failure_VerbatimServerMessage(t *testing.T) {
	store := &fakeStore{loginErr: errors.New("Invalid password")}
	c := newTestCoordinator(store, newFakeMonitor())
	c.mu.Lock()
	c.state = StateUnauthenticated
	c.mu.Unlock()

	result := c.Login(context.Background(), client.LoginInput{Identifier: "a@b.com", Password: "bad"})

	require.False(t, result.Success)
	require.Equal(t, "Invalid password", result.Error)
	require.Equal(t, StateUnauthenticated, c.Snapshot().State)
	require.False(t, c.Snapshot().Loading)
}

func TestLogin_Failure_NetworkFallbackMessage(t *testing.T) {
	store := &fakeStore{loginErr: client.ErrUnavailable}
	c := newTestCoordinator(store, newFakeMonitor())
	c.mu.Lock()
	c.state = StateUnauthenticated
	c.mu.Unlock()

	result := c.Login(context.Background(), client.LoginInput{Identifier: "a@b.com", Password: "pass"})

	require.False(t, result.Success)
	require.Equal(t, NetworkErrorMessage, result.Error)
}

func TestLogin_StaleResultAfterLogoutIsDropped(t *testing.T) {
	gate := make(chan struct{})
	store := &fakeStore{loginUser: alice(), loginGate: gate}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)
	c.mu.Lock()
	c.state = StateUnauthenticated
	c.mu.Unlock()

	results := make(chan LoginResult, 1)
	go func() {
		results <- c.Login(context.Background(), client.LoginInput{Identifier: "a@b.com", Password: "pass"})
	}()

	// wait until the login is in flight, then sign out underneath it
	require.Eventually(t, func() bool { return c.Snapshot().Loading }, time.Second, time.Millisecond)
	c.Logout(context.Background())
	close(gate)

	result := <-results
	require.False(t, result.Success)
	require.Empty(t, result.Error)

	snap := c.Snapshot()
	require.Equal(t, StateUnauthenticated, snap.State)
	require.Nil(t, snap.User, "a stale login must not resurrect the session")
	require.Zero(t, monitor.listenerCount())
}

func TestLogin_LogoutFromSubscriberCallback_StaysSignedOut(t *testing.T) {
	store := &fakeStore{loginUser: alice()}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)
	c.mu.Lock()
	c.state = StateUnauthenticated
	c.mu.Unlock()

	// the subscriber signs out the moment the login commits, before the
	// refresh loop and activity listener are armed
	var once sync.Once
	c.Subscribe(func(s Snapshot) {
		if s.State == StateAuthenticated {
			once.Do(func() { c.Logout(context.Background()) })
		}
	})

	result := c.Login(context.Background(), client.LoginInput{Identifier: "a@b.com", Password: "pass"})
	require.True(t, result.Success)

	snap := c.Snapshot()
	require.Equal(t, StateUnauthenticated, snap.State)
	require.Nil(t, snap.User)
	require.Zero(t, monitor.listenerCount(), "the activity listener must not outlive the logout")
	require.Equal(t, 1, store.numLogouts())

	c.mu.Lock()
	armed := c.refreshCancel != nil || c.unsubActivity != nil
	c.mu.Unlock()
	require.False(t, armed, "the refresh loop must not outlive the logout")
}

func TestInterleavedLogins_FirstResultDropped(t *testing.T) {
	gate := make(chan struct{})
	store := &fakeStore{loginUser: alice(), loginGate: gate}
	c := newTestCoordinator(store, newFakeMonitor())
	defer c.Close()
	c.mu.Lock()
	c.state = StateUnauthenticated
	c.mu.Unlock()

	first := make(chan LoginResult, 1)
	go func() {
		first <- c.Login(context.Background(), client.LoginInput{Identifier: "a@b.com", Password: "pass"})
	}()
	require.Eventually(t, func() bool { return c.Snapshot().Loading }, time.Second, time.Millisecond)

	// the retry wins; the first attempt resolves afterwards and is stale
	second := make(chan LoginResult, 1)
	go func() {
		second <- c.Login(context.Background(), client.LoginInput{Identifier: "a@b.com", Password: "pass"})
	}()

	close(gate)

	secondResult := <-second
	firstResult := <-first

	require.True(t, secondResult.Success || !firstResult.Success,
		"at most one attempt may win")
	require.Equal(t, StateAuthenticated, c.Snapshot().State)
}

func TestLogout_ClearsSessionEvenWhenRevocationFails(t *testing.T) {
	store := &fakeStore{logoutErr: client.ErrUnavailable}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)
	signIn(t, c, store)

	rec := &recorder{}
	c.Subscribe(rec.record)

	c.Logout(context.Background())

	snap := c.Snapshot()
	require.Equal(t, StateUnauthenticated, snap.State)
	require.Nil(t, snap.User)
	require.Zero(t, monitor.listenerCount())
	require.Equal(t, 1, store.numLogouts())

	// the logging-out state was visible on the way down
	var sawLoggingOut bool
	for _, s := range rec.all() {
		if s.State == StateLoggingOut {
			sawLoggingOut = true
		}
	}
	require.True(t, sawLoggingOut)
}

func TestLogout_WhenAlreadyOut_IsNoop(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(store, newFakeMonitor())
	c.mu.Lock()
	c.state = StateUnauthenticated
	c.mu.Unlock()

	c.Logout(context.Background())
	require.Zero(t, store.numLogouts())
	require.Equal(t, StateUnauthenticated, c.Snapshot().State)
}

func TestWarning_TransitionsAndCountdownSnapshot(t *testing.T) {
	store := &fakeStore{}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)
	defer c.Close()
	signIn(t, c, store)

	monitor.fireWarning(30)

	snap := c.Snapshot()
	require.Equal(t, StateWarning, snap.State)
	require.True(t, snap.WarningActive)
	require.Equal(t, 30, snap.SecondsRemaining)
	require.Equal(t, "u1", snap.User.ID, "the profile stays visible during the warning")
}

func TestWarning_WhileNotAuthenticated_Ignored(t *testing.T) {
	store := &fakeStore{}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)
	signIn(t, c, store)
	c.Logout(context.Background())

	monitor.fireWarning(30)
	require.Equal(t, StateUnauthenticated, c.Snapshot().State)
}

func TestExtend_ReturnsToAuthenticated(t *testing.T) {
	store := &fakeStore{}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)
	defer c.Close()
	signIn(t, c, store)

	monitor.fireWarning(30)
	extendsBefore := monitor.extends()

	c.Extend()

	snap := c.Snapshot()
	require.Equal(t, StateAuthenticated, snap.State)
	require.False(t, snap.WarningActive)
	require.Zero(t, snap.SecondsRemaining)
	require.Equal(t, "u1", snap.User.ID)
	require.Equal(t, extendsBefore+1, monitor.extends())
}

func TestTimeout_SignsOutAndRevokes(t *testing.T) {
	store := &fakeStore{}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)
	signIn(t, c, store)

	rec := &recorder{}
	c.Subscribe(rec.record)

	monitor.fireWarning(30)
	monitor.fireTimeout()

	snap := c.Snapshot()
	require.Equal(t, StateUnauthenticated, snap.State)
	require.Nil(t, snap.User)
	require.False(t, snap.WarningActive)
	require.Zero(t, monitor.listenerCount())

	// the sign-out walks through the same observable states as an
	// explicit logout
	var sawLoggingOut bool
	for _, s := range rec.all() {
		if s.State == StateLoggingOut {
			sawLoggingOut = true
		}
	}
	require.True(t, sawLoggingOut)

	// revocation runs in the background
	require.Eventually(t, func() bool { return store.numLogouts() == 1 }, time.Second, time.Millisecond)
}

func TestActivityDuringWarning_SessionStillValid_Extends(t *testing.T) {
	store := &fakeStore{currentUser: alice()}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)
	defer c.Close()
	signIn(t, c, store)

	monitor.fireWarning(30)
	monitor.fireActivity()

	require.Eventually(t, func() bool {
		return c.Snapshot().State == StateAuthenticated
	}, time.Second, time.Millisecond)

	snap := c.Snapshot()
	require.False(t, snap.WarningActive)
	require.Equal(t, "u1", snap.User.ID)
}

func TestActivityDuringWarning_SessionRejected_SignsOut(t *testing.T) {
	store := &fakeStore{}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)
	signIn(t, c, store)
	store.setCurrent(nil, client.ErrUnauthorized)

	monitor.fireWarning(30)
	monitor.fireActivity()

	require.Eventually(t, func() bool {
		return c.Snapshot().State == StateUnauthenticated
	}, time.Second, time.Millisecond)
	require.Nil(t, c.Snapshot().User)
}

func TestRefreshUser_UpdatesProfile(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(store, newFakeMonitor())
	defer c.Close()
	signIn(t, c, store)

	updated := alice()
	updated.Name = "Alice Smith"
	store.setCurrent(updated, nil)

	c.RefreshUser(context.Background())
	require.Equal(t, "Alice Smith", c.Snapshot().User.Name)
}

func TestRefreshUser_LoadingVisibleWhileChecking(t *testing.T) {
	gate := make(chan struct{})
	store := &fakeStore{currentUser: alice(), currentGate: gate}
	c := newTestCoordinator(store, newFakeMonitor())
	defer c.Close()
	signIn(t, c, store)

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.RefreshUser(context.Background())
	}()

	require.Eventually(t, func() bool { return c.Snapshot().Loading }, time.Second, time.Millisecond)

	close(gate)
	<-done

	snap := c.Snapshot()
	require.False(t, snap.Loading)
	require.Equal(t, StateAuthenticated, snap.State)
}

func TestRefreshUser_TransportErrorKeepsProfile(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(store, newFakeMonitor())
	defer c.Close()
	signIn(t, c, store)
	store.setCurrent(nil, client.ErrUnavailable)

	c.RefreshUser(context.Background())

	snap := c.Snapshot()
	require.Equal(t, StateAuthenticated, snap.State)
	require.Equal(t, "u1", snap.User.ID)
}

func TestRefreshUser_RejectionDropsSession(t *testing.T) {
	store := &fakeStore{}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)
	signIn(t, c, store)
	store.setCurrent(nil, client.ErrUnauthorized)

	c.RefreshUser(context.Background())

	require.Equal(t, StateUnauthenticated, c.Snapshot().State)
	require.Nil(t, c.Snapshot().User)
	require.Zero(t, monitor.listenerCount())
}

func TestRefreshUser_WhenSignedOut_IsNoop(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(store, newFakeMonitor())
	c.mu.Lock()
	c.state = StateUnauthenticated
	c.mu.Unlock()

	c.RefreshUser(context.Background())
	require.Zero(t, store.numCurrentCalls())
}

func TestNotifyVisible_BurstCollapsesToOneCheck(t *testing.T) {
	gate := make(chan struct{})
	store := &fakeStore{currentUser: alice(), currentGate: gate}
	c := newTestCoordinator(store, newFakeMonitor())
	defer c.Close()
	signIn(t, c, store)

	callsBefore := store.numCurrentCalls()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.NotifyVisible(context.Background())
	}()

	// wait until the first check is in flight, then let the rest of the
	// burst land on the in-flight guard
	require.Eventually(t, func() bool {
		return store.numCurrentCalls() == callsBefore+1
	}, time.Second, time.Millisecond)

	for i := 0; i < 4; i++ {
		c.NotifyVisible(context.Background())
	}

	close(gate)
	<-done

	require.Equal(t, callsBefore+1, store.numCurrentCalls(),
		"a visibility burst must reconcile exactly once")
	require.Equal(t, StateAuthenticated, c.Snapshot().State)
}

func TestNotifyVisible_RejectionSignsOut(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(store, newFakeMonitor())
	signIn(t, c, store)
	store.setCurrent(nil, client.ErrNoSession)

	c.NotifyVisible(context.Background())

	require.Equal(t, StateUnauthenticated, c.Snapshot().State)
}

func TestNotifyVisible_WhenSignedOut_IsNoop(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(store, newFakeMonitor())
	c.mu.Lock()
	c.state = StateUnauthenticated
	c.mu.Unlock()

	c.NotifyVisible(context.Background())
	require.Zero(t, store.numCurrentCalls())
}

func TestRefreshInterval_DerivedFromReportedLifetime(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(store, newFakeMonitor())

	// nothing reported yet: conservative default
	assert.Equal(t, defaultRefreshInterval, c.refreshInterval())

	store.lifetime = 15 * time.Minute
	assert.Equal(t, 14*time.Minute, c.refreshInterval())

	store.lifetime = 5 * time.Minute
	assert.Equal(t, 4*time.Minute, c.refreshInterval())

	// margin would leave almost nothing: floor applies
	store.lifetime = time.Minute
	assert.Equal(t, minRefreshInterval, c.refreshInterval())
}

func TestRefreshLoop_TransientFailureRetriesNextTick(t *testing.T) {
	tick := make(chan time.Time)
	store := &fakeStore{refreshErr: client.ErrUnavailable}
	monitor := newFakeMonitor()
	c := newCoordinator(store, monitor, nopLogger{}, time.Minute,
		func(time.Duration) <-chan time.Time { return tick })
	defer c.Close()
	signIn(t, c, store)

	tick <- time.Time{}
	require.Eventually(t, func() bool { return store.numRefreshes() == 1 }, time.Second, time.Millisecond)

	// a transport failure keeps the session and the loop alive
	snap := c.Snapshot()
	require.Equal(t, StateAuthenticated, snap.State)
	require.Equal(t, "u1", snap.User.ID)

	tick <- time.Time{}
	require.Eventually(t, func() bool { return store.numRefreshes() == 2 }, time.Second, time.Millisecond)
	require.Equal(t, StateAuthenticated, c.Snapshot().State)
}

func TestRefreshLoop_RejectionDropsSession(t *testing.T) {
	tick := make(chan time.Time)
	store := &fakeStore{refreshErr: client.ErrUnauthorized}
	monitor := newFakeMonitor()
	c := newCoordinator(store, monitor, nopLogger{}, time.Minute,
		func(time.Duration) <-chan time.Time { return tick })
	signIn(t, c, store)

	tick <- time.Time{}

	require.Eventually(t, func() bool {
		return c.Snapshot().State == StateUnauthenticated
	}, time.Second, time.Millisecond)
	require.Nil(t, c.Snapshot().User)
	require.Zero(t, monitor.listenerCount())
}

func TestRefreshLoop_ArmedOnlyWhileAuthenticated(t *testing.T) {
	store := &fakeStore{}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)

	c.mu.Lock()
	armedBefore := c.refreshCancel != nil
	c.mu.Unlock()
	require.False(t, armedBefore)

	signIn(t, c, store)

	c.mu.Lock()
	armed := c.refreshCancel != nil && c.unsubActivity != nil
	c.mu.Unlock()
	require.True(t, armed)
	require.Equal(t, 1, monitor.listenerCount())

	c.Logout(context.Background())

	c.mu.Lock()
	disarmed := c.refreshCancel == nil && c.unsubActivity == nil
	c.mu.Unlock()
	require.True(t, disarmed)
	require.Zero(t, monitor.listenerCount())
}

func TestSubscribe_DeliversCurrentSnapshotAndUnsubscribes(t *testing.T) {
	store := &fakeStore{}
	c := newTestCoordinator(store, newFakeMonitor())

	rec := &recorder{}
	unsubscribe := c.Subscribe(rec.record)

	require.Len(t, rec.all(), 1)
	require.Equal(t, StateChecking, rec.all()[0].State)

	unsubscribe()
	c.mu.Lock()
	c.state = StateUnauthenticated
	c.mu.Unlock()
	c.notify()

	require.Len(t, rec.all(), 1, "unsubscribed observers receive nothing")
}

func TestClose_StopsSessionMachinery(t *testing.T) {
	store := &fakeStore{}
	monitor := newFakeMonitor()
	c := newTestCoordinator(store, monitor)
	signIn(t, c, store)

	c.Close()
	require.Zero(t, monitor.listenerCount())
}
