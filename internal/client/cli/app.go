package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/northlink/selfcare/internal/client/activity"
	"github.com/northlink/selfcare/internal/client/client"
	"github.com/northlink/selfcare/internal/client/config"
	"github.com/northlink/selfcare/internal/client/session"
	"github.com/northlink/selfcare/internal/logging"
)

type App struct {
	config      *config.Config
	store       client.Client
	repos       *client.Repositories
	coordinator *session.Coordinator
	monitor     *activity.Monitor
	reader      *bufio.Reader
	unsubscribe func()

	mu      sync.Mutex
	current session.Snapshot
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	keeper := client.NewMetadataTokenKeeper(repos.Metadata)

	store, err := client.NewSelfcareClient(ctx, c.ServerEndpointAddr, keeper)
	if err != nil {
		return nil, err
	}

	logger := logging.NewText(os.Stderr, slog.LevelWarn)

	monitor := activity.NewMonitor(c.IdleTimeout, c.WarningDuration)
	coordinator := session.NewCoordinator(store, monitor, logger, c.RefreshMargin)

	app := &App{
		config:      c,
		store:       store,
		repos:       repos,
		coordinator: coordinator,
		monitor:     monitor,
		reader:      bufio.NewReader(os.Stdin),
	}
	app.unsubscribe = coordinator.Subscribe(app.onSnapshot)

	return app, nil
}

// onSnapshot caches the latest session view and narrates the transitions
// the customer needs to see.
func (a *App) onSnapshot(s session.Snapshot) {
	a.mu.Lock()
	prev := a.current
	a.current = s
	a.mu.Unlock()

	switch {
	case s.WarningActive && !prev.WarningActive:
		printlnFn(fmt.Sprintf("You will be signed out in %d seconds due to inactivity. Type 'extend' to stay signed in.", s.SecondsRemaining))
	case prev.State == session.StateWarning && s.State == session.StateLoggingOut:
		printlnFn("You were signed out due to inactivity.")
	}
}

func (a *App) snapshot() session.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

func (a *App) isLoggedIn() bool {
	s := a.snapshot()
	return s.State == session.StateAuthenticated || s.State == session.StateWarning
}

func (a *App) recordActivity() {
	a.monitor.RecordActivity()
}

func (a *App) status() string {
	s := a.snapshot()
	switch s.State {
	case session.StateChecking:
		return "(checking)"
	case session.StateWarning:
		return fmt.Sprintf("(%s, expiring)", s.User.Name)
	case session.StateAuthenticated:
		return fmt.Sprintf("(%s)", s.User.Name)
	default:
		return ""
	}
}

func (a *App) Run(ctx context.Context) {

	ctx, cancel := context.WithCancel(ctx)

	go a.monitor.Run(ctx)
	go a.watchResume(ctx)

	printlnFn("Welcome to the Northlink selfcare portal (type 'help' for commands)")

	pctx, pcancel := context.WithTimeout(ctx, 5*time.Second)
	if err := a.store.Ping(pctx); err != nil {
		printlnFn("Northlink is unreachable right now; cached data may be shown.")
	}
	pcancel()

	a.coordinator.Start(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)

	cancel()
	a.unsubscribe()
	a.coordinator.Close()
	a.monitor.Close()
	_ = a.store.Close()
	_ = a.repos.DB.Close()
}
