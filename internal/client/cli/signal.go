package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// watchResume reconciles the session whenever the process is resumed in
// the foreground (SIGCONT), the terminal analogue of a browser tab
// becoming visible again after a suspend.
func (a *App) watchResume(ctx context.Context) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGCONT)
	defer signal.Stop(sigs)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sigs:
			rctx, cancel := context.WithTimeout(ctx, 10*time.Second)
			a.coordinator.NotifyVisible(rctx)
			cancel()
		}
	}
}
