package config

import (
	"flag"
	"os"
	"time"

	"github.com/northlink/selfcare/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the portal server
//	-d string   path of the local sqlite cache
//	-t int      idle timeout in seconds
//	-w int      warning countdown length in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local sqlite cache")
	idleTimeout := fs.Int("t", int(cfg.IdleTimeout.Seconds()), "idle timeout (in seconds)")
	warning := fs.Int("w", int(cfg.WarningDuration.Seconds()), "warning countdown length (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.IdleTimeout = time.Duration(*idleTimeout) * time.Second
	cfg.WarningDuration = time.Duration(*warning) * time.Second
}
