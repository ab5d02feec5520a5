package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/Dicklesworthstone/sysdash/internal/config"
	"github.com/Dicklesworthstone/sysdash/internal/dashboard"
	"github.com/Dicklesworthstone/sysdash/internal/logging"
	"github.com/Dicklesworthstone/sysdash/internal/sampler"
)

// Set via ldflags at build time:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123" ./cmd/sysdash
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sysdash:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	interactive := cfg.Interactive(term.IsTerminal(int(os.Stdout.Fd())))

	log, flush, err := logging.New(cfg.Debug, interactive)
	if err != nil {
		return err
	}
	defer flush()
	log.V(1).Info("starting", "version", version, "commit", commit, "interactive", interactive)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := sampler.New()
	if !interactive {
		return dashboard.RunPlain(ctx, os.Stdout, provider, sampler.NewCollector(log), cfg.Interval)
	}
	return dashboard.NewLoop(cfg, dashboard.NewTeaSurface(), provider, log).Run(ctx)
}
