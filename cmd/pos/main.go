package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sangkips/lanchonete-pos/internal/client"
	"github.com/sangkips/lanchonete-pos/internal/config"
	"github.com/sangkips/lanchonete-pos/internal/pos"
	"github.com/sangkips/lanchonete-pos/internal/terminal"
	"github.com/sangkips/lanchonete-pos/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.App.Env, cfg.App.Debug)
	// Keep log lines out of the terminal UI
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := client.New(cfg.Client.APIURL, &http.Client{Timeout: cfg.Client.Timeout}, log)

	lines := terminal.NewLineReader(os.Stdin, os.Stdout)
	app := pos.NewApp(api, terminal.NewConfirmer(lines), terminal.NewRenderer(os.Stdout, cfg.Client.Locale), pos.Options{
		RecentLimit: cfg.Client.RecentLimit,
		ToastTTL:    cfg.Client.ToastTimeout,
		Location:    cfg.App.Location(),
		Log:         log,
	})

	log.WithField("api", cfg.Client.APIURL).Debug("Starting point of sale")
	if err := terminal.NewShell(app, lines, os.Stdout).Run(ctx); err != nil && ctx.Err() == nil {
		log.WithError(err).Error("Point of sale stopped")
		os.Exit(1)
	}
}
