package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/janisto/vmlx-responder/internal/platform/config"
	applog "github.com/janisto/vmlx-responder/internal/platform/logging"
	"github.com/janisto/vmlx-responder/internal/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	code := run(context.Background())
	_ = applog.Sync()
	os.Exit(code)
}

func run(ctx context.Context) int {
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(ctx, "config load failed", err)
		return 1
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		applog.LogError(ctx, "invalid log level", err, zap.String("level", cfg.LogLevel))
		return 1
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := server.Listen(cfg.Addr())
	if err != nil {
		applog.LogError(ctx, "listen failed", err, zap.String("addr", cfg.Addr()))
		return 1
	}
	srv := server.New(server.NewRouter(cfg, Version))

	applog.LogInfo(ctx, "server listening", zap.String("addr", ln.Addr().String()), zap.String("version", Version))
	if err := server.Run(ctx, srv, ln); err != nil {
		applog.LogError(ctx, "server error", err)
		return 1
	}
	applog.LogInfo(ctx, "server exited")
	return 0
}
