package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/MakeServer_Go/internal/server"
)

// Stopper is a background component that stops synchronously
type Stopper interface {
	Stop()
}

// Drainer finishes queued work, giving up when ctx ends
type Drainer interface {
	Drain(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler Stopper
	Pool      Drainer
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests, finish in-flight ones)
// 2. Scheduler (no new sweeps are enqueued)
// 3. Worker pool (deliver queued alerts until ctx ends)
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		components.Scheduler.Stop()
	}

	if components.Pool != nil {
		slog.Info(LogMsgDrainingWorkers)
		if err := components.Pool.Drain(ctx); err != nil {
			slog.Warn(LogMsgServerForcedShutdown, "component", "worker_pool", "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
