package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is a component stopped during shutdown, such as *server.Server.
type Stopper interface {
	Stop(ctx context.Context) error
}

// GracefulShutdown stops the HTTP server first so no new request reaches
// the chain, then closes the chain connection. Errors are logged, never
// returned, so every step runs.
func GracefulShutdown(ctx context.Context, srv Stopper, svcs *Services) {
	slog.Info(LogMsgShuttingDownServer)

	if srv != nil {
		if err := srv.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if svcs != nil {
		svcs.Close()
	}

	slog.Info(LogMsgServerStopped)
}
