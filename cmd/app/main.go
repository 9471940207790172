package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/bulbacards/packmint/docs"
	"github.com/bulbacards/packmint/internal/bootstrap"
	"github.com/bulbacards/packmint/internal/config"
	"github.com/bulbacards/packmint/internal/handler"
	"github.com/bulbacards/packmint/internal/server"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 15 * time.Second
)

// @title packmint API
// @version 1.0
// @description Pack minting, opening and collection reads for the PulseChain card collection.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	_ = godotenv.Load()

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)
	if cfg.Version != "" {
		handler.Version = cfg.Version
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	svcs, err := bootstrap.BuildServices(startCtx, &cfg.Chain, nil)
	cancel()
	if err != nil {
		slog.Error("Failed to initialize chain services", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Chain:          svcs.Chain,
		Mint:           svcs.Mint,
		ClientConfig: handler.NewClientConfig(
			cfg.Chain.ChainID,
			svcs.Contract.Address().Hex(),
			cfg.Chain.WalletConnectProjectID,
		),
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	bootstrap.GracefulShutdown(ctx, srv, svcs)
}
