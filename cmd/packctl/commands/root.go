// Package commands implements packctl, the operator CLI for the pack contract.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/spf13/cobra"

	"github.com/bulbacards/packmint/internal/bootstrap"
	"github.com/bulbacards/packmint/internal/chain"
	"github.com/bulbacards/packmint/internal/config"
	"github.com/bulbacards/packmint/internal/logger"
	"github.com/bulbacards/packmint/internal/mint"
)

// PassphraseEnv names the variable holding the keyfile passphrase.
const PassphraseEnv = "PACKCTL_PASSPHRASE"

var (
	chainCfg *config.ChainConfig

	jsonOut  bool
	keyfile  string
	timeout  time.Duration
	logLevel string
)

// connect dials the chain and returns the mint service plus its closer.
// Tests replace it with a mock.
var connect = func(ctx context.Context, cfg *config.ChainConfig, signer *bind.TransactOpts) (mint.Service, func(), error) {
	svcs, err := bootstrap.BuildServices(ctx, cfg, signer)
	if err != nil {
		return nil, nil, err
	}
	return svcs.Mint, svcs.Close, nil
}

// Execute runs packctl with os.Args.
func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		slog.Error("packctl failed", "error", err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "packctl",
		Short:         "Quote, inspect, mint and open packs from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.InitLoggerWithWriter(
				logger.NewConfig(logLevel, logger.LogFormatText, "packctl", "", "", false),
				cmd.ErrOrStderr(),
			)

			cfg, err := config.LoadChain()
			if err != nil {
				return err
			}
			chainCfg = cfg
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "print JSON instead of text")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline for chain calls")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(quoteCmd(), tierCmd(), packsCmd(), cardsCmd(), statsCmd(), mintCmd(), openCmd())
	return root
}

// withService runs fn against a connected read-only service.
func withService(cmd *cobra.Command, fn func(ctx context.Context, svc mint.Service, out io.Writer) error) error {
	return withSigner(cmd, nil, fn)
}

func withSigner(cmd *cobra.Command, signer *bind.TransactOpts, fn func(ctx context.Context, svc mint.Service, out io.Writer) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	svc, closeFn, err := connect(ctx, chainCfg, signer)
	if err != nil {
		return err
	}
	defer closeFn()

	return fn(ctx, svc, cmd.OutOrStdout())
}

// loadSigner unlocks --keyfile with the passphrase from the environment.
func loadSigner() (*bind.TransactOpts, error) {
	if keyfile == "" {
		return nil, fmt.Errorf("--keyfile is required")
	}
	pass, ok := os.LookupEnv(PassphraseEnv)
	if !ok {
		return nil, fmt.Errorf("%s must be set to unlock the keyfile", PassphraseEnv)
	}
	return chain.NewKeystoreTransactor(keyfile, pass, big.NewInt(chainCfg.ChainID))
}
