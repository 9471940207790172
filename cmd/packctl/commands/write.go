package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/mint"
)

// mint <amount>: sign and send mintPacks from --keyfile's account.
func mintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint <amount>",
		Short: "Mint packs from the keyfile account and wait for the receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			signer, err := loadSigner()
			if err != nil {
				return err
			}
			return withSigner(cmd, signer, func(ctx context.Context, svc mint.Service, out io.Writer) error {
				q, receipt, err := svc.Mint(ctx, amount)
				if err != nil {
					return err
				}
				if jsonOut {
					return printJSON(out, struct {
						Quote   quoteJSON        `json:"quote"`
						Receipt domain.TxReceipt `json:"receipt"`
					}{quoteView(q), receipt})
				}
				printQuote(out, q)
				printReceipt(out, receipt)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&keyfile, "keyfile", "", "encrypted JSON keystore file (passphrase in "+PassphraseEnv+")")
	_ = cmd.MarkFlagRequired("keyfile")
	return cmd
}

// open <pack-id>...: burn packs for cards, then list the cards now held.
func openCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <pack-id>...",
		Short: "Open packs from the keyfile account and list the resulting cards",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parsePackIDs(args)
			if err != nil {
				return err
			}
			signer, err := loadSigner()
			if err != nil {
				return err
			}
			return withSigner(cmd, signer, func(ctx context.Context, svc mint.Service, out io.Writer) error {
				receipt, err := svc.Open(ctx, ids)
				if err != nil {
					return err
				}

				cards, err := svc.Cards(ctx, signer.From.Hex())
				if err != nil {
					return fmt.Errorf("packs opened in %s but card rescan failed: %w", receipt.Hash, err)
				}
				if cards == nil {
					cards = []domain.Token{}
				}

				if jsonOut {
					return printJSON(out, struct {
						Receipt domain.TxReceipt `json:"receipt"`
						Cards   []domain.Token   `json:"cards"`
					}{receipt, cards})
				}
				printReceipt(out, receipt)
				fmt.Fprintln(out, "cards now held:")
				printTokens(out, cards)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&keyfile, "keyfile", "", "encrypted JSON keystore file (passphrase in "+PassphraseEnv+")")
	_ = cmd.MarkFlagRequired("keyfile")
	return cmd
}

func parsePackIDs(args []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid pack id %q: %w", a, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printReceipt(out io.Writer, r domain.TxReceipt) {
	fmt.Fprintf(out, "tx:          %s\n", r.Hash)
	fmt.Fprintf(out, "block:       %d\n", r.BlockNumber)
	fmt.Fprintf(out, "gas used:    %d\n", r.GasUsed)
}
