package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/mint"
	"github.com/bulbacards/packmint/internal/pricing"
)

// quote <address> [amount]: price a mint without sending it.
func quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote <address> [amount]",
		Short: "Price a mint for an address",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount := 1
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", args[1], err)
				}
				amount = n
			}
			return withService(cmd, func(ctx context.Context, svc mint.Service, out io.Writer) error {
				q, err := svc.Quote(ctx, args[0], amount)
				if err != nil {
					return err
				}
				if jsonOut {
					return printJSON(out, quoteView(q))
				}
				printQuote(out, q)
				return nil
			})
		},
	}
}

// tier <address>: show remaining free and discounted packs.
func tierCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tier <address>",
		Short: "Show the holder tier of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc mint.Service, out io.Writer) error {
				e, err := svc.Eligibility(ctx, args[0])
				if err != nil {
					return err
				}
				if jsonOut {
					return printJSON(out, e)
				}
				fmt.Fprintf(out, "tier:        %s\n", e.Tier)
				fmt.Fprintf(out, "free:        %d\n", e.FreePacks)
				fmt.Fprintf(out, "discounted:  %d\n", e.DiscountedPacks)
				fmt.Fprintf(out, "max per tx:  %d\n", e.MaxMintAmount)
				return nil
			})
		},
	}
}

func packsCmd() *cobra.Command {
	return tokensCmd("packs", "List packs held by an address", func(svc mint.Service) func(context.Context, string) ([]domain.Token, error) {
		return svc.Packs
	})
}

func cardsCmd() *cobra.Command {
	return tokensCmd("cards", "List cards held by an address", func(svc mint.Service) func(context.Context, string) ([]domain.Token, error) {
		return svc.Cards
	})
}

func tokensCmd(name, short string, list func(mint.Service) func(context.Context, string) ([]domain.Token, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <address>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc mint.Service, out io.Writer) error {
				tokens, err := list(svc)(ctx, args[0])
				if err != nil {
					return err
				}
				if tokens == nil {
					tokens = []domain.Token{}
				}
				if jsonOut {
					return printJSON(out, tokens)
				}
				printTokens(out, tokens)
				return nil
			})
		},
	}
}

// stats: collection supply.
func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show minted, burned and remaining packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd, func(ctx context.Context, svc mint.Service, out io.Writer) error {
				s, err := svc.Stats(ctx)
				if err != nil {
					return err
				}
				if jsonOut {
					return printJSON(out, statsView{CollectionStats: s, Remaining: s.Remaining(), Unopened: s.Unopened()})
				}
				fmt.Fprintf(out, "minted:     %d / %d\n", s.TotalMinted, s.TotalSupply)
				fmt.Fprintf(out, "remaining:  %d\n", s.Remaining())
				fmt.Fprintf(out, "opened:     %d\n", s.BurnedPacks)
				fmt.Fprintf(out, "unopened:   %d\n", s.Unopened())
				return nil
			})
		},
	}
}

func printQuote(out io.Writer, q domain.Quote) {
	fmt.Fprintf(out, "%s\n", pricing.MintLabel(q))
	fmt.Fprintf(out, "tier:        %s\n", q.Tier)
	fmt.Fprintf(out, "free:        %d\n", q.Free)
	fmt.Fprintf(out, "discounted:  %d x %s\n", q.Discounted, pricing.FormatWei(q.DiscountedPrice))
	fmt.Fprintf(out, "full price:  %d x %s\n", q.Full, pricing.FormatWei(q.UnitPrice))
	fmt.Fprintf(out, "total:       %s\n", pricing.FormatWei(q.Total))
}
