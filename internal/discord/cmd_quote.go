package discord

import (
	"context"
	"fmt"
	"math/big"

	"github.com/bwmarrin/discordgo"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/handler"
	"github.com/bulbacards/packmint/internal/pricing"
)

// QuoteCommand prices a mint for a wallet without sending anything.
func QuoteCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minAmount := 1.0
	cmd := &discordgo.ApplicationCommand{
		Name:        "quote",
		Description: "Price a pack mint for a wallet",
		Options: []*discordgo.ApplicationCommandOption{
			addressOption("Wallet address (0x...)"),
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "Packs to mint (default: 1)",
				Required:    false,
				MinValue:    &minAmount,
				MaxValue:    domain.MaxMintAmount,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		address := stringOption(i, "address")
		amount := intOption(i, "amount", 1)
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			q, err := client.Quote(ctx, address, amount)
			if err != nil {
				return nil, err
			}
			return quoteEmbed(address, q), nil
		}, ResponseConfig{Title: "💰 Mint Quote", Color: ColorSuccess})
	}

	return cmd, handler
}

func quoteEmbed(address string, q *handler.QuoteResponse) *discordgo.MessageEmbed {
	embed := createEmbed(
		fmt.Sprintf("💰 Mint Quote · %s", shortAddress(address)),
		fmt.Sprintf("**%s** for %d pack(s)\n%s", q.TotalDisplay, q.Amount, q.Label),
		ColorSuccess,
	)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Tier", Value: string(q.Tier), Inline: true},
		{Name: "Free", Value: fmt.Sprint(q.Free), Inline: true},
		{Name: "Discounted", Value: fmt.Sprintf("%d × %s", q.Discounted, displayWei(q.DiscountedPriceWei)), Inline: true},
		{Name: "Full price", Value: fmt.Sprintf("%d × %s", q.Full, displayWei(q.UnitPriceWei)), Inline: true},
	}
	return embed
}

// displayWei formats a decimal wei string, echoing it back if unparsable.
func displayWei(wei string) string {
	v, ok := new(big.Int).SetString(wei, 10)
	if !ok {
		return wei
	}
	return pricing.FormatWei(v)
}
