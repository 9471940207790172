package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/handler"
)

// maxListedTokens caps token lines in one embed; descriptions stop at 4096 chars.
const maxListedTokens = 40

// TierCommand shows the holder tier and remaining discounts of a wallet.
func TierCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "tier",
		Description: "Show a wallet's mint tier and remaining discounts",
		Options: []*discordgo.ApplicationCommandOption{
			addressOption("Wallet address (0x...)"),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		address := stringOption(i, "address")
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			elig, err := client.Eligibility(ctx, address)
			if err != nil {
				return nil, err
			}
			return eligibilityEmbed(elig), nil
		}, ResponseConfig{Title: "🏷️ Mint Tier", Color: ColorInfo})
	}

	return cmd, handler
}

func eligibilityEmbed(e *handler.EligibilityResponse) *discordgo.MessageEmbed {
	var desc string
	switch e.Tier {
	case domain.TierWhale:
		desc = "🐋 **Whale**"
	case domain.TierHolder:
		desc = "💎 **Holder**"
	default:
		desc = "Public mint, full price"
	}

	embed := createEmbed("🏷️ Mint Tier · "+shortAddress(e.Address), desc, ColorInfo)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Free packs", Value: fmt.Sprint(e.FreePacks), Inline: true},
		{Name: "Discounted packs", Value: fmt.Sprint(e.DiscountedPacks), Inline: true},
		{Name: "Max per mint", Value: fmt.Sprint(e.MaxMintAmount), Inline: true},
	}
	return embed
}

// PacksCommand lists the packs held by a wallet.
func PacksCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return tokenListCommand("packs", "List the packs a wallet holds", "🎁 Packs", ColorPack,
		func(c *APIClient) func(context.Context, string) (*handler.TokensResponse, error) { return c.Packs })
}

// CardsCommand lists the cards held by a wallet.
func CardsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return tokenListCommand("cards", "List the cards a wallet holds", "🃏 Cards", ColorCard,
		func(c *APIClient) func(context.Context, string) (*handler.TokensResponse, error) { return c.Cards })
}

func tokenListCommand(
	name, description, title string,
	color int,
	fetch func(*APIClient) func(context.Context, string) (*handler.TokensResponse, error),
) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        name,
		Description: description,
		Options: []*discordgo.ApplicationCommandOption{
			addressOption("Wallet address (0x...)"),
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		address := stringOption(i, "address")
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			resp, err := fetch(client)(ctx, address)
			if err != nil {
				return nil, err
			}
			return createEmbed(title+" · "+shortAddress(resp.Address), formatTokenList(resp.Tokens), color), nil
		}, ResponseConfig{Title: title, Color: color})
	}

	return cmd, handler
}

// formatTokenList renders one line per token, truncating long lists.
func formatTokenList(tokens []domain.Token) string {
	if len(tokens) == 0 {
		return "_None held._"
	}

	var b strings.Builder
	for n, t := range tokens {
		if n == maxListedTokens {
			fmt.Fprintf(&b, "…and %d more", len(tokens)-maxListedTokens)
			break
		}
		name := t.Name
		if name == "" {
			name = fmt.Sprintf("%s #%d", t.Kind, t.ID)
		}
		fmt.Fprintf(&b, "• **%s** (#%d)", name, t.ID)
		if t.Balance > 1 {
			fmt.Fprintf(&b, " ×%d", t.Balance)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
