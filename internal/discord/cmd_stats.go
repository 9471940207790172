package discord

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// StatsCommand shows minted, burned and remaining packs.
func StatsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "stats",
		Description: "Show pack collection supply",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			stats, err := client.Stats(ctx)
			if err != nil {
				return nil, err
			}

			embed := createEmbed("📊 Collection Stats", "", ColorInfo)
			embed.Fields = []*discordgo.MessageEmbedField{
				{Name: "Minted", Value: fmt.Sprintf("%d / %d", stats.TotalMinted, stats.TotalSupply), Inline: true},
				{Name: "Remaining", Value: strconv.FormatUint(stats.Remaining, 10), Inline: true},
				{Name: "Opened", Value: strconv.FormatUint(stats.BurnedPacks, 10), Inline: true},
				{Name: "Unopened", Value: strconv.FormatUint(stats.Unopened, 10), Inline: true},
			}
			return embed, nil
		}, ResponseConfig{Title: "📊 Collection Stats", Color: ColorInfo})
	}

	return cmd, handler
}
