package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// PingCommand reports gateway latency and whether the packmint API answers.
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check the bot and the packmint API",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			api, color := "🔴 unreachable", ColorWarning
			if client.Ping(ctx) {
				api, color = "🟢 ok", ColorSuccess
			}

			embed := createEmbed("🏓 Pong", "", color)
			embed.Fields = []*discordgo.MessageEmbedField{
				{Name: "Gateway", Value: fmt.Sprintf("%d ms", s.HeartbeatLatency().Round(time.Millisecond).Milliseconds()), Inline: true},
				{Name: "API", Value: api, Inline: true},
			}
			return embed, nil
		}, ResponseConfig{Title: "🏓 Pong", Color: ColorInfo})
	}

	return cmd, handler
}
