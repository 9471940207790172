package discord

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/bulbacards/packmint/internal/handler"
)

// commandTimeout bounds the API work behind one interaction. Discord drops
// deferred interactions after 15 minutes, far beyond this.
const commandTimeout = 20 * time.Second

// Footer constants for embeds
const (
	FooterPackmint = "packmint"
)

// apiErrorPrefix is prepended by APIClient to server-side error messages.
const apiErrorPrefix = "API error: "

// respondError replaces the deferred reply with an ephemeral message only
// the invoking user sees.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if err := s.InteractionResponseDelete(i.Interaction); err != nil {
		slog.Warn("Failed to delete deferred response", "error", err)
	}
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: message,
		Flags:   discordgo.MessageFlagsEphemeral,
	}); err != nil {
		slog.Error("Failed to send error followup", "error", err)
	}
}

// respondFriendlyError formats the error message before responding.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	respondError(s, i, formatFriendlyError(message))
}

// formatFriendlyError maps API error messages to Discord copy.
func formatFriendlyError(msg string) string {
	msg = strings.TrimPrefix(msg, apiErrorPrefix)

	switch {
	case strings.Contains(msg, handler.ErrMsgInvalidAddressError):
		return MsgInvalidAddress
	case strings.Contains(msg, handler.ErrMsgAmountExceedsMaxErr):
		return MsgAmountTooLarge
	case strings.Contains(msg, handler.ErrMsgInvalidAmountError):
		return MsgAmountTooSmall
	case strings.Contains(msg, handler.ErrMsgPackNotOwnedError):
		return MsgPackNotOwned
	case strings.Contains(msg, handler.ErrMsgChainReadError),
		strings.Contains(msg, handler.ErrMsgChainMismatchError):
		return MsgChainUnavailable
	case strings.Contains(msg, handler.ErrMsgMetadataError):
		return MsgMetadataError
	case msg == "" || strings.Contains(msg, handler.ErrMsgGenericServerError):
		return MsgGenericError
	default:
		return "❌ " + msg
	}
}

// ResponseConfig defines the visual properties of a command response embed
type ResponseConfig struct {
	Title string
	Color int
}

// handleEmbedResponse defers the interaction, runs action under a timeout
// and replies with an embed built from its result.
func handleEmbedResponse(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	action func(ctx context.Context) (*discordgo.MessageEmbed, error),
	config ResponseConfig,
) {
	if !deferResponse(s, i) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	embed, err := action(ctx)
	if err != nil {
		slog.Error("Action failed", "title", config.Title, "error", err)
		respondFriendlyError(s, i, err.Error())
		return
	}

	if embed.Title == "" {
		embed.Title = config.Title
	}
	if embed.Color == 0 {
		embed.Color = config.Color
	}
	if embed.Footer == nil {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: FooterPackmint}
	}
	sendEmbed(s, i, embed)
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed and the handler should stop.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getOptions indexes the command options by name.
func getOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

// stringOption returns the named string option or "".
func stringOption(i *discordgo.InteractionCreate, name string) string {
	if o, ok := getOptions(i)[name]; ok {
		return strings.TrimSpace(o.StringValue())
	}
	return ""
}

// intOption returns the named integer option or def.
func intOption(i *discordgo.InteractionCreate, name string, def int) int {
	if o, ok := getOptions(i)[name]; ok {
		return int(o.IntValue())
	}
	return def
}

// sendEmbed sends an embed message, logging send failures.
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// createEmbed creates a standard embed with the packmint footer.
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterPackmint,
		},
	}
}

// addressOption is the shared wallet option.
func addressOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "address",
		Description: description,
		Required:    true,
	}
}

// shortAddress abbreviates 0x1234...abcd for embed titles.
func shortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
