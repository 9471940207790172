package discord

import (
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/handler"
)

func TestStatsCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("/api/v1/collection/stats", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, handler.StatsResponse{
			CollectionStats: domain.CollectionStats{TotalSupply: 222, TotalMinted: 150, BurnedPacks: 50},
			Remaining:       72,
			Unopened:        100,
		})
	})

	cmd, h := StatsCommand()
	h(ctx.Session, newCommandInteraction(cmd.Name), ctx.APIClient)

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Title, "Collection Stats")
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "150 / 222", embed.Fields[0].Value)
	assert.Equal(t, "72", embed.Fields[1].Value)
	assert.Equal(t, FooterPackmint, embed.Footer.Text)
}

func TestQuoteCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("/api/v1/mint/quote", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "8", r.URL.Query().Get("amount"))
		WriteJSON(w, http.StatusOK, handler.QuoteResponse{
			Tier:               domain.TierWhale,
			Amount:             8,
			Free:               1,
			Discounted:         5,
			Full:               2,
			UnitPriceWei:       "90000000000000000000000",
			DiscountedPriceWei: "45000000000000000000000",
			TotalWei:           "405000000000000000000000",
			TotalDisplay:       "405,000 PLS",
			Label:              "Mint 8 packs",
		})
	})

	cmd, h := QuoteCommand()
	h(ctx.Session, newCommandInteraction(cmd.Name, stringOpt("address", testAddress), intOpt("amount", 8)), ctx.APIClient)

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Description, "405,000 PLS")
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "whale", embed.Fields[0].Value)
	assert.Equal(t, "5 × 45,000 PLS", embed.Fields[2].Value)
	assert.Equal(t, "2 × 90,000 PLS", embed.Fields[3].Value)
}

func TestQuoteCommand_DefaultAmount(t *testing.T) {
	ctx := SetupTestContext(t)
	var gotAmount string
	ctx.Mux.HandleFunc("/api/v1/mint/quote", func(w http.ResponseWriter, r *http.Request) {
		gotAmount = r.URL.Query().Get("amount")
		WriteJSON(w, http.StatusOK, handler.QuoteResponse{Tier: domain.TierPublic, Amount: 1, Full: 1})
	})

	cmd, h := QuoteCommand()
	h(ctx.Session, newCommandInteraction(cmd.Name, stringOpt("address", testAddress)), ctx.APIClient)

	assert.Equal(t, "1", gotAmount)
}

func TestTierCommand_FriendlyError(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("/api/v1/holders/nope/eligibility", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusBadRequest, handler.ErrorResponse{Error: handler.ErrMsgInvalidAddressError})
	})

	cmd, h := TierCommand()
	h(ctx.Session, newCommandInteraction(cmd.Name, stringOpt("address", "nope")), ctx.APIClient)

	assert.Nil(t, ctx.LastEmbed())
	followup, ok := ctx.LastFollowup()
	require.True(t, ok)
	assert.Equal(t, MsgInvalidAddress, followup.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, followup.Flags)
}

func TestTierCommand_Whale(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("/api/v1/holders/"+testAddress+"/eligibility", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, handler.EligibilityResponse{
			Address:           testAddress,
			HolderEligibility: domain.Allowance(domain.TierWhale),
		})
	})

	cmd, h := TierCommand()
	h(ctx.Session, newCommandInteraction(cmd.Name, stringOpt("address", testAddress)), ctx.APIClient)

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Description, "Whale")
	assert.Equal(t, "1", embed.Fields[0].Value)
	assert.Equal(t, "5", embed.Fields[1].Value)
	assert.Equal(t, "10", embed.Fields[2].Value)
}

func TestPacksCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("/api/v1/holders/"+testAddress+"/packs", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, handler.TokensResponse{
			Address: testAddress,
			Count:   2,
			Tokens: []domain.Token{
				{ID: 3, Kind: domain.KindPack, Balance: 1, Name: "Genesis Pack"},
				{ID: 9, Kind: domain.KindPack, Balance: 2},
			},
		})
	})

	cmd, h := PacksCommand()
	h(ctx.Session, newCommandInteraction(cmd.Name, stringOpt("address", testAddress)), ctx.APIClient)

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Title, "Packs")
	assert.Contains(t, embed.Description, "**Genesis Pack** (#3)")
	assert.Contains(t, embed.Description, "**pack #9** (#9) ×2")
}

func TestFormatTokenList(t *testing.T) {
	assert.Equal(t, "_None held._", formatTokenList(nil))

	tokens := make([]domain.Token, maxListedTokens+3)
	for n := range tokens {
		tokens[n] = domain.Token{ID: uint64(223 + n), Kind: domain.KindCard, Balance: 1}
	}
	out := formatTokenList(tokens)
	assert.Contains(t, out, "…and 3 more")
	assert.Contains(t, out, "**card #223** (#223)")
}

func TestPingCommand(t *testing.T) {
	t.Run("API up", func(t *testing.T) {
		ctx := SetupTestContext(t)
		ctx.Mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			WriteJSON(w, http.StatusOK, handler.HealthResponse{Status: handler.HealthStatusOK})
		})

		cmd, h := PingCommand()
		h(ctx.Session, newCommandInteraction(cmd.Name), ctx.APIClient)

		embed := ctx.LastEmbed()
		require.NotNil(t, embed)
		require.Len(t, embed.Fields, 2)
		assert.Contains(t, embed.Fields[1].Value, "ok")
		assert.Equal(t, ColorSuccess, embed.Color)
	})

	t.Run("API down", func(t *testing.T) {
		ctx := SetupTestContext(t)

		cmd, h := PingCommand()
		h(ctx.Session, newCommandInteraction(cmd.Name), ctx.APIClient)

		embed := ctx.LastEmbed()
		require.NotNil(t, embed)
		assert.Contains(t, embed.Fields[1].Value, "unreachable")
		assert.Equal(t, ColorWarning, embed.Color)
	})
}
