package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext bundles a fake packmint API and a Discord session whose
// HTTP traffic is captured instead of sent.
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu        sync.Mutex
	edits     []discordgo.WebhookEdit
	followups []discordgo.WebhookParams
}

// SetupTestContext starts the fake API and wires the session transport.
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: NewAPIClient(server.URL, "test-api-key"),
		Session:   session,
	}

	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			ctx.capture(req)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	t.Cleanup(server.Close)
	return ctx
}

func (c *TestContext) capture(req *http.Request) {
	if req.Body == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case req.Method == http.MethodPatch:
		var edit discordgo.WebhookEdit
		if err := json.NewDecoder(req.Body).Decode(&edit); err == nil {
			c.edits = append(c.edits, edit)
		}
	case req.Method == http.MethodPost && strings.Contains(req.URL.Path, "/webhooks/"):
		var params discordgo.WebhookParams
		if err := json.NewDecoder(req.Body).Decode(&params); err == nil {
			c.followups = append(c.followups, params)
		}
	}
}

// LastFollowup returns the most recent followup message, if any.
func (c *TestContext) LastFollowup() (discordgo.WebhookParams, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.followups) == 0 {
		return discordgo.WebhookParams{}, false
	}
	return c.followups[len(c.followups)-1], true
}

// LastEdit returns the most recent interaction edit sent to Discord.
func (c *TestContext) LastEdit() (discordgo.WebhookEdit, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.edits) == 0 {
		return discordgo.WebhookEdit{}, false
	}
	return c.edits[len(c.edits)-1], true
}

// LastEmbed returns the first embed of the most recent edit, or nil.
func (c *TestContext) LastEmbed() *discordgo.MessageEmbed {
	edit, ok := c.LastEdit()
	if !ok || edit.Embeds == nil || len(*edit.Embeds) == 0 {
		return nil
	}
	return (*edit.Embeds)[0]
}

// WriteJSON writes data as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// newCommandInteraction builds a slash command interaction with options.
func newCommandInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-id",
			AppID: "app-id",
			Token: "interaction-token",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "test-user", Username: "Tester"},
			},
		},
	}
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	// Discord delivers integers as JSON numbers, which decode to float64.
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}
