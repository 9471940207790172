package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allFactories() []CommandFactory {
	return []CommandFactory{PingCommand, StatsCommand, TierCommand, QuoteCommand, PacksCommand, CardsCommand}
}

func TestRegistry_RegisterAll(t *testing.T) {
	r := NewCommandRegistry()
	r.RegisterAll(allFactories()...)

	sorted := r.Sorted()
	names := make([]string, 0, len(sorted))
	for _, c := range sorted {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"cards", "packs", "ping", "quote", "stats", "tier"}, names)
	assert.Len(t, r.Handlers, len(names))
}

func TestRegistry_HandleUnknownCommand(t *testing.T) {
	r := NewCommandRegistry()
	called := false
	r.Register(&discordgo.ApplicationCommand{Name: "ping"}, func(*discordgo.Session, *discordgo.InteractionCreate, *APIClient) {
		called = true
	})

	before := commandCounter.Load()
	r.Handle(nil, newCommandInteraction("nope"), nil)
	assert.False(t, called)
	assert.Equal(t, before, commandCounter.Load())

	r.Handle(nil, newCommandInteraction("ping"), nil)
	assert.True(t, called)
	assert.Equal(t, before+1, commandCounter.Load())
}

func TestCommandsEqual(t *testing.T) {
	fresh := func() []*discordgo.ApplicationCommand {
		r := NewCommandRegistry()
		r.RegisterAll(allFactories()...)
		return r.Sorted()
	}

	t.Run("identical sets ignore order", func(t *testing.T) {
		a, b := fresh(), fresh()
		b[0], b[1] = b[1], b[0]
		assert.True(t, commandsEqual(a, b))
	})

	t.Run("different length", func(t *testing.T) {
		a, b := fresh(), fresh()
		assert.False(t, commandsEqual(a, b[1:]))
	})

	t.Run("description changed", func(t *testing.T) {
		a, b := fresh(), fresh()
		b[0].Description = "changed"
		assert.False(t, commandsEqual(a, b))
	})

	t.Run("option bound changed", func(t *testing.T) {
		a, b := fresh(), fresh()
		var quote *discordgo.ApplicationCommand
		for _, c := range b {
			if c.Name == "quote" {
				quote = c
			}
		}
		require.NotNil(t, quote)
		quote.Options[1].MaxValue = 20
		assert.False(t, commandsEqual(a, b))
	})

	t.Run("renamed command", func(t *testing.T) {
		a, b := fresh(), fresh()
		b[len(b)-1].Name = "other"
		assert.False(t, commandsEqual(a, b))
	})
}

func TestFloatPtrEqual(t *testing.T) {
	one, two := 1.0, 2.0
	assert.True(t, floatPtrEqual(nil, nil))
	assert.False(t, floatPtrEqual(&one, nil))
	assert.True(t, floatPtrEqual(&one, &one))
	assert.False(t, floatPtrEqual(&one, &two))
}
