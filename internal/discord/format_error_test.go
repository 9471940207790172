package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bulbacards/packmint/internal/handler"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Invalid Address", "API error: " + handler.ErrMsgInvalidAddressError, MsgInvalidAddress},
		{"Too Many", "API error: " + handler.ErrMsgAmountExceedsMaxErr, MsgAmountTooLarge},
		{"Too Few", "API error: " + handler.ErrMsgInvalidAmountError, MsgAmountTooSmall},
		{"Not Owned", "API error: " + handler.ErrMsgPackNotOwnedError, MsgPackNotOwned},
		{"Chain Read", "API error: " + handler.ErrMsgChainReadError, MsgChainUnavailable},
		{"Wrong Chain", "API error: " + handler.ErrMsgChainMismatchError, MsgChainUnavailable},
		{"Metadata", "API error: " + handler.ErrMsgMetadataError, MsgMetadataError},
		{"Generic Server", "API error: " + handler.ErrMsgGenericServerError, MsgGenericError},
		{"Empty", "API error: ", MsgGenericError},
		{"Unknown", "request failed: connection refused", "❌ request failed: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFriendlyError(tt.input))
		})
	}
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x1234…abcd", shortAddress("0x1234567890123456789012345678901234abcd"))
	assert.Equal(t, "0xabc", shortAddress("0xabc"))
}
