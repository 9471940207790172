package discord

// Friendly message constants for Discord responses
const (
	MsgInvalidAddress = "🔎 **Invalid Address**\nThat doesn't look like a wallet address. It should start with `0x` and have 40 hex characters."
	MsgAmountTooLarge = "📦 **Too Many Packs**\nYou can mint at most 10 packs at a time."
	MsgAmountTooSmall = "📦 **Nothing To Mint**\nAsk for at least one pack."
	MsgPackNotOwned   = "🎴 **Not Your Pack**\nThat wallet doesn't hold the selected pack."

	MsgChainUnavailable = "⛓️ **Chain Unreachable**\nCouldn't read from PulseChain right now. Try again in a minute."
	MsgMetadataError    = "🖼️ **Metadata Unavailable**\nToken details couldn't be loaded. Try again shortly."

	MsgGenericError = "❌ Something went wrong."
)

// Embed colors
const (
	ColorInfo    = 0x3498db
	ColorSuccess = 0x2ecc71
	ColorWarning = 0xf39c12
	ColorPack    = 0x9b59b6
	ColorCard    = 0x1abc9c
)
