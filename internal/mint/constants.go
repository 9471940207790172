package mint

// Log messages
const (
	LogMsgQuoted            = "Mint quote computed"
	LogMsgMintPriceFallback = "Mint price read failed, using configured default"
	LogMsgStatsFallback     = "Collection stat read failed, using fallback"
	LogMsgSubmitted         = "Transaction submitted"
)
