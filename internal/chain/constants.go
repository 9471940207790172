package chain

// Log messages
const (
	LogMsgConnected           = "Connected to chain"
	LogMsgWaitingForReceipt   = "Waiting for transaction receipt"
	LogMsgTransactionMined    = "Transaction mined"
	LogMsgTransactionReverted = "Transaction reverted"
)
