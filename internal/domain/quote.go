package domain

import "math/big"

// Quote is the price breakdown for a mint request.
// Free + Discounted + Full always equals Amount.
type Quote struct {
	Tier            Tier     `json:"tier"`
	Amount          int      `json:"amount"`
	Free            int      `json:"free"`
	Discounted      int      `json:"discounted"`
	Full            int      `json:"full"`
	UnitPrice       *big.Int `json:"unit_price"`
	DiscountedPrice *big.Int `json:"discounted_price"`
	Total           *big.Int `json:"total"`
}

// IsFree reports whether every requested pack is covered by free packs.
func (q Quote) IsFree() bool {
	return q.Amount > 0 && q.Free == q.Amount
}

// PreparedTx is an unsigned transaction for a wallet to sign.
type PreparedTx struct {
	ChainID int64    `json:"chain_id"`
	From    string   `json:"from,omitempty"`
	To      string   `json:"to"`
	Value   *big.Int `json:"value"`
	Data    string   `json:"data"`
}

// TxReceipt summarises a mined transaction.
type TxReceipt struct {
	Hash        string `json:"hash"`
	BlockNumber uint64 `json:"block_number"`
	GasUsed     uint64 `json:"gas_used"`
}

// CollectionStats is the supply picture of the pack collection.
type CollectionStats struct {
	TotalSupply uint64 `json:"total_supply"`
	TotalMinted uint64 `json:"total_minted"`
	BurnedPacks uint64 `json:"burned_packs"`
}

// Remaining returns how many packs can still be minted.
func (s CollectionStats) Remaining() uint64 {
	if s.TotalMinted >= s.TotalSupply {
		return 0
	}
	return s.TotalSupply - s.TotalMinted
}

// Unopened returns minted packs not yet burned by opening.
func (s CollectionStats) Unopened() uint64 {
	if s.BurnedPacks >= s.TotalMinted {
		return 0
	}
	return s.TotalMinted - s.BurnedPacks
}
