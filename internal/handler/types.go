package handler

import (
	"math/big"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/pricing"
)

// Wei amounts are sent as decimal strings; they overflow JSON numbers in
// most clients.

// QuoteResponse is a mint price breakdown.
type QuoteResponse struct {
	Tier               domain.Tier `json:"tier"`
	Amount             int         `json:"amount"`
	Free               int         `json:"free"`
	Discounted         int         `json:"discounted"`
	Full               int         `json:"full"`
	UnitPriceWei       string      `json:"unit_price_wei"`
	DiscountedPriceWei string      `json:"discounted_price_wei"`
	TotalWei           string      `json:"total_wei"`
	TotalDisplay       string      `json:"total_display"`
	Label              string      `json:"label"`
}

// PreparedTxResponse is an unsigned transaction for a browser wallet.
type PreparedTxResponse struct {
	ChainID  int64  `json:"chain_id"`
	From     string `json:"from"`
	To       string `json:"to"`
	ValueWei string `json:"value_wei"`
	Data     string `json:"data"`
}

// PrepareMintResponse pairs the quote with the transaction that pays it.
type PrepareMintResponse struct {
	Quote QuoteResponse      `json:"quote"`
	Tx    PreparedTxResponse `json:"tx"`
}

// TokensResponse lists owned tokens of one kind.
type TokensResponse struct {
	Address string         `json:"address"`
	Count   int            `json:"count"`
	Tokens  []domain.Token `json:"tokens"`
}

// StatsResponse is the collection supply picture.
type StatsResponse struct {
	domain.CollectionStats
	Remaining uint64 `json:"remaining"`
	Unopened  uint64 `json:"unopened"`
}

// EligibilityResponse wraps the holder eligibility with its address.
type EligibilityResponse struct {
	Address string `json:"address"`
	domain.HolderEligibility
}

func newQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		Tier:               q.Tier,
		Amount:             q.Amount,
		Free:               q.Free,
		Discounted:         q.Discounted,
		Full:               q.Full,
		UnitPriceWei:       weiString(q.UnitPrice),
		DiscountedPriceWei: weiString(q.DiscountedPrice),
		TotalWei:           weiString(q.Total),
		TotalDisplay:       pricing.FormatWei(q.Total),
		Label:              pricing.MintLabel(q),
	}
}

func newPreparedTxResponse(tx domain.PreparedTx) PreparedTxResponse {
	return PreparedTxResponse{
		ChainID:  tx.ChainID,
		From:     tx.From,
		To:       tx.To,
		ValueWei: weiString(tx.Value),
		Data:     tx.Data,
	}
}

func weiString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
