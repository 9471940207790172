package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/pricing"
)

// quoteJSON mirrors the API's quote body: wei as decimal strings.
type quoteJSON struct {
	Tier               domain.Tier `json:"tier"`
	Amount             int         `json:"amount"`
	Free               int         `json:"free"`
	Discounted         int         `json:"discounted"`
	Full               int         `json:"full"`
	UnitPriceWei       string      `json:"unit_price_wei"`
	DiscountedPriceWei string      `json:"discounted_price_wei"`
	TotalWei           string      `json:"total_wei"`
	TotalDisplay       string      `json:"total_display"`
}

func quoteView(q domain.Quote) quoteJSON {
	return quoteJSON{
		Tier:               q.Tier,
		Amount:             q.Amount,
		Free:               q.Free,
		Discounted:         q.Discounted,
		Full:               q.Full,
		UnitPriceWei:       weiString(q.UnitPrice),
		DiscountedPriceWei: weiString(q.DiscountedPrice),
		TotalWei:           weiString(q.Total),
		TotalDisplay:       pricing.FormatWei(q.Total),
	}
}

func weiString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

type statsView struct {
	domain.CollectionStats
	Remaining uint64 `json:"remaining"`
	Unopened  uint64 `json:"unopened"`
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTokens(out io.Writer, tokens []domain.Token) {
	if len(tokens) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	for _, t := range tokens {
		name := t.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(out, "  #%-4d x%-3d %s\n", t.ID, t.Balance, name)
	}
}
