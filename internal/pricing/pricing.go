// Package pricing splits a mint request into free, discounted and
// full-price packs and totals the cost in wei.
package pricing

import (
	"fmt"
	"math/big"

	"github.com/bulbacards/packmint/internal/domain"
)

// Calculate prices a mint of amount packs for an address with the given
// eligibility. Allocation order is fixed: free packs first (whale only),
// then discounted packs at half price (whale and holder), then full price.
func Calculate(eligibility domain.HolderEligibility, unitPrice *big.Int, amount int) (domain.Quote, error) {
	if unitPrice == nil || unitPrice.Sign() < 0 {
		return domain.Quote{}, fmt.Errorf("%w: %v", domain.ErrInvalidPrice, unitPrice)
	}
	if amount < 1 {
		return domain.Quote{}, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}

	e := eligibility.Normalize()
	if amount > e.MaxMintAmount {
		return domain.Quote{}, fmt.Errorf("%w: %d > %d", domain.ErrAmountExceedsMax, amount, e.MaxMintAmount)
	}

	free := min(e.FreePacks, amount)
	discounted := min(e.DiscountedPacks, amount-free)
	full := amount - free - discounted

	discountedPrice := DiscountedPrice(unitPrice)

	total := new(big.Int).Mul(discountedPrice, big.NewInt(int64(discounted)))
	total.Add(total, new(big.Int).Mul(unitPrice, big.NewInt(int64(full))))

	return domain.Quote{
		Tier:            e.Tier,
		Amount:          amount,
		Free:            free,
		Discounted:      discounted,
		Full:            full,
		UnitPrice:       new(big.Int).Set(unitPrice),
		DiscountedPrice: discountedPrice,
		Total:           total,
	}, nil
}

// DiscountedPrice is the per-pack price for discounted packs (integer halving in wei).
func DiscountedPrice(unitPrice *big.Int) *big.Int {
	return new(big.Int).Quo(unitPrice, big.NewInt(domain.DiscountDivisor))
}

// MintLabel is the call-to-action text for a mint button.
func MintLabel(q domain.Quote) string {
	noun := "Packs"
	if q.Amount == 1 {
		noun = "Pack"
	}
	if q.IsFree() {
		return fmt.Sprintf("Mint %d FREE %s", q.Amount, noun)
	}
	return fmt.Sprintf("Mint %d %s for %s", q.Amount, noun, FormatWei(q.Total))
}
