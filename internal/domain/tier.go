package domain

import (
	"fmt"
	"strings"
)

// Tier classifies an address for mint discounts.
type Tier string

const (
	TierPublic Tier = "public"
	TierHolder Tier = "holder"
	TierWhale  Tier = "whale"
)

// ParseTier parses a tier name case-insensitively.
func ParseTier(s string) (Tier, error) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierPublic:
		return TierPublic, nil
	case TierHolder:
		return TierHolder, nil
	case TierWhale:
		return TierWhale, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTier, s)
	}
}

// HasFreePacks reports whether the tier can receive free packs at all.
func (t Tier) HasFreePacks() bool {
	return t == TierWhale
}

// HasDiscount reports whether the tier can buy discounted packs.
func (t Tier) HasDiscount() bool {
	return t == TierWhale || t == TierHolder
}

// HolderEligibility is what an address may still mint at a reduced price.
type HolderEligibility struct {
	Tier            Tier `json:"tier"`
	FreePacks       int  `json:"free_packs"`
	DiscountedPacks int  `json:"discounted_packs"`
	MaxMintAmount   int  `json:"max_mint_amount"`
}

// Allowance returns the full, unclaimed eligibility for a tier.
func Allowance(t Tier) HolderEligibility {
	e := HolderEligibility{Tier: t, MaxMintAmount: MaxMintAmount}
	switch t {
	case TierWhale:
		e.FreePacks = WhaleFreePacks
		e.DiscountedPacks = WhaleDiscountedPacks
	case TierHolder:
		e.DiscountedPacks = HolderDiscountedPacks
	default:
		e.Tier = TierPublic
	}
	return e
}

// Normalize forces the eligibility to respect its tier: counts are never
// negative and never exceed the tier's allowance, so public has nothing,
// holder has no free packs and whale has at most one.
func (e HolderEligibility) Normalize() HolderEligibility {
	caps := Allowance(e.Tier)
	e.FreePacks = min(max(e.FreePacks, 0), caps.FreePacks)
	e.DiscountedPacks = min(max(e.DiscountedPacks, 0), caps.DiscountedPacks)
	if e.MaxMintAmount <= 0 {
		e.MaxMintAmount = MaxMintAmount
	}
	return e
}
