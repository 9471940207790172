package domain

// Chain and contract defaults
const (
	PulseChainID = 369

	// DefaultMintPriceWei is 90,000 PLS with 18 decimals.
	DefaultMintPriceWei = "90000000000000000000000"

	NativeSymbol   = "PLS"
	NativeDecimals = 18
)

// Collection layout
const (
	TotalPacks   = 222
	CardsPerPack = 3

	PackIDMin = 1
	PackIDMax = TotalPacks
	CardIDMin = PackIDMax + 1
	CardIDMax = PackIDMax + TotalPacks*CardsPerPack
)

// Mint allowances
const (
	MaxMintAmount         = 10
	WhaleFreePacks        = 1
	WhaleDiscountedPacks  = 5
	HolderDiscountedPacks = 5

	// DiscountDivisor halves the unit price for discounted packs.
	DiscountDivisor = 2
)

// Scanning
const (
	DefaultScanBatchSize = 20
)
