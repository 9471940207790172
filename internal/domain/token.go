package domain

// TokenKind distinguishes packs from cards by id range.
type TokenKind string

const (
	KindPack TokenKind = "pack"
	KindCard TokenKind = "card"
)

// IsPackID reports whether id falls in the pack range.
func IsPackID(id uint64) bool {
	return id >= PackIDMin && id <= PackIDMax
}

// IsCardID reports whether id falls in the card range.
func IsCardID(id uint64) bool {
	return id >= CardIDMin && id <= CardIDMax
}

// KindOf returns the token kind for id, or "" when id is outside both ranges.
func KindOf(id uint64) TokenKind {
	switch {
	case IsPackID(id):
		return KindPack
	case IsCardID(id):
		return KindCard
	default:
		return ""
	}
}

// Token is an owned pack or card.
type Token struct {
	ID      uint64    `json:"id"`
	Kind    TokenKind `json:"kind"`
	Balance uint64    `json:"balance"`
	Name    string    `json:"name,omitempty"`
	Image   string    `json:"image,omitempty"`
}

// Metadata is the display document served at a token's URI.
type Metadata struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image"`
}

// PackMetadata is one entry returned by the contract's per-owner pack listing.
type PackMetadata struct {
	TokenID uint64 `json:"token_id"`
	URI     string `json:"uri"`
}
