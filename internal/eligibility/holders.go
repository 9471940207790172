package eligibility

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/validation"
)

var schemaValidator = validation.NewSchemaValidator()

// HolderList is the static whale/holder snapshot.
type HolderList struct {
	whales  map[string]struct{}
	holders map[string]struct{}
}

type holderFile struct {
	WhaleHolders []string `json:"whaleHolders"`
	Holders      []string `json:"holders"`
}

// LoadHolderList reads a holders JSON file.
func LoadHolderList(path string) (*HolderList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read holders file: %w", err)
	}
	if err := schemaValidator.ValidateBytes(data, validation.HoldersSchema); err != nil {
		return nil, fmt.Errorf("holders file %s: %w", path, err)
	}
	var f holderFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse holders file %s: %w", path, err)
	}
	return NewHolderList(f.WhaleHolders, f.Holders)
}

// NewHolderList builds a list from address strings. Comparison is case-insensitive.
func NewHolderList(whales, holders []string) (*HolderList, error) {
	l := &HolderList{
		whales:  make(map[string]struct{}, len(whales)),
		holders: make(map[string]struct{}, len(holders)),
	}
	for _, a := range whales {
		key, err := normalize(a)
		if err != nil {
			return nil, err
		}
		l.whales[key] = struct{}{}
	}
	for _, a := range holders {
		key, err := normalize(a)
		if err != nil {
			return nil, err
		}
		l.holders[key] = struct{}{}
	}
	return l, nil
}

func normalize(a string) (string, error) {
	a = strings.TrimSpace(a)
	if !common.IsHexAddress(a) {
		return "", fmt.Errorf("%w in holders list: %q", domain.ErrInvalidAddress, a)
	}
	return strings.ToLower(common.HexToAddress(a).Hex()), nil
}

// Tier returns the listed tier for addr. Whale wins when listed in both.
func (l *HolderList) Tier(addr common.Address) domain.Tier {
	key := strings.ToLower(addr.Hex())
	if _, ok := l.whales[key]; ok {
		return domain.TierWhale
	}
	if _, ok := l.holders[key]; ok {
		return domain.TierHolder
	}
	return domain.TierPublic
}

// Len returns the number of listed whales and holders.
func (l *HolderList) Len() (whales, holders int) {
	return len(l.whales), len(l.holders)
}
