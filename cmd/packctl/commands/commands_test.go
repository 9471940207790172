package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bulbacards/packmint/internal/config"
	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/mint"
)

const (
	testContract = "0x00000000000000000000000000000000000000C0"
	testHolder   = "0x00000000000000000000000000000000000000aA"
)

// run executes packctl with args against svc and returns stdout.
func run(t *testing.T, svc mint.Service, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONTRACT_ADDRESS", testContract)
	t.Setenv("ELIGIBILITY_SOURCE", config.EligibilitySourceContract)

	orig := connect
	connect = func(context.Context, *config.ChainConfig, *bind.TransactOpts) (mint.Service, func(), error) {
		return svc, func() {}, nil
	}
	t.Cleanup(func() { connect = orig })

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func whaleQuote() domain.Quote {
	unit, _ := new(big.Int).SetString(domain.DefaultMintPriceWei, 10)
	total, _ := new(big.Int).SetString("405000000000000000000000", 10)
	return domain.Quote{
		Tier:            domain.TierWhale,
		Amount:          8,
		Free:            1,
		Discounted:      5,
		Full:            2,
		UnitPrice:       unit,
		DiscountedPrice: new(big.Int).Div(unit, big.NewInt(2)),
		Total:           total,
	}
}

func TestQuoteCmd(t *testing.T) {
	svc := new(mint.MockService)
	svc.On("Quote", mock.Anything, testHolder, 8).Return(whaleQuote(), nil)

	out, err := run(t, svc, "quote", testHolder, "8")
	require.NoError(t, err)
	assert.Contains(t, out, "405,000 PLS")
	assert.Contains(t, out, "5 x 45,000 PLS")
	svc.AssertExpectations(t)
}

func TestQuoteCmd_JSON(t *testing.T) {
	svc := new(mint.MockService)
	svc.On("Quote", mock.Anything, testHolder, 1).Return(whaleQuote(), nil)

	out, err := run(t, svc, "quote", testHolder, "--json")
	require.NoError(t, err)

	var got quoteJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "405000000000000000000000", got.TotalWei)
	assert.Equal(t, domain.TierWhale, got.Tier)
}

func TestQuoteCmd_BadAmount(t *testing.T) {
	_, err := run(t, new(mint.MockService), "quote", testHolder, "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")
}

func TestQuoteCmd_ServiceError(t *testing.T) {
	svc := new(mint.MockService)
	svc.On("Quote", mock.Anything, "nope", 1).Return(domain.Quote{}, domain.ErrInvalidAddress)

	_, err := run(t, svc, "quote", "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestTierCmd(t *testing.T) {
	svc := new(mint.MockService)
	svc.On("Eligibility", mock.Anything, testHolder).Return(domain.Allowance(domain.TierHolder), nil)

	out, err := run(t, svc, "tier", testHolder)
	require.NoError(t, err)
	assert.Contains(t, out, "tier:        holder")
	assert.Contains(t, out, "discounted:  5")
}

func TestPacksAndCardsCmd(t *testing.T) {
	svc := new(mint.MockService)
	svc.On("Packs", mock.Anything, testHolder).Return([]domain.Token{{ID: 12, Kind: domain.KindPack, Balance: 1, Name: "Pack 12"}}, nil)
	svc.On("Cards", mock.Anything, testHolder).Return(nil, nil)

	out, err := run(t, svc, "packs", testHolder)
	require.NoError(t, err)
	assert.Contains(t, out, "#12")
	assert.Contains(t, out, "Pack 12")

	out, err = run(t, svc, "cards", testHolder, "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestStatsCmd(t *testing.T) {
	svc := new(mint.MockService)
	svc.On("Stats", mock.Anything).Return(domain.CollectionStats{TotalSupply: 222, TotalMinted: 200, BurnedPacks: 150}, nil)

	out, err := run(t, svc, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "minted:     200 / 222")
	assert.Contains(t, out, "remaining:  22")
	assert.Contains(t, out, "unopened:   50")
}

func TestConfigErrorStopsCommand(t *testing.T) {
	t.Setenv("CONTRACT_ADDRESS", "not-an-address")
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"stats"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONTRACT_ADDRESS")
}

func newKeyfile(t *testing.T, pass string) (string, string) {
	t.Helper()
	ks := keystore.NewKeyStore(t.TempDir(), keystore.LightScryptN, keystore.LightScryptP)
	acct, err := ks.NewAccount(pass)
	require.NoError(t, err)
	return acct.URL.Path, acct.Address.Hex()
}

func TestMintCmd(t *testing.T) {
	path, _ := newKeyfile(t, "pw")
	t.Setenv(PassphraseEnv, "pw")

	svc := new(mint.MockService)
	svc.On("Mint", mock.Anything, 8).Return(whaleQuote(), domain.TxReceipt{Hash: "0xabc", BlockNumber: 42, GasUsed: 21000}, nil)

	out, err := run(t, svc, "mint", "8", "--keyfile", path)
	require.NoError(t, err)
	assert.Contains(t, out, "tx:          0xabc")
	assert.Contains(t, out, "block:       42")
}

func TestMintCmd_RequiresKeyfile(t *testing.T) {
	_, err := run(t, new(mint.MockService), "mint", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keyfile")
}

func TestMintCmd_MissingPassphrase(t *testing.T) {
	path, _ := newKeyfile(t, "pw")
	t.Setenv(PassphraseEnv, "")
	require.NoError(t, os.Unsetenv(PassphraseEnv))

	_, err := run(t, new(mint.MockService), "mint", "1", "--keyfile", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), PassphraseEnv)
}

func TestMintCmd_WrongPassphrase(t *testing.T) {
	path, _ := newKeyfile(t, "pw")
	t.Setenv(PassphraseEnv, "nope")

	_, err := run(t, new(mint.MockService), "mint", "1", "--keyfile", path)
	assert.ErrorIs(t, err, domain.ErrSignerUnavailable)
}

func TestOpenCmd_RescansCards(t *testing.T) {
	path, from := newKeyfile(t, "pw")
	t.Setenv(PassphraseEnv, "pw")

	svc := new(mint.MockService)
	svc.On("Open", mock.Anything, []uint64{3, 4}).Return(domain.TxReceipt{Hash: "0xdef", BlockNumber: 7}, nil)
	svc.On("Cards", mock.Anything, from).Return([]domain.Token{{ID: 300, Kind: domain.KindCard, Balance: 1}}, nil)

	out, err := run(t, svc, "open", "3", "4", "--keyfile", path)
	require.NoError(t, err)
	assert.Contains(t, out, "tx:          0xdef")
	assert.Contains(t, out, "#300")
	svc.AssertExpectations(t)
}

func TestOpenCmd_RescanFailure(t *testing.T) {
	path, from := newKeyfile(t, "pw")
	t.Setenv(PassphraseEnv, "pw")

	svc := new(mint.MockService)
	svc.On("Open", mock.Anything, []uint64{3}).Return(domain.TxReceipt{Hash: "0xdef"}, nil)
	svc.On("Cards", mock.Anything, from).Return(nil, errors.New("rpc down"))

	_, err := run(t, svc, "open", "3", "--keyfile", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0xdef")
}

func TestParsePackIDs(t *testing.T) {
	ids, err := parsePackIDs([]string{"1", "222"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 222}, ids)

	_, err = parsePackIDs([]string{"-1"})
	assert.Error(t, err)
}
