package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/coralswap/coral/x/amm/types"
)

// BankStub is an in-memory stand-in for the bank keeper, tracking account
// balances and per-denom supplies for module tests.
type BankStub struct {
	balances map[string]sdk.Coins
	supply   map[string]sdkmath.Int
}

var _ types.BankKeeper = (*BankStub)(nil)

// NewBankStub returns an empty bank stub
func NewBankStub() *BankStub {
	return &BankStub{
		balances: make(map[string]sdk.Coins),
		supply:   make(map[string]sdkmath.Int),
	}
}

// FundAccount credits an account and the total supply, like a faucet mint.
func (b *BankStub) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	b.credit(addr.String(), coins)
	for _, c := range coins {
		b.addSupply(c.Denom, c.Amount)
	}
}

// Balance returns an account's balance of one denom.
func (b *BankStub) Balance(addr sdk.AccAddress, denom string) sdkmath.Int {
	return b.balances[addr.String()].AmountOf(denom)
}

// ModuleBalance returns a module account's balance of one denom.
func (b *BankStub) ModuleBalance(moduleName, denom string) sdkmath.Int {
	return b.balances[moduleAddr(moduleName)].AmountOf(denom)
}

func (b *BankStub) credit(addr string, coins sdk.Coins) {
	b.balances[addr] = b.balances[addr].Add(coins...)
}

func (b *BankStub) debit(addr string, coins sdk.Coins) error {
	cur := b.balances[addr]
	next, neg := cur.SafeSub(coins...)
	if neg {
		return fmt.Errorf("insufficient funds for %s: have %s, need %s", addr, cur, coins)
	}
	b.balances[addr] = next
	return nil
}

func (b *BankStub) addSupply(denom string, amt sdkmath.Int) {
	cur, ok := b.supply[denom]
	if !ok {
		cur = sdkmath.ZeroInt()
	}
	b.supply[denom] = cur.Add(amt)
}

func moduleAddr(moduleName string) string {
	return authtypes.NewModuleAddress(moduleName).String()
}

// SendCoinsFromAccountToModule implements types.BankKeeper
func (b *BankStub) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	if err := b.debit(senderAddr.String(), amt); err != nil {
		return err
	}
	b.credit(moduleAddr(recipientModule), amt)
	return nil
}

// SendCoinsFromModuleToAccount implements types.BankKeeper
func (b *BankStub) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	if err := b.debit(moduleAddr(senderModule), amt); err != nil {
		return err
	}
	b.credit(recipientAddr.String(), amt)
	return nil
}

// MintCoins implements types.BankKeeper
func (b *BankStub) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	b.credit(moduleAddr(moduleName), amt)
	for _, c := range amt {
		b.addSupply(c.Denom, c.Amount)
	}
	return nil
}

// BurnCoins implements types.BankKeeper
func (b *BankStub) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	if err := b.debit(moduleAddr(moduleName), amt); err != nil {
		return err
	}
	for _, c := range amt {
		cur, ok := b.supply[c.Denom]
		if !ok || cur.LT(c.Amount) {
			return fmt.Errorf("burn exceeds supply of %s", c.Denom)
		}
		b.supply[c.Denom] = cur.Sub(c.Amount)
	}
	return nil
}

// GetBalance implements types.BankKeeper
func (b *BankStub) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

// GetSupply implements types.BankKeeper
func (b *BankStub) GetSupply(_ context.Context, denom string) sdk.Coin {
	cur, ok := b.supply[denom]
	if !ok {
		cur = sdkmath.ZeroInt()
	}
	return sdk.NewCoin(denom, cur)
}
