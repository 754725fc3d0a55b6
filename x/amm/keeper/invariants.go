package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coralswap/coral/x/amm/types"
)

// RegisterInvariants registers all amm module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserve-caps", ReserveCapsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-balance", ModuleBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "lp-supply", LpSupplyInvariant(k))
}

// AllInvariants runs all invariants of the amm module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ReserveCapsInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = ModuleBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return LpSupplyInvariant(k)(ctx)
	}
}

// ReserveCapsInvariant checks every pool record against its structural
// bounds: balances below MaxPoolValue and share supply at or above the
// withheld floor.
func ReserveCapsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		for _, pool := range k.GetAllPools(ctx) {
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("\tpool %d: %v\n", pool.Id, err)
			}
		}
		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "reserve-caps",
			fmt.Sprintf("found %d pool(s) violating balance bounds\n%s", count, msg),
		), broken
	}
}

// ModuleBalanceInvariant checks the module account covers every pool's
// tradable and fee balances for each denom it escrows.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		params := k.GetParams(ctx)
		moduleAddr := k.GetModuleAddress()

		required := make(map[string]sdkmath.Int)
		add := func(denom string, amount uint64) {
			cur, ok := required[denom]
			if !ok {
				cur = sdkmath.ZeroInt()
			}
			required[denom] = cur.Add(sdkmath.NewIntFromUint64(amount))
		}
		for _, pool := range k.GetAllPools(ctx) {
			add(params.BaseDenom, pool.BaseReserve)
			add(params.BaseDenom, pool.BaseFeeReserve)
			add(pool.PairedDenom, pool.PairedReserve)
			add(pool.PairedDenom, pool.PairedFeeReserve)
		}
		for denom, amount := range required {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(amount) {
				count++
				msg += fmt.Sprintf("\tdenom %s: module balance %s below pool total %s\n", denom, balance.Amount, amount)
			}
		}
		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "module-balance",
			fmt.Sprintf("found %d denom(s) with module balance below pool totals\n%s", count, msg),
		), broken
	}
}

// LpSupplyInvariant checks each pool's recorded share supply against the
// bank supply of its LP denom. The bank supply excludes the never-minted
// MinimalLiquidity floor.
func LpSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		for _, pool := range k.GetAllPools(ctx) {
			supply := k.bankKeeper.GetSupply(ctx, pool.LpDenom())
			expected := sdkmath.NewIntFromUint64(pool.CirculatingShares())
			if !supply.Amount.Equal(expected) {
				count++
				msg += fmt.Sprintf("\tpool %d: lp denom supply %s, expected %s\n", pool.Id, supply.Amount, expected)
			}
		}
		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "lp-supply",
			fmt.Sprintf("found %d pool(s) with inconsistent lp supply\n%s", count, msg),
		), broken
	}
}
