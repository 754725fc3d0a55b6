package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coralswap/coral/x/amm/types"
)

// SwapBaseForPaired sells baseIn of the base asset against poolId,
// requiring at least pairedMinOut of the paired asset back.
func (k Keeper) SwapBaseForPaired(ctx context.Context, trader sdk.AccAddress, poolId, baseIn, pairedMinOut uint64) (types.SwapResult, error) {
	return k.executeSwap(ctx, trader, poolId, baseIn, pairedMinOut, true)
}

// SwapPairedForBase sells pairedIn of the paired asset against poolId,
// requiring at least baseMinOut of the base asset back.
func (k Keeper) SwapPairedForBase(ctx context.Context, trader sdk.AccAddress, poolId, pairedIn, baseMinOut uint64) (types.SwapResult, error) {
	return k.executeSwap(ctx, trader, poolId, pairedIn, baseMinOut, false)
}

// executeSwap prices amountIn on the fee-adjusted constant-product curve
// and settles both legs. The full post-swap pool state is computed and
// validated before anything is written, so a failing swap leaves no trace.
func (k Keeper) executeSwap(ctx context.Context, trader sdk.AccAddress, poolId, amountIn, minOut uint64, sellBase bool) (types.SwapResult, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	cfg, err := k.RequireActive(ctx)
	if err != nil {
		return types.SwapResult{}, err
	}
	pool, found := k.GetPool(ctx, poolId)
	if !found {
		return types.SwapResult{}, types.ErrPoolNotFound.Wrapf("pool %d", poolId)
	}
	if err := RequireConfigMatch(cfg, pool); err != nil {
		return types.SwapResult{}, err
	}

	// 1. Validate input and reserves
	if amountIn == 0 {
		return types.SwapResult{}, types.ErrZeroAmount.Wrap("swap input cannot be zero")
	}
	if pool.BaseReserve == 0 || pool.PairedReserve == 0 {
		return types.SwapResult{}, types.ErrReservesEmpty.Wrapf("pool %d reserves %d/%d", poolId, pool.BaseReserve, pool.PairedReserve)
	}

	reserveIn, reserveOut := pool.BaseReserve, pool.PairedReserve
	if !sellBase {
		reserveIn, reserveOut = pool.PairedReserve, pool.BaseReserve
	}

	// 2. Fee on the input, output from the curve
	fee, err := types.SwapFee(amountIn)
	if err != nil {
		return types.SwapResult{}, err
	}
	amountOut, err := types.GetAmountOut(amountIn, reserveIn, reserveOut)
	if err != nil {
		return types.SwapResult{}, err
	}
	if amountOut < minOut {
		return types.SwapResult{}, types.ErrSlippageExceeded.Wrapf("expected at least %d, got %d", minOut, amountOut)
	}

	// 3. Prospective pool state; the fee stays out of the tradable reserve
	newReserveIn, err := types.SafeAdd(reserveIn, amountIn-fee)
	if err != nil {
		return types.SwapResult{}, types.ErrPoolFull.Wrap("reserve overflow")
	}
	newReserveOut := reserveOut - amountOut

	params := k.GetParams(ctx)
	result := types.SwapResult{Fee: fee}
	var denomIn, denomOut string
	if sellBase {
		pool.BaseReserve = newReserveIn
		pool.PairedReserve = newReserveOut
		newFeeReserve, err := types.SafeAdd(pool.BaseFeeReserve, fee)
		if err != nil {
			return types.SwapResult{}, types.ErrPoolFull.Wrap("fee reserve overflow")
		}
		pool.BaseFeeReserve = newFeeReserve
		result.BaseIn = amountIn
		result.PairedOut = amountOut
		denomIn, denomOut = params.BaseDenom, pool.PairedDenom
	} else {
		pool.PairedReserve = newReserveIn
		pool.BaseReserve = newReserveOut
		newFeeReserve, err := types.SafeAdd(pool.PairedFeeReserve, fee)
		if err != nil {
			return types.SwapResult{}, types.ErrPoolFull.Wrap("fee reserve overflow")
		}
		pool.PairedFeeReserve = newFeeReserve
		result.PairedIn = amountIn
		result.BaseOut = amountOut
		denomIn, denomOut = pool.PairedDenom, params.BaseDenom
	}
	if pool.BaseReserve >= types.MaxPoolValue || pool.PairedReserve >= types.MaxPoolValue ||
		pool.BaseFeeReserve >= types.MaxPoolValue || pool.PairedFeeReserve >= types.MaxPoolValue {
		return types.SwapResult{}, types.ErrPoolFull.Wrap("post-swap balances exceed max pool value")
	}

	// 4. Settle both legs and persist
	cacheCtx, writeFn := sdkCtx.CacheContext()

	inCoins := sdk.NewCoins(sdk.NewCoin(denomIn, sdkmath.NewIntFromUint64(amountIn)))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, trader, types.ModuleName, inCoins); err != nil {
		return types.SwapResult{}, fmt.Errorf("escrow swap input: %w", err)
	}
	outCoins := sdk.NewCoins(sdk.NewCoin(denomOut, sdkmath.NewIntFromUint64(amountOut)))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, trader, outCoins); err != nil {
		return types.SwapResult{}, fmt.Errorf("send swap output: %w", err)
	}
	k.SetPool(cacheCtx, pool)
	writeFn()

	// Emit event carrying the settled four-tuple (after successful commit)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolId, fmt.Sprintf("%d", poolId)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyBaseIn, fmt.Sprintf("%d", result.BaseIn)),
			sdk.NewAttribute(types.AttributeKeyBaseOut, fmt.Sprintf("%d", result.BaseOut)),
			sdk.NewAttribute(types.AttributeKeyPairedIn, fmt.Sprintf("%d", result.PairedIn)),
			sdk.NewAttribute(types.AttributeKeyPairedOut, fmt.Sprintf("%d", result.PairedOut)),
			sdk.NewAttribute(types.AttributeKeyFee, fmt.Sprintf("%d", fee)),
		),
	)

	// Record metrics
	if k.metrics != nil {
		poolIdStr := fmt.Sprintf("%d", poolId)
		direction := "base_for_paired"
		if !sellBase {
			direction = "paired_for_base"
		}
		k.metrics.SwapsTotal.WithLabelValues(poolIdStr, direction).Inc()
		k.metrics.SwapVolume.WithLabelValues(poolIdStr, denomIn).Add(float64(amountIn))
		k.metrics.SwapFeesCollected.WithLabelValues(poolIdStr, denomIn).Add(float64(fee))
		k.metrics.recordPoolGauges(params.BaseDenom, pool)
	}

	k.Logger(sdkCtx).Debug("swap executed",
		"pool_id", poolId,
		"denom_in", denomIn,
		"amount_in", amountIn,
		"amount_out", amountOut,
		"fee", fee,
	)

	return result, nil
}

// Price quotes the output of selling amountIn of denomIn against the live
// reserves without touching state.
func (k Keeper) Price(ctx context.Context, poolId uint64, denomIn string, amountIn uint64) (uint64, error) {
	pool, found := k.GetPool(ctx, poolId)
	if !found {
		return 0, types.ErrPoolNotFound.Wrapf("pool %d", poolId)
	}
	params := k.GetParams(ctx)

	var reserveIn, reserveOut uint64
	switch denomIn {
	case params.BaseDenom:
		reserveIn, reserveOut = pool.BaseReserve, pool.PairedReserve
	case pool.PairedDenom:
		reserveIn, reserveOut = pool.PairedReserve, pool.BaseReserve
	default:
		return 0, types.ErrInvalidDenom.Wrapf("%s is not traded by pool %d", denomIn, poolId)
	}

	if amountIn == 0 {
		return 0, types.ErrZeroAmount.Wrap("quote input cannot be zero")
	}
	return types.GetAmountOut(amountIn, reserveIn, reserveOut)
}

// SpotPrice returns the marginal reserveOut/reserveIn price for denomIn
// before fees, as a decimal.
func (k Keeper) SpotPrice(ctx context.Context, poolId uint64, denomIn string) (sdkmath.LegacyDec, error) {
	pool, found := k.GetPool(ctx, poolId)
	if !found {
		return sdkmath.LegacyDec{}, types.ErrPoolNotFound.Wrapf("pool %d", poolId)
	}
	params := k.GetParams(ctx)

	var reserveIn, reserveOut uint64
	switch denomIn {
	case params.BaseDenom:
		reserveIn, reserveOut = pool.BaseReserve, pool.PairedReserve
	case pool.PairedDenom:
		reserveIn, reserveOut = pool.PairedReserve, pool.BaseReserve
	default:
		return sdkmath.LegacyDec{}, types.ErrInvalidDenom.Wrapf("%s is not traded by pool %d", denomIn, poolId)
	}
	if reserveIn == 0 {
		return sdkmath.LegacyDec{}, types.ErrReservesEmpty.Wrapf("pool %d has no %s reserve", poolId, denomIn)
	}
	return sdkmath.LegacyNewDecFromInt(sdkmath.NewIntFromUint64(reserveOut)).
		QuoInt(sdkmath.NewIntFromUint64(reserveIn)), nil
}
