package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coralswap/coral/x/amm/types"
)

// AddLiquidity deposits into an existing pool at the current reserve ratio.
// Only the ratio-adjusted optimal amounts are drawn from the provider; the
// remainder of the desired amounts never leaves their account. Shares are
// the geometric mean of the committed amounts.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolId, baseAmount, baseMin, pairedAmount, pairedMin uint64) (types.AddLiquidityResult, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	cfg, err := k.RequireActive(ctx)
	if err != nil {
		return types.AddLiquidityResult{}, err
	}
	pool, found := k.GetPool(ctx, poolId)
	if !found {
		return types.AddLiquidityResult{}, types.ErrPoolNotFound.Wrapf("pool %d", poolId)
	}
	if err := RequireConfigMatch(cfg, pool); err != nil {
		return types.AddLiquidityResult{}, err
	}

	// 1. Minimums must be positive and covered by the desired amounts
	if baseMin == 0 || baseAmount < baseMin {
		return types.AddLiquidityResult{}, types.ErrInsufficientBase.Wrapf("base amount %d below minimum %d", baseAmount, baseMin)
	}
	if pairedMin == 0 || pairedAmount < pairedMin {
		return types.AddLiquidityResult{}, types.ErrInsufficientPaired.Wrapf("paired amount %d below minimum %d", pairedAmount, pairedMin)
	}

	// 2. Resolve the amounts that keep the reserve ratio
	optimalBase, optimalPaired, err := types.CalcOptimalValues(baseAmount, pairedAmount, baseMin, pairedMin, pool.BaseReserve, pool.PairedReserve)
	if err != nil {
		return types.AddLiquidityResult{}, err
	}

	// 3. Shares and pool value guards
	if types.ProductExceedsLimit(optimalBase, optimalPaired, types.FeeScale*types.MaxPoolValue) {
		return types.AddLiquidityResult{}, types.ErrPoolFull.Wrap("deposit product exceeds pool limit")
	}
	sharesMinted := types.Sqrt(optimalBase) * types.Sqrt(optimalPaired)

	newBaseReserve, err := types.SafeAdd(pool.BaseReserve, optimalBase)
	if err != nil {
		return types.AddLiquidityResult{}, types.ErrPoolFull.Wrap("base reserve overflow")
	}
	newPairedReserve, err := types.SafeAdd(pool.PairedReserve, optimalPaired)
	if err != nil {
		return types.AddLiquidityResult{}, types.ErrPoolFull.Wrap("paired reserve overflow")
	}
	if newBaseReserve >= types.MaxPoolValue || newPairedReserve >= types.MaxPoolValue {
		return types.AddLiquidityResult{}, types.ErrPoolFull.Wrapf("post-deposit reserves %d/%d exceed max pool value", newBaseReserve, newPairedReserve)
	}
	newLpSupply, err := types.SafeAdd(pool.LpSupply, sharesMinted)
	if err != nil {
		return types.AddLiquidityResult{}, types.ErrPoolFull.Wrap("lp supply overflow")
	}

	pool.BaseReserve = newBaseReserve
	pool.PairedReserve = newPairedReserve
	pool.LpSupply = newLpSupply

	// 4. Escrow the optimal amounts, mint shares and persist
	params := k.GetParams(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()

	deposit := sdk.NewCoins(
		sdk.NewCoin(params.BaseDenom, sdkmath.NewIntFromUint64(optimalBase)),
		sdk.NewCoin(pool.PairedDenom, sdkmath.NewIntFromUint64(optimalPaired)),
	)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, provider, types.ModuleName, deposit); err != nil {
		return types.AddLiquidityResult{}, fmt.Errorf("escrow deposit: %w", err)
	}
	lpCoins := sdk.NewCoins(sdk.NewCoin(pool.LpDenom(), sdkmath.NewIntFromUint64(sharesMinted)))
	if err := k.bankKeeper.MintCoins(cacheCtx, types.ModuleName, lpCoins); err != nil {
		return types.AddLiquidityResult{}, fmt.Errorf("mint lp shares: %w", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, provider, lpCoins); err != nil {
		return types.AddLiquidityResult{}, fmt.Errorf("send lp shares: %w", err)
	}
	k.SetPool(cacheCtx, pool)
	writeFn()

	// Emit event (after successful commit)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityAdded,
			sdk.NewAttribute(types.AttributeKeyPoolId, fmt.Sprintf("%d", poolId)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyBaseAmount, fmt.Sprintf("%d", optimalBase)),
			sdk.NewAttribute(types.AttributeKeyPairedAmount, fmt.Sprintf("%d", optimalPaired)),
			sdk.NewAttribute(types.AttributeKeyShares, fmt.Sprintf("%d", sharesMinted)),
		),
	)

	// Record metrics
	if k.metrics != nil {
		poolIdStr := fmt.Sprintf("%d", poolId)
		k.metrics.LiquidityAdded.WithLabelValues(poolIdStr, params.BaseDenom).Add(float64(optimalBase))
		k.metrics.LiquidityAdded.WithLabelValues(poolIdStr, pool.PairedDenom).Add(float64(optimalPaired))
		k.metrics.recordPoolGauges(params.BaseDenom, pool)
	}

	k.Logger(sdkCtx).Info("liquidity added",
		"pool_id", poolId,
		"optimal_base", optimalBase,
		"optimal_paired", optimalPaired,
		"shares_minted", sharesMinted,
	)

	return types.AddLiquidityResult{
		OptimalBase:   optimalBase,
		OptimalPaired: optimalPaired,
		SharesMinted:  sharesMinted,
	}, nil
}

// RemoveLiquidity redeems lpAmount shares for a proportional slice of both
// reserves, rounded down in the pool's favor. The withheld MinimalLiquidity
// floor is not redeemable, so reserves never reach zero. There is no
// minimum-output protection on withdrawals.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolId, lpAmount uint64) (uint64, uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	cfg, err := k.RequireActive(ctx)
	if err != nil {
		return 0, 0, err
	}
	pool, found := k.GetPool(ctx, poolId)
	if !found {
		return 0, 0, types.ErrPoolNotFound.Wrapf("pool %d", poolId)
	}
	if err := RequireConfigMatch(cfg, pool); err != nil {
		return 0, 0, err
	}

	// 1. Validate the redemption
	if lpAmount == 0 {
		return 0, 0, types.ErrZeroAmount.Wrap("lp amount cannot be zero")
	}
	if circulating := pool.CirculatingShares(); lpAmount > circulating {
		return 0, 0, types.ErrInsufficientShares.Wrapf("redeeming %d of %d circulating shares", lpAmount, circulating)
	}

	// 2. Proportional payout, floored on both sides
	baseOut, err := types.MulDiv(pool.BaseReserve, lpAmount, pool.LpSupply)
	if err != nil {
		return 0, 0, err
	}
	pairedOut, err := types.MulDiv(pool.PairedReserve, lpAmount, pool.LpSupply)
	if err != nil {
		return 0, 0, err
	}

	pool.BaseReserve -= baseOut
	pool.PairedReserve -= pairedOut
	pool.LpSupply -= lpAmount

	// 3. Collect and burn the shares, pay out, persist
	params := k.GetParams(ctx)
	cacheCtx, writeFn := sdkCtx.CacheContext()

	lpCoins := sdk.NewCoins(sdk.NewCoin(pool.LpDenom(), sdkmath.NewIntFromUint64(lpAmount)))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, provider, types.ModuleName, lpCoins); err != nil {
		return 0, 0, types.ErrInsufficientShares.Wrapf("collect lp shares: %v", err)
	}
	if err := k.bankKeeper.BurnCoins(cacheCtx, types.ModuleName, lpCoins); err != nil {
		return 0, 0, fmt.Errorf("burn lp shares: %w", err)
	}
	payout := sdk.NewCoins(
		sdk.NewCoin(params.BaseDenom, sdkmath.NewIntFromUint64(baseOut)),
		sdk.NewCoin(pool.PairedDenom, sdkmath.NewIntFromUint64(pairedOut)),
	)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, provider, payout); err != nil {
		return 0, 0, fmt.Errorf("send withdrawal: %w", err)
	}
	k.SetPool(cacheCtx, pool)
	writeFn()

	// Emit event (after successful commit)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeyPoolId, fmt.Sprintf("%d", poolId)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyBaseAmount, fmt.Sprintf("%d", baseOut)),
			sdk.NewAttribute(types.AttributeKeyPairedAmount, fmt.Sprintf("%d", pairedOut)),
			sdk.NewAttribute(types.AttributeKeyShares, fmt.Sprintf("%d", lpAmount)),
		),
	)

	// Record metrics
	if k.metrics != nil {
		poolIdStr := fmt.Sprintf("%d", poolId)
		k.metrics.LiquidityRemoved.WithLabelValues(poolIdStr, params.BaseDenom).Add(float64(baseOut))
		k.metrics.LiquidityRemoved.WithLabelValues(poolIdStr, pool.PairedDenom).Add(float64(pairedOut))
		k.metrics.recordPoolGauges(params.BaseDenom, pool)
	}

	k.Logger(sdkCtx).Info("liquidity removed",
		"pool_id", poolId,
		"lp_amount", lpAmount,
		"base_out", baseOut,
		"paired_out", pairedOut,
	)

	return baseOut, pairedOut, nil
}
