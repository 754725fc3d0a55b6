package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coralswap/coral/x/amm/types"
)

// WithdrawFees drains both fee reserves of a pool to zero and pays them out
// to the recipient in one atomic step. A failure on either payout leg leaves
// both fee balances untouched. Tradable reserves are never affected.
func (k Keeper) WithdrawFees(ctx context.Context, recipient sdk.AccAddress, poolId uint64) (uint64, uint64, error) {
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

	feeBase := pool.BaseFeeReserve
	feePaired := pool.PairedFeeReserve
	if feeBase == 0 && feePaired == 0 {
		return 0, 0, nil
	}

	pool.BaseFeeReserve = 0
	pool.PairedFeeReserve = 0

	params := k.GetParams(ctx)
	payout := sdk.NewCoins(
		sdk.NewCoin(params.BaseDenom, sdkmath.NewIntFromUint64(feeBase)),
		sdk.NewCoin(pool.PairedDenom, sdkmath.NewIntFromUint64(feePaired)),
	)

	// Reset and pay out together; discard both on failure
	cacheCtx, writeFn := sdkCtx.CacheContext()
	k.SetPool(cacheCtx, pool)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, recipient, payout); err != nil {
		return 0, 0, fmt.Errorf("send fee withdrawal: %w", err)
	}
	writeFn()

	// Emit event (after successful commit)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeesWithdrawn,
			sdk.NewAttribute(types.AttributeKeyPoolId, fmt.Sprintf("%d", poolId)),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyBaseAmount, fmt.Sprintf("%d", feeBase)),
			sdk.NewAttribute(types.AttributeKeyPairedAmount, fmt.Sprintf("%d", feePaired)),
		),
	)

	// Record metrics
	if k.metrics != nil {
		poolIdStr := fmt.Sprintf("%d", poolId)
		k.metrics.FeesWithdrawn.WithLabelValues(poolIdStr, params.BaseDenom).Add(float64(feeBase))
		k.metrics.FeesWithdrawn.WithLabelValues(poolIdStr, pool.PairedDenom).Add(float64(feePaired))
	}

	k.Logger(sdkCtx).Info("fees withdrawn",
		"pool_id", poolId,
		"recipient", recipient.String(),
		"fee_base", feeBase,
		"fee_paired", feePaired,
	)

	return feeBase, feePaired, nil
}
