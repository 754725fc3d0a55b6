package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coralswap/coral/x/amm/types"
)

// CreatePool registers a pool for pairedDenom, escrows the initial deposits
// and mints the creator's initial shares. The share total is the geometric
// mean of the deposits; MinimalLiquidity of it is withheld and never minted,
// so the pool can never be drained back to empty reserves.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, pairedDenom string, baseAmount, pairedAmount uint64) (uint64, uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	cfg, err := k.RequireActive(ctx)
	if err != nil {
		return 0, 0, err
	}
	params := k.GetParams(ctx)

	// 1. Validate the pair
	if err := sdk.ValidateDenom(pairedDenom); err != nil {
		return 0, 0, types.ErrInvalidDenom.Wrapf("paired denom %q: %v", pairedDenom, err)
	}
	if pairedDenom == params.BaseDenom {
		return 0, 0, types.ErrInvalidDenom.Wrapf("pool cannot pair %s against itself", params.BaseDenom)
	}
	if existing, found := k.GetPoolIdByDenom(ctx, pairedDenom); found {
		return 0, 0, types.ErrPoolExists.Wrapf("pool %d already trades %s", existing, pairedDenom)
	}

	// 2. Validate the deposits against the pool value limit
	if baseAmount == 0 || pairedAmount == 0 {
		return 0, 0, types.ErrZeroAmount.Wrap("initial deposits must both be positive")
	}
	if types.ProductExceedsLimit(baseAmount, pairedAmount, types.FeeScale*types.MaxPoolValue) {
		return 0, 0, types.ErrPoolFull.Wrapf("initial deposit product %d*%d exceeds pool limit", baseAmount, pairedAmount)
	}
	if baseAmount >= types.MaxPoolValue || pairedAmount >= types.MaxPoolValue {
		return 0, 0, types.ErrPoolFull.Wrap("initial reserve exceeds max pool value")
	}

	// 3. Initial shares from the geometric mean of the deposits
	initialShares := types.Sqrt(baseAmount) * types.Sqrt(pairedAmount)
	if initialShares <= types.MinimalLiquidity {
		return 0, 0, types.ErrLiquidityNotEnough.Wrapf("initial shares %d not above minimal liquidity %d", initialShares, types.MinimalLiquidity)
	}
	mintedShares := initialShares - types.MinimalLiquidity

	poolId := k.GetNextPoolId(ctx)
	pool := types.Pool{
		Id:            poolId,
		PairedDenom:   pairedDenom,
		BaseReserve:   baseAmount,
		PairedReserve: pairedAmount,
		LpSupply:      initialShares,
		ConfigId:      cfg.Id,
	}

	// 4. Escrow deposits, mint shares and persist; nothing is visible on failure
	cacheCtx, writeFn := sdkCtx.CacheContext()

	deposits := sdk.NewCoins(
		sdk.NewCoin(params.BaseDenom, sdkmath.NewIntFromUint64(baseAmount)),
		sdk.NewCoin(pairedDenom, sdkmath.NewIntFromUint64(pairedAmount)),
	)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(cacheCtx, creator, types.ModuleName, deposits); err != nil {
		return 0, 0, fmt.Errorf("escrow initial deposits: %w", err)
	}

	lpCoins := sdk.NewCoins(sdk.NewCoin(pool.LpDenom(), sdkmath.NewIntFromUint64(mintedShares)))
	if err := k.bankKeeper.MintCoins(cacheCtx, types.ModuleName, lpCoins); err != nil {
		return 0, 0, fmt.Errorf("mint lp shares: %w", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, creator, lpCoins); err != nil {
		return 0, 0, fmt.Errorf("send lp shares: %w", err)
	}

	k.SetPool(cacheCtx, pool)
	k.SetPoolIdByDenom(cacheCtx, pairedDenom, poolId)
	k.SetNextPoolId(cacheCtx, poolId+1)
	writeFn()

	// Emit event (after successful commit)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPoolId, fmt.Sprintf("%d", poolId)),
			sdk.NewAttribute(types.AttributeKeyPairedDenom, pairedDenom),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyBaseAmount, fmt.Sprintf("%d", baseAmount)),
			sdk.NewAttribute(types.AttributeKeyPairedAmount, fmt.Sprintf("%d", pairedAmount)),
			sdk.NewAttribute(types.AttributeKeyShares, fmt.Sprintf("%d", mintedShares)),
		),
	)

	// Record metrics
	if k.metrics != nil {
		k.metrics.PoolsCreated.Inc()
		k.metrics.PoolsTotal.Set(float64(len(k.GetAllPools(ctx))))
		k.metrics.recordPoolGauges(params.BaseDenom, pool)
	}

	k.Logger(sdkCtx).Info("pool created",
		"pool_id", poolId,
		"paired_denom", pairedDenom,
		"base_reserve", baseAmount,
		"paired_reserve", pairedAmount,
		"minted_shares", mintedShares,
	)

	return poolId, mintedShares, nil
}

// GetNextPoolId returns the id the next created pool will take.
func (k Keeper) GetNextPoolId(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolCountKey)
	if bz == nil {
		return 1
	}
	return sdk.BigEndianToUint64(bz)
}

// SetNextPoolId stores the pool id counter.
func (k Keeper) SetNextPoolId(ctx context.Context, id uint64) {
	store := k.getStore(ctx)
	store.Set(types.PoolCountKey, sdk.Uint64ToBigEndian(id))
}

// GetPool returns a pool by id.
func (k Keeper) GetPool(ctx context.Context, poolId uint64) (types.Pool, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolKey(poolId))
	if bz == nil {
		return types.Pool{}, false
	}
	var pool types.Pool
	k.cdc.MustUnmarshal(bz, &pool)
	return pool, true
}

// SetPool persists a pool record.
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) {
	store := k.getStore(ctx)
	store.Set(types.PoolKey(pool.Id), k.cdc.MustMarshal(&pool))
}

// GetPoolIdByDenom resolves the pool registered for a paired denom.
func (k Keeper) GetPoolIdByDenom(ctx context.Context, pairedDenom string) (uint64, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolByDenomKey(pairedDenom))
	if bz == nil {
		return 0, false
	}
	return sdk.BigEndianToUint64(bz), true
}

// SetPoolIdByDenom writes the paired denom index entry.
func (k Keeper) SetPoolIdByDenom(ctx context.Context, pairedDenom string, poolId uint64) {
	store := k.getStore(ctx)
	store.Set(types.PoolByDenomKey(pairedDenom), sdk.Uint64ToBigEndian(poolId))
}

// GetAllPools returns every pool record ordered by id.
func (k Keeper) GetAllPools(ctx context.Context) []types.Pool {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKeyPrefix)
	defer iterator.Close()

	var pools []types.Pool
	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		k.cdc.MustUnmarshal(iterator.Value(), &pool)
		pools = append(pools, pool)
	}
	return pools
}

// GetReserves returns the tradable reserves and share supply of a pool.
func (k Keeper) GetReserves(ctx context.Context, poolId uint64) (uint64, uint64, uint64, error) {
	pool, found := k.GetPool(ctx, poolId)
	if !found {
		return 0, 0, 0, types.ErrPoolNotFound.Wrapf("pool %d", poolId)
	}
	return pool.BaseReserve, pool.PairedReserve, pool.LpSupply, nil
}
