package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	keepertest "github.com/coralswap/coral/testutil/keeper"
	"github.com/coralswap/coral/x/amm/keeper"
	"github.com/coralswap/coral/x/amm/types"
)

// TestQueryNilRequests tests every handler rejects a nil request
func TestQueryNilRequests(t *testing.T) {
	k, ctx := keepertest.AMMKeeper(t)
	qs := keeper.NewQueryServerImpl(k)

	_, err := qs.Params(ctx, nil)
	require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)
	_, err = qs.Config(ctx, nil)
	require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)
	_, err = qs.Pool(ctx, nil)
	require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)
	_, err = qs.Pools(ctx, nil)
	require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)
	_, err = qs.Reserves(ctx, nil)
	require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)
	_, err = qs.Price(ctx, nil)
	require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)
}

// TestQueryParams tests the params query returns the stored params
func TestQueryParams(t *testing.T) {
	k, ctx := keepertest.AMMKeeper(t)
	qs := keeper.NewQueryServerImpl(k)

	resp, err := qs.Params(ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, types.DefaultBaseDenom, resp.Params.BaseDenom)
}

// TestQueryConfig tests the config query returns the stored config
func TestQueryConfig(t *testing.T) {
	k, ctx := keepertest.AMMKeeper(t)
	qs := keeper.NewQueryServerImpl(k)

	resp, err := qs.Config(ctx, &types.QueryConfigRequest{})
	require.NoError(t, err)
	require.Equal(t, types.DefaultConfigId, resp.Config.Id)
	require.False(t, resp.Config.Paused)
}

// TestQueryPool tests pool lookup by id
func TestQueryPool(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	qs := keeper.NewQueryServerImpl(k)
	poolId := createTestPool(t, k, bank, ctx, 10000, 20000)

	resp, err := qs.Pool(ctx, &types.QueryPoolRequest{PoolId: poolId})
	require.NoError(t, err)
	require.Equal(t, poolId, resp.Pool.Id)
	require.Equal(t, testPairedDenom, resp.Pool.PairedDenom)
	require.Equal(t, uint64(10000), resp.Pool.BaseReserve)
	require.Equal(t, uint64(20000), resp.Pool.PairedReserve)

	_, err = qs.Pool(ctx, &types.QueryPoolRequest{PoolId: 99})
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

// TestQueryPools_Pagination tests offset pagination over the pool set
func TestQueryPools_Pagination(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	qs := keeper.NewQueryServerImpl(k)

	creator := testAddr("pool_creator")
	for _, denom := range []string{testPairedDenom, testSecondDenom, testThirdDenom} {
		bank.FundAccount(creator, sdk.NewCoins(
			sdk.NewCoin(types.DefaultBaseDenom, sdkmath.NewIntFromUint64(10000)),
			sdk.NewCoin(denom, sdkmath.NewIntFromUint64(10000)),
		))
		_, _, err := k.CreatePool(ctx, creator, denom, 10000, 10000)
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		req     types.QueryPoolsRequest
		wantIds []uint64
	}{
		{
			name:    "default limit returns everything",
			req:     types.QueryPoolsRequest{},
			wantIds: []uint64{1, 2, 3},
		},
		{
			name:    "limit trims the page",
			req:     types.QueryPoolsRequest{Limit: 2},
			wantIds: []uint64{1, 2},
		},
		{
			name:    "offset skips ahead",
			req:     types.QueryPoolsRequest{Offset: 2},
			wantIds: []uint64{3},
		},
		{
			name:    "offset and limit combine",
			req:     types.QueryPoolsRequest{Offset: 1, Limit: 1},
			wantIds: []uint64{2},
		},
		{
			name:    "offset past the end yields an empty page",
			req:     types.QueryPoolsRequest{Offset: 5},
			wantIds: []uint64{},
		},
		{
			name:    "oversized limit is clamped, not rejected",
			req:     types.QueryPoolsRequest{Limit: 5000},
			wantIds: []uint64{1, 2, 3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := qs.Pools(ctx, &tc.req)
			require.NoError(t, err)
			require.Equal(t, uint64(3), resp.Total)
			gotIds := make([]uint64, 0, len(resp.Pools))
			for _, p := range resp.Pools {
				gotIds = append(gotIds, p.Id)
			}
			require.Equal(t, tc.wantIds, gotIds)
		})
	}
}

// TestQueryReserves tests the reserves query reflects the pool record
func TestQueryReserves(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	qs := keeper.NewQueryServerImpl(k)
	poolId := createTestPool(t, k, bank, ctx, 10000, 20000)

	resp, err := qs.Reserves(ctx, &types.QueryReservesRequest{PoolId: poolId})
	require.NoError(t, err)
	require.Equal(t, uint64(10000), resp.BaseReserve)
	require.Equal(t, uint64(20000), resp.PairedReserve)
	require.Equal(t, uint64(14100), resp.LpSupply)

	_, err = qs.Reserves(ctx, &types.QueryReservesRequest{PoolId: 99})
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

// TestQueryPrice tests quotes match the swap curve without touching state
func TestQueryPrice(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	qs := keeper.NewQueryServerImpl(k)
	poolId := createTestPool(t, k, bank, ctx, 1000000, 500000)

	resp, err := qs.Price(ctx, &types.QueryPriceRequest{PoolId: poolId, DenomIn: types.DefaultBaseDenom, AmountIn: 10000})
	require.NoError(t, err)
	require.Equal(t, uint64(4935), resp.AmountOut)
	require.Equal(t, sdkmath.LegacyMustNewDecFromStr("0.5"), resp.SpotPrice)

	resp, err = qs.Price(ctx, &types.QueryPriceRequest{PoolId: poolId, DenomIn: testPairedDenom, AmountIn: 10000})
	require.NoError(t, err)
	require.Equal(t, uint64(19550), resp.AmountOut)
	require.Equal(t, sdkmath.LegacyMustNewDecFromStr("2.0"), resp.SpotPrice)

	_, err = qs.Price(ctx, &types.QueryPriceRequest{PoolId: poolId, DenomIn: "uunknown", AmountIn: 10000})
	require.ErrorIs(t, err, types.ErrInvalidDenom)

	_, err = qs.Price(ctx, &types.QueryPriceRequest{PoolId: poolId, DenomIn: types.DefaultBaseDenom, AmountIn: 0})
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, err = qs.Price(ctx, &types.QueryPriceRequest{PoolId: 99, DenomIn: types.DefaultBaseDenom, AmountIn: 10000})
	require.ErrorIs(t, err, types.ErrPoolNotFound)

	// Quoting never mutates the pool
	pool, found := k.GetPool(ctx, poolId)
	require.True(t, found)
	require.Equal(t, uint64(1000000), pool.BaseReserve)
	require.Equal(t, uint64(500000), pool.PairedReserve)
}
