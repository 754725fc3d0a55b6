package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/coralswap/coral/testutil/keeper"
	"github.com/coralswap/coral/x/amm/keeper"
	"github.com/coralswap/coral/x/amm/types"
)

// TestReserveCapsInvariant tests detection of out-of-bounds pool records
func TestReserveCapsInvariant(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	poolId := createTestPool(t, k, bank, ctx, 1000000, 1000000)

	_, broken := keeper.ReserveCapsInvariant(k)(ctx)
	require.False(t, broken)

	pool, found := k.GetPool(ctx, poolId)
	require.True(t, found)
	pool.BaseReserve = types.MaxPoolValue
	k.SetPool(ctx, pool)

	msg, broken := keeper.ReserveCapsInvariant(k)(ctx)
	require.True(t, broken, msg)
}

// TestModuleBalanceInvariant tests detection of under-collateralized pools
func TestModuleBalanceInvariant(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	createTestPool(t, k, bank, ctx, 1000000, 1000000)

	_, broken := keeper.ModuleBalanceInvariant(k)(ctx)
	require.False(t, broken)

	// A pool record with no coins behind it
	k.SetPool(ctx, types.Pool{
		Id:            7,
		PairedDenom:   testSecondDenom,
		BaseReserve:   1000,
		PairedReserve: 1000,
		LpSupply:      2000,
		ConfigId:      types.DefaultConfigId,
	})

	msg, broken := keeper.ModuleBalanceInvariant(k)(ctx)
	require.True(t, broken, msg)
}

// TestLpSupplyInvariant tests detection of share supply drift
func TestLpSupplyInvariant(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	poolId := createTestPool(t, k, bank, ctx, 1000000, 1000000)

	_, broken := keeper.LpSupplyInvariant(k)(ctx)
	require.False(t, broken)

	pool, found := k.GetPool(ctx, poolId)
	require.True(t, found)
	pool.LpSupply += 500
	k.SetPool(ctx, pool)

	msg, broken := keeper.LpSupplyInvariant(k)(ctx)
	require.True(t, broken, msg)
}

// TestAllInvariants tests a full workload leaves every invariant intact
func TestAllInvariants(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	poolId := createTestPool(t, k, bank, ctx, 1000000, 1000000)
	creator := testAddr("pool_creator")

	provider := testAddr("provider")
	fundPair(bank, provider, 50000, 50000)
	_, err := k.AddLiquidity(ctx, provider, poolId, 50000, 1, 50000, 1)
	require.NoError(t, err)

	trader := testAddr("trader")
	fundPair(bank, trader, 10000, 10000)
	_, err = k.SwapBaseForPaired(ctx, trader, poolId, 10000, 0)
	require.NoError(t, err)
	_, err = k.SwapPairedForBase(ctx, trader, poolId, 10000, 0)
	require.NoError(t, err)

	_, _, err = k.RemoveLiquidity(ctx, creator, poolId, 250000)
	require.NoError(t, err)

	recipient := testAddr("fee_recipient")
	_, _, err = k.WithdrawFees(ctx, recipient, poolId)
	require.NoError(t, err)

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}
