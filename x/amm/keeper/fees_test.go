package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/coralswap/coral/testutil/keeper"
	"github.com/coralswap/coral/x/amm/types"
)

// TestWithdrawFees_DrainsBothSides tests fee reserves on both sides pay out
// together and tradable reserves stay untouched
func TestWithdrawFees_DrainsBothSides(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	poolId := createTestPool(t, k, bank, ctx, 1000000, 1000000)

	trader := testAddr("trader")
	fundPair(bank, trader, 10000, 10000)

	_, err := k.SwapBaseForPaired(ctx, trader, poolId, 10000, 0)
	require.NoError(t, err)
	_, err = k.SwapPairedForBase(ctx, trader, poolId, 10000, 0)
	require.NoError(t, err)

	pool, found := k.GetPool(ctx, poolId)
	require.True(t, found)
	require.Equal(t, uint64(30), pool.BaseFeeReserve)
	require.Equal(t, uint64(30), pool.PairedFeeReserve)

	recipient := testAddr("fee_recipient")
	feeBase, feePaired, err := k.WithdrawFees(ctx, recipient, poolId)
	require.NoError(t, err)
	require.Equal(t, uint64(30), feeBase)
	require.Equal(t, uint64(30), feePaired)

	after, found := k.GetPool(ctx, poolId)
	require.True(t, found)
	require.Equal(t, uint64(0), after.BaseFeeReserve)
	require.Equal(t, uint64(0), after.PairedFeeReserve)
	require.Equal(t, pool.BaseReserve, after.BaseReserve)
	require.Equal(t, pool.PairedReserve, after.PairedReserve)
	require.Equal(t, pool.LpSupply, after.LpSupply)

	require.Equal(t, int64(30), bank.Balance(recipient, types.DefaultBaseDenom).Int64())
	require.Equal(t, int64(30), bank.Balance(recipient, testPairedDenom).Int64())
}

// TestWithdrawFees_NothingAccrued tests the no-op when no fees are pending
func TestWithdrawFees_NothingAccrued(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	poolId := createTestPool(t, k, bank, ctx, 1000000, 1000000)

	recipient := testAddr("fee_recipient")
	feeBase, feePaired, err := k.WithdrawFees(ctx, recipient, poolId)
	require.NoError(t, err)
	require.Equal(t, uint64(0), feeBase)
	require.Equal(t, uint64(0), feePaired)
	require.Equal(t, int64(0), bank.Balance(recipient, types.DefaultBaseDenom).Int64())
}

// TestWithdrawFees_OneSided tests a payout when only one side accrued
func TestWithdrawFees_OneSided(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	poolId := createTestPool(t, k, bank, ctx, 1000000, 1000000)

	trader := testAddr("trader")
	fundPair(bank, trader, 10000, 0)
	_, err := k.SwapBaseForPaired(ctx, trader, poolId, 10000, 0)
	require.NoError(t, err)

	recipient := testAddr("fee_recipient")
	feeBase, feePaired, err := k.WithdrawFees(ctx, recipient, poolId)
	require.NoError(t, err)
	require.Equal(t, uint64(30), feeBase)
	require.Equal(t, uint64(0), feePaired)
	require.Equal(t, int64(30), bank.Balance(recipient, types.DefaultBaseDenom).Int64())
	require.Equal(t, int64(0), bank.Balance(recipient, testPairedDenom).Int64())
}

// TestWithdrawFees_FailedPayoutKeepsFees tests a failed payout leg leaves
// both fee reserves in place
func TestWithdrawFees_FailedPayoutKeepsFees(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	poolId := createTestPool(t, k, bank, ctx, 1000000, 1000000)

	// Fee reserve staged past what the module account holds
	pool, found := k.GetPool(ctx, poolId)
	require.True(t, found)
	pool.BaseFeeReserve = 2000000
	k.SetPool(ctx, pool)

	recipient := testAddr("fee_recipient")
	_, _, err := k.WithdrawFees(ctx, recipient, poolId)
	require.Error(t, err)

	after, found := k.GetPool(ctx, poolId)
	require.True(t, found)
	require.Equal(t, uint64(2000000), after.BaseFeeReserve)
	require.Equal(t, int64(0), bank.Balance(recipient, types.DefaultBaseDenom).Int64())
	require.Equal(t, int64(1000000), bank.ModuleBalance(types.ModuleName, types.DefaultBaseDenom).Int64())
}

// TestWithdrawFees_Paused tests withdrawal is suspended under pause
func TestWithdrawFees_Paused(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	poolId := createTestPool(t, k, bank, ctx, 1000000, 1000000)

	require.NoError(t, k.Pause(ctx))

	recipient := testAddr("fee_recipient")
	_, _, err := k.WithdrawFees(ctx, recipient, poolId)
	require.ErrorIs(t, err, types.ErrEmergencyPaused)
}

// TestWithdrawFees_PoolNotFound tests withdrawal from unknown pools
func TestWithdrawFees_PoolNotFound(t *testing.T) {
	k, _, ctx := keepertest.AMMKeeperWithBank(t)

	recipient := testAddr("fee_recipient")
	_, _, err := k.WithdrawFees(ctx, recipient, 42)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}
