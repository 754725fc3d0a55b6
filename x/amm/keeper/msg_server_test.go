package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/coralswap/coral/testutil/keeper"
	"github.com/coralswap/coral/x/amm/keeper"
	"github.com/coralswap/coral/x/amm/types"
)

// TestMsgServerCreatePool_Permissionless tests anyone may create pools while
// no pool operator is bound
func TestMsgServerCreatePool_Permissionless(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	ms := keeper.NewMsgServerImpl(k)

	creator := types.TestAddr()
	fundPair(bank, creator, 10000, 10000)

	resp, err := ms.CreatePool(ctx, types.NewMsgCreatePool(creator.String(), testPairedDenom, 10000, 10000))
	require.NoError(t, err)
	require.Equal(t, uint64(1), resp.PoolId)
	require.Equal(t, uint64(9000), resp.MintedShares)
}

// TestMsgServerCreatePool_OperatorGate tests creation is restricted once an
// operator is bound
func TestMsgServerCreatePool_OperatorGate(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	ms := keeper.NewMsgServerImpl(k)

	operator := testAddr("pool_operator")
	cfg, found := k.GetConfig(ctx)
	require.True(t, found)
	cfg.PoolOperator = operator.String()
	k.SetConfig(ctx, cfg)

	outsider := testAddr("outsider")
	fundPair(bank, outsider, 10000, 10000)
	_, err := ms.CreatePool(ctx, types.NewMsgCreatePool(outsider.String(), testPairedDenom, 10000, 10000))
	require.ErrorIs(t, err, types.ErrNoPermissions)

	fundPair(bank, operator, 10000, 10000)
	resp, err := ms.CreatePool(ctx, types.NewMsgCreatePool(operator.String(), testPairedDenom, 10000, 10000))
	require.NoError(t, err)
	require.Equal(t, uint64(1), resp.PoolId)
}

// TestMsgServerCreatePool_InvalidMsg tests stateless validation runs first
func TestMsgServerCreatePool_InvalidMsg(t *testing.T) {
	k, _, ctx := keepertest.AMMKeeperWithBank(t)
	ms := keeper.NewMsgServerImpl(k)

	_, err := ms.CreatePool(ctx, types.NewMsgCreatePool(types.TestAddr().String(), testPairedDenom, 0, 10000))
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, err = ms.CreatePool(ctx, types.NewMsgCreatePool("invalid", testPairedDenom, 10000, 10000))
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

// TestMsgServerAddLiquidity tests the deposit handler round trip
func TestMsgServerAddLiquidity(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	ms := keeper.NewMsgServerImpl(k)
	poolId := createTestPool(t, k, bank, ctx, 10000, 10000)

	provider := testAddr("provider")
	fundPair(bank, provider, 5000, 6000)

	resp, err := ms.AddLiquidity(ctx, types.NewMsgAddLiquidity(provider.String(), poolId, 5000, 1, 6000, 1))
	require.NoError(t, err)
	require.Equal(t, uint64(5000), resp.OptimalBase)
	require.Equal(t, uint64(5000), resp.OptimalPaired)
	require.Equal(t, uint64(4900), resp.SharesMinted)
}

// TestMsgServerRemoveLiquidity tests the redemption handler round trip
func TestMsgServerRemoveLiquidity(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	ms := keeper.NewMsgServerImpl(k)
	poolId := createTestPool(t, k, bank, ctx, 10000, 10000)
	creator := testAddr("pool_creator")

	resp, err := ms.RemoveLiquidity(ctx, types.NewMsgRemoveLiquidity(creator.String(), poolId, 1000))
	require.NoError(t, err)
	require.Equal(t, uint64(1000), resp.BaseOut)
	require.Equal(t, uint64(1000), resp.PairedOut)
}

// TestMsgServerSwap tests both swap handlers settle the reported four-tuple
func TestMsgServerSwap(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	ms := keeper.NewMsgServerImpl(k)
	poolId := createTestPool(t, k, bank, ctx, 1000000, 1000000)

	trader := testAddr("trader")
	fundPair(bank, trader, 10000, 10000)

	resp, err := ms.SwapBaseForPaired(ctx, types.NewMsgSwapBaseForPaired(trader.String(), poolId, 10000, 9871))
	require.NoError(t, err)
	require.Equal(t, uint64(10000), resp.Result.BaseIn)
	require.Equal(t, uint64(9871), resp.Result.PairedOut)
	require.Equal(t, uint64(30), resp.Result.Fee)
	require.Equal(t, uint64(0), resp.Result.PairedIn)
	require.Equal(t, uint64(0), resp.Result.BaseOut)

	resp, err = ms.SwapPairedForBase(ctx, types.NewMsgSwapPairedForBase(trader.String(), poolId, 10000, 0))
	require.NoError(t, err)
	require.Equal(t, uint64(10000), resp.Result.PairedIn)
	require.NotZero(t, resp.Result.BaseOut)
	require.Equal(t, uint64(0), resp.Result.BaseIn)
	require.Equal(t, uint64(0), resp.Result.PairedOut)
}

// TestMsgServerWithdrawFees_BeneficiaryGate tests only the bound beneficiary
// may withdraw and the payout lands on the beneficiary account
func TestMsgServerWithdrawFees_BeneficiaryGate(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	ms := keeper.NewMsgServerImpl(k)
	poolId := createTestPool(t, k, bank, ctx, 1000000, 1000000)

	trader := testAddr("trader")
	fundPair(bank, trader, 10000, 0)
	_, err := k.SwapBaseForPaired(ctx, trader, poolId, 10000, 0)
	require.NoError(t, err)

	// No beneficiary bound: nobody may withdraw
	somebody := testAddr("somebody")
	_, err = ms.WithdrawFees(ctx, types.NewMsgWithdrawFees(somebody.String(), poolId))
	require.ErrorIs(t, err, types.ErrNoPermissions)

	beneficiary := testAddr("beneficiary")
	cfg, found := k.GetConfig(ctx)
	require.True(t, found)
	cfg.Beneficiary = beneficiary.String()
	k.SetConfig(ctx, cfg)

	_, err = ms.WithdrawFees(ctx, types.NewMsgWithdrawFees(somebody.String(), poolId))
	require.ErrorIs(t, err, types.ErrNoPermissions)

	resp, err := ms.WithdrawFees(ctx, types.NewMsgWithdrawFees(beneficiary.String(), poolId))
	require.NoError(t, err)
	require.Equal(t, uint64(30), resp.FeeBase)
	require.Equal(t, uint64(0), resp.FeePaired)
	require.Equal(t, int64(30), bank.Balance(beneficiary, types.DefaultBaseDenom).Int64())
}

// TestMsgServerPauseResume_ControllerGate tests only the bound controller
// may toggle the emergency pause
func TestMsgServerPauseResume_ControllerGate(t *testing.T) {
	k, bank, ctx := keepertest.AMMKeeperWithBank(t)
	ms := keeper.NewMsgServerImpl(k)
	poolId := createTestPool(t, k, bank, ctx, 1000000, 1000000)

	// No controller bound: pause is disabled entirely
	somebody := testAddr("somebody")
	_, err := ms.Pause(ctx, types.NewMsgPause(somebody.String()))
	require.ErrorIs(t, err, types.ErrNoPermissions)

	controller := testAddr("controller")
	cfg, found := k.GetConfig(ctx)
	require.True(t, found)
	cfg.Controller = controller.String()
	k.SetConfig(ctx, cfg)

	_, err = ms.Pause(ctx, types.NewMsgPause(somebody.String()))
	require.ErrorIs(t, err, types.ErrNoPermissions)

	_, err = ms.Pause(ctx, types.NewMsgPause(controller.String()))
	require.NoError(t, err)
	require.True(t, k.IsPaused(ctx))

	// Paused system rejects pool operations through the handlers too
	trader := testAddr("trader")
	fundPair(bank, trader, 10000, 0)
	_, err = ms.SwapBaseForPaired(ctx, types.NewMsgSwapBaseForPaired(trader.String(), poolId, 10000, 0))
	require.ErrorIs(t, err, types.ErrEmergencyPaused)

	_, err = ms.Resume(ctx, types.NewMsgResume(somebody.String()))
	require.ErrorIs(t, err, types.ErrNoPermissions)

	_, err = ms.Resume(ctx, types.NewMsgResume(controller.String()))
	require.NoError(t, err)
	require.False(t, k.IsPaused(ctx))
}
