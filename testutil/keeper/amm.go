package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/coralswap/coral/x/amm/keeper"
	"github.com/coralswap/coral/x/amm/types"
)

// AMMKeeper creates a test keeper backed by an in-memory IAVL store and a
// bank stub, initialized with the default genesis state.
func AMMKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	k, _, ctx := AMMKeeperWithBank(t)
	return k, ctx
}

// AMMKeeperWithBank is AMMKeeper but also exposes the bank stub so tests can
// fund accounts and assert balances.
func AMMKeeperWithBank(t testing.TB) (keeper.Keeper, *BankStub, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewBankStub()
	k := keeper.NewKeeper(types.ModuleCdc, storeKey, bank)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	k.InitGenesis(ctx, *types.DefaultGenesis())

	return k, bank, ctx
}
