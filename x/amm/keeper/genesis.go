package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coralswap/coral/x/amm/types"
)

// InitGenesis initializes the amm module state from a genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	k.SetConfig(ctx, genState.Config)
	k.SetNextPoolId(ctx, genState.NextPoolId)
	for _, pool := range genState.Pools {
		k.SetPool(ctx, pool)
		k.SetPoolIdByDenom(ctx, pool.PairedDenom, pool.Id)
	}
}

// ExportGenesis returns the amm module's exported genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	cfg, _ := k.GetConfig(ctx)
	return &types.GenesisState{
		Params:     k.GetParams(ctx),
		Config:     cfg,
		Pools:      k.GetAllPools(ctx),
		NextPoolId: k.GetNextPoolId(ctx),
	}
}
