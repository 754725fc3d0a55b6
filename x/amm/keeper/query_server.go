package keeper

import (
	"context"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/coralswap/coral/x/amm/types"
)

type queryServer struct {
	Keeper
}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the amm QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	return &types.QueryParamsResponse{
		Params: qs.GetParams(goCtx),
	}, nil
}

// Config returns the global configuration
func (qs queryServer) Config(goCtx context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	cfg, found := qs.GetConfig(goCtx)
	if !found {
		return nil, types.ErrInvalidState.Wrap("global config not initialized")
	}

	return &types.QueryConfigResponse{
		Config: cfg,
	}, nil
}

// Pool returns a specific pool by id
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pool, found := qs.GetPool(goCtx, req.PoolId)
	if !found {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", req.PoolId)
	}

	return &types.QueryPoolResponse{
		Pool: pool,
	}, nil
}

// Pools returns pool records with offset pagination. A zero limit applies
// the default; limits above the maximum are clamped.
func (qs queryServer) Pools(goCtx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultPaginationLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	all := qs.GetAllPools(goCtx)
	total := uint64(len(all))
	if req.Offset >= total {
		return &types.QueryPoolsResponse{Pools: []types.Pool{}, Total: total}, nil
	}
	end := req.Offset + limit
	if end > total {
		end = total
	}

	return &types.QueryPoolsResponse{
		Pools: all[req.Offset:end],
		Total: total,
	}, nil
}

// Reserves returns a pool's tradable reserves and share supply
func (qs queryServer) Reserves(goCtx context.Context, req *types.QueryReservesRequest) (*types.QueryReservesResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	baseReserve, pairedReserve, lpSupply, err := qs.GetReserves(goCtx, req.PoolId)
	if err != nil {
		return nil, err
	}

	return &types.QueryReservesResponse{
		BaseReserve:   baseReserve,
		PairedReserve: pairedReserve,
		LpSupply:      lpSupply,
	}, nil
}

// Price quotes a swap against the live reserves without executing it
func (qs queryServer) Price(goCtx context.Context, req *types.QueryPriceRequest) (*types.QueryPriceResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	amountOut, err := qs.Keeper.Price(goCtx, req.PoolId, req.DenomIn, req.AmountIn)
	if err != nil {
		return nil, err
	}
	spot, err := qs.SpotPrice(goCtx, req.PoolId, req.DenomIn)
	if err != nil {
		return nil, err
	}

	return &types.QueryPriceResponse{
		AmountOut: amountOut,
		SpotPrice: spot,
	}, nil
}
