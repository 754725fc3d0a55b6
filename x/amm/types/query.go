package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// QueryServer defines the amm module's query handlers.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	Reserves(context.Context, *QueryReservesRequest) (*QueryReservesResponse, error)
	Price(context.Context, *QueryPriceRequest) (*QueryPriceResponse, error)
}

// QueryParamsRequest is the Params query request.
type QueryParamsRequest struct{}

// QueryParamsResponse is the Params query response.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryConfigRequest is the Config query request.
type QueryConfigRequest struct{}

// QueryConfigResponse is the Config query response.
type QueryConfigResponse struct {
	Config GlobalConfig `json:"config"`
}

// QueryPoolRequest is the Pool query request.
type QueryPoolRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QueryPoolResponse is the Pool query response.
type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

// QueryPoolsRequest is the Pools query request. A zero limit applies the
// server default; limits above the server maximum are clamped.
type QueryPoolsRequest struct {
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

// QueryPoolsResponse is the Pools query response.
type QueryPoolsResponse struct {
	Pools []Pool `json:"pools"`
	Total uint64 `json:"total"`
}

// QueryReservesRequest is the Reserves query request.
type QueryReservesRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QueryReservesResponse is the Reserves query response.
type QueryReservesResponse struct {
	BaseReserve   uint64 `json:"base_reserve"`
	PairedReserve uint64 `json:"paired_reserve"`
	LpSupply      uint64 `json:"lp_supply"`
}

// QueryPriceRequest is the Price query request: a quote for selling
// AmountIn of DenomIn against the pool's live reserves.
type QueryPriceRequest struct {
	PoolId   uint64 `json:"pool_id"`
	DenomIn  string `json:"denom_in"`
	AmountIn uint64 `json:"amount_in"`
}

// QueryPriceResponse is the Price query response. AmountOut is the
// fee-adjusted quote; SpotPrice is the marginal reserveOut/reserveIn price
// before fees.
type QueryPriceResponse struct {
	AmountOut uint64            `json:"amount_out"`
	SpotPrice sdkmath.LegacyDec `json:"spot_price"`
}
