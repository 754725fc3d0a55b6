package types

import (
	"context"
)

// MsgServer defines the amm module's transaction handlers.
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	SwapBaseForPaired(context.Context, *MsgSwapBaseForPaired) (*MsgSwapResponse, error)
	SwapPairedForBase(context.Context, *MsgSwapPairedForBase) (*MsgSwapResponse, error)
	WithdrawFees(context.Context, *MsgWithdrawFees) (*MsgWithdrawFeesResponse, error)
	Pause(context.Context, *MsgPause) (*MsgPauseResponse, error)
	Resume(context.Context, *MsgResume) (*MsgResumeResponse, error)
}

// MsgCreatePoolResponse is the CreatePool response. MintedShares excludes
// the permanently withheld MinimalLiquidity floor.
type MsgCreatePoolResponse struct {
	PoolId       uint64 `json:"pool_id"`
	MintedShares uint64 `json:"minted_shares"`
}

// MsgAddLiquidityResponse is the AddLiquidity response, reporting the
// amounts actually committed after ratio adjustment.
type MsgAddLiquidityResponse struct {
	OptimalBase   uint64 `json:"optimal_base"`
	OptimalPaired uint64 `json:"optimal_paired"`
	SharesMinted  uint64 `json:"shares_minted"`
}

// MsgRemoveLiquidityResponse is the RemoveLiquidity response.
type MsgRemoveLiquidityResponse struct {
	BaseOut   uint64 `json:"base_out"`
	PairedOut uint64 `json:"paired_out"`
}

// MsgSwapResponse carries the settled four-tuple for either swap direction.
type MsgSwapResponse struct {
	Result SwapResult `json:"result"`
}

// MsgWithdrawFeesResponse reports the fee amounts paid out on each side.
type MsgWithdrawFeesResponse struct {
	FeeBase   uint64 `json:"fee_base"`
	FeePaired uint64 `json:"fee_paired"`
}

// MsgPauseResponse is the Pause response.
type MsgPauseResponse struct{}

// MsgResumeResponse is the Resume response.
type MsgResumeResponse struct{}
