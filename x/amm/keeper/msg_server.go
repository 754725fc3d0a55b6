package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coralswap/coral/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the amm MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePool handles pool registration. When the config binds a pool
// operator, only that address may create pools.
func (ms msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePool: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: invalid creator address: %w", err)
	}

	cfg, found := ms.GetConfig(goCtx)
	if !found {
		return nil, types.ErrInvalidState.Wrap("global config not initialized")
	}
	if cfg.PoolOperator != "" && msg.Creator != cfg.PoolOperator {
		return nil, types.ErrNoPermissions.Wrap("pool creation restricted to the pool operator")
	}

	poolId, mintedShares, err := ms.Keeper.CreatePool(goCtx, creator, msg.PairedDenom, msg.BaseAmount, msg.PairedAmount)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: %w", err)
	}

	return &types.MsgCreatePoolResponse{
		PoolId:       poolId,
		MintedShares: mintedShares,
	}, nil
}

// AddLiquidity handles deposits into an existing pool.
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid creator address: %w", err)
	}

	result, err := ms.Keeper.AddLiquidity(goCtx, provider, msg.PoolId, msg.BaseAmount, msg.BaseMin, msg.PairedAmount, msg.PairedMin)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{
		OptimalBase:   result.OptimalBase,
		OptimalPaired: result.OptimalPaired,
		SharesMinted:  result.SharesMinted,
	}, nil
}

// RemoveLiquidity handles share redemptions.
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid creator address: %w", err)
	}

	baseOut, pairedOut, err := ms.Keeper.RemoveLiquidity(goCtx, provider, msg.PoolId, msg.LpAmount)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{
		BaseOut:   baseOut,
		PairedOut: pairedOut,
	}, nil
}

// SwapBaseForPaired handles swaps selling the base asset.
func (ms msgServer) SwapBaseForPaired(goCtx context.Context, msg *types.MsgSwapBaseForPaired) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapBaseForPaired: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("SwapBaseForPaired: invalid creator address: %w", err)
	}

	result, err := ms.Keeper.SwapBaseForPaired(goCtx, trader, msg.PoolId, msg.BaseIn, msg.PairedMinOut)
	if err != nil {
		return nil, fmt.Errorf("SwapBaseForPaired: %w", err)
	}

	return &types.MsgSwapResponse{Result: result}, nil
}

// SwapPairedForBase handles swaps selling the paired asset.
func (ms msgServer) SwapPairedForBase(goCtx context.Context, msg *types.MsgSwapPairedForBase) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapPairedForBase: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("SwapPairedForBase: invalid creator address: %w", err)
	}

	result, err := ms.Keeper.SwapPairedForBase(goCtx, trader, msg.PoolId, msg.PairedIn, msg.BaseMinOut)
	if err != nil {
		return nil, fmt.Errorf("SwapPairedForBase: %w", err)
	}

	return &types.MsgSwapResponse{Result: result}, nil
}

// WithdrawFees pays the accrued protocol fees of a pool to the configured
// beneficiary. Only the beneficiary may trigger the withdrawal, and the
// payout always goes to the beneficiary address.
func (ms msgServer) WithdrawFees(goCtx context.Context, msg *types.MsgWithdrawFees) (*types.MsgWithdrawFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawFees: validate: %w", err)
	}

	cfg, found := ms.GetConfig(goCtx)
	if !found {
		return nil, types.ErrInvalidState.Wrap("global config not initialized")
	}
	if cfg.Beneficiary == "" || msg.Creator != cfg.Beneficiary {
		return nil, types.ErrNoPermissions.Wrap("fee withdrawal restricted to the beneficiary")
	}

	beneficiary, err := sdk.AccAddressFromBech32(cfg.Beneficiary)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("beneficiary: %v", err)
	}

	feeBase, feePaired, err := ms.Keeper.WithdrawFees(goCtx, beneficiary, msg.PoolId)
	if err != nil {
		return nil, fmt.Errorf("WithdrawFees: %w", err)
	}

	return &types.MsgWithdrawFeesResponse{
		FeeBase:   feeBase,
		FeePaired: feePaired,
	}, nil
}

// Pause suspends all pool operations. Only the controller may pause.
func (ms msgServer) Pause(goCtx context.Context, msg *types.MsgPause) (*types.MsgPauseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Pause: validate: %w", err)
	}

	cfg, found := ms.GetConfig(goCtx)
	if !found {
		return nil, types.ErrInvalidState.Wrap("global config not initialized")
	}
	if cfg.Controller == "" || msg.Creator != cfg.Controller {
		return nil, types.ErrNoPermissions.Wrap("pause restricted to the controller")
	}

	if err := ms.Keeper.Pause(goCtx); err != nil {
		return nil, fmt.Errorf("Pause: %w", err)
	}

	return &types.MsgPauseResponse{}, nil
}

// Resume lifts the emergency pause. Only the controller may resume.
func (ms msgServer) Resume(goCtx context.Context, msg *types.MsgResume) (*types.MsgResumeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Resume: validate: %w", err)
	}

	cfg, found := ms.GetConfig(goCtx)
	if !found {
		return nil, types.ErrInvalidState.Wrap("global config not initialized")
	}
	if cfg.Controller == "" || msg.Creator != cfg.Controller {
		return nil, types.ErrNoPermissions.Wrap("resume restricted to the controller")
	}

	if err := ms.Keeper.Resume(goCtx); err != nil {
		return nil, fmt.Errorf("Resume: %w", err)
	}

	return &types.MsgResumeResponse{}, nil
}
