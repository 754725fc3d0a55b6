package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrZeroAmount         = errors.Register(ModuleName, 1, "amount cannot be zero")
	ErrReservesEmpty      = errors.Register(ModuleName, 2, "pool reserves are empty")
	ErrPoolFull           = errors.Register(ModuleName, 3, "pool value limit exceeded")
	ErrInsufficientBase   = errors.Register(ModuleName, 4, "base amount below required minimum")
	ErrInsufficientPaired = errors.Register(ModuleName, 5, "paired amount below required minimum")
	ErrDivideByZero       = errors.Register(ModuleName, 6, "division by zero")
	ErrOverlimitBase      = errors.Register(ModuleName, 7, "computed base amount exceeds desired amount")
	ErrSlippageExceeded   = errors.Register(ModuleName, 8, "output amount below declared minimum")
	ErrLiquidityNotEnough = errors.Register(ModuleName, 9, "initial shares below minimal liquidity")
	ErrNoPermissions      = errors.Register(ModuleName, 10, "signer lacks permission")
	ErrEmergencyPaused    = errors.Register(ModuleName, 11, "amm operations are paused")
	ErrConfigMismatch     = errors.Register(ModuleName, 12, "pool is bound to a different global config")
	ErrPoolNotFound       = errors.Register(ModuleName, 13, "pool not found")
	ErrPoolExists         = errors.Register(ModuleName, 14, "pool already exists")
	ErrInvalidDenom       = errors.Register(ModuleName, 15, "invalid token denomination")
	ErrInvalidAddress     = errors.Register(ModuleName, 16, "invalid address")
	ErrInsufficientShares = errors.Register(ModuleName, 17, "insufficient liquidity shares")
	ErrOverflow           = errors.Register(ModuleName, 18, "arithmetic overflow")
	ErrInvalidState       = errors.Register(ModuleName, 19, "invalid module state")
	ErrInvalidPoolId      = errors.Register(ModuleName, 20, "invalid pool id")
)
