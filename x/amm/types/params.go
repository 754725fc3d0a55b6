package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultBaseDenom is the chain's native denom, the base asset of every pool.
const DefaultBaseDenom = "ucoral"

// Params defines the parameters for the amm module.
type Params struct {
	// BaseDenom is the distinguished asset every pool pairs against.
	BaseDenom string `json:"base_denom"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{BaseDenom: DefaultBaseDenom}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.BaseDenom); err != nil {
		return ErrInvalidDenom.Wrapf("base denom: %v", err)
	}
	return nil
}
