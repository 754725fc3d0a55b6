package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultConfigId is the id the genesis config takes.
const DefaultConfigId uint64 = 1

// GlobalConfig is the singleton administrative record every pool is bound
// to: the emergency pause flag and the privileged addresses. It is created
// at genesis and mutated only through pause and resume.
type GlobalConfig struct {
	Id           uint64 `json:"id"`
	Paused       bool   `json:"paused"`
	PoolOperator string `json:"pool_operator"`
	Controller   string `json:"controller"`
	Beneficiary  string `json:"beneficiary"`
}

// DefaultConfig returns the genesis default: unpaused, no privileged
// addresses bound. An empty pool operator leaves pool creation open to
// everyone; an empty controller or beneficiary leaves pause and fee
// withdrawal disabled until one is set.
func DefaultConfig() GlobalConfig {
	return GlobalConfig{Id: DefaultConfigId}
}

// Validate checks the config record.
func (c GlobalConfig) Validate() error {
	if c.Id == 0 {
		return ErrInvalidState.Wrap("config id cannot be zero")
	}
	for _, addr := range []string{c.PoolOperator, c.Controller, c.Beneficiary} {
		if addr == "" {
			continue
		}
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return ErrInvalidAddress.Wrapf("%q: %v", addr, err)
		}
	}
	return nil
}
