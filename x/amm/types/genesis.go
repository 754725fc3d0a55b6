package types

import "fmt"

// GenesisState defines the amm module's genesis state.
type GenesisState struct {
	Params     Params       `json:"params"`
	Config     GlobalConfig `json:"config"`
	Pools      []Pool       `json:"pools"`
	NextPoolId uint64       `json:"next_pool_id"`
}

// DefaultGenesis returns the default genesis state for the amm module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Config:     DefaultConfig(),
		Pools:      []Pool{},
		NextPoolId: 1,
	}
}

// Validate performs basic genesis state validation, returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if err := gs.Config.Validate(); err != nil {
		return err
	}
	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id must be positive")
	}
	seenIds := make(map[uint64]struct{}, len(gs.Pools))
	seenDenoms := make(map[string]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return err
		}
		if pool.PairedDenom == gs.Params.BaseDenom {
			return fmt.Errorf("pool %d pairs the base denom against itself", pool.Id)
		}
		if _, ok := seenIds[pool.Id]; ok {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		seenIds[pool.Id] = struct{}{}
		if _, ok := seenDenoms[pool.PairedDenom]; ok {
			return fmt.Errorf("duplicate pool for paired denom %s", pool.PairedDenom)
		}
		seenDenoms[pool.PairedDenom] = struct{}{}
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool id %d not below next pool id %d", pool.Id, gs.NextPoolId)
		}
		if pool.ConfigId != gs.Config.Id {
			return fmt.Errorf("pool %d bound to config %d, genesis config is %d", pool.Id, pool.ConfigId, gs.Config.Id)
		}
	}
	return nil
}
