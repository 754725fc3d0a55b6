package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pool is the record of one base/paired trading pair: the tradable
// reserves, the protocol fees accrued on each side, and the outstanding
// liquidity shares. All balances are uint64 and stay below MaxPoolValue.
type Pool struct {
	Id               uint64 `json:"id"`
	PairedDenom      string `json:"paired_denom"`
	BaseReserve      uint64 `json:"base_reserve"`
	PairedReserve    uint64 `json:"paired_reserve"`
	BaseFeeReserve   uint64 `json:"base_fee_reserve"`
	PairedFeeReserve uint64 `json:"paired_fee_reserve"`
	LpSupply         uint64 `json:"lp_supply"`
	ConfigId         uint64 `json:"config_id"`
}

// AddLiquidityResult reports the amounts a deposit actually committed and
// the shares minted for them. Desired amounts beyond the optimal values
// never leave the provider's account.
type AddLiquidityResult struct {
	OptimalBase   uint64 `json:"optimal_base"`
	OptimalPaired uint64 `json:"optimal_paired"`
	SharesMinted  uint64 `json:"shares_minted"`
}

// LpDenom returns the denom of this pool's share token. Only the module
// account can mint it, which makes holding it the proof of a pool position.
func (p Pool) LpDenom() string {
	return LpDenom(p.Id)
}

// LpDenom returns the LP share denom for a pool id.
func LpDenom(poolId uint64) string {
	return fmt.Sprintf("%s/pool/%d", ModuleName, poolId)
}

// CirculatingShares returns the shares redeemable by holders: everything
// above the permanently withheld MinimalLiquidity floor.
func (p Pool) CirculatingShares() uint64 {
	if p.LpSupply <= MinimalLiquidity {
		return 0
	}
	return p.LpSupply - MinimalLiquidity
}

// Validate checks the pool record against its structural bounds.
func (p Pool) Validate() error {
	if p.Id == 0 {
		return ErrInvalidPoolId.Wrap("pool id cannot be zero")
	}
	if err := sdk.ValidateDenom(p.PairedDenom); err != nil {
		return ErrInvalidDenom.Wrapf("paired denom %q: %v", p.PairedDenom, err)
	}
	if p.BaseReserve >= MaxPoolValue || p.PairedReserve >= MaxPoolValue {
		return ErrPoolFull.Wrapf("pool %d reserves %d/%d exceed max pool value", p.Id, p.BaseReserve, p.PairedReserve)
	}
	if p.BaseFeeReserve >= MaxPoolValue || p.PairedFeeReserve >= MaxPoolValue {
		return ErrPoolFull.Wrapf("pool %d fee reserves %d/%d exceed max pool value", p.Id, p.BaseFeeReserve, p.PairedFeeReserve)
	}
	if p.LpSupply < MinimalLiquidity {
		return ErrInvalidState.Wrapf("pool %d lp supply %d below minimal liquidity", p.Id, p.LpSupply)
	}
	if p.ConfigId == 0 {
		return ErrInvalidState.Wrapf("pool %d has no config binding", p.Id)
	}
	return nil
}
