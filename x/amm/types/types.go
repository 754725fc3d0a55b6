package types

import (
	"math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Pool arithmetic constants. Swap fees are charged on the input amount at
// FeeMultiplier/FeeScale. Every balance a pool tracks must stay below
// MaxPoolValue so that the fee-scaled constant-product arithmetic never
// leaves uint64 range.
const (
	// FeeMultiplier is the swap fee numerator (0.3%).
	FeeMultiplier uint64 = 30

	// FeeScale is the fee denominator and the reserve scaling factor.
	FeeScale uint64 = 10000

	// MaxPoolValue is the exclusive upper bound for every pool balance,
	// floor((2^64-1) / FeeScale).
	MaxPoolValue uint64 = math.MaxUint64 / FeeScale

	// MinimalLiquidity is the share floor withheld at pool creation and
	// never minted, so a pool can never be drained to empty reserves.
	MinimalLiquidity uint64 = 1000
)

// TestAddr returns a test address for testing purposes
func TestAddr() sdk.AccAddress {
	return sdk.AccAddress([]byte("test_address_______"))
}
