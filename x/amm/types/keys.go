package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Store key prefixes
var (
	ParamsKey         = []byte{0x01} // module parameters
	ConfigKey         = []byte{0x02} // global config singleton
	PoolKeyPrefix     = []byte{0x10} // pool records by id
	PoolCountKey      = []byte{0x11} // next pool id counter
	PoolByDenomPrefix = []byte{0x12} // paired denom -> pool id index
)

// PoolKey returns the store key for a pool id
func PoolKey(poolId uint64) []byte {
	return append(PoolKeyPrefix, sdk.Uint64ToBigEndian(poolId)...)
}

// PoolByDenomKey returns the index key mapping a paired denom to its pool id
func PoolByDenomKey(pairedDenom string) []byte {
	return append(PoolByDenomPrefix, []byte(pairedDenom)...)
}
