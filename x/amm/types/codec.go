package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the module's concrete message types on the given
// LegacyAmino codec.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePool{}, "amm/MsgCreatePool", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "amm/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "amm/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgSwapBaseForPaired{}, "amm/MsgSwapBaseForPaired", nil)
	cdc.RegisterConcrete(&MsgSwapPairedForBase{}, "amm/MsgSwapPairedForBase", nil)
	cdc.RegisterConcrete(&MsgWithdrawFees{}, "amm/MsgWithdrawFees", nil)
	cdc.RegisterConcrete(&MsgPause{}, "amm/MsgPause", nil)
	cdc.RegisterConcrete(&MsgResume{}, "amm/MsgResume", nil)
}

// ModuleCdc encodes module state and messages. Pool records, config and
// genesis are plain structs, so one amino codec serves both the binary
// store encoding and JSON.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
