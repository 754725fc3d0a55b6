package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSwapBaseForPaired{}
	_ sdk.Msg = &MsgSwapPairedForBase{}
)

// MsgSwapBaseForPaired defines a message to sell the base asset for the
// pool's paired asset. PairedMinOut is the slippage floor; zero disables it.
type MsgSwapBaseForPaired struct {
	Creator      string `json:"creator"`
	PoolId       uint64 `json:"pool_id"`
	BaseIn       uint64 `json:"base_in"`
	PairedMinOut uint64 `json:"paired_min_out"`
}

// MsgSwapPairedForBase defines a message to sell the paired asset for the
// base asset. BaseMinOut is the slippage floor; zero disables it.
type MsgSwapPairedForBase struct {
	Creator    string `json:"creator"`
	PoolId     uint64 `json:"pool_id"`
	PairedIn   uint64 `json:"paired_in"`
	BaseMinOut uint64 `json:"base_min_out"`
}

// NewMsgSwapBaseForPaired creates a new MsgSwapBaseForPaired instance
func NewMsgSwapBaseForPaired(creator string, poolId, baseIn, pairedMinOut uint64) *MsgSwapBaseForPaired {
	return &MsgSwapBaseForPaired{
		Creator:      creator,
		PoolId:       poolId,
		BaseIn:       baseIn,
		PairedMinOut: pairedMinOut,
	}
}

// NewMsgSwapPairedForBase creates a new MsgSwapPairedForBase instance
func NewMsgSwapPairedForBase(creator string, poolId, pairedIn, baseMinOut uint64) *MsgSwapPairedForBase {
	return &MsgSwapPairedForBase{
		Creator:    creator,
		PoolId:     poolId,
		PairedIn:   pairedIn,
		BaseMinOut: baseMinOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapBaseForPaired) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapBaseForPaired) Type() string {
	return "swap_base_for_paired"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapBaseForPaired) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapBaseForPaired) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapBaseForPaired) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolId, "pool id cannot be zero")
	}

	if msg.BaseIn == 0 {
		return sdkerrors.Wrap(ErrZeroAmount, "swap input must be positive")
	}

	return nil
}

// Route implements the sdk.Msg interface
func (msg MsgSwapPairedForBase) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapPairedForBase) Type() string {
	return "swap_paired_for_base"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapPairedForBase) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapPairedForBase) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapPairedForBase) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolId, "pool id cannot be zero")
	}

	if msg.PairedIn == 0 {
		return sdkerrors.Wrap(ErrZeroAmount, "swap input must be positive")
	}

	return nil
}

// proto.Message stubs so the messages satisfy sdk.Msg without generated code

func (msg *MsgSwapBaseForPaired) Reset()         { *msg = MsgSwapBaseForPaired{} }
func (msg *MsgSwapBaseForPaired) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSwapBaseForPaired) ProtoMessage()      {}

func (msg *MsgSwapPairedForBase) Reset()         { *msg = MsgSwapPairedForBase{} }
func (msg *MsgSwapPairedForBase) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgSwapPairedForBase) ProtoMessage()      {}
