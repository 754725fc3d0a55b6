package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgPause{}
	_ sdk.Msg = &MsgResume{}
)

// MsgPause defines a message setting the emergency pause flag. Only the
// configured controller may pause.
type MsgPause struct {
	Creator string `json:"creator"`
}

// MsgResume defines a message clearing the emergency pause flag. Only the
// configured controller may resume.
type MsgResume struct {
	Creator string `json:"creator"`
}

// NewMsgPause creates a new MsgPause instance
func NewMsgPause(creator string) *MsgPause {
	return &MsgPause{Creator: creator}
}

// NewMsgResume creates a new MsgResume instance
func NewMsgResume(creator string) *MsgResume {
	return &MsgResume{Creator: creator}
}

// Route implements the sdk.Msg interface
func (msg MsgPause) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgPause) Type() string {
	return "pause"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgPause) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgPause) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgPause) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	return nil
}

// Route implements the sdk.Msg interface
func (msg MsgResume) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgResume) Type() string {
	return "resume"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgResume) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgResume) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgResume) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	return nil
}

// proto.Message stubs so the messages satisfy sdk.Msg without generated code

func (msg *MsgPause) Reset()         { *msg = MsgPause{} }
func (msg *MsgPause) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgPause) ProtoMessage()      {}

func (msg *MsgResume) Reset()         { *msg = MsgResume{} }
func (msg *MsgResume) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgResume) ProtoMessage()      {}
