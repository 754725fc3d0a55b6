package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgWithdrawFees{}

// MsgWithdrawFees defines a message draining both fee reserves of a pool to
// the beneficiary. Both sides are paid out in the same transaction.
type MsgWithdrawFees struct {
	Creator string `json:"creator"`
	PoolId  uint64 `json:"pool_id"`
}

// NewMsgWithdrawFees creates a new MsgWithdrawFees instance
func NewMsgWithdrawFees(creator string, poolId uint64) *MsgWithdrawFees {
	return &MsgWithdrawFees{
		Creator: creator,
		PoolId:  poolId,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgWithdrawFees) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgWithdrawFees) Type() string {
	return "withdraw_fees"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgWithdrawFees) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgWithdrawFees) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgWithdrawFees) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if msg.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidPoolId, "pool id cannot be zero")
	}

	return nil
}

// proto.Message stubs so the message satisfies sdk.Msg without generated code

func (msg *MsgWithdrawFees) Reset()         { *msg = MsgWithdrawFees{} }
func (msg *MsgWithdrawFees) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgWithdrawFees) ProtoMessage()      {}
