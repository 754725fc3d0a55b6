package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgCreatePool{}

// MsgCreatePool defines a message to create a new liquidity pool pairing
// the chain's base asset against PairedDenom.
type MsgCreatePool struct {
	Creator      string `json:"creator"`
	PairedDenom  string `json:"paired_denom"`
	BaseAmount   uint64 `json:"base_amount"`
	PairedAmount uint64 `json:"paired_amount"`
}

// NewMsgCreatePool creates a new MsgCreatePool instance
func NewMsgCreatePool(creator, pairedDenom string, baseAmount, pairedAmount uint64) *MsgCreatePool {
	return &MsgCreatePool{
		Creator:      creator,
		PairedDenom:  pairedDenom,
		BaseAmount:   baseAmount,
		PairedAmount: pairedAmount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePool) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCreatePool) Type() string {
	return "create_pool"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePool) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePool) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if err := sdk.ValidateDenom(msg.PairedDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidDenom, "paired denom: %s", err)
	}

	if msg.BaseAmount == 0 || msg.PairedAmount == 0 {
		return sdkerrors.Wrap(ErrZeroAmount, "initial deposits must both be positive")
	}

	return nil
}

// proto.Message stubs so the message satisfies sdk.Msg without generated code

func (msg *MsgCreatePool) Reset()         { *msg = MsgCreatePool{} }
func (msg *MsgCreatePool) String() string { return fmt.Sprintf("%+v", *msg) }
func (*MsgCreatePool) ProtoMessage()      {}
