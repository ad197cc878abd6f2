package types

import (
	ethcommon "github.com/ethereum/go-ethereum/common"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// message types for the bridge module
const (
	TypeMsgLock    = "lock"
	TypeMsgWitness = "witness"
	TypeMsgRelease = "release"
)

var (
	_ sdk.Msg = (*MsgLock)(nil)
	_ sdk.Msg = (*MsgWitness)(nil)
	_ sdk.Msg = (*MsgRelease)(nil)
)

// NewMsgLock creates a new MsgLock instance
//
//nolint:interfacer
func NewMsgLock(sender sdk.AccAddress, target []byte, amount sdk.Coin) *MsgLock {
	return &MsgLock{
		Sender: sender.String(),
		Target: target,
		Amount: amount,
	}
}

// Route implements sdk.Msg
func (MsgLock) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (MsgLock) Type() string {
	return TypeMsgLock
}

// ValidateBasic performs a basic check of the MsgLock fields.
// NOTE: the denomination is checked against the module parameters only during
// message execution as parameters are not available here.
func (msg MsgLock) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}
	if len(msg.Target) != ethcommon.AddressLength {
		return sdkerrors.Wrapf(ErrInvalidArgument, "remote target must be %d bytes, got %d", ethcommon.AddressLength, len(msg.Target))
	}
	if !msg.Amount.IsValid() {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, msg.Amount.String())
	}
	if !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, msg.Amount.String())
	}
	return nil
}

// GetSignBytes implements sdk.Msg.
func (msg MsgLock) GetSignBytes() []byte {
	return sdk.MustSortJSON(AminoCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgLock) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

// NewMsgWitness creates a new MsgWitness instance
//
//nolint:interfacer
func NewMsgWitness(signer sdk.AccAddress, id uint64, signature []byte) *MsgWitness {
	return &MsgWitness{
		Signer:    signer.String(),
		Id:        id,
		Signature: signature,
	}
}

// Route implements sdk.Msg
func (MsgWitness) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (MsgWitness) Type() string {
	return TypeMsgWitness
}

// ValidateBasic performs a basic check of the MsgWitness fields. The
// signature payload is opaque to the module and deliberately not inspected.
func (msg MsgWitness) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}
	if len(msg.Signature) == 0 {
		return sdkerrors.Wrap(ErrInvalidArgument, "empty witness signature")
	}
	return nil
}

// GetSignBytes implements sdk.Msg.
func (msg MsgWitness) GetSignBytes() []byte {
	return sdk.MustSortJSON(AminoCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgWitness) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}

// NewMsgRelease creates a new MsgRelease instance
//
//nolint:interfacer
func NewMsgRelease(signer sdk.AccAddress, id uint64, target sdk.AccAddress, amount sdk.Coin) *MsgRelease {
	return &MsgRelease{
		Signer: signer.String(),
		Id:     id,
		Target: target.String(),
		Amount: amount,
	}
}

// Route implements sdk.Msg
func (MsgRelease) Route() string {
	return RouterKey
}

// Type implements sdk.Msg
func (MsgRelease) Type() string {
	return TypeMsgRelease
}

// ValidateBasic performs a basic check of the MsgRelease fields.
func (msg MsgRelease) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Target); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "target could not be parsed as address: %v", err)
	}
	if !msg.Amount.IsValid() {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, msg.Amount.String())
	}
	if !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, msg.Amount.String())
	}
	return nil
}

// GetSignBytes implements sdk.Msg.
func (msg MsgRelease) GetSignBytes() []byte {
	return sdk.MustSortJSON(AminoCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgRelease) GetSigners() []sdk.AccAddress {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{signer}
}
