package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// bridge sentinel errors
var (
	ErrInvalidArgument           = sdkerrors.Register(ModuleName, 2, "invalid argument")
	ErrNotAuthorized             = sdkerrors.Register(ModuleName, 3, "not authorized")
	ErrInvalidSequenceNumber     = sdkerrors.Register(ModuleName, 4, "invalid sequence number")
	ErrInsufficientBalance       = sdkerrors.Register(ModuleName, 5, "insufficient balance")
	ErrAlreadySubmittedSignature = sdkerrors.Register(ModuleName, 6, "witness already submitted signature")
	ErrUnsupportedDenomination   = sdkerrors.Register(ModuleName, 7, "unsupported denomination")
)
