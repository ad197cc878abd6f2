package types

import (
	"bytes"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// NewLockOperation wraps a lock in an Operation.
func NewLockOperation(owner string, target []byte, amount sdk.Coin) Operation {
	return Operation{
		Sum: &Operation_Lock{
			Lock: &LockOperation{
				Owner:  owner,
				Target: target,
				Amount: amount,
			},
		},
	}
}

// NewReleaseOperation wraps a release in an Operation.
func NewReleaseOperation(target string, amount sdk.Coin) Operation {
	return Operation{
		Sum: &Operation_Release{
			Release: &ReleaseOperation{
				Target: target,
				Amount: amount,
			},
		},
	}
}

// Equal reports whether two operations describe the same cross-chain
// transfer. Conflicting claims for one sequence number must never merge, so
// equality is over every field.
func (op Operation) Equal(other Operation) bool {
	switch sum := op.Sum.(type) {
	case *Operation_Lock:
		otherLock := other.GetLock()
		if otherLock == nil {
			return false
		}
		return sum.Lock.Owner == otherLock.Owner &&
			bytes.Equal(sum.Lock.Target, otherLock.Target) &&
			coinsEqual(sum.Lock.Amount, otherLock.Amount)
	case *Operation_Release:
		otherRelease := other.GetRelease()
		if otherRelease == nil {
			return false
		}
		return sum.Release.Target == otherRelease.Target &&
			coinsEqual(sum.Release.Amount, otherRelease.Amount)
	default:
		return false
	}
}

// coinsEqual compares two coins field by field. Coin.IsEqual panics on
// mismatched denominations, but here a denomination mismatch simply means the
// operations differ.
func coinsEqual(a, b sdk.Coin) bool {
	return a.Denom == b.Denom && a.Amount.Equal(b.Amount)
}

// Validate performs basic validation of the operation fields.
func (op Operation) Validate() error {
	switch sum := op.Sum.(type) {
	case *Operation_Lock:
		if _, err := sdk.AccAddressFromBech32(sum.Lock.Owner); err != nil {
			return sdkerrors.Wrapf(ErrInvalidArgument, "invalid lock owner address: %v", err)
		}
		if !sum.Lock.Amount.IsValid() || sum.Lock.Amount.IsZero() {
			return sdkerrors.Wrapf(ErrInvalidArgument, "invalid lock amount %s", sum.Lock.Amount)
		}
	case *Operation_Release:
		if _, err := sdk.AccAddressFromBech32(sum.Release.Target); err != nil {
			return sdkerrors.Wrapf(ErrInvalidArgument, "invalid release target address: %v", err)
		}
		if !sum.Release.Amount.IsValid() || sum.Release.Amount.IsZero() {
			return sdkerrors.Wrapf(ErrInvalidArgument, "invalid release amount %s", sum.Release.Amount)
		}
	default:
		return sdkerrors.Wrap(ErrInvalidArgument, "unknown operation kind")
	}
	return nil
}

// NewWitnessSignatures creates an empty tally for the given operation.
func NewWitnessSignatures(id uint64, op Operation) WitnessSignatures {
	return WitnessSignatures{
		Id:        id,
		Operation: op,
	}
}

// HasVoted reports whether the witness with the given index has already
// attested to this operation.
func (ws WitnessSignatures) HasVoted(index uint32) bool {
	for _, voter := range ws.Witnesses {
		if voter == index {
			return true
		}
	}
	return false
}

// Validate checks internal tally consistency: vote and payload lists stay
// aligned and each witness votes at most once.
func (ws WitnessSignatures) Validate() error {
	if err := ws.Operation.Validate(); err != nil {
		return err
	}
	if len(ws.Signatures) != 0 && len(ws.Signatures) != len(ws.Witnesses) {
		return fmt.Errorf("tally %d: %d signatures for %d witnesses", ws.Id, len(ws.Signatures), len(ws.Witnesses))
	}
	seen := make(map[uint32]struct{}, len(ws.Witnesses))
	for _, index := range ws.Witnesses {
		if _, ok := seen[index]; ok {
			return fmt.Errorf("tally %d: witness %d voted twice", ws.Id, index)
		}
		seen[index] = struct{}{}
	}
	return nil
}
