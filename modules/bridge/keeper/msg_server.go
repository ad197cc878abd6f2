package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

var _ types.MsgServer = Keeper{}

// Lock defines a rpc handler method for MsgLock.
func (k Keeper) Lock(goCtx context.Context, msg *types.MsgLock) (*types.MsgLockResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, err
	}

	id, err := k.LockFunds(ctx, sender, msg.Target, msg.Amount)
	if err != nil {
		return nil, err
	}

	return &types.MsgLockResponse{Id: id}, nil
}

// Witness defines a rpc handler method for MsgWitness.
func (k Keeper) Witness(goCtx context.Context, msg *types.MsgWitness) (*types.MsgWitnessResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		return nil, err
	}

	if err := k.RecordWitness(ctx, signer, msg.Id, msg.Signature); err != nil {
		return nil, err
	}

	return &types.MsgWitnessResponse{}, nil
}

// Release defines a rpc handler method for MsgRelease.
func (k Keeper) Release(goCtx context.Context, msg *types.MsgRelease) (*types.MsgReleaseResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		return nil, err
	}

	target, err := sdk.AccAddressFromBech32(msg.Target)
	if err != nil {
		return nil, err
	}

	if err := k.ReleaseFunds(ctx, signer, msg.Id, target, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgReleaseResponse{}, nil
}
