package keeper

import (
	"fmt"

	metrics "github.com/armon/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

// LockFunds locks the given amount for release on the remote chain. Locally
// native denominations are escrowed in the bridge module account; remote
// denominations are escrowed and then burned so the remote chain can release
// the original funds. The assigned outgoing sequence number is returned and a
// pending attestation tally is created for the witnesses to sign.
func (k Keeper) LockFunds(ctx sdk.Context, owner sdk.AccAddress, target []byte, amount sdk.Coin) (uint64, error) {
	params := k.GetParams(ctx)

	isLocal := params.IsLocalDenomination(amount.Denom)
	if !isLocal {
		if _, ok := params.RemoteDenomination(amount.Denom); !ok {
			return 0, sdkerrors.Wrap(types.ErrUnsupportedDenomination, amount.Denom)
		}
	}

	coins := sdk.NewCoins(amount)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName, coins); err != nil {
		if sdkerrors.ErrInsufficientFunds.Is(err) {
			return 0, sdkerrors.Wrap(types.ErrInsufficientBalance, err.Error())
		}
		return 0, err
	}

	if !isLocal {
		if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
			// NOTE: should not happen as the module account was funded on the
			// step above and it has enough balance to burn.
			panic(fmt.Errorf("cannot burn coins after a successful send to a module account: %v", err))
		}
	}

	id := k.GetNextSequenceOut(ctx)
	k.SetNextSequenceOut(ctx, id+1)

	tally := types.NewWitnessSignatures(id, types.NewLockOperation(owner.String(), target, amount))
	k.SetOutgoingOperation(ctx, tally)

	k.Logger(ctx).Info("funds locked", "id", id, "owner", owner.String(), "amount", amount.String())

	defer func() {
		if amount.Amount.IsInt64() {
			telemetry.SetGaugeWithLabels(
				[]string{"tx", "msg", "bridge", "lock"},
				float32(amount.Amount.Int64()),
				[]metrics.Label{telemetry.NewLabel("denom", amount.Denom)},
			)
		}

		telemetry.IncrCounterWithLabels(
			[]string{"bridge", "lock"},
			1,
			[]metrics.Label{telemetry.NewLabel("denom", amount.Denom)},
		)
	}()

	EmitLockEvent(ctx, id, tally.Operation.GetLock())

	return id, nil
}

// RecordWitness records a witness attestation over the pending outgoing
// operation with the given id. When the threshold attestation is accepted the
// tally is finalized: the collected signatures are emitted for off-chain
// relaying and the tally is removed from state. Attestations for unknown or
// already finalized operations are rejected.
func (k Keeper) RecordWitness(ctx sdk.Context, signer sdk.AccAddress, id uint64, signature []byte) error {
	params := k.GetParams(ctx)

	index, ok := params.WitnessIndex(signer.String())
	if !ok {
		return sdkerrors.Wrap(types.ErrNotAuthorized, signer.String())
	}

	tally, found := k.GetOutgoingOperation(ctx, id)
	if !found {
		return sdkerrors.Wrapf(types.ErrInvalidArgument, "no pending outgoing operation with id %d", id)
	}

	if tally.HasVoted(index) {
		return sdkerrors.Wrapf(types.ErrAlreadySubmittedSignature, "witness %s already signed operation %d", signer, id)
	}

	tally.Witnesses = append(tally.Witnesses, index)
	tally.Signatures = append(tally.Signatures, signature)

	if uint64(len(tally.Witnesses)) < params.Threshold {
		k.SetOutgoingOperation(ctx, tally)
		return nil
	}

	// threshold reached, the collected signatures leave state for good
	k.DeleteOutgoingOperation(ctx, id)

	k.Logger(ctx).Info("outgoing operation finalized", "id", id, "witnesses", len(tally.Witnesses))

	defer telemetry.IncrCounter(1, "bridge", "witnessed")

	EmitWitnessesSignedEvent(ctx, tally)

	return nil
}

// ReleaseFunds tallies a witness claim that funds were locked on the remote
// chain and, once the threshold of identical claims is reached, releases the
// funds to the target account. Locally native denominations are paid out of
// the bridge escrow; remote denominations are minted. Claims are only
// accepted for the next expected incoming sequence number and conflicting
// claims for that number are rejected.
func (k Keeper) ReleaseFunds(ctx sdk.Context, signer sdk.AccAddress, id uint64, target sdk.AccAddress, amount sdk.Coin) error {
	params := k.GetParams(ctx)

	index, ok := params.WitnessIndex(signer.String())
	if !ok {
		return sdkerrors.Wrap(types.ErrNotAuthorized, signer.String())
	}

	isLocal := params.IsLocalDenomination(amount.Denom)
	if !isLocal {
		if _, ok := params.RemoteDenomination(amount.Denom); !ok {
			return sdkerrors.Wrap(types.ErrUnsupportedDenomination, amount.Denom)
		}
	}

	if expected := k.GetNextSequenceIn(ctx); id != expected {
		return sdkerrors.Wrapf(types.ErrInvalidSequenceNumber, "expected incoming sequence %d, got %d", expected, id)
	}

	op := types.NewReleaseOperation(target.String(), amount)

	tally, found := k.GetIncomingOperation(ctx, id)
	if !found {
		tally = types.NewWitnessSignatures(id, op)
	} else {
		if !tally.Operation.Equal(op) {
			return sdkerrors.Wrapf(types.ErrInvalidArgument, "conflicting claim for incoming operation %d", id)
		}
		if tally.HasVoted(index) {
			return sdkerrors.Wrapf(types.ErrAlreadySubmittedSignature, "witness %s already claimed operation %d", signer, id)
		}
	}

	tally.Witnesses = append(tally.Witnesses, index)

	if uint64(len(tally.Witnesses)) < params.Threshold {
		k.SetIncomingOperation(ctx, tally)
		return nil
	}

	coins := sdk.NewCoins(amount)
	if !isLocal {
		// remote denominations were burned on lock, mint them back before
		// paying out
		if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
			if sdkerrors.ErrInsufficientFunds.Is(err) {
				return sdkerrors.Wrap(types.ErrInsufficientBalance, err.Error())
			}
			return err
		}
	}

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, target, coins); err != nil {
		if sdkerrors.ErrInsufficientFunds.Is(err) {
			return sdkerrors.Wrap(types.ErrInsufficientBalance, err.Error())
		}
		return err
	}

	k.DeleteIncomingOperation(ctx, id)
	k.SetNextSequenceIn(ctx, id+1)

	k.Logger(ctx).Info("funds released", "id", id, "target", target.String(), "amount", amount.String())

	defer func() {
		if amount.Amount.IsInt64() {
			telemetry.SetGaugeWithLabels(
				[]string{"tx", "msg", "bridge", "release"},
				float32(amount.Amount.Int64()),
				[]metrics.Label{telemetry.NewLabel("denom", amount.Denom)},
			)
		}

		telemetry.IncrCounterWithLabels(
			[]string{"bridge", "release"},
			1,
			[]metrics.Label{telemetry.NewLabel("denom", amount.Denom)},
		)
	}()

	EmitReleaseEvent(ctx, id, tally.Operation.GetRelease())

	return nil
}
