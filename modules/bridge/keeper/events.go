package keeper

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

// EmitLockEvent emits an event signalling that funds were locked and a new
// outgoing operation is awaiting witness attestations.
func EmitLockEvent(ctx sdk.Context, id uint64, op *types.LockOperation) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeLock,
			sdk.NewAttribute(types.AttributeKeyID, strconv.FormatUint(id, 10)),
			sdk.NewAttribute(types.AttributeKeyOwner, op.Owner),
			sdk.NewAttribute(types.AttributeKeyTarget, hex.EncodeToString(op.Target)),
			sdk.NewAttribute(types.AttributeKeyAmount, op.Amount.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// EmitReleaseEvent emits an event signalling that an incoming operation
// reached the witness threshold and the funds were released.
func EmitReleaseEvent(ctx sdk.Context, id uint64, op *types.ReleaseOperation) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeRelease,
			sdk.NewAttribute(types.AttributeKeyID, strconv.FormatUint(id, 10)),
			sdk.NewAttribute(types.AttributeKeyTarget, op.Target),
			sdk.NewAttribute(types.AttributeKeyAmount, op.Amount.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// EmitWitnessesSignedEvent emits the finalized attestation tally of an
// outgoing operation. Off-chain relayers pick the signatures up from this
// event and submit them to the remote chain.
func EmitWitnessesSignedEvent(ctx sdk.Context, tally types.WitnessSignatures) {
	witnesses := make([]string, len(tally.Witnesses))
	for i, index := range tally.Witnesses {
		witnesses[i] = strconv.FormatUint(uint64(index), 10)
	}
	signatures := make([]string, len(tally.Signatures))
	for i, sig := range tally.Signatures {
		signatures[i] = hex.EncodeToString(sig)
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeWitnessesSigned,
			sdk.NewAttribute(types.AttributeKeyID, strconv.FormatUint(tally.Id, 10)),
			sdk.NewAttribute(types.AttributeKeyOperation, operationLabel(tally.Operation)),
			sdk.NewAttribute(types.AttributeKeyWitnesses, strings.Join(witnesses, ",")),
			sdk.NewAttribute(types.AttributeKeySignatures, strings.Join(signatures, ",")),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

func operationLabel(op types.Operation) string {
	switch {
	case op.GetLock() != nil:
		return types.EventTypeLock
	case op.GetRelease() != nil:
		return types.EventTypeRelease
	default:
		return fmt.Sprintf("%T", op.Sum)
	}
}
