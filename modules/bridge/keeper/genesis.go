package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

// InitGenesis initializes the bridge module state from a genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	k.SetParams(ctx, state.Params)
	k.SetNextSequenceIn(ctx, state.NextSequenceIn)
	k.SetNextSequenceOut(ctx, state.NextSequenceOut)

	for _, tally := range state.OutgoingOperations {
		k.SetOutgoingOperation(ctx, tally)
	}
	for _, tally := range state.IncomingOperations {
		k.SetIncomingOperation(ctx, tally)
	}
}

// ExportGenesis exports the bridge module state, including in-flight
// attestation tallies.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return types.NewGenesisState(
		k.GetParams(ctx),
		k.GetNextSequenceIn(ctx),
		k.GetNextSequenceOut(ctx),
		k.GetAllOutgoingOperations(ctx),
		k.GetAllIncomingOperations(ctx),
	)
}
