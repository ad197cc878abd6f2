package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

// RegisterInvariants registers all bridge invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pending-tallies", PendingTalliesInvariant(k))
}

// AllInvariants runs all invariants of the bridge module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		return PendingTalliesInvariant(k)(ctx)
	}
}

// PendingTalliesInvariant checks that every pending tally is internally
// consistent and compatible with the sequence counters: outgoing tallies hold
// lock operations with already assigned ids, and at most one incoming tally
// exists, for the next expected incoming sequence number.
func PendingTalliesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		nextOut := k.GetNextSequenceOut(ctx)
		for _, tally := range k.GetAllOutgoingOperations(ctx) {
			if err := tally.Validate(); err != nil {
				return sdk.FormatInvariant(types.ModuleName, "pending-tallies",
					fmt.Sprintf("invalid outgoing tally %d: %v", tally.Id, err)), true
			}
			if tally.Operation.GetLock() == nil {
				return sdk.FormatInvariant(types.ModuleName, "pending-tallies",
					fmt.Sprintf("outgoing tally %d does not hold a lock operation", tally.Id)), true
			}
			if tally.Id >= nextOut {
				return sdk.FormatInvariant(types.ModuleName, "pending-tallies",
					fmt.Sprintf("outgoing tally id %d not below next outgoing sequence %d", tally.Id, nextOut)), true
			}
		}

		nextIn := k.GetNextSequenceIn(ctx)
		incoming := k.GetAllIncomingOperations(ctx)
		if len(incoming) > 1 {
			return sdk.FormatInvariant(types.ModuleName, "pending-tallies",
				fmt.Sprintf("%d incoming tallies pending, expected at most one", len(incoming))), true
		}
		for _, tally := range incoming {
			if err := tally.Validate(); err != nil {
				return sdk.FormatInvariant(types.ModuleName, "pending-tallies",
					fmt.Sprintf("invalid incoming tally %d: %v", tally.Id, err)), true
			}
			if tally.Operation.GetRelease() == nil {
				return sdk.FormatInvariant(types.ModuleName, "pending-tallies",
					fmt.Sprintf("incoming tally %d does not hold a release operation", tally.Id)), true
			}
			if tally.Id != nextIn {
				return sdk.FormatInvariant(types.ModuleName, "pending-tallies",
					fmt.Sprintf("incoming tally id %d does not match next incoming sequence %d", tally.Id, nextIn)), true
			}
		}

		return sdk.FormatInvariant(types.ModuleName, "pending-tallies", "all pending tallies are consistent"), false
	}
}
