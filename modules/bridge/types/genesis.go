package types

import (
	"fmt"
)

// DefaultNextSequence is the genesis value of both sequence counters. The
// first lock operation is therefore assigned id 1 and the first release claim
// must carry id 1.
const DefaultNextSequence = 1

// NewGenesisState creates a new bridge GenesisState instance.
func NewGenesisState(
	params Params, nextSequenceIn, nextSequenceOut uint64,
	outgoingOperations, incomingOperations []WitnessSignatures,
) *GenesisState {
	return &GenesisState{
		Params:             params,
		NextSequenceIn:     nextSequenceIn,
		NextSequenceOut:    nextSequenceOut,
		OutgoingOperations: outgoingOperations,
		IncomingOperations: incomingOperations,
	}
}

// DefaultGenesisState returns the default bridge genesis state.
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(DefaultParams(), DefaultNextSequence, DefaultNextSequence, nil, nil)
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.NextSequenceIn < DefaultNextSequence || gs.NextSequenceOut < DefaultNextSequence {
		return fmt.Errorf("sequence counters must start at %d, got in %d out %d", DefaultNextSequence, gs.NextSequenceIn, gs.NextSequenceOut)
	}

	seen := make(map[uint64]struct{}, len(gs.OutgoingOperations))
	for _, tally := range gs.OutgoingOperations {
		if err := tally.Validate(); err != nil {
			return err
		}
		if tally.Operation.GetLock() == nil {
			return fmt.Errorf("outgoing tally %d does not hold a lock operation", tally.Id)
		}
		if tally.Id >= gs.NextSequenceOut {
			return fmt.Errorf("outgoing tally id %d not below next outgoing sequence %d", tally.Id, gs.NextSequenceOut)
		}
		if _, ok := seen[tally.Id]; ok {
			return fmt.Errorf("duplicate outgoing tally id %d", tally.Id)
		}
		seen[tally.Id] = struct{}{}
	}

	// At most one incoming tally can be pending: claims are only accepted for
	// the next expected incoming sequence number.
	if len(gs.IncomingOperations) > 1 {
		return fmt.Errorf("at most one incoming tally may be pending, got %d", len(gs.IncomingOperations))
	}
	for _, tally := range gs.IncomingOperations {
		if err := tally.Validate(); err != nil {
			return err
		}
		if tally.Operation.GetRelease() == nil {
			return fmt.Errorf("incoming tally %d does not hold a release operation", tally.Id)
		}
		if tally.Id != gs.NextSequenceIn {
			return fmt.Errorf("incoming tally id %d does not match next incoming sequence %d", tally.Id, gs.NextSequenceIn)
		}
	}

	return nil
}
