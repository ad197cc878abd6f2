package simulation

import (
	"bytes"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/kv"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

// NewDecodeStore returns a decoder function closure that unmarshals the KVPair's
// Value to the corresponding bridge type.
func NewDecodeStore() func(kvA, kvB kv.Pair) string {
	return func(kvA, kvB kv.Pair) string {
		switch {
		case bytes.Equal(kvA.Key[:1], types.NextSequenceOutKey),
			bytes.Equal(kvA.Key[:1], types.NextSequenceInKey):
			seqA := sdk.BigEndianToUint64(kvA.Value)
			seqB := sdk.BigEndianToUint64(kvB.Value)
			return fmt.Sprintf("NextSequence A: %d\nNextSequence B: %d", seqA, seqB)

		case bytes.Equal(kvA.Key[:1], types.OutgoingOperationPrefix),
			bytes.Equal(kvA.Key[:1], types.IncomingOperationPrefix):
			var tallyA, tallyB types.WitnessSignatures
			types.ModuleCdc.MustUnmarshal(kvA.Value, &tallyA)
			types.ModuleCdc.MustUnmarshal(kvB.Value, &tallyB)
			return fmt.Sprintf("Tally A: %v\nTally B: %v", tallyA, tallyB)

		default:
			panic(fmt.Sprintf("invalid %s key prefix %X", types.ModuleName, kvA.Key[:1]))
		}
	}
}
