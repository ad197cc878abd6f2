package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

func TestGenesisStateValidate(t *testing.T) {
	owner := accAddress()
	target := accAddress()
	witness := accAddress()

	params := types.NewParams([]string{witness.String()}, 1, []string{"stake"}, nil)
	lock := types.NewLockOperation(owner.String(), validTarget, validCoin)
	release := types.NewReleaseOperation(target.String(), validCoin)

	testCases := []struct {
		name    string
		state   *types.GenesisState
		expPass bool
	}{
		{
			"default genesis",
			types.DefaultGenesisState(),
			true,
		},
		{
			"genesis with pending tallies",
			types.NewGenesisState(params, 1, 2,
				[]types.WitnessSignatures{types.NewWitnessSignatures(1, lock)},
				[]types.WitnessSignatures{types.NewWitnessSignatures(1, release)}),
			true,
		},
		{
			"invalid params",
			types.NewGenesisState(types.NewParams(nil, 0, nil, nil), 1, 1, nil, nil),
			false,
		},
		{
			"zero sequence counter",
			types.NewGenesisState(params, 0, 1, nil, nil),
			false,
		},
		{
			"outgoing tally id not yet assigned",
			types.NewGenesisState(params, 1, 1,
				[]types.WitnessSignatures{types.NewWitnessSignatures(1, lock)}, nil),
			false,
		},
		{
			"outgoing tally holds a release operation",
			types.NewGenesisState(params, 1, 2,
				[]types.WitnessSignatures{types.NewWitnessSignatures(1, release)}, nil),
			false,
		},
		{
			"duplicate outgoing tally ids",
			types.NewGenesisState(params, 1, 3,
				[]types.WitnessSignatures{
					types.NewWitnessSignatures(1, lock),
					types.NewWitnessSignatures(1, lock),
				}, nil),
			false,
		},
		{
			"more than one incoming tally",
			types.NewGenesisState(params, 1, 1, nil,
				[]types.WitnessSignatures{
					types.NewWitnessSignatures(1, release),
					types.NewWitnessSignatures(2, release),
				}),
			false,
		},
		{
			"incoming tally for a different sequence number",
			types.NewGenesisState(params, 3, 1, nil,
				[]types.WitnessSignatures{types.NewWitnessSignatures(1, release)}),
			false,
		},
		{
			"incoming tally holds a lock operation",
			types.NewGenesisState(params, 1, 1, nil,
				[]types.WitnessSignatures{types.NewWitnessSignatures(1, lock)}),
			false,
		},
	}

	for _, tc := range testCases {
		err := tc.state.Validate()
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}

func TestGenesisStateValidateTally(t *testing.T) {
	owner := accAddress()
	witness := accAddress()
	params := types.NewParams([]string{witness.String()}, 1, []string{"stake"}, nil)

	tally := types.NewWitnessSignatures(1, types.NewLockOperation(owner.String(), validTarget, validCoin))
	tally.Witnesses = []uint32{0, 0}
	tally.Signatures = [][]byte{[]byte("a"), []byte("b")}

	state := types.NewGenesisState(params, 1, 2, []types.WitnessSignatures{tally}, nil)
	require.Error(t, state.Validate())

	tally.Witnesses = []uint32{0}
	state = types.NewGenesisState(params, 1, 2, []types.WitnessSignatures{tally}, nil)
	require.Error(t, state.Validate(), "signature count must match vote count")

	amount := sdk.NewInt64Coin("stake", 0)
	zero := types.NewWitnessSignatures(1, types.NewLockOperation(owner.String(), validTarget, amount))
	state = types.NewGenesisState(params, 1, 2, []types.WitnessSignatures{zero}, nil)
	require.Error(t, state.Validate(), "zero amount operations are invalid")
}
