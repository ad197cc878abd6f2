package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

func newAddress() string {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address()).String()
}

func TestParamsValidate(t *testing.T) {
	witnesses := []string{newAddress(), newAddress(), newAddress()}

	testCases := []struct {
		name    string
		params  types.Params
		expPass bool
	}{
		{
			"default params",
			types.DefaultParams(),
			true,
		},
		{
			"valid configuration",
			types.NewParams(witnesses, 2, []string{"stake"}, map[string][]byte{"wrapped": {0x01}}),
			true,
		},
		{
			"threshold exceeds witness count",
			types.NewParams(witnesses, 4, []string{"stake"}, nil),
			false,
		},
		{
			"zero threshold",
			types.NewParams(witnesses, 0, []string{"stake"}, nil),
			false,
		},
		{
			"invalid witness address",
			types.NewParams([]string{"not-an-address"}, 1, nil, nil),
			false,
		},
		{
			"duplicate witness",
			types.NewParams([]string{witnesses[0], witnesses[0]}, 1, nil, nil),
			false,
		},
		{
			"invalid local denomination",
			types.NewParams(witnesses, 1, []string{"!"}, nil),
			false,
		},
		{
			"duplicate local denomination",
			types.NewParams(witnesses, 1, []string{"stake", "stake"}, nil),
			false,
		},
		{
			"empty remote denomination identifier",
			types.NewParams(witnesses, 1, nil, map[string][]byte{"wrapped": {}}),
			false,
		},
		{
			"oversized remote denomination identifier",
			types.NewParams(witnesses, 1, nil, map[string][]byte{"wrapped": make([]byte, types.MaxRemoteDenominationLength+1)}),
			false,
		},
		{
			"denomination both local and remote",
			types.NewParams(witnesses, 1, []string{"stake"}, map[string][]byte{"stake": {0x01}}),
			false,
		},
	}

	for _, tc := range testCases {
		err := tc.params.Validate()
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}

func TestParamsString(t *testing.T) {
	params := types.NewParams([]string{newAddress()}, 2, []string{"stake"}, map[string][]byte{"wrapped": {0x01}})

	out := params.String()
	require.Contains(t, out, "threshold: 2")
	require.Contains(t, out, "local_denominations:")
	require.Contains(t, out, "remote_denominations:")
}

func TestWitnessIndex(t *testing.T) {
	witnesses := []string{newAddress(), newAddress()}
	params := types.NewParams(witnesses, 1, nil, nil)

	index, ok := params.WitnessIndex(witnesses[1])
	require.True(t, ok)
	require.Equal(t, uint32(1), index)

	_, ok = params.WitnessIndex(newAddress())
	require.False(t, ok)
}

func TestDenominationLookups(t *testing.T) {
	params := types.NewParams(nil, 1, []string{"stake"}, map[string][]byte{"wrapped": []byte("remote-token-id")})

	require.True(t, params.IsLocalDenomination("stake"))
	require.False(t, params.IsLocalDenomination("wrapped"))

	remote, ok := params.RemoteDenomination("wrapped")
	require.True(t, ok)
	require.Equal(t, []byte("remote-token-id"), remote)

	_, ok = params.RemoteDenomination("stake")
	require.False(t, ok)
}
