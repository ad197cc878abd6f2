package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

var (
	validTarget = []byte{
		0x9e, 0x9b, 0x53, 0x4d, 0x65, 0xe9, 0xe6, 0x7f, 0xef, 0xd0,
		0x71, 0xe2, 0xb4, 0x29, 0x1b, 0xd2, 0x24, 0x6a, 0xe0, 0x2a,
	}
	validCoin = sdk.NewInt64Coin("stake", 100)
)

func accAddress() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

func TestMsgLockValidateBasic(t *testing.T) {
	sender := accAddress()

	testCases := []struct {
		name    string
		msg     *types.MsgLock
		expPass bool
	}{
		{"valid message", types.NewMsgLock(sender, validTarget, validCoin), true},
		{"invalid sender", &types.MsgLock{Sender: "not-an-address", Target: validTarget, Amount: validCoin}, false},
		{"target too short", types.NewMsgLock(sender, validTarget[:19], validCoin), false},
		{"target too long", types.NewMsgLock(sender, append(validTarget, 0x00), validCoin), false},
		{"empty target", types.NewMsgLock(sender, nil, validCoin), false},
		{"zero amount", types.NewMsgLock(sender, validTarget, sdk.NewInt64Coin("stake", 0)), false},
		{"invalid denomination", &types.MsgLock{Sender: sender.String(), Target: validTarget, Amount: sdk.Coin{Denom: "!", Amount: sdk.OneInt()}}, false},
	}

	for _, tc := range testCases {
		err := tc.msg.ValidateBasic()
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}

func TestMsgWitnessValidateBasic(t *testing.T) {
	signer := accAddress()

	testCases := []struct {
		name    string
		msg     *types.MsgWitness
		expPass bool
	}{
		{"valid message", types.NewMsgWitness(signer, 1, []byte("signature")), true},
		{"invalid signer", &types.MsgWitness{Signer: "not-an-address", Id: 1, Signature: []byte("signature")}, false},
		{"empty signature", types.NewMsgWitness(signer, 1, nil), false},
	}

	for _, tc := range testCases {
		err := tc.msg.ValidateBasic()
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}

func TestMsgReleaseValidateBasic(t *testing.T) {
	signer := accAddress()
	target := accAddress()

	testCases := []struct {
		name    string
		msg     *types.MsgRelease
		expPass bool
	}{
		{"valid message", types.NewMsgRelease(signer, 1, target, validCoin), true},
		{"invalid signer", &types.MsgRelease{Signer: "not-an-address", Id: 1, Target: target.String(), Amount: validCoin}, false},
		{"invalid target", &types.MsgRelease{Signer: signer.String(), Id: 1, Target: "not-an-address", Amount: validCoin}, false},
		{"zero amount", types.NewMsgRelease(signer, 1, target, sdk.NewInt64Coin("stake", 0)), false},
	}

	for _, tc := range testCases {
		err := tc.msg.ValidateBasic()
		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}

func TestMsgGetSigners(t *testing.T) {
	sender := accAddress()
	signer := accAddress()

	require.Equal(t, []sdk.AccAddress{sender}, types.NewMsgLock(sender, validTarget, validCoin).GetSigners())
	require.Equal(t, []sdk.AccAddress{signer}, types.NewMsgWitness(signer, 1, []byte("sig")).GetSigners())
	require.Equal(t, []sdk.AccAddress{signer}, types.NewMsgRelease(signer, 1, sender, validCoin).GetSigners())
}
