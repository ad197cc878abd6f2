package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

func TestOperationEqual(t *testing.T) {
	owner := accAddress().String()
	target := accAddress().String()
	other := accAddress().String()

	lock := types.NewLockOperation(owner, validTarget, validCoin)
	release := types.NewReleaseOperation(target, validCoin)

	require.True(t, lock.Equal(types.NewLockOperation(owner, validTarget, validCoin)))
	require.True(t, release.Equal(types.NewReleaseOperation(target, validCoin)))

	// operations of different kinds never match
	require.False(t, lock.Equal(release))
	require.False(t, release.Equal(lock))

	// any diverging field breaks equality
	require.False(t, lock.Equal(types.NewLockOperation(other, validTarget, validCoin)))
	require.False(t, lock.Equal(types.NewLockOperation(owner, append([]byte{0x00}, validTarget[1:]...), validCoin)))
	require.False(t, lock.Equal(types.NewLockOperation(owner, validTarget, sdk.NewInt64Coin("stake", 1))))
	require.False(t, lock.Equal(types.NewLockOperation(owner, validTarget, sdk.NewInt64Coin("wrapped", 100))))
	require.False(t, release.Equal(types.NewReleaseOperation(other, validCoin)))
	require.False(t, release.Equal(types.NewReleaseOperation(target, sdk.NewInt64Coin("wrapped", 100))))
	require.False(t, release.Equal(types.NewReleaseOperation(target, sdk.NewInt64Coin("stake", 1))))
}

func TestOperationValidate(t *testing.T) {
	owner := accAddress().String()
	target := accAddress().String()

	require.NoError(t, types.NewLockOperation(owner, validTarget, validCoin).Validate())
	require.NoError(t, types.NewReleaseOperation(target, validCoin).Validate())

	require.Error(t, types.NewLockOperation("not-an-address", validTarget, validCoin).Validate())
	require.Error(t, types.NewLockOperation(owner, validTarget, sdk.NewInt64Coin("stake", 0)).Validate())
	require.Error(t, types.NewReleaseOperation("not-an-address", validCoin).Validate())
	require.Error(t, types.NewReleaseOperation(target, sdk.NewInt64Coin("stake", 0)).Validate())
	require.Error(t, types.Operation{}.Validate())
}

func TestWitnessSignaturesHasVoted(t *testing.T) {
	tally := types.NewWitnessSignatures(1, types.NewLockOperation(accAddress().String(), validTarget, validCoin))
	require.False(t, tally.HasVoted(0))

	tally.Witnesses = []uint32{0, 2}
	require.True(t, tally.HasVoted(0))
	require.False(t, tally.HasVoted(1))
	require.True(t, tally.HasVoted(2))
}

func TestWitnessSignaturesValidate(t *testing.T) {
	op := types.NewLockOperation(accAddress().String(), validTarget, validCoin)

	tally := types.NewWitnessSignatures(1, op)
	require.NoError(t, tally.Validate())

	tally.Witnesses = []uint32{0, 1}
	tally.Signatures = [][]byte{[]byte("a"), []byte("b")}
	require.NoError(t, tally.Validate())

	// incoming tallies carry votes without signature payloads
	tally.Signatures = nil
	require.NoError(t, tally.Validate())

	tally.Signatures = [][]byte{[]byte("a")}
	require.Error(t, tally.Validate(), "signature count must match vote count")

	tally.Signatures = nil
	tally.Witnesses = []uint32{1, 1}
	require.Error(t, tally.Validate(), "duplicate votes are invalid")
}
