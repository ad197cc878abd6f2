package keeper_test

import (
	"encoding/hex"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

func (suite *KeeperTestSuite) lockedFunds() sdk.Coins {
	return suite.bank.GetAllBalances(suite.ctx, types.GetLockedFundsAddress())
}

// findEvent returns the attributes of the single emitted event with the given
// type, or nil if none was emitted.
func (suite *KeeperTestSuite) findEvent(eventType string) map[string]string {
	for _, event := range suite.ctx.EventManager().Events() {
		if event.Type != eventType {
			continue
		}
		attributes := make(map[string]string, len(event.Attributes))
		for _, attr := range event.Attributes {
			attributes[string(attr.Key)] = string(attr.Value)
		}
		return attributes
	}
	return nil
}

func (suite *KeeperTestSuite) TestLockFundsLocalDenomination() {
	amount := sdk.NewInt64Coin(localDenom, 100)

	id, err := suite.keeper.LockFunds(suite.ctx, suite.owner, remoteTarget, amount)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), id)

	// locally native funds stay escrowed in the module account
	suite.Require().Equal(sdk.NewCoins(amount), suite.lockedFunds())
	suite.Require().Equal(uint64(2), suite.keeper.GetNextSequenceOut(suite.ctx))

	tally, found := suite.keeper.GetOutgoingOperation(suite.ctx, id)
	suite.Require().True(found)
	suite.Require().Empty(tally.Witnesses)

	lock := tally.Operation.GetLock()
	suite.Require().NotNil(lock)
	suite.Require().Equal(suite.owner.String(), lock.Owner)
	suite.Require().Equal(remoteTarget, lock.Target)
	suite.Require().Equal(amount, lock.Amount)

	// ids are assigned strictly increasing
	id, err = suite.keeper.LockFunds(suite.ctx, suite.owner, remoteTarget, amount)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), id)
}

func (suite *KeeperTestSuite) TestLockFundsRemoteDenomination() {
	amount := sdk.NewInt64Coin(remoteDenom, 100)

	id, err := suite.keeper.LockFunds(suite.ctx, suite.owner, remoteTarget, amount)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), id)

	// remote denominations are burned after escrow, nothing remains locked
	suite.Require().True(suite.lockedFunds().IsZero())
	suite.Require().Equal(sdk.NewInt(900), suite.bank.GetAllBalances(suite.ctx, suite.owner).AmountOf(remoteDenom))
}

func (suite *KeeperTestSuite) TestLockFundsUnsupportedDenomination() {
	suite.bank.fund(suite.owner, sdk.NewCoins(sdk.NewInt64Coin("photon", 100)))

	_, err := suite.keeper.LockFunds(suite.ctx, suite.owner, remoteTarget, sdk.NewInt64Coin("photon", 10))
	suite.Require().ErrorIs(err, types.ErrUnsupportedDenomination)

	// nothing moved, no sequence number consumed
	suite.Require().True(suite.lockedFunds().IsZero())
	suite.Require().Equal(uint64(1), suite.keeper.GetNextSequenceOut(suite.ctx))
}

func (suite *KeeperTestSuite) TestLockFundsInsufficientBalance() {
	_, err := suite.keeper.LockFunds(suite.ctx, suite.owner, remoteTarget, sdk.NewInt64Coin(localDenom, 5000))
	suite.Require().ErrorIs(err, types.ErrInsufficientBalance)
	suite.Require().Equal(uint64(1), suite.keeper.GetNextSequenceOut(suite.ctx))
}

func (suite *KeeperTestSuite) TestRecordWitnessThreshold() {
	amount := sdk.NewInt64Coin(localDenom, 100)
	id, err := suite.keeper.LockFunds(suite.ctx, suite.owner, remoteTarget, amount)
	suite.Require().NoError(err)

	// first attestation stays below the threshold of two, nothing is emitted
	err = suite.keeper.RecordWitness(suite.ctx, suite.witnesses[0], id, []byte("sig-0"))
	suite.Require().NoError(err)
	suite.Require().Nil(suite.findEvent(types.EventTypeWitnessesSigned))

	tally, found := suite.keeper.GetOutgoingOperation(suite.ctx, id)
	suite.Require().True(found)
	suite.Require().Equal([]uint32{0}, tally.Witnesses)
	suite.Require().Equal([][]byte{[]byte("sig-0")}, tally.Signatures)

	// second attestation finalizes and removes the tally
	err = suite.keeper.RecordWitness(suite.ctx, suite.witnesses[2], id, []byte("sig-2"))
	suite.Require().NoError(err)

	_, found = suite.keeper.GetOutgoingOperation(suite.ctx, id)
	suite.Require().False(found)

	// the finalized tally is emitted for off-chain relaying with witness
	// indices and signatures aligned in acceptance order
	attributes := suite.findEvent(types.EventTypeWitnessesSigned)
	suite.Require().NotNil(attributes)
	suite.Require().Equal("1", attributes[types.AttributeKeyID])
	suite.Require().Equal("0,2", attributes[types.AttributeKeyWitnesses])
	suite.Require().Equal(
		hex.EncodeToString([]byte("sig-0"))+","+hex.EncodeToString([]byte("sig-2")),
		attributes[types.AttributeKeySignatures],
	)

	// attesting a finalized operation is indistinguishable from an unknown one
	err = suite.keeper.RecordWitness(suite.ctx, suite.witnesses[1], id, []byte("sig-1"))
	suite.Require().ErrorIs(err, types.ErrInvalidArgument)
}

func (suite *KeeperTestSuite) TestRecordWitnessOrderIndependence() {
	amount := sdk.NewInt64Coin(localDenom, 100)

	// any two of the three witnesses finalize, regardless of order
	orders := [][]int{{0, 1}, {1, 0}, {2, 0}, {1, 2}}
	for _, order := range orders {
		suite.SetupTest()

		id, err := suite.keeper.LockFunds(suite.ctx, suite.owner, remoteTarget, amount)
		suite.Require().NoError(err)

		for _, w := range order {
			err = suite.keeper.RecordWitness(suite.ctx, suite.witnesses[w], id, []byte("sig"))
			suite.Require().NoError(err)
		}

		_, found := suite.keeper.GetOutgoingOperation(suite.ctx, id)
		suite.Require().False(found, "tally should be finalized for order %v", order)
	}
}

func (suite *KeeperTestSuite) TestRecordWitnessUnauthorized() {
	id, err := suite.keeper.LockFunds(suite.ctx, suite.owner, remoteTarget, sdk.NewInt64Coin(localDenom, 100))
	suite.Require().NoError(err)

	err = suite.keeper.RecordWitness(suite.ctx, suite.stranger, id, []byte("sig"))
	suite.Require().ErrorIs(err, types.ErrNotAuthorized)
}

func (suite *KeeperTestSuite) TestRecordWitnessUnknownOperation() {
	err := suite.keeper.RecordWitness(suite.ctx, suite.witnesses[0], 99, []byte("sig"))
	suite.Require().ErrorIs(err, types.ErrInvalidArgument)
}

func (suite *KeeperTestSuite) TestRecordWitnessDuplicateVote() {
	id, err := suite.keeper.LockFunds(suite.ctx, suite.owner, remoteTarget, sdk.NewInt64Coin(localDenom, 100))
	suite.Require().NoError(err)

	err = suite.keeper.RecordWitness(suite.ctx, suite.witnesses[0], id, []byte("sig"))
	suite.Require().NoError(err)

	// a second vote never advances the tally, not even with a fresh payload
	err = suite.keeper.RecordWitness(suite.ctx, suite.witnesses[0], id, []byte("other-sig"))
	suite.Require().ErrorIs(err, types.ErrAlreadySubmittedSignature)

	tally, found := suite.keeper.GetOutgoingOperation(suite.ctx, id)
	suite.Require().True(found)
	suite.Require().Equal([]uint32{0}, tally.Witnesses)
}

func (suite *KeeperTestSuite) TestReleaseFundsLocalDenomination() {
	amount := sdk.NewInt64Coin(localDenom, 100)

	// fill the escrow the same way an outgoing lock would
	_, err := suite.keeper.LockFunds(suite.ctx, suite.owner, remoteTarget, amount)
	suite.Require().NoError(err)

	err = suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[0], 1, suite.target, amount)
	suite.Require().NoError(err)

	// below threshold: tally pending, nothing paid out yet
	tally, found := suite.keeper.GetIncomingOperation(suite.ctx, 1)
	suite.Require().True(found)
	suite.Require().Equal([]uint32{0}, tally.Witnesses)
	suite.Require().Empty(tally.Signatures)
	suite.Require().True(suite.bank.GetAllBalances(suite.ctx, suite.target).IsZero())

	err = suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[1], 1, suite.target, amount)
	suite.Require().NoError(err)

	// threshold reached: escrow paid out, tally gone, sequence advanced
	suite.Require().Equal(sdk.NewCoins(amount), suite.bank.GetAllBalances(suite.ctx, suite.target))
	suite.Require().True(suite.lockedFunds().IsZero())

	_, found = suite.keeper.GetIncomingOperation(suite.ctx, 1)
	suite.Require().False(found)
	suite.Require().Equal(uint64(2), suite.keeper.GetNextSequenceIn(suite.ctx))
}

func (suite *KeeperTestSuite) TestReleaseFundsRemoteDenomination() {
	amount := sdk.NewInt64Coin(remoteDenom, 100)

	err := suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[0], 1, suite.target, amount)
	suite.Require().NoError(err)
	err = suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[1], 1, suite.target, amount)
	suite.Require().NoError(err)

	// remote denominations are minted on release
	suite.Require().Equal(sdk.NewCoins(amount), suite.bank.GetAllBalances(suite.ctx, suite.target))
}

func (suite *KeeperTestSuite) TestReleaseFundsSequenceGating() {
	amount := sdk.NewInt64Coin(remoteDenom, 100)

	// claims are only accepted for the next expected sequence number
	err := suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[0], 2, suite.target, amount)
	suite.Require().ErrorIs(err, types.ErrInvalidSequenceNumber)

	// the two counters are independent: outgoing progress never unlocks
	// incoming ids
	suite.keeper.SetNextSequenceIn(suite.ctx, 5)
	suite.keeper.SetNextSequenceOut(suite.ctx, 3)

	err = suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[0], 6, suite.target, amount)
	suite.Require().ErrorIs(err, types.ErrInvalidSequenceNumber)

	err = suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[0], 5, suite.target, amount)
	suite.Require().NoError(err)
}

func (suite *KeeperTestSuite) TestReleaseFundsFinalizedSequence() {
	amount := sdk.NewInt64Coin(remoteDenom, 100)

	err := suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[0], 1, suite.target, amount)
	suite.Require().NoError(err)
	err = suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[1], 1, suite.target, amount)
	suite.Require().NoError(err)

	// a late claim for the finalized id is a sequence error, never a revote
	err = suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[2], 1, suite.target, amount)
	suite.Require().ErrorIs(err, types.ErrInvalidSequenceNumber)
}

func (suite *KeeperTestSuite) TestReleaseFundsConflictingClaims() {
	amount := sdk.NewInt64Coin(remoteDenom, 100)

	err := suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[0], 1, suite.target, amount)
	suite.Require().NoError(err)

	// diverging claims for the same sequence number never merge
	err = suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[1], 1, suite.target, sdk.NewInt64Coin(remoteDenom, 999))
	suite.Require().ErrorIs(err, types.ErrInvalidArgument)

	// a claim differing only in denomination is a conflict too, both
	// denominations pass the gate on their own
	err = suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[1], 1, suite.target, sdk.NewInt64Coin(localDenom, 100))
	suite.Require().ErrorIs(err, types.ErrInvalidArgument)

	err = suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[1], 1, suite.stranger, amount)
	suite.Require().ErrorIs(err, types.ErrInvalidArgument)

	// the original tally is untouched and can still complete
	err = suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[2], 1, suite.target, amount)
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewCoins(amount), suite.bank.GetAllBalances(suite.ctx, suite.target))
}

func (suite *KeeperTestSuite) TestReleaseFundsDuplicateClaim() {
	amount := sdk.NewInt64Coin(remoteDenom, 100)

	err := suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[0], 1, suite.target, amount)
	suite.Require().NoError(err)

	err = suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[0], 1, suite.target, amount)
	suite.Require().ErrorIs(err, types.ErrAlreadySubmittedSignature)
}

func (suite *KeeperTestSuite) TestReleaseFundsEscrowShortfall() {
	// nothing was ever locked, the escrow cannot cover a local payout
	amount := sdk.NewInt64Coin(localDenom, 100)

	err := suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[0], 1, suite.target, amount)
	suite.Require().NoError(err)

	err = suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[1], 1, suite.target, amount)
	suite.Require().ErrorIs(err, types.ErrInsufficientBalance)

	// the failed finalization left no trace: no payout, no sequence advance,
	// no recorded vote for the failing witness
	suite.Require().True(suite.bank.GetAllBalances(suite.ctx, suite.target).IsZero())
	suite.Require().Equal(uint64(1), suite.keeper.GetNextSequenceIn(suite.ctx))

	tally, found := suite.keeper.GetIncomingOperation(suite.ctx, 1)
	suite.Require().True(found)
	suite.Require().Equal([]uint32{0}, tally.Witnesses)

	// funding the escrow lets the same witness retry and finalize
	suite.bank.fund(types.GetLockedFundsAddress(), sdk.NewCoins(amount))
	err = suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[1], 1, suite.target, amount)
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewCoins(amount), suite.bank.GetAllBalances(suite.ctx, suite.target))
}

func (suite *KeeperTestSuite) TestReleaseFundsUnauthorized() {
	err := suite.keeper.ReleaseFunds(suite.ctx, suite.stranger, 1, suite.target, sdk.NewInt64Coin(remoteDenom, 100))
	suite.Require().ErrorIs(err, types.ErrNotAuthorized)
}

func (suite *KeeperTestSuite) TestReleaseFundsUnsupportedDenomination() {
	err := suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[0], 1, suite.target, sdk.NewInt64Coin("photon", 100))
	suite.Require().ErrorIs(err, types.ErrUnsupportedDenomination)
}
