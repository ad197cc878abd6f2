package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/bridge-module/modules/bridge/keeper"
	"github.com/cosmos/bridge-module/modules/bridge/types"
)

func (suite *KeeperTestSuite) TestPendingTalliesInvariant() {
	invariant := keeper.PendingTalliesInvariant(suite.keeper)
	amount := sdk.NewInt64Coin(localDenom, 100)

	_, broken := invariant(suite.ctx)
	suite.Require().False(broken)

	id, err := suite.keeper.LockFunds(suite.ctx, suite.owner, remoteTarget, amount)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[0], 1, suite.target, amount))

	_, broken = invariant(suite.ctx)
	suite.Require().False(broken)

	// an outgoing tally at or above the next sequence number was never assigned
	suite.keeper.SetNextSequenceOut(suite.ctx, id)
	_, broken = invariant(suite.ctx)
	suite.Require().True(broken)
	suite.keeper.SetNextSequenceOut(suite.ctx, id+1)

	// an incoming tally for anything but the next expected id is inconsistent
	suite.keeper.SetNextSequenceIn(suite.ctx, 9)
	_, broken = invariant(suite.ctx)
	suite.Require().True(broken)
	suite.keeper.SetNextSequenceIn(suite.ctx, 1)

	// outgoing tallies must hold lock operations
	suite.keeper.SetOutgoingOperation(suite.ctx, types.NewWitnessSignatures(1,
		types.NewReleaseOperation(suite.target.String(), amount)))
	_, broken = invariant(suite.ctx)
	suite.Require().True(broken)
}
