package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

func (suite *KeeperTestSuite) TestGenesisRoundTrip() {
	amount := sdk.NewInt64Coin(localDenom, 100)

	// leave an in-flight outgoing tally with one attestation
	id, err := suite.keeper.LockFunds(suite.ctx, suite.owner, remoteTarget, amount)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.keeper.RecordWitness(suite.ctx, suite.witnesses[0], id, []byte("sig")))

	// and a pending incoming claim below the threshold
	suite.Require().NoError(suite.keeper.ReleaseFunds(suite.ctx, suite.witnesses[1], 1, suite.target, amount))

	exported := suite.keeper.ExportGenesis(suite.ctx)
	suite.Require().NoError(exported.Validate())
	suite.Require().Len(exported.OutgoingOperations, 1)
	suite.Require().Len(exported.IncomingOperations, 1)
	suite.Require().Equal(uint64(2), exported.NextSequenceOut)
	suite.Require().Equal(uint64(1), exported.NextSequenceIn)

	// importing into a fresh keeper must reproduce the exported state
	suite.SetupTest()
	suite.keeper.InitGenesis(suite.ctx, *exported)

	suite.Require().Equal(exported, suite.keeper.ExportGenesis(suite.ctx))
	suite.Require().Equal(exported.Params, suite.keeper.GetParams(suite.ctx))

	tally, found := suite.keeper.GetOutgoingOperation(suite.ctx, id)
	suite.Require().True(found)
	suite.Require().Equal([]uint32{0}, tally.Witnesses)
}

func (suite *KeeperTestSuite) TestInitGenesisDefault() {
	suite.keeper.InitGenesis(suite.ctx, *types.DefaultGenesisState())

	suite.Require().Equal(uint64(types.DefaultNextSequence), suite.keeper.GetNextSequenceIn(suite.ctx))
	suite.Require().Equal(uint64(types.DefaultNextSequence), suite.keeper.GetNextSequenceOut(suite.ctx))
	suite.Require().Empty(suite.keeper.GetAllOutgoingOperations(suite.ctx))
	suite.Require().Empty(suite.keeper.GetAllIncomingOperations(suite.ctx))
}
