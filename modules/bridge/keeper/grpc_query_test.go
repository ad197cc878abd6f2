package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

func (suite *KeeperTestSuite) TestQueryParameters() {
	goCtx := sdk.WrapSDKContext(suite.ctx)

	res, err := suite.keeper.Parameters(goCtx, &types.QueryParametersRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(suite.keeper.GetParams(suite.ctx), res.Params)

	_, err = suite.keeper.Parameters(goCtx, nil)
	suite.Require().Error(err)
}

func (suite *KeeperTestSuite) TestQueryNextSequenceNumbers() {
	goCtx := sdk.WrapSDKContext(suite.ctx)

	res, err := suite.keeper.NextSequenceNumbers(goCtx, &types.QueryNextSequenceNumbersRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(types.DefaultNextSequence), res.In)
	suite.Require().Equal(uint64(types.DefaultNextSequence), res.Out)

	suite.keeper.SetNextSequenceIn(suite.ctx, 5)
	suite.keeper.SetNextSequenceOut(suite.ctx, 3)

	res, err = suite.keeper.NextSequenceNumbers(goCtx, &types.QueryNextSequenceNumbersRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(5), res.In)
	suite.Require().Equal(uint64(3), res.Out)

	_, err = suite.keeper.NextSequenceNumbers(goCtx, nil)
	suite.Require().Error(err)
}
