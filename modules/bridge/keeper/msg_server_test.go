package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

func (suite *KeeperTestSuite) TestMsgLock() {
	goCtx := sdk.WrapSDKContext(suite.ctx)
	amount := sdk.NewInt64Coin(localDenom, 100)

	res, err := suite.keeper.Lock(goCtx, types.NewMsgLock(suite.owner, remoteTarget, amount))
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), res.Id)

	res, err = suite.keeper.Lock(goCtx, types.NewMsgLock(suite.owner, remoteTarget, amount))
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), res.Id)

	_, err = suite.keeper.Lock(goCtx, &types.MsgLock{Sender: "not-an-address", Target: remoteTarget, Amount: amount})
	suite.Require().Error(err)

	_, err = suite.keeper.Lock(goCtx, types.NewMsgLock(suite.owner, remoteTarget, sdk.NewInt64Coin("photon", 1)))
	suite.Require().ErrorIs(err, types.ErrUnsupportedDenomination)
}

func (suite *KeeperTestSuite) TestMsgWitness() {
	goCtx := sdk.WrapSDKContext(suite.ctx)
	amount := sdk.NewInt64Coin(localDenom, 100)

	id, err := suite.keeper.LockFunds(suite.ctx, suite.owner, remoteTarget, amount)
	suite.Require().NoError(err)

	_, err = suite.keeper.Witness(goCtx, types.NewMsgWitness(suite.witnesses[0], id, []byte("sig-0")))
	suite.Require().NoError(err)

	_, err = suite.keeper.Witness(goCtx, types.NewMsgWitness(suite.stranger, id, []byte("sig")))
	suite.Require().ErrorIs(err, types.ErrNotAuthorized)

	_, err = suite.keeper.Witness(goCtx, &types.MsgWitness{Signer: "not-an-address", Id: id, Signature: []byte("sig")})
	suite.Require().Error(err)

	_, err = suite.keeper.Witness(goCtx, types.NewMsgWitness(suite.witnesses[1], id, []byte("sig-1")))
	suite.Require().NoError(err)

	_, found := suite.keeper.GetOutgoingOperation(suite.ctx, id)
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestMsgRelease() {
	goCtx := sdk.WrapSDKContext(suite.ctx)
	amount := sdk.NewInt64Coin(remoteDenom, 100)

	_, err := suite.keeper.Release(goCtx, types.NewMsgRelease(suite.witnesses[0], 1, suite.target, amount))
	suite.Require().NoError(err)

	_, err = suite.keeper.Release(goCtx, types.NewMsgRelease(suite.stranger, 1, suite.target, amount))
	suite.Require().ErrorIs(err, types.ErrNotAuthorized)

	_, err = suite.keeper.Release(goCtx, types.NewMsgRelease(suite.witnesses[1], 2, suite.target, amount))
	suite.Require().ErrorIs(err, types.ErrInvalidSequenceNumber)

	_, err = suite.keeper.Release(goCtx, types.NewMsgRelease(suite.witnesses[1], 1, suite.target, amount))
	suite.Require().NoError(err)

	suite.Require().Equal(sdk.NewCoins(amount), suite.bank.GetAllBalances(suite.ctx, suite.target))
	suite.Require().Equal(uint64(2), suite.keeper.GetNextSequenceIn(suite.ctx))
}
