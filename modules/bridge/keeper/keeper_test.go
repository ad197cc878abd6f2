package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"

	"github.com/cosmos/bridge-module/modules/bridge/keeper"
	"github.com/cosmos/bridge-module/modules/bridge/types"
)

const (
	localDenom  = "stake"
	remoteDenom = "wrapped"
)

var remoteTarget = []byte{
	0x9e, 0x9b, 0x53, 0x4d, 0x65, 0xe9, 0xe6, 0x7f, 0xef, 0xd0,
	0x71, 0xe2, 0xb4, 0x29, 0x1b, 0xd2, 0x24, 0x6a, 0xe0, 0x2a,
}

type KeeperTestSuite struct {
	suite.Suite

	ctx    sdk.Context
	keeper keeper.Keeper
	bank   *mockBankKeeper

	owner     sdk.AccAddress
	target    sdk.AccAddress
	witnesses []sdk.AccAddress
	stranger  sdk.AccAddress
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) SetupTest() {
	storeKey := sdk.NewKVStoreKey(types.StoreKey)
	paramsKey := sdk.NewKVStoreKey("params")
	tkey := sdk.NewTransientStoreKey("transient_params")

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db)
	stateStore.MountStoreWithDB(storeKey, sdk.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(paramsKey, sdk.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(tkey, sdk.StoreTypeTransient, db)
	suite.Require().NoError(stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)
	legacyAmino := codec.NewLegacyAmino()

	paramSpace := paramtypes.NewSubspace(cdc, legacyAmino, paramsKey, tkey, types.ModuleName)

	suite.bank = newMockBankKeeper()
	suite.keeper = keeper.NewKeeper(cdc, storeKey, paramSpace, mockAccountKeeper{}, suite.bank)
	suite.ctx = sdk.NewContext(stateStore, tmproto.Header{ChainID: "bridge-test-1"}, false, log.NewNopLogger())

	suite.owner = newAddress()
	suite.target = newAddress()
	suite.stranger = newAddress()
	suite.witnesses = []sdk.AccAddress{newAddress(), newAddress(), newAddress()}

	witnesses := make([]string, len(suite.witnesses))
	for i, witness := range suite.witnesses {
		witnesses[i] = witness.String()
	}

	suite.keeper.SetParams(suite.ctx, types.NewParams(
		witnesses,
		2,
		[]string{localDenom},
		map[string][]byte{remoteDenom: []byte("remote-token-id")},
	))

	suite.bank.fund(suite.owner, sdk.NewCoins(
		sdk.NewInt64Coin(localDenom, 1000),
		sdk.NewInt64Coin(remoteDenom, 1000),
	))
}

func newAddress() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

type mockAccountKeeper struct{}

func (mockAccountKeeper) GetModuleAddress(name string) sdk.AccAddress {
	return authtypes.NewModuleAddress(name)
}

// mockBankKeeper tracks balances and token supply in memory. It mirrors the
// real bank keeper behaviour the bridge relies on: transfers fail with
// ErrInsufficientFunds and burns can only consume module balances.
type mockBankKeeper struct {
	balances map[string]sdk.Coins
}

func newMockBankKeeper() *mockBankKeeper {
	return &mockBankKeeper{balances: make(map[string]sdk.Coins)}
}

func (bk *mockBankKeeper) fund(addr sdk.AccAddress, coins sdk.Coins) {
	bk.balances[addr.String()] = bk.balances[addr.String()].Add(coins...)
}

func (bk *mockBankKeeper) GetAllBalances(_ sdk.Context, addr sdk.AccAddress) sdk.Coins {
	return bk.balances[addr.String()]
}

func (bk *mockBankKeeper) send(from, to string, amt sdk.Coins) error {
	balance := bk.balances[from]
	if !balance.IsAllGTE(amt) {
		return sdkerrors.Wrapf(sdkerrors.ErrInsufficientFunds, "%s is smaller than %s", balance, amt)
	}
	bk.balances[from] = balance.Sub(amt)
	bk.balances[to] = bk.balances[to].Add(amt...)
	return nil
}

func (bk *mockBankKeeper) SendCoinsFromAccountToModule(_ sdk.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return bk.send(senderAddr.String(), authtypes.NewModuleAddress(recipientModule).String(), amt)
}

func (bk *mockBankKeeper) SendCoinsFromModuleToAccount(_ sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return bk.send(authtypes.NewModuleAddress(senderModule).String(), recipientAddr.String(), amt)
}

func (bk *mockBankKeeper) MintCoins(_ sdk.Context, moduleName string, amt sdk.Coins) error {
	addr := authtypes.NewModuleAddress(moduleName).String()
	bk.balances[addr] = bk.balances[addr].Add(amt...)
	return nil
}

func (bk *mockBankKeeper) BurnCoins(_ sdk.Context, moduleName string, amt sdk.Coins) error {
	addr := authtypes.NewModuleAddress(moduleName).String()
	balance := bk.balances[addr]
	if !balance.IsAllGTE(amt) {
		return sdkerrors.Wrapf(sdkerrors.ErrInsufficientFunds, "%s is smaller than %s", balance, amt)
	}
	bk.balances[addr] = balance.Sub(amt)
	return nil
}

func (suite *KeeperTestSuite) TestSequenceCounters() {
	suite.Require().Equal(uint64(types.DefaultNextSequence), suite.keeper.GetNextSequenceOut(suite.ctx))
	suite.Require().Equal(uint64(types.DefaultNextSequence), suite.keeper.GetNextSequenceIn(suite.ctx))

	suite.keeper.SetNextSequenceOut(suite.ctx, 42)
	suite.keeper.SetNextSequenceIn(suite.ctx, 7)

	suite.Require().Equal(uint64(42), suite.keeper.GetNextSequenceOut(suite.ctx))
	suite.Require().Equal(uint64(7), suite.keeper.GetNextSequenceIn(suite.ctx))
}

func (suite *KeeperTestSuite) TestOperationStore() {
	op := types.NewLockOperation(suite.owner.String(), remoteTarget, sdk.NewInt64Coin(localDenom, 10))

	_, found := suite.keeper.GetOutgoingOperation(suite.ctx, 1)
	suite.Require().False(found)

	tally := types.NewWitnessSignatures(1, op)
	tally.Witnesses = []uint32{2}
	tally.Signatures = [][]byte{[]byte("sig")}
	suite.keeper.SetOutgoingOperation(suite.ctx, tally)

	stored, found := suite.keeper.GetOutgoingOperation(suite.ctx, 1)
	suite.Require().True(found)
	suite.Require().Equal(tally, stored)

	suite.keeper.SetOutgoingOperation(suite.ctx, types.NewWitnessSignatures(3, op))
	suite.Require().Len(suite.keeper.GetAllOutgoingOperations(suite.ctx), 2)

	suite.keeper.DeleteOutgoingOperation(suite.ctx, 1)
	_, found = suite.keeper.GetOutgoingOperation(suite.ctx, 1)
	suite.Require().False(found)
	suite.Require().Len(suite.keeper.GetAllOutgoingOperations(suite.ctx), 1)

	// incoming tallies live under a separate prefix
	_, found = suite.keeper.GetIncomingOperation(suite.ctx, 3)
	suite.Require().False(found)

	release := types.NewWitnessSignatures(3, types.NewReleaseOperation(suite.target.String(), sdk.NewInt64Coin(localDenom, 10)))
	suite.keeper.SetIncomingOperation(suite.ctx, release)

	stored, found = suite.keeper.GetIncomingOperation(suite.ctx, 3)
	suite.Require().True(found)
	suite.Require().Equal(release, stored)
}

func (suite *KeeperTestSuite) TestParams() {
	params := suite.keeper.GetParams(suite.ctx)
	suite.Require().Len(params.Witnesses, 3)
	suite.Require().Equal(uint64(2), params.Threshold)
	suite.Require().True(params.IsLocalDenomination(localDenom))

	remote, ok := params.RemoteDenomination(remoteDenom)
	suite.Require().True(ok)
	suite.Require().Equal([]byte("remote-token-id"), remote)

	_, ok = params.WitnessIndex(suite.stranger.String())
	suite.Require().False(ok)

	index, ok := params.WitnessIndex(suite.witnesses[1].String())
	suite.Require().True(ok)
	suite.Require().Equal(uint32(1), index)
}
