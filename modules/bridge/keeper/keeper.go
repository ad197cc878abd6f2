package keeper

import (
	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

// Keeper defines the bridge module keeper
type Keeper struct {
	storeKey   sdk.StoreKey
	cdc        codec.BinaryCodec
	paramSpace paramtypes.Subspace

	authKeeper types.AccountKeeper
	bankKeeper types.BankKeeper
}

// NewKeeper creates a new bridge Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec, key sdk.StoreKey, paramSpace paramtypes.Subspace,
	authKeeper types.AccountKeeper, bankKeeper types.BankKeeper,
) Keeper {
	// ensure the bridge module account is set
	if addr := authKeeper.GetModuleAddress(types.ModuleName); addr == nil {
		panic("the bridge module account has not been set")
	}

	// set KeyTable if it has not already been set
	if !paramSpace.HasKeyTable() {
		paramSpace = paramSpace.WithKeyTable(types.ParamKeyTable())
	}

	return Keeper{
		cdc:        cdc,
		storeKey:   key,
		paramSpace: paramSpace,
		authKeeper: authKeeper,
		bankKeeper: bankKeeper,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// GetParams returns the current bridge module parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	var params types.Params
	k.paramSpace.GetParamSet(ctx, &params)
	return params
}

// SetParams sets the bridge module parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	k.paramSpace.SetParamSet(ctx, &params)
}

// GetNextSequenceOut returns the sequence number assigned to the next
// outgoing operation.
func (k Keeper) GetNextSequenceOut(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.NextSequenceOutKey)
	if bz == nil {
		return types.DefaultNextSequence
	}
	return sdk.BigEndianToUint64(bz)
}

// SetNextSequenceOut sets the sequence number assigned to the next outgoing
// operation.
func (k Keeper) SetNextSequenceOut(ctx sdk.Context, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.NextSequenceOutKey, sdk.Uint64ToBigEndian(sequence))
}

// GetNextSequenceIn returns the sequence number expected on the next incoming
// operation.
func (k Keeper) GetNextSequenceIn(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.NextSequenceInKey)
	if bz == nil {
		return types.DefaultNextSequence
	}
	return sdk.BigEndianToUint64(bz)
}

// SetNextSequenceIn sets the sequence number expected on the next incoming
// operation.
func (k Keeper) SetNextSequenceIn(ctx sdk.Context, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.NextSequenceInKey, sdk.Uint64ToBigEndian(sequence))
}

// GetOutgoingOperation returns the pending attestation tally for the outgoing
// operation with the given id.
func (k Keeper) GetOutgoingOperation(ctx sdk.Context, id uint64) (types.WitnessSignatures, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.OutgoingOperationKey(id))
	if bz == nil {
		return types.WitnessSignatures{}, false
	}

	var tally types.WitnessSignatures
	k.cdc.MustUnmarshal(bz, &tally)
	return tally, true
}

// SetOutgoingOperation stores the attestation tally for an outgoing
// operation.
func (k Keeper) SetOutgoingOperation(ctx sdk.Context, tally types.WitnessSignatures) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.OutgoingOperationKey(tally.Id), k.cdc.MustMarshal(&tally))
}

// DeleteOutgoingOperation removes a finalized outgoing tally from state.
func (k Keeper) DeleteOutgoingOperation(ctx sdk.Context, id uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.OutgoingOperationKey(id))
}

// GetAllOutgoingOperations returns every pending outgoing tally, ordered by
// sequence number.
func (k Keeper) GetAllOutgoingOperations(ctx sdk.Context) []types.WitnessSignatures {
	return k.getAllOperations(ctx, types.OutgoingOperationPrefix)
}

// GetIncomingOperation returns the pending attestation tally for the incoming
// operation with the given id.
func (k Keeper) GetIncomingOperation(ctx sdk.Context, id uint64) (types.WitnessSignatures, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.IncomingOperationKey(id))
	if bz == nil {
		return types.WitnessSignatures{}, false
	}

	var tally types.WitnessSignatures
	k.cdc.MustUnmarshal(bz, &tally)
	return tally, true
}

// SetIncomingOperation stores the attestation tally for an incoming
// operation.
func (k Keeper) SetIncomingOperation(ctx sdk.Context, tally types.WitnessSignatures) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.IncomingOperationKey(tally.Id), k.cdc.MustMarshal(&tally))
}

// DeleteIncomingOperation removes a finalized incoming tally from state.
func (k Keeper) DeleteIncomingOperation(ctx sdk.Context, id uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.IncomingOperationKey(id))
}

// GetAllIncomingOperations returns every pending incoming tally, ordered by
// sequence number.
func (k Keeper) GetAllIncomingOperations(ctx sdk.Context) []types.WitnessSignatures {
	return k.getAllOperations(ctx, types.IncomingOperationPrefix)
}

func (k Keeper) getAllOperations(ctx sdk.Context, keyPrefix []byte) []types.WitnessSignatures {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), keyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var tallies []types.WitnessSignatures
	for ; iterator.Valid(); iterator.Next() {
		var tally types.WitnessSignatures
		k.cdc.MustUnmarshal(iterator.Value(), &tally)
		tallies = append(tallies, tally)
	}
	return tallies
}

// GetLockedFundsBalance returns the coins currently held by the bridge module
// escrow account.
func (k Keeper) GetLockedFundsBalance(ctx sdk.Context) sdk.Coins {
	return k.bankKeeper.GetAllBalances(ctx, types.GetLockedFundsAddress())
}
