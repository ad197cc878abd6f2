package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// ModuleName defines the bridge module name
	ModuleName = "bridge"

	// StoreKey is the store key string for the bridge module
	StoreKey = ModuleName

	// RouterKey is the message route for the bridge module
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the bridge module
	QuerierRoute = ModuleName
)

var (
	// NextSequenceOutKey defines the key that stores the sequence number
	// assigned to the next outgoing lock operation
	NextSequenceOutKey = []byte{0x01}
	// NextSequenceInKey defines the key that stores the sequence number
	// expected for the next incoming release claim
	NextSequenceInKey = []byte{0x02}

	// OutgoingOperationPrefix is the store prefix under which in-flight
	// outgoing tallies are kept, keyed by sequence number
	OutgoingOperationPrefix = []byte{0x03}
	// IncomingOperationPrefix is the store prefix under which in-flight
	// incoming tallies are kept, keyed by sequence number
	IncomingOperationPrefix = []byte{0x04}
)

// GetLockedFundsAddress returns the module account address holding all
// escrowed funds.
func GetLockedFundsAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(ModuleName)
}

// OutgoingOperationKey returns the store key for the outgoing tally with the
// given sequence number.
func OutgoingOperationKey(id uint64) []byte {
	return append(OutgoingOperationPrefix, sdk.Uint64ToBigEndian(id)...)
}

// IncomingOperationKey returns the store key for the incoming tally with the
// given sequence number.
func IncomingOperationKey(id uint64) []byte {
	return append(IncomingOperationPrefix, sdk.Uint64ToBigEndian(id)...)
}
