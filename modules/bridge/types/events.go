package types

// bridge events
const (
	EventTypeLock            = "lock"
	EventTypeRelease         = "release"
	EventTypeWitnessesSigned = "witnesses_signed"

	AttributeKeyID         = "id"
	AttributeKeyOwner      = "owner"
	AttributeKeyTarget     = "target"
	AttributeKeyAmount     = "amount"
	AttributeKeyOperation  = "operation"
	AttributeKeyWitnesses  = "witnesses"
	AttributeKeySignatures = "signatures"

	AttributeValueCategory = ModuleName
)
