package types

import (
	"fmt"
	"math"
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
	yaml "gopkg.in/yaml.v2"
)

// MaxRemoteDenominationLength is the maximum length of a remote denomination
// identifier.
const MaxRemoteDenominationLength = 32

// MaxWitnesses bounds the witness set so that witness indices fit the tally
// encoding.
const MaxWitnesses = math.MaxUint16

var (
	// KeyWitnesses is the store key for the Witnesses param
	KeyWitnesses = []byte("Witnesses")
	// KeyThreshold is the store key for the Threshold param
	KeyThreshold = []byte("Threshold")
	// KeyLocalDenominations is the store key for the LocalDenominations param
	KeyLocalDenominations = []byte("LocalDenominations")
	// KeyRemoteDenominations is the store key for the RemoteDenominations param
	KeyRemoteDenominations = []byte("RemoteDenominations")
)

var _ paramtypes.ParamSet = (*Params)(nil)

// ParamKeyTable returns the parameter key table for the bridge module.
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new parameter configuration for the bridge module.
func NewParams(witnesses []string, threshold uint64, localDenominations []string, remoteDenominations map[string][]byte) Params {
	return Params{
		Witnesses:           witnesses,
		Threshold:           threshold,
		LocalDenominations:  localDenominations,
		RemoteDenominations: remoteDenominations,
	}
}

// DefaultParams is the default parameter configuration for the bridge module.
// The empty witness set makes the bridge inert until parameters are set
// explicitly.
func DefaultParams() Params {
	return Params{
		Threshold: 1,
	}
}

// Validate all bridge module parameters
func (p Params) Validate() error {
	if err := validateWitnesses(p.Witnesses); err != nil {
		return err
	}
	if err := validateThreshold(p.Threshold); err != nil {
		return err
	}
	// An empty witness set is the inert default configuration, only bound the
	// threshold once witnesses are configured.
	if len(p.Witnesses) > 0 && p.Threshold > uint64(len(p.Witnesses)) {
		return fmt.Errorf("threshold %d exceeds witness count %d", p.Threshold, len(p.Witnesses))
	}
	if err := validateLocalDenominations(p.LocalDenominations); err != nil {
		return err
	}
	if err := validateRemoteDenominations(p.RemoteDenominations); err != nil {
		return err
	}

	// A denomination must be either local or remote, never both.
	for _, denom := range p.LocalDenominations {
		if _, ok := p.RemoteDenominations[denom]; ok {
			return fmt.Errorf("denomination %s cannot be both local and remote", denom)
		}
	}

	return nil
}

// ParamSetPairs implements params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyWitnesses, &p.Witnesses, validateWitnessesParam),
		paramtypes.NewParamSetPair(KeyThreshold, &p.Threshold, validateThresholdParam),
		paramtypes.NewParamSetPair(KeyLocalDenominations, &p.LocalDenominations, validateLocalDenominationsParam),
		paramtypes.NewParamSetPair(KeyRemoteDenominations, &p.RemoteDenominations, validateRemoteDenominationsParam),
	}
}

// String implements the Stringer interface.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

// WitnessIndex returns the index of the given address in the witness set.
func (p Params) WitnessIndex(addr string) (uint32, bool) {
	for i, witness := range p.Witnesses {
		if witness == addr {
			return uint32(i), true
		}
	}
	return 0, false
}

// IsLocalDenomination reports whether the given denomination is native to
// this side of the bridge.
func (p Params) IsLocalDenomination(denom string) bool {
	for _, local := range p.LocalDenominations {
		if local == denom {
			return true
		}
	}
	return false
}

// RemoteDenomination returns the remote identifier mapped to the given local
// denomination, if any.
func (p Params) RemoteDenomination(denom string) ([]byte, bool) {
	remote, ok := p.RemoteDenominations[denom]
	return remote, ok
}

func validateWitnesses(witnesses []string) error {
	if len(witnesses) > MaxWitnesses {
		return fmt.Errorf("too many witnesses: %d", len(witnesses))
	}

	seen := make(map[string]struct{}, len(witnesses))
	for _, witness := range witnesses {
		if _, err := sdk.AccAddressFromBech32(witness); err != nil {
			return fmt.Errorf("invalid witness address %s: %w", witness, err)
		}
		if _, ok := seen[witness]; ok {
			return fmt.Errorf("duplicate witness address %s", witness)
		}
		seen[witness] = struct{}{}
	}

	return nil
}

func validateThreshold(threshold uint64) error {
	if threshold == 0 {
		return fmt.Errorf("threshold must be positive")
	}
	return nil
}

func validateLocalDenominations(denominations []string) error {
	seen := make(map[string]struct{}, len(denominations))
	for _, denom := range denominations {
		if err := sdk.ValidateDenom(denom); err != nil {
			return err
		}
		if _, ok := seen[denom]; ok {
			return fmt.Errorf("duplicate local denomination %s", denom)
		}
		seen[denom] = struct{}{}
	}
	return nil
}

func validateRemoteDenominations(denominations map[string][]byte) error {
	// Iterate in sorted order so validation failures are reported
	// deterministically.
	denoms := make([]string, 0, len(denominations))
	for denom := range denominations {
		denoms = append(denoms, denom)
	}
	sort.Strings(denoms)

	for _, denom := range denoms {
		if err := sdk.ValidateDenom(denom); err != nil {
			return err
		}
		remote := denominations[denom]
		if len(remote) == 0 || len(remote) > MaxRemoteDenominationLength {
			return fmt.Errorf("remote denomination for %s must be between 1 and %d bytes, got %d", denom, MaxRemoteDenominationLength, len(remote))
		}
	}

	return nil
}

func validateWitnessesParam(i interface{}) error {
	witnesses, ok := i.([]string)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	return validateWitnesses(witnesses)
}

func validateThresholdParam(i interface{}) error {
	threshold, ok := i.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	return validateThreshold(threshold)
}

func validateLocalDenominationsParam(i interface{}) error {
	denominations, ok := i.([]string)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	return validateLocalDenominations(denominations)
}

func validateRemoteDenominationsParam(i interface{}) error {
	denominations, ok := i.(map[string][]byte)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	return validateRemoteDenominations(denominations)
}
