package simulation

import (
	"encoding/json"
	"fmt"
	"math/rand"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

// RandomizedGenState generates a random GenesisState for the bridge module.
func RandomizedGenState(simState *module.SimulationState) {
	var witnesses []string
	for _, acc := range simState.Accounts {
		witnesses = append(witnesses, acc.Address.String())
		if len(witnesses) == 4 {
			break
		}
	}
	if len(witnesses) == 0 {
		witnesses = []string{simtypes.RandomAccounts(simState.Rand, 1)[0].Address.String()}
	}

	threshold := uint64(simState.Rand.Intn(len(witnesses))) + 1

	params := types.NewParams(
		witnesses,
		threshold,
		[]string{sdk.DefaultBondDenom},
		map[string][]byte{"wrapped": randRemoteDenomination(simState.Rand)},
	)

	genesis := types.NewGenesisState(params, types.DefaultNextSequence, types.DefaultNextSequence, nil, nil)

	bz, err := json.MarshalIndent(genesis, "", " ")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Selected randomly generated %s parameters:\n%s\n", types.ModuleName, bz)
	simState.GenState[types.ModuleName] = simState.Cdc.MustMarshalJSON(genesis)
}

func randRemoteDenomination(r *rand.Rand) []byte {
	denom := make([]byte, r.Intn(types.MaxRemoteDenominationLength)+1)
	r.Read(denom)
	return denom
}
