package cli

import (
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/spf13/cobra"
)

// GetQueryCmd returns the query commands for the bridge module
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        "bridge",
		Short:                      "Query subcommand for the asset bridge",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
	}

	queryCmd.AddCommand(
		GetCmdParameters(),
		GetCmdNextSequenceNumbers(),
	)

	return queryCmd
}

// NewTxCmd returns the transaction commands for the bridge module
func NewTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        "bridge",
		Short:                      "Transaction subcommand for the asset bridge",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(
		NewLockTxCmd(),
		NewWitnessTxCmd(),
		NewReleaseTxCmd(),
	)

	return txCmd
}
