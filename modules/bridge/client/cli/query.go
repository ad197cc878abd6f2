package cli

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/version"
	"github.com/spf13/cobra"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

// GetCmdParameters returns the command to query the bridge module parameters
func GetCmdParameters() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "params",
		Short:   "Query the current bridge parameters",
		Example: fmt.Sprintf("%s query bridge params", version.AppName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Parameters(cmd.Context(), &types.QueryParametersRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdNextSequenceNumbers returns the command to query the next incoming
// and outgoing sequence numbers
func GetCmdNextSequenceNumbers() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "next-sequence-numbers",
		Short:   "Query the next incoming and outgoing sequence numbers",
		Example: fmt.Sprintf("%s query bridge next-sequence-numbers", version.AppName),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.NextSequenceNumbers(cmd.Context(), &types.QueryNextSequenceNumbersRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}
