package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/version"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/bridge-module/modules/bridge/types"
)

// NewLockTxCmd returns the command to create a MsgLock
func NewLockTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lock [target] [amount]",
		Short:   "Lock funds for release on the remote chain",
		Long:    strings.TrimSpace(`Lock funds for release to the hex-encoded target address on the remote chain.`),
		Example: fmt.Sprintf("%s tx bridge lock 9e9b534d65e9e67fefd071e2b4291bd2246ae02a 100stake", version.AppName),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			target, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("target must be hex encoded: %w", err)
			}

			amount, err := sdk.ParseCoinNormalized(args[1])
			if err != nil {
				return err
			}

			msg := types.NewMsgLock(clientCtx.GetFromAddress(), target, amount)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewWitnessTxCmd returns the command to create a MsgWitness
func NewWitnessTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "witness [id] [signature]",
		Short:   "Attest to a pending outgoing operation",
		Long:    strings.TrimSpace(`Submit a hex-encoded witness signature over the outgoing operation with the given sequence number.`),
		Example: fmt.Sprintf("%s tx bridge witness 1 deadbeef", version.AppName),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			id, err := cast.ToUint64E(args[0])
			if err != nil {
				return err
			}

			signature, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("signature must be hex encoded: %w", err)
			}

			msg := types.NewMsgWitness(clientCtx.GetFromAddress(), id, signature)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewReleaseTxCmd returns the command to create a MsgRelease
func NewReleaseTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "release [id] [target] [amount]",
		Short:   "Claim an incoming release of funds locked on the remote chain",
		Long:    strings.TrimSpace(`Claim that funds were locked on the remote chain for release to the target account. The id must be the next expected incoming sequence number.`),
		Example: fmt.Sprintf("%s tx bridge release 1 cosmos1rsp837a4kvtgp2m4uqzdge0zzu6efqgucm0qdh 100stake", version.AppName),
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			id, err := cast.ToUint64E(args[0])
			if err != nil {
				return err
			}

			target, err := sdk.AccAddressFromBech32(args[1])
			if err != nil {
				return err
			}

			amount, err := sdk.ParseCoinNormalized(args[2])
			if err != nil {
				return err
			}

			msg := types.NewMsgRelease(clientCtx.GetFromAddress(), id, target, amount)

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}
