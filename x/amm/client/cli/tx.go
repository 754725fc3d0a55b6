package cli

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/coralswap/coral/x/amm/types"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdCreatePool(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwapBaseForPaired(),
		CmdSwapPairedForBase(),
		CmdWithdrawFees(),
		CmdPause(),
		CmdResume(),
	)

	return ammTxCmd
}

// CmdCreatePool returns a CLI command handler for creating a liquidity pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [paired-denom] [base-amount] [paired-amount]",
		Short: "Create a liquidity pool pairing the native asset against paired-denom",
		Long: `Create a liquidity pool with an initial deposit of both assets. The
initial share total is the geometric mean of the deposits and must exceed the
withheld minimal liquidity of 1000.

Example:
  $ corald tx amm create-pool uatom 1000000 250000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			baseAmount, err := cast.ToUint64E(args[1])
			if err != nil {
				return fmt.Errorf("invalid base-amount %q: %w", args[1], err)
			}
			pairedAmount, err := cast.ToUint64E(args[2])
			if err != nil {
				return fmt.Errorf("invalid paired-amount %q: %w", args[2], err)
			}

			msg := types.NewMsgCreatePool(clientCtx.GetFromAddress().String(), args[0], baseAmount, pairedAmount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for depositing into a pool
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [pool-id] [base-amount] [base-min] [paired-amount] [paired-min]",
		Short: "Deposit into a pool at the current reserve ratio",
		Long: `Deposit into an existing pool. The amounts are upper bounds; the pool
commits the largest ratio-preserving amounts within them and leaves the rest
untouched. The minimums bound how far the ratio adjustment may shrink each
side.

Example:
  $ corald tx amm add-liquidity 1 1000000 990000 250000 247500 --from mykey`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolId, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id %q: %w", args[0], err)
			}
			baseAmount, err := cast.ToUint64E(args[1])
			if err != nil {
				return fmt.Errorf("invalid base-amount %q: %w", args[1], err)
			}
			baseMin, err := cast.ToUint64E(args[2])
			if err != nil {
				return fmt.Errorf("invalid base-min %q: %w", args[2], err)
			}
			pairedAmount, err := cast.ToUint64E(args[3])
			if err != nil {
				return fmt.Errorf("invalid paired-amount %q: %w", args[3], err)
			}
			pairedMin, err := cast.ToUint64E(args[4])
			if err != nil {
				return fmt.Errorf("invalid paired-min %q: %w", args[4], err)
			}

			msg := types.NewMsgAddLiquidity(clientCtx.GetFromAddress().String(), poolId, baseAmount, baseMin, pairedAmount, pairedMin)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for redeeming LP shares
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [pool-id] [lp-amount]",
		Short: "Redeem LP shares for a proportional slice of both reserves",
		Long: `Redeem LP shares. Payouts are proportional to the share of supply being
burned, rounded down. Withdrawals carry no minimum-output protection.

Example:
  $ corald tx amm remove-liquidity 1 50000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolId, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id %q: %w", args[0], err)
			}
			lpAmount, err := cast.ToUint64E(args[1])
			if err != nil {
				return fmt.Errorf("invalid lp-amount %q: %w", args[1], err)
			}

			msg := types.NewMsgRemoveLiquidity(clientCtx.GetFromAddress().String(), poolId, lpAmount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapBaseForPaired returns a CLI command handler for selling the base asset
func CmdSwapBaseForPaired() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-base [pool-id] [base-in] [paired-min-out]",
		Short: "Sell the native asset for the pool's paired asset",
		Long: `Swap the native asset for the paired asset. The swap fails if the output
would fall below paired-min-out; pass 0 to disable the slippage check.

Example:
  $ corald tx amm swap-base 1 100000 24500 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolId, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id %q: %w", args[0], err)
			}
			baseIn, err := cast.ToUint64E(args[1])
			if err != nil {
				return fmt.Errorf("invalid base-in %q: %w", args[1], err)
			}
			pairedMinOut, err := cast.ToUint64E(args[2])
			if err != nil {
				return fmt.Errorf("invalid paired-min-out %q: %w", args[2], err)
			}

			msg := types.NewMsgSwapBaseForPaired(clientCtx.GetFromAddress().String(), poolId, baseIn, pairedMinOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapPairedForBase returns a CLI command handler for selling the paired asset
func CmdSwapPairedForBase() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-paired [pool-id] [paired-in] [base-min-out]",
		Short: "Sell the pool's paired asset for the native asset",
		Long: `Swap the paired asset for the native asset. The swap fails if the output
would fall below base-min-out; pass 0 to disable the slippage check.

Example:
  $ corald tx amm swap-paired 1 25000 98000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolId, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id %q: %w", args[0], err)
			}
			pairedIn, err := cast.ToUint64E(args[1])
			if err != nil {
				return fmt.Errorf("invalid paired-in %q: %w", args[1], err)
			}
			baseMinOut, err := cast.ToUint64E(args[2])
			if err != nil {
				return fmt.Errorf("invalid base-min-out %q: %w", args[2], err)
			}

			msg := types.NewMsgSwapPairedForBase(clientCtx.GetFromAddress().String(), poolId, pairedIn, baseMinOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawFees returns a CLI command handler for withdrawing accrued fees
func CmdWithdrawFees() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-fees [pool-id]",
		Short: "Withdraw the accrued protocol fees of a pool to the beneficiary",
		Long: `Drain both fee reserves of a pool to the configured beneficiary. Only the
beneficiary may sign this transaction.

Example:
  $ corald tx amm withdraw-fees 1 --from beneficiary`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolId, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid pool-id %q: %w", args[0], err)
			}

			msg := types.NewMsgWithdrawFees(clientCtx.GetFromAddress().String(), poolId)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdPause returns a CLI command handler for pausing the amm
func CmdPause() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Suspend all amm operations (controller only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgPause(clientCtx.GetFromAddress().String())
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdResume returns a CLI command handler for resuming the amm
func CmdResume() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Lift the emergency pause (controller only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgResume(clientCtx.GetFromAddress().String())
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
