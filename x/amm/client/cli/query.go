package cli

import (
	"fmt"
	"strconv"

	sdkmath "cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/coralswap/coral/x/amm/types"
)

// GetQueryCmd returns the cli query commands for the amm module
func GetQueryCmd() *cobra.Command {
	ammQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the amm module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryConfig(),
		GetCmdQueryPool(),
		GetCmdQueryReserves(),
		GetCmdQueryPrice(),
	)

	return ammQueryCmd
}

// queryPool fetches and decodes a pool record from the module store.
func queryPool(clientCtx client.Context, poolId uint64) (types.Pool, error) {
	bz, _, err := clientCtx.QueryStore(types.PoolKey(poolId), types.StoreKey)
	if err != nil {
		return types.Pool{}, err
	}
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %d", poolId)
	}
	var pool types.Pool
	if err := types.ModuleCdc.Unmarshal(bz, &pool); err != nil {
		return types.Pool{}, fmt.Errorf("decode pool record: %w", err)
	}
	return pool, nil
}

// queryParams fetches and decodes the module parameters from the store.
func queryParams(clientCtx client.Context) (types.Params, error) {
	bz, _, err := clientCtx.QueryStore(types.ParamsKey, types.StoreKey)
	if err != nil {
		return types.Params{}, err
	}
	if bz == nil {
		return types.DefaultParams(), nil
	}
	var params types.Params
	if err := types.ModuleCdc.Unmarshal(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("decode params: %w", err)
	}
	return params, nil
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current amm module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			params, err := queryParams(clientCtx)
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(params)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryConfig returns the command to query the global config
func GetCmdQueryConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Query the global amm configuration",
		Long: `Query the global configuration: the pause flag and the privileged
addresses for pool creation, pause control and fee withdrawal.

Example:
  $ corald query amm config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.ConfigKey, types.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return types.ErrInvalidState.Wrap("global config not initialized")
			}
			var cfg types.GlobalConfig
			if err := types.ModuleCdc.Unmarshal(bz, &cfg); err != nil {
				return fmt.Errorf("decode config: %w", err)
			}

			return clientCtx.PrintObjectLegacy(cfg)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPool returns the command to query a pool by id
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Query a liquidity pool by id",
		Long: `Query a pool's full record: reserves, fee reserves, LP share supply and
config binding.

Example:
  $ corald query amm pool 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolId, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}

			pool, err := queryPool(clientCtx, poolId)
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(pool)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryReserves returns the command to query a pool's reserves
func GetCmdQueryReserves() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reserves [pool-id]",
		Short: "Query a pool's tradable reserves and share supply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolId, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}

			pool, err := queryPool(clientCtx, poolId)
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(types.QueryReservesResponse{
				BaseReserve:   pool.BaseReserve,
				PairedReserve: pool.PairedReserve,
				LpSupply:      pool.LpSupply,
			})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPrice returns the command to quote a swap against live reserves
func GetCmdQueryPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price [pool-id] [denom-in] [amount-in]",
		Short: "Quote a swap against the pool's live reserves",
		Long: `Quote the output of selling amount-in of denom-in, applying the 0.3% fee,
without executing a swap. Also reports the marginal spot price before fees.

Example:
  $ corald query amm price 1 ucoral 100000
  $ corald query amm price 1 uatom 25000`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			poolId, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %w", err)
			}
			denomIn := args[1]
			amountIn, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			pool, err := queryPool(clientCtx, poolId)
			if err != nil {
				return err
			}
			params, err := queryParams(clientCtx)
			if err != nil {
				return err
			}

			var reserveIn, reserveOut uint64
			switch denomIn {
			case params.BaseDenom:
				reserveIn, reserveOut = pool.BaseReserve, pool.PairedReserve
			case pool.PairedDenom:
				reserveIn, reserveOut = pool.PairedReserve, pool.BaseReserve
			default:
				return types.ErrInvalidDenom.Wrapf("%s is not traded by pool %d", denomIn, poolId)
			}

			amountOut, err := types.GetAmountOut(amountIn, reserveIn, reserveOut)
			if err != nil {
				return err
			}
			spot := sdkmath.LegacyNewDecFromInt(sdkmath.NewIntFromUint64(reserveOut)).
				QuoInt(sdkmath.NewIntFromUint64(reserveIn))

			return clientCtx.PrintObjectLegacy(types.QueryPriceResponse{
				AmountOut: amountOut,
				SpotPrice: spot,
			})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
