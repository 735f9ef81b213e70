package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmagro/chain-cli/internal/config"
	"github.com/dmagro/chain-cli/internal/logging"
	"github.com/dmagro/chain-cli/internal/rpc"
)

// log is rebuilt in the root PersistentPreRun once flags are parsed and
// shared by every subcommand. The default covers failures that happen
// before flag parsing completes.
var log = logging.New(false)

func rootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "chaincli",
		Short: "Command-line JSON-RPC client for a blockchain node",
		Long: `chaincli issues JSON-RPC requests to a blockchain node over a
line-delimited TCP stream and renders the results.

The node address comes from the config file (chaincli.yaml by default)
or the --node flag.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.New(verbose)
		},
	}

	cmd.PersistentFlags().String("config", config.DefaultPath, "Config file path")
	cmd.PersistentFlags().String("node", "", "Node address host:port (overrides config)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(blockChainCmd())
	cmd.AddCommand(blockCmd())
	cmd.AddCommand(outputCmd())
	cmd.AddCommand(rawCmd())
	cmd.AddCommand(inventoryCmd())

	return cmd
}

// exitCode maps a command failure to the process exit code: local
// validation failures exit 2, everything else non-zero exits 1.
func exitCode(err error) int {
	if errors.Is(err, rpc.ErrInvalidArguments) {
		return 2
	}
	return 1
}

func main() {
	config.LoadEnv()

	if err := rootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(exitCode(err))
	}
}
