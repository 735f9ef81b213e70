package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmagro/chain-cli/internal/output"
	"github.com/dmagro/chain-cli/internal/rpc"
)

func blockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "getBlock <hash>",
		Short: "Fetch one block by hash",
		Long: `Fetch a block by its 32-byte hash and print it as JSON.

Example:
  chaincli getBlock e70699acfc6c41b9ecc29ca4d1d2109bc3a1b2c3d4e5f60718293a4b5c6d7e8f`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlock(cmd, args[0])
		},
	}

	return cmd
}

func runBlock(cmd *cobra.Command, hash string) error {
	if err := rpc.ValidateBlockHash(hash); err != nil {
		return fmt.Errorf("invalid block hash %q: %w", hash, err)
	}

	client, err := dialNode(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := client.GetBlock(context.Background(), hash)
	if err != nil {
		return err
	}

	return output.RenderJSON(os.Stdout, result)
}
