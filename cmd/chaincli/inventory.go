package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmagro/chain-cli/internal/output"
	"github.com/dmagro/chain-cli/internal/rpc"
)

func inventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory <file.json>",
		Short: "Submit a block or transaction to the node",
		Long: `Read an inventory item (a block or transaction, as JSON) from a file
and submit it for the node to process, validate and broadcast.

Example:
  chaincli inventory block.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInventory(cmd, args[0])
		},
	}

	return cmd
}

func runInventory(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read inventory file: %w", err)
	}
	if !json.Valid(data) {
		return fmt.Errorf("inventory file %s is not valid JSON: %w", path, rpc.ErrInvalidArguments)
	}

	client, err := dialNode(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	accepted, err := client.Inventory(context.Background(), json.RawMessage(data))
	if err != nil {
		return err
	}

	output.RenderInventory(os.Stdout, accepted)
	return nil
}
