package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmagro/chain-cli/internal/output"
	"github.com/dmagro/chain-cli/internal/rpc"
)

func outputCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "getOutput <transaction-id:index>",
		Short: "Fetch a transaction output by pointer",
		Long: `Fetch the output a pointer refers to and print it as JSON.

The pointer is the owning transaction's 32-byte hash and the output's
index within that transaction, joined by a colon:

  chaincli getOutput 2dc469eab2ff9a1518b25cbbbdf9afd2ca24dbeb2a0deff9ef952ab3b0e7e3e4:0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutput(cmd, args[0])
		},
	}

	return cmd
}

func runOutput(cmd *cobra.Command, arg string) error {
	ptr, err := rpc.ParseOutputPointer(arg)
	if err != nil {
		return fmt.Errorf("invalid output pointer: %w", err)
	}

	client, err := dialNode(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := client.GetOutput(context.Background(), ptr)
	if err != nil {
		return err
	}

	return output.RenderJSON(os.Stdout, result)
}
