package main

import (
	"os"

	"github.com/spf13/cobra"
)

func rawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw",
		Short: "Interactive pass-through JSON-RPC session",
		Long: `Open a transparent pipe to the node: every line typed (or piped in)
is sent as-is, and each reply line is printed verbatim.

No client-side validation happens; malformed JSON comes back as the
node's parse-error reply and the session continues. End of input ends
the session.

Examples:
  chaincli raw
  echo '{"jsonrpc":"2.0","method":"getBlockChain","id":1}' | chaincli raw`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRaw(cmd)
		},
	}

	return cmd
}

func runRaw(cmd *cobra.Command) error {
	client, err := dialNode(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.Pipe(os.Stdin, os.Stdout)
}
