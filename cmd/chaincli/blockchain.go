package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmagro/chain-cli/internal/logging"
	"github.com/dmagro/chain-cli/internal/output"
	"github.com/dmagro/chain-cli/internal/rpc"
)

func blockChainCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "getBlockChain [epoch] [limit]",
		Short: "List known block digests by epoch",
		Long: `List the (epoch, digest) pairs the node knows about.

A non-negative epoch starts the listing there. A negative epoch -n lists
the last n epochs up to the current chain height; an explicit limit takes
precedence over the implied count.

Examples:
  chaincli getBlockChain           list everything the node has
  chaincli getBlockChain 46900     list from epoch 46900 onwards
  chaincli getBlockChain -10       list the last 10 epochs
  chaincli getBlockChain -100 5    list 5 entries from 100 epochs back`,
		Args: cobra.ArbitraryArgs,
		// Flag parsing is disabled so a leading negative epoch (-10) is
		// not mistaken for a flag shorthand; integer tokens are split off
		// as positionals and the rest handed back to the flag set.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, flagArgs := splitIntegerArgs(args)
			if err := parseDisabledFlags(cmd, flagArgs); err != nil {
				return fmt.Errorf("%v: %w", err, rpc.ErrInvalidArguments)
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log = logging.New(true)
			}
			if len(positional) > 2 {
				return fmt.Errorf("expected at most [epoch] [limit], got %d arguments: %w",
					len(positional), rpc.ErrInvalidArguments)
			}
			return runBlockChain(cmd, positional, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "terminal", "Output format: terminal|table|json")

	return cmd
}

// parseDisabledFlags runs the flag parsing that DisableFlagParsing
// suppressed, once the integer positionals have been split off.
// ParseFlags is a no-op while the field is set, so it is cleared for the
// duration of the call. Leftover non-flag tokens are rejected here
// because cobra's Args validation never saw them.
func parseDisabledFlags(cmd *cobra.Command, flagArgs []string) error {
	cmd.InitDefaultHelpFlag()
	cmd.DisableFlagParsing = false
	defer func() { cmd.DisableFlagParsing = true }()
	if err := cmd.ParseFlags(flagArgs); err != nil {
		return err
	}
	if rest := cmd.Flags().Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument %q", rest[0])
	}
	return nil
}

// splitIntegerArgs separates integer tokens (the positional epoch/limit,
// possibly negative) from flag arguments.
func splitIntegerArgs(args []string) (positional, flagArgs []string) {
	for _, a := range args {
		if _, err := strconv.ParseInt(a, 10, 64); err == nil {
			positional = append(positional, a)
			continue
		}
		flagArgs = append(flagArgs, a)
	}
	return positional, flagArgs
}

func runBlockChain(cmd *cobra.Command, args []string, format string) error {
	var (
		epoch    int64
		limit    int64
		limitSet bool
		err      error
	)

	if len(args) >= 1 {
		epoch, err = strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("epoch %q is not an integer: %w", args[0], rpc.ErrInvalidArguments)
		}
	}
	if len(args) >= 2 {
		limit, err = strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("limit %q is not an integer: %w", args[1], rpc.ErrInvalidArguments)
		}
		limitSet = true
	}
	if limitSet && limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d: %w", limit, rpc.ErrInvalidArguments)
	}

	client, err := dialNode(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx := context.Background()

	// A negative epoch is relative to the tip, so the tip must be known
	// before the range can be resolved.
	var height uint64
	if epoch < 0 {
		height, err = client.CurrentEpoch(ctx)
		if err != nil {
			return err
		}
	}

	r, err := rpc.ResolveEpochRange(epoch, limit, limitSet, height)
	if err != nil {
		return err
	}

	entries, err := client.GetBlockChain(ctx, r)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		output.DisableColors()
		return output.RenderBlockChainJSON(os.Stdout, entries)
	case "table":
		output.RenderBlockChainTable(os.Stdout, entries)
	default:
		output.RenderBlockChainTerminal(os.Stdout, entries)
	}
	return nil
}
