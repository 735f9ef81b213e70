package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmagro/chain-cli/internal/config"
	"github.com/dmagro/chain-cli/internal/rpc"
)

// loadConfig reads the config file named by the persistent --config flag
// and applies the --node override if given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath, _ = cmd.Root().PersistentFlags().GetString("config")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if node, _ := cmd.Flags().GetString("node"); node != "" {
		cfg.Node.Address = node
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// dialNode loads the configuration and opens the session connection.
// Callers own the returned client and must Close it.
func dialNode(cmd *cobra.Command) (*rpc.Client, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return rpc.Connect(cfg.Node.Address, cfg.Node.DialTimeout, log)
}
