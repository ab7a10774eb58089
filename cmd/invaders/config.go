package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate the game configuration",
	Long: `Without flags, print the built-in configuration as YAML. Save it to
~/.invaders/configs/invaders.yaml or ./configs/invaders.yaml to customize
the game, or pass it with --config.

With --check, parse and validate a configuration file instead.

Examples:
  invaders config > ~/.invaders/configs/invaders.yaml
  invaders config --check ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this config file and exit")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagCheck == "" {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	}

	data, err := os.ReadFile(flagCheck)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if _, err := config.Parse(data); err != nil {
		return fmt.Errorf("%s: %w", flagCheck, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", flagCheck)
	return nil
}
