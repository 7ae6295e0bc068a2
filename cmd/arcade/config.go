package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/config"
)

var (
	flagConfigWrite bool
	flagConfigCheck string
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print, install or check a game's config",
	Long: `Print the default YAML configuration of a game.

Configs are looked up in this order: --config path, ~/.arcade/configs/<game>.yaml,
./configs/<game>.yaml, then the built-in defaults.

Examples:
  arcade config platformer > my-stage.yaml
  arcade config pong --write
  arcade config breakout --check ./breakout.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Write the default to ~/.arcade/configs/<game>.yaml")
	configCmd.Flags().StringVar(&flagConfigCheck, "check", "", "Validate a config file instead of printing")
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if flagConfigCheck != "" {
		if err := config.Check(gameID, flagConfigCheck); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", flagConfigCheck)
		return nil
	}

	data, err := config.DefaultYAML(gameID)
	if err != nil {
		return err
	}

	if !flagConfigWrite {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	path := config.UserConfigPath(gameID)
	if path == "" {
		return fmt.Errorf("cannot resolve home directory")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
