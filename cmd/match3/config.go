package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/config"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the bundled match3.yaml. Save it to ~/.match3/configs/match3.yaml
or ./configs/match3.yaml and edit it to change the board.

With --resolved, prints the configuration the game would actually use
after the search order and the --difficulty preset are applied.

Examples:
  match3 config > ~/.match3/configs/match3.yaml
  match3 config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagConfigResolved {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		config.ApplyMatch3Preset(&cfg, preset)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
