package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/racketball/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML.

Save it to ~/.racketball/configs/racket.yaml or ./configs/racket.yaml to
change the arena, the ball or the controls, or pass it with --config.

Examples:
  racketball config > ~/.racketball/configs/racket.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	},
}
