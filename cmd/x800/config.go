package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Radialsum/X800W/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the default configuration file, ready to be saved as
~/.x800/x800.yaml or ./configs/x800.yaml.

With --effective, print the configuration in use after applying the config
file and command-line flags, and report where it was loaded from.

Examples:
  x800 config > ~/.x800/x800.yaml
  x800 config --effective --fps 30`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the configuration in use")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	out, err := yaml.Marshal(app.cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n", app.source)
	os.Stdout.Write(out)
}
