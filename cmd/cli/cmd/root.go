// Package cmd provides the CLI commands for subwise.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subwise/internal/config"
	"subwise/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "subwise",
	Short: "Analyze subscriptions and recommend savings",
	Long: `subwise grades your subscriptions by how much you actually use
them and recommends concrete ways to save: cancellations, downgrades,
family sharing, bundles and discounts, plus a projection of what the
savings are worth invested.

Examples:
  subwise analyze snapshot.json
  subwise analyze --format json --catalog ./catalog snapshot.json
  subwise catalog validate ./catalog`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is env/.env)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var cfg *config.Config
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg = config.LoadEnv()
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("subwise version 0.1.0")
	},
}
