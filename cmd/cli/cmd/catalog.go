// Package cmd - catalog commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"subwise/adapters/catalogfile"
	"subwise/core/types"
)

// catalogCmd groups catalog management commands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage reference catalogs",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// catalogValidateCmd checks catalog files for structural problems
var catalogValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate catalog files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalogfile.LoadDir(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("OK: %d bundle(s), %d discount(s), %d preset(s)\n",
			len(cat.Bundles), len(cat.Discounts), len(cat.Presets))
		return nil
	},
}

// catalogShowCmd prints the merged catalog contents
var catalogShowCmd = &cobra.Command{
	Use:   "show [dir]",
	Short: "Show the merged catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalogfile.LoadDir(args[0])
		if err != nil {
			return err
		}
		for _, b := range cat.Bundles {
			kind := "bundle"
			if b.Conditional {
				kind = "conditional bundle"
			}
			fmt.Printf("%-18s %s (%s) %s/month: %v\n",
				kind, b.Name, b.Provider, types.FormatMoney(b.Price), b.IncludedServices)
		}
		for _, d := range cat.Discounts {
			fmt.Printf("%-18s %s (%s): %v\n", d.Kind.Label(), d.Title, d.Provider, d.TargetServices)
		}
		for name, p := range cat.Presets {
			fmt.Printf("%-18s %s: %d plan(s)", "preset", name, len(p.Plans))
			if p.FamilyPlan != nil {
				fmt.Printf(", family plan %s for %d", p.FamilyPlan.Name, p.FamilyPlan.MaxMembers)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogShowCmd)
}
