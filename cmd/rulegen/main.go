package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	catalogPath   string
	rulesOut      string
	violationsOut string
)

var rootCmd = &cobra.Command{
	Use:   "rulegen",
	Short: "Generate the rule registry tables from catalog.toml",
	Long: `rulegen reads the rule catalog and writes the generated Rule constants,
origin table, redirect table and the violations placeholder switch.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(catalogPath)
		if err != nil {
			return err
		}
		model, err := buildModel(cat)
		if err != nil {
			return fmt.Errorf("%s: %w", catalogPath, err)
		}
		if err := render(rulesOut, registryTemplate, model); err != nil {
			return err
		}
		return render(violationsOut, placeholdersTemplate, model)
	},
}

// main регистрирует флаги и запускает генератор.
func main() {
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "catalog.toml", "path to the rule catalog")
	rootCmd.Flags().StringVar(&rulesOut, "rules", "zz_registry_gen.go", "output file for the registry tables")
	rootCmd.Flags().StringVar(&violationsOut, "violations", "../violations/zz_placeholders_gen.go", "output file for the placeholder switch")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
