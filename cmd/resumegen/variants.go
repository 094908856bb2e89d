package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhoran/resumegen/internal/config"
)

var variantsCommand = &cobra.Command{
	Use:   "variants",
	Short: "List the resume variants defined in the configuration",
	RunE:  runVariants,
}

var variantsConfigPath string

func init() {
	variantsCommand.Flags().StringVar(&variantsConfigPath, "config", "config.json", "Path to config.json defining variants")

	rootCmd.AddCommand(variantsCommand)
}

func runVariants(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(variantsConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	for _, v := range cfg.Variants {
		fmt.Printf("%s\n", v.Name)
		if v.Description != "" {
			fmt.Printf("    %s\n", v.Description)
		}
		fmt.Printf("    categories: %s\n", strings.Join(v.SkillCategories, ", "))
		fmt.Printf("    max bullets per entry: %d\n", v.MaxBulletsPerEntry)
		if len(v.EmphasizeKeywords) > 0 {
			fmt.Printf("    emphasize: %s\n", strings.Join(v.EmphasizeKeywords, ", "))
		}
	}
	return nil
}
