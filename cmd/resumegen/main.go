// Package main provides the resumegen command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumegen",
	Short: "Generate job-targeted resume variants from a structured history document",
	Long:  "resumegen turns one structured personal-history document into resume variants targeted at specific job descriptions, with deterministic content selection, optional AI-assisted generation, and ATS compatibility scoring.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
