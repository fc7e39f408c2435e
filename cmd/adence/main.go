// Package main provides the entry point for the adence assessment CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adence",
	Short: "AI career vulnerability assessment engine",
	Long:  "Adence scores how exposed a career or business profile is to AI-driven automation, with deterministic vulnerability scoring, timeline projection, and optional model-generated insights.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
