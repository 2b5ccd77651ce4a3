// Package main provides the entry point for the landing optimizer CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "landing_agent",
	Short: "Landing page optimization report generator",
	Long:  "landing_agent analyzes landing pages and produces scored optimization reports using LLM analysis reconciled against a canonical category/element schema.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
