// Package main provides the entry point for the atskit resume tooling CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atskit",
	Short: "Resume ATS compatibility toolkit",
	Long:  "atskit analyzes, converts, optimizes, and builds resumes, simulating how Applicant Tracking Systems parse them.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
