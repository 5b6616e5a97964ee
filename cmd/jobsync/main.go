// Package main provides the entry point for the JobSync CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobsync",
	Short: "JobSync career preparation toolkit",
	Long:  "JobSync scores resumes against job descriptions, runs mock interview practice sessions, and tracks preparation progress over time.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
