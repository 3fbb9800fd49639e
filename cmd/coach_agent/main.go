// Package main provides the entry point for the interview coach CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coach_agent",
	Short: "Behavioral interview coaching toolkit",
	Long:  "Interview Coach parses resumes into structured candidate profiles and matches accomplishments to skills and behavioral question themes using semantic embeddings.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
