// Package main provides the entry point for the Resume Tailor CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Resume Tailor ATS scoring and tailoring service",
	Long:  "Resume Tailor scores resumes against job descriptions with an ATS-style keyword engine, tailors them with an LLM, and serves the result over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
