// Package main provides the entry point for the resume wizard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_wizard",
	Short: "Interactive resume builder",
	Long:  "Resume Wizard walks you through building a resume step by step, generates achievement bullets and a professional summary with AI, and exports the result as a PDF or Word document.",
}

var (
	configFile  string
	verboseFlag bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print detailed progress information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
