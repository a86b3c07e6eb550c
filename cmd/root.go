package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tp1cd",
	Short: "Distributed printing system with Ricart-Agrawala mutual exclusion",
	Long: `A distributed printing system where N client nodes coordinate exclusive
access to a shared printer using the Ricart-Agrawala algorithm over
Lamport logical clocks.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
