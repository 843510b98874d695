// Package main is the entry point for the combat gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wander-api",
	Short: "Wander combat API server",
	Long:  `Wander API resolves location-based combat encounters: weapon dial timing, damage exchanges, and reward settlement.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
