// Package main is the entry point for the msh character generator
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/msh-chargen/cmd/msh/client"
)

var rootCmd = &cobra.Command{
	Use:   "msh",
	Short: "MSH character generator",
	Long:  `msh generates Marvel Super Heroes characters, either in one shot or step by step through a gRPC session service.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
