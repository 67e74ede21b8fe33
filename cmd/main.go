package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cubemesh",
	Short: "Generate and inspect subdivided cube meshes",
	Long: `cubemesh writes a watertight triangulated cube over [-1, 1] in OFF format,
with every edge split into N equal segments, and reports statistics on OFF files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
