package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "placesctl",
	Short: "Offline maintenance for the places datastore",
	Long: `placesctl operates on the same data layout as the places-api server:
one places.json document plus a backup/ directory of timestamped snapshots.
Run it with the server stopped, or point it at a copy of the data directory.`,
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "Data directory holding places.json and backup/")
}
