package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gizmoctl",
	Short: "Inspect and replay freeform transform controls",
	Long: `gizmoctl works with freeform transform controls without a window.
It prints the handle layout for a target and replays scripted pointer
drags against a scene file.`,
	Version:      "1.0.0",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "gizmo.yaml", "gizmo config file (defaults are used if it is missing)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
