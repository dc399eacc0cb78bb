package main

import (
	"fmt"
	"log"
	"os"

	"freeform/internal/game"
	"freeform/internal/gizmo"
	"freeform/internal/world"

	"github.com/spf13/cobra"
)

var (
	configPath string
	scenePath  string
	savePath   string
)

var rootCmd = &cobra.Command{
	Use:   "gizmo-viewer",
	Short: "Drag boxes around with freeform transform controls",
	Long: `gizmo-viewer opens a window with a scene of boxes. Click a box to put
the controls on it, drag the arrows, planes and rings to move and rotate
it, and right-drag to orbit the camera.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "gizmo.yaml", "gizmo config file (defaults are used if it is missing)")
	rootCmd.Flags().StringVar(&scenePath, "scene", "", "scene file (JSON); a demo scene is used if empty")
	rootCmd.Flags().StringVar(&savePath, "save", "", "write the scene here on exit")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := gizmo.LoadConfig(configPath)
	if err != nil {
		return err
	}

	var w *world.World
	if scenePath != "" {
		w, err = world.Load(scenePath, cfg)
		if err != nil {
			return err
		}
		log.Printf("Loaded scene %q (%d objects)", w.Scene.Name, len(w.Objects()))
	} else {
		w = world.Demo(cfg)
	}

	v := game.New(w, cfg)
	v.Run("freeform controls")

	if savePath != "" {
		if err := w.Save(savePath); err != nil {
			return fmt.Errorf("save scene: %w", err)
		}
		log.Printf("Saved scene to %s", savePath)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
