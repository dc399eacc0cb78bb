package main

import (
	"fmt"

	"freeform/internal/engine"
	"freeform/internal/gizmo"
	"freeform/internal/replay"
	"freeform/internal/world"

	"github.com/spf13/cobra"
)

var (
	scenePath  string
	scriptPath string
	verbose    bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Run a drag script against a scene",
	Long: `Replay loads a scene file with a controls target and runs the pointer
steps of a YAML drag script against it, then prints the target's
transform.`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVar(&scenePath, "scene", "", "scene file (JSON)")
	replayCmd.Flags().StringVar(&scriptPath, "script", "", "drag script (YAML)")
	replayCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the state after every step")
	_ = replayCmd.MarkFlagRequired("scene")
	_ = replayCmd.MarkFlagRequired("script")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := gizmo.LoadConfig(configPath)
	if err != nil {
		return err
	}
	w, err := world.Load(scenePath, cfg)
	if err != nil {
		return err
	}
	script, err := replay.LoadScript(scriptPath)
	if err != nil {
		return err
	}

	res, err := replay.Run(w, script)
	if verbose {
		for _, f := range res.Frames {
			fmt.Printf("%3d %-8s %-11s wrapper=%s\n", f.Step, f.Op, f.Mode, formatVec(f.Wrapper))
		}
	}
	if err != nil {
		return err
	}

	final, ok := res.Final()
	if !ok {
		fmt.Println("No steps.")
		return nil
	}
	target := w.Controls.Target()
	fmt.Printf("Target: %s\n", target.Name)
	fmt.Println("==========================")
	printTransform("Local", final.TargetLocal)
	printTransform("World", final.TargetWorld)
	return nil
}

func printTransform(label string, t engine.Transform) {
	fmt.Printf("\n%s\n", label)
	fmt.Printf("  Position: %s\n", formatVec(t.Position))
	fmt.Printf("  Rotation: %s deg\n", formatVec(engine.Rad2Deg(engine.EulerXYZ(t.Rotation))))
	fmt.Printf("  Scale:    %s\n", formatVec(t.Scale))
}
