package main

import (
	"fmt"
	"strconv"
	"strings"

	"freeform/internal/engine"
	"freeform/internal/gizmo"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"
)

var (
	separation string
	boxSize    string
)

var handlesCmd = &cobra.Command{
	Use:   "handles",
	Short: "Print the handle layout",
	Long: `Handles builds controls for a stand-in target and prints every handle
with its role, placement and orientation. The target is a box when --box
is given, otherwise an object without geometry.`,
	Args: cobra.NoArgs,
	RunE: runHandles,
}

func init() {
	rootCmd.AddCommand(handlesCmd)

	handlesCmd.Flags().StringVar(&separation, "separation", "", "explicit separation x,y,z")
	handlesCmd.Flags().StringVar(&boxSize, "box", "", "target box size x,y,z")
}

func runHandles(cmd *cobra.Command, args []string) error {
	cfg, err := gizmo.LoadConfig(configPath)
	if err != nil {
		return err
	}

	target := engine.NewGameObject("target")
	if boxSize != "" {
		size, err := parseVec(boxSize)
		if err != nil {
			return fmt.Errorf("--box: %w", err)
		}
		target.Mesh = engine.NewBoxMesh(size)
	}

	opts := []gizmo.Option{gizmo.WithConfig(cfg)}
	if separation != "" {
		sep, err := parseVec(separation)
		if err != nil {
			return fmt.Errorf("--separation: %w", err)
		}
		opts = append(opts, gizmo.WithSeparation(sep))
	}

	c := gizmo.New(target, opts...)
	b := c.Bounds()
	box := b.Box()
	fmt.Printf("Bounds (%s): min %s max %s\n", b.Source, formatVec(b.Min), formatVec(b.Max))
	fmt.Printf("  center %s size %s\n\n", formatVec(box.Center()), formatVec(box.Size()))
	fmt.Printf("%-22s %-17s %-24s %-24s %s\n", "NAME", "ROLE", "POSITION", "ROTATION (deg)", "UP")
	for _, h := range c.Handles() {
		fmt.Printf("%-22s %-17s %-24s %-24s %s\n",
			h.Name, h.Role, formatVec(h.Position), formatVec(engine.Rad2Deg(h.Rotation)), formatVec(h.Up))
	}
	return nil
}

func parseVec(s string) (rl.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return rl.Vector3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var xs [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return rl.Vector3{}, fmt.Errorf("component %d: %w", i+1, err)
		}
		xs[i] = float32(f)
	}
	return rl.Vector3{X: xs[0], Y: xs[1], Z: xs[2]}, nil
}

func formatVec(v rl.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
