package physics

import "github.com/chewxy/math32"

func abs(x float32) float32 {
	return math32.Abs(x)
}
