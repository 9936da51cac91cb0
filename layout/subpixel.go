package layout

import (
	"math"

	"github.com/gogpu/glyphatlas/atlas"
)

// Quantize splits a pen position into a whole pixel and a fractional step
// in [0, atlas.SubpixelSteps).
//
// With four steps:
//   - pos=10.0 returns (10, 0)
//   - pos=10.25 returns (10, 1)
//   - pos=10.5 returns (10, 2)
//   - pos=10.99 returns (10, 3)
//   - pos=-0.25 returns (-1, 3)
func Quantize(pos float32) (intPos int, sub uint8) {
	fl := math.Floor(float64(pos))
	frac := float64(pos) - fl

	s := int(frac * atlas.SubpixelSteps)
	s = min(max(s, 0), atlas.SubpixelSteps-1)

	return int(fl), uint8(s) //nolint:gosec // s is bounded [0, SubpixelSteps-1]
}
