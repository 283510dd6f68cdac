package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	MinNodeSize = 40.0
	MaxNodeSize = 80.0
)

// Normalize maps score into [0,1] relative to lo and hi. When all scores
// are equal it returns 0.5.
func Normalize(score, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	return (score - lo) / (hi - lo)
}

// NodeColor returns the fill for a normalized score: red for the lowest,
// green for the highest, at saturation 0.8 and value 0.9.
func NodeColor(normalized float64) string {
	c := colorful.Hsv(normalized*0.33*360, 0.8, 0.9)
	// Channels are truncated, not rounded, so colors match the classic
	// colorsys-based palette.
	return fmt.Sprintf("#%02x%02x%02x", uint8(c.R*255), uint8(c.G*255), uint8(c.B*255))
}

// NodeSize returns the node diameter in pixels for a normalized score.
func NodeSize(normalized float64) float64 {
	return MinNodeSize + (MaxNodeSize-MinNodeSize)*normalized
}
