package render

import "math"

// Point is a canvas position in pixels, origin top-left.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CircularLayout spreads nodes evenly on a circle centered in a
// width×height canvas, with radius 30% of the shorter side. The first node
// sits at the top. A single node is placed at the center.
func CircularLayout(nodes []string, width, height int) map[string]Point {
	pos := make(map[string]Point, len(nodes))
	n := len(nodes)
	if n == 0 {
		return pos
	}

	cx := float64(width / 2)
	cy := float64(height / 2)
	if n == 1 {
		pos[nodes[0]] = Point{X: cx, Y: cy}
		return pos
	}

	radius := float64(min(width, height)) * 0.3
	for i, id := range nodes {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pos[id] = Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		}
	}
	return pos
}
