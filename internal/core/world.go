package core

// World describes the square bounded plane agents live on: side length
// Size, centered at the origin, positions clamped to both axes.
type World struct {
	Size float64
}

// Half returns half the side length, the per-axis position bound.
func (w World) Half() float64 { return w.Size / 2 }

// Clamp forces a coordinate into [-half, half].
func Clamp(v, half float64) float64 {
	if v < -half {
		return -half
	}
	if v > half {
		return half
	}
	return v
}

// Contains reports whether (x, y) lies within the world bounds.
func (w World) Contains(x, y float64) bool {
	h := w.Half()
	return x >= -h && x <= h && y >= -h && y <= h
}

// DistSq returns the squared Euclidean distance between two points.
// Proximity tests compare it against a squared radius to avoid the sqrt.
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}
