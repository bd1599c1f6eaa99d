package systems

import "math"

// Bounds is the size of the toroidal world.
type Bounds struct {
	Width, Height float32
}

// Wrap maps v into [0, size), also for negative inputs.
func Wrap(v, size float32) float32 {
	r := float32(math.Mod(math.Mod(float64(v), float64(size))+float64(size), float64(size)))
	// Rounding back to float32 can land exactly on size.
	if r >= size {
		r -= size
	}
	return r
}

// normalize returns the unit vector of (x, y). ok is false for the zero vector.
func normalize(x, y float32) (nx, ny float32, ok bool) {
	l := float32(math.Sqrt(float64(x*x + y*y)))
	if l == 0 {
		return 0, 0, false
	}
	return x / l, y / l, true
}

// distance returns the Euclidean distance between two points.
func distance(x1, y1, x2, y2 float32) float32 {
	dx := x1 - x2
	dy := y1 - y2
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}
