package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampMax caps v at max and leaves smaller values untouched.
func ClampMax(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vector2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Lerp moves from current toward target by factor t in [0,1].
func Lerp(current, target, t float64) float64 {
	return current + (target-current)*t
}

// Clamp constrains value to [lo, hi]. When lo > hi the midpoint is returned,
// which keeps a camera centred on a level smaller than the screen.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, value))
}
