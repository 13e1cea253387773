package math

import "math"

// WrapAngle normalizes an angle to the range [-π, π).
func WrapAngle(a float32) float32 {
	for a >= math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// UnwrapNear shifts angle by whole turns until it lies within π of reference.
// A reference that has accumulated several turns is followed by the result.
func UnwrapNear(angle, reference float32) float32 {
	for reference < angle-math.Pi {
		angle -= 2 * math.Pi
	}
	for reference > angle+math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
