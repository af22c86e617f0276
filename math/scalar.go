package math

import "math"

// Sqrt is float32 math.Sqrt, exported so callers outside this package
// don't need a second import of the standard math package just for a
// single call.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
