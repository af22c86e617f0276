package scene

import reMath "pathtracer/math"

// Camera is a pinhole camera: position, look-at target and vertical
// field of view. It is immutable once a render starts — every tile
// renderer reads the same value concurrently.
type Camera struct {
	Position    reMath.Vec3
	Target      reMath.Vec3
	FieldOfView float32 // radians
}

// ViewMatrix returns the look-at view transform for the camera, using
// the tracer's fixed +Z-up world convention.
func (c Camera) ViewMatrix() reMath.Mat4 {
	return reMath.Mat4LookAt(c.Position, c.Target, reMath.Vec3UnitZ)
}
