package scene

import reMath "pathtracer/math"

// Material describes a surface's light contribution. Emissive is added to
// the running result whenever a ray hits this material; reflective
// attenuates everything gathered on bounces after this one. Glossiness
// blends the scatter bounce (0) toward the pure mirror bounce (1).
//
// Material index 0 is the sky sentinel: a ray that hits nothing in the
// world is treated as having hit material 0, and the bounce loop ends
// there instead of scattering further.
type Material struct {
	Emissive   reMath.Vec3
	Reflective reMath.Vec3
	Glossiness float32
}

// Sky returns the material used for rays that hit nothing, keyed by its
// emissive colour alone.
func Sky(emissive reMath.Vec3) Material {
	return Material{Emissive: emissive}
}

// Reflect returns a purely reflective, non-emissive material.
func Reflect(colour reMath.Vec3, glossiness float32) Material {
	return Material{Reflective: colour, Glossiness: glossiness}
}
