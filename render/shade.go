package render

import (
	"math"

	reMath "pathtracer/math"
	"pathtracer/rng"
	"pathtracer/scene"
)

// maxBounces bounds the shading loop: a ray that has not reached the
// sky after this many bounces contributes nothing further.
const maxBounces = 4

// randomDirection draws a vector with each component uniform in
// [-1, 1] and normalizes it. This samples the corners of a cube more
// densely than a sphere's surface — a deliberate shortcut, not
// spherically uniform scattering.
func randomDirection(gen *rng.Generator) reMath.Vec3 {
	return reMath.Vec3{
		X: gen.RangedFloat(-1, 1),
		Y: gen.RangedFloat(-1, 1),
		Z: gen.RangedFloat(-1, 1),
	}.Normalize()
}

// CastRay traces r through world for up to maxBounces bounces,
// accumulating emissive contribution attenuated by each surface's
// reflective colour, and returns the resulting linear colour.
func CastRay(r scene.Ray, world scene.World, gen *rng.Generator) reMath.Vec3 {
	result := reMath.Vec3Zero
	attenuation := reMath.Vec3One

	for bounce := 0; bounce < maxBounces; bounce++ {
		hitDistance := float32(math.MaxFloat32)
		hitMaterial := 0
		hitNormal := reMath.Vec3UnitZ

		for _, p := range world.Planes {
			if h := intersectPlane(r, p); h.ok && h.t > selfHitEpsilon && h.t < hitDistance {
				hitDistance = h.t
				hitMaterial = p.MaterialIndex
				hitNormal = p.Normal
			}
		}

		for _, s := range world.Spheres {
			if h := intersectSphere(r, s); h.ok && h.t > selfHitEpsilon && h.t < hitDistance {
				hitDistance = h.t
				hitMaterial = s.MaterialIndex
				hitPoint := r.Origin.Add(r.Direction.Mul(hitDistance))
				hitNormal = hitPoint.Sub(s.Center).Normalize()
			}
		}

		if hitMaterial == 0 {
			result = result.Add(attenuation.MulVec(world.Sky().Emissive))
			break
		}

		material := world.Materials[hitMaterial]
		result = result.Add(attenuation.MulVec(material.Emissive))
		attenuation = attenuation.MulVec(material.Reflective)

		pureBounce := r.Direction.Reflect(hitNormal).Normalize()
		scatterBounce := hitNormal.Add(randomDirection(gen)).Normalize()

		r.Origin = r.Origin.Add(r.Direction.Mul(hitDistance))
		r.Direction = scatterBounce.Lerp(pureBounce, material.Glossiness).Normalize()
	}

	return result
}
