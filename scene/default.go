package scene

import reMath "pathtracer/math"

// Default reproduces the reference scene: a camera looking down at a
// single ground plane and four spheres, lit only by the sky's emissive
// term (there are no explicit light sources — everything glows or
// reflects).
func Default() (Camera, World) {
	camera := Camera{
		Position:    reMath.NewVec3(0, -5, 1),
		Target:      reMath.Vec3Zero,
		FieldOfView: reMath.Pi / 4,
	}

	background := Sky(reMath.NewVec3(0.3, 0.4, 0.5))
	red := Reflect(reMath.NewVec3(0.5, 0.5, 0.5), 0)
	cyan := Reflect(reMath.NewVec3(0.7, 0.5, 0.3), 0)
	boyfriend := Reflect(reMath.NewVec3(0.7, 0.5, 0.3), 0.7)

	world := World{
		Materials: []Material{background, red, cyan, boyfriend},
		Planes: []Plane{
			{Normal: reMath.Vec3UnitZ, D: 0, MaterialIndex: 1},
		},
		Spheres: []Sphere{
			{Center: reMath.NewVec3(1, 0, 1), Radius: 1, MaterialIndex: 2},
			{Center: reMath.NewVec3(-1, -2, 0), Radius: 0.5, MaterialIndex: 3},
			{Center: reMath.NewVec3(-2, 3, 1.5), Radius: 1, MaterialIndex: 3},
			{Center: reMath.NewVec3(1, -3, 0.5), Radius: 0.6, MaterialIndex: 3},
		},
	}

	return camera, world
}
