package scene

// fixture.go reads a scene description from disk. Scene descriptions
// let a render be reconfigured without recompiling; the hard-coded
// scene built by Default still exists as the fallback when no fixture
// is supplied.

import (
	"fmt"

	reMath "pathtracer/math"

	"gopkg.in/yaml.v3"
)

// LoadFixture parses a yaml scene description into a Camera and World.
func LoadFixture(data []byte) (Camera, World, error) {
	var cfg fixtureConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Camera{}, World{}, fmt.Errorf("scene: yaml %w", err)
	}

	camera := Camera{
		Position:    vec3From(cfg.Camera.Position),
		Target:      vec3From(cfg.Camera.Target),
		FieldOfView: cfg.Camera.FieldOfView,
	}

	if len(cfg.Materials) == 0 {
		return Camera{}, World{}, fmt.Errorf("scene: fixture has no materials (index 0 must be the sky)")
	}

	materials := make([]Material, len(cfg.Materials))
	for i, m := range cfg.Materials {
		materials[i] = Material{
			Emissive:   vec3From(m.Emissive),
			Reflective: vec3From(m.Reflective),
			Glossiness: m.Glossiness,
		}
	}

	planes := make([]Plane, len(cfg.Planes))
	for i, p := range cfg.Planes {
		if p.Material <= 0 || p.Material >= len(materials) {
			return Camera{}, World{}, fmt.Errorf("scene: plane %d has out-of-range material index %d", i, p.Material)
		}
		planes[i] = Plane{Normal: vec3From(p.Normal), D: p.D, MaterialIndex: p.Material}
	}

	spheres := make([]Sphere, len(cfg.Spheres))
	for i, s := range cfg.Spheres {
		if s.Material <= 0 || s.Material >= len(materials) {
			return Camera{}, World{}, fmt.Errorf("scene: sphere %d has out-of-range material index %d", i, s.Material)
		}
		if s.Radius <= 0 {
			return Camera{}, World{}, fmt.Errorf("scene: sphere %d has non-positive radius %v", i, s.Radius)
		}
		spheres[i] = Sphere{Center: vec3From(s.Center), Radius: s.Radius, MaterialIndex: s.Material}
	}

	return camera, World{Materials: materials, Planes: planes, Spheres: spheres}, nil
}

// SaveFixture marshals a Camera and World back into the yaml shape
// LoadFixture accepts, mainly for round-tripping a scene built in code.
func SaveFixture(camera Camera, world World) ([]byte, error) {
	cfg := fixtureConfig{
		Camera: fixtureCamera{
			Position:    vec3To(camera.Position),
			Target:      vec3To(camera.Target),
			FieldOfView: camera.FieldOfView,
		},
	}
	for _, m := range world.Materials {
		cfg.Materials = append(cfg.Materials, fixtureMaterial{
			Emissive:   vec3To(m.Emissive),
			Reflective: vec3To(m.Reflective),
			Glossiness: m.Glossiness,
		})
	}
	for _, p := range world.Planes {
		cfg.Planes = append(cfg.Planes, fixturePlane{Normal: vec3To(p.Normal), D: p.D, Material: p.MaterialIndex})
	}
	for _, s := range world.Spheres {
		cfg.Spheres = append(cfg.Spheres, fixtureSphere{Center: vec3To(s.Center), Radius: s.Radius, Material: s.MaterialIndex})
	}
	return yaml.Marshal(cfg)
}

func vec3From(f [3]float32) reMath.Vec3 { return reMath.NewVec3(f[0], f[1], f[2]) }
func vec3To(v reMath.Vec3) [3]float32   { return [3]float32{v.X, v.Y, v.Z} }

type fixtureConfig struct {
	Camera    fixtureCamera     `yaml:"camera"`
	Materials []fixtureMaterial `yaml:"materials"`
	Planes    []fixturePlane    `yaml:"planes"`
	Spheres   []fixtureSphere   `yaml:"spheres"`
}

type fixtureCamera struct {
	Position    [3]float32 `yaml:"position"`
	Target      [3]float32 `yaml:"target"`
	FieldOfView float32    `yaml:"fov"`
}

type fixtureMaterial struct {
	Emissive   [3]float32 `yaml:"emissive"`
	Reflective [3]float32 `yaml:"reflective"`
	Glossiness float32    `yaml:"glossiness"`
}

type fixturePlane struct {
	Normal   [3]float32 `yaml:"normal"`
	D        float32    `yaml:"d"`
	Material int        `yaml:"material"`
}

type fixtureSphere struct {
	Center   [3]float32 `yaml:"center"`
	Radius   float32    `yaml:"radius"`
	Material int        `yaml:"material"`
}
