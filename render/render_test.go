package render

import (
	"math"
	"testing"

	reMath "pathtracer/math"
	"pathtracer/imagebuf"
	"pathtracer/rng"
	"pathtracer/scene"
)

func TestIntersectSphereRayFromInsideHits(t *testing.T) {
	s := scene.Sphere{Center: reMath.Vec3Zero, Radius: 2, MaterialIndex: 1}
	r := scene.Ray{Origin: reMath.Vec3Zero, Direction: reMath.NewVec3(1, 0, 0)}

	h := intersectSphere(r, s)
	if !h.ok || h.t <= 0 {
		t.Fatalf("expected positive hit from inside the sphere, got %+v", h)
	}
}

func TestIntersectSphereRayAimedAwayMisses(t *testing.T) {
	s := scene.Sphere{Center: reMath.NewVec3(5, 0, 0), Radius: 1, MaterialIndex: 1}
	r := scene.Ray{Origin: reMath.Vec3Zero, Direction: reMath.NewVec3(-1, 0, 0)}

	if h := intersectSphere(r, s); h.ok {
		t.Fatalf("expected miss for ray aimed away from sphere, got %+v", h)
	}
}

func TestSrgbEncodeMonotonic(t *testing.T) {
	prev := srgbComponent(0)
	for i := 1; i <= 1000; i++ {
		x := float32(i) / 1000
		cur := srgbComponent(x)
		if cur <= prev {
			t.Fatalf("srgbComponent not strictly monotonic at x=%v: prev=%v cur=%v", x, prev, cur)
		}
		prev = cur
	}
}

func TestSingleTileRenderSkyOnly(t *testing.T) {
	emissive := reMath.NewVec3(0.3, 0.4, 0.5)
	world := scene.World{Materials: []scene.Material{scene.Sky(emissive)}}
	camera := scene.Camera{Position: reMath.NewVec3(0, -5, 1), Target: reMath.Vec3Zero, FieldOfView: math.Pi / 4}

	img := imagebuf.NewImage(16, 16)
	gen := rng.NewSeeded(1)
	RenderTile(imagebuf.Rect{Left: 0, Bottom: 0, Width: 16, Height: 16}, camera, world, img, gen)

	want := imagebuf.PackRGB(srgbComponent(0.3), srgbComponent(0.4), srgbComponent(0.5))
	for i, p := range img.Pixels {
		if p != want {
			t.Fatalf("pixel %d = %#08x, want %#08x", i, p, want)
		}
	}
}

func TestDirectHitOnReflectiveSphere(t *testing.T) {
	sky := reMath.NewVec3(0.3, 0.4, 0.5)
	world := scene.World{
		Materials: []scene.Material{
			scene.Sky(sky),
			scene.Reflect(reMath.NewVec3(0.5, 0.5, 0.5), 0),
		},
		Spheres: []scene.Sphere{
			{Center: reMath.NewVec3(0, 0, 1), Radius: 1, MaterialIndex: 1},
		},
	}
	camera := scene.Camera{Position: reMath.NewVec3(0, -5, 1), Target: reMath.Vec3Zero, FieldOfView: math.Pi / 4}

	img := imagebuf.NewImage(16, 16)
	gen := rng.NewSeeded(1)
	RenderTile(imagebuf.Rect{Left: 0, Bottom: 0, Width: 16, Height: 16}, camera, world, img, gen)

	centerExpected := srgbEncode(reMath.NewVec3(0.5, 0.5, 0.5).MulVec(sky))
	want := imagebuf.PackRGB(centerExpected.X, centerExpected.Y, centerExpected.Z)

	centerPixel := img.Pixels[8*16+8]
	if !withinChannelTolerance(centerPixel, want, 1) {
		t.Errorf("center pixel = %#08x, want close to %#08x", centerPixel, want)
	}
}

func withinChannelTolerance(got, want imagebuf.Pixel, tolerance int) bool {
	for shift := uint(0); shift < 32; shift += 8 {
		g := int((got >> shift) & 0xff)
		w := int((want >> shift) & 0xff)
		diff := g - w
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			return false
		}
	}
	return true
}
