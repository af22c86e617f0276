package render

import (
	"math"

	reMath "pathtracer/math"
	"pathtracer/imagebuf"
	"pathtracer/rng"
	"pathtracer/scene"
)

// samplesPerPixel is the number of jittered primary rays averaged into
// each output pixel.
const samplesPerPixel = 4

// srgbComponent applies the IEC 61966-2-1 opto-electronic transfer
// function to one linear channel value. x must already be in [0,1];
// the caller is responsible for that invariant, there is no clamping
// here.
func srgbComponent(x float32) float32 {
	if x <= 0.0031308 {
		return x * 12.92
	}
	return 1.055*float32(math.Pow(float64(x), 1.0/2.4)) - 0.055
}

func srgbEncode(c reMath.Vec3) reMath.Vec3 {
	return reMath.Vec3{
		X: srgbComponent(c.X),
		Y: srgbComponent(c.Y),
		Z: srgbComponent(c.Z),
	}
}

// RenderTile renders every pixel of rect into img, tracing against
// world as seen by camera. It draws all jitter and scatter samples from
// gen, which the caller seeds; gen must not be shared with any other
// concurrently running tile.
func RenderTile(rect imagebuf.Rect, camera scene.Camera, world scene.World, img *imagebuf.Image, gen *rng.Generator) {
	view := camera.ViewMatrix()
	inverseView := view.InverseView()

	imgW, imgH := float32(img.Width), float32(img.Height)
	aspectRatio := imgW / imgH
	scaleY := float32(math.Tan(float64(0.5 * camera.FieldOfView)))
	scaleX := aspectRatio * scaleY

	halfPixelWidth := scaleX * 0.5 / imgW
	halfPixelHeight := scaleY * 0.5 / imgH

	left, right := rect.Left, rect.Left+rect.Width
	bottom, top := rect.Bottom, rect.Bottom+rect.Height

	for y := bottom; y < top; y++ {
		filmY := (2.0*((float32(y)+0.5)/imgH) - 1.0) * scaleY

		for x := left; x < right; x++ {
			filmX := (2.0*((float32(x)+0.5)/imgW) - 1.0) * scaleX
			filmPoint := reMath.Vec3{X: filmX, Y: filmY, Z: -1.0}

			colour := reMath.Vec3Zero
			contribution := float32(1.0 / samplesPerPixel)

			for s := 0; s < samplesPerPixel; s++ {
				jitter := reMath.Vec3{
					X: gen.RangedFloat(-halfPixelWidth, halfPixelWidth),
					Y: gen.RangedFloat(-halfPixelHeight, halfPixelHeight),
					Z: 0,
				}

				rayPoint := inverseView.MulVec3(filmPoint.Add(jitter))
				ray := scene.Ray{
					Origin:    camera.Position,
					Direction: rayPoint.Sub(camera.Position).Normalize(),
				}

				sample := CastRay(ray, world, gen)
				colour = colour.Add(sample.Mul(contribution))
			}

			srgbColour := srgbEncode(colour)
			img.Set(x, y, imagebuf.PackRGB(srgbColour.X, srgbColour.Y, srgbColour.Z))
		}
	}
}
