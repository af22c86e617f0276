package math

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3NormalizeUnitLength(t *testing.T) {
	vectors := []Vec3{
		{3, 0, 0}, {1, 1, 1}, {-2, 5, -7}, {0.001, 0.001, 0.001},
	}
	for _, v := range vectors {
		n := v.Normalize()
		length := n.Length()
		if math.Abs(float64(length-1)) > 1e-5 {
			t.Errorf("Normalize(%v): expected unit length, got %v", v, length)
		}
	}
}

func TestVec3NormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Normalize(zero vector) should panic")
		}
	}()
	Vec3Zero.Normalize()
}

func TestVec3Reflect(t *testing.T) {
	n := Vec3UnitZ
	incident := NewVec3(1, 0, -1).Normalize()

	reflected := incident.Reflect(n)

	got := reflected.Dot(n)
	want := -incident.Dot(n)
	if math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("reflect·n = %v, want %v", got, want)
	}

	// The component orthogonal to n is unchanged.
	incidentOrtho := incident.Sub(n.Mul(incident.Dot(n)))
	reflectedOrtho := reflected.Sub(n.Mul(reflected.Dot(n)))
	if incidentOrtho.Distance(reflectedOrtho) > 1e-6 {
		t.Errorf("reflect changed the orthogonal component: %v vs %v", incidentOrtho, reflectedOrtho)
	}
}

func TestLookAtInverseViewRoundTrip(t *testing.T) {
	eye := NewVec3(0, -5, 1)
	target := Vec3Zero

	view := Mat4LookAt(eye, target, Vec3UnitZ)
	inverse := view.InverseView()

	points := []Vec3{
		{0, 0, 0}, {1, 2, 3}, {-4, 0.5, 7}, eye,
	}
	for _, p := range points {
		viewSpace := view.MulVec3(p)
		roundTripped := inverse.MulVec3(viewSpace)
		if p.Distance(roundTripped) > 1e-3*(1+p.Length()) {
			t.Errorf("round trip for %v: got %v", p, roundTripped)
		}
	}

	// The inverse view maps the view-space origin back to the eye.
	originInWorld := inverse.MulVec3(Vec3Zero)
	if eye.Distance(originInWorld) > 1e-4 {
		t.Errorf("inverse view origin: expected eye %v, got %v", eye, originInWorld)
	}
}
