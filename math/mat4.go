package math

// Mat4 is a row-major 4x4 matrix. Points and directions are transformed
// as row vectors on the left: result = v * m (see Vec4.MulMat).
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Zero() Mat4 {
	return Mat4{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
}

func (m Mat4) Mul(other Mat4) Mat4 {
	result := Mat4Zero()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

func (m Mat4) MulVec(v Vec4) Vec4 {
	return v.MulMat(m)
}

// MulVec3 transforms v as a point: homogeneous multiply (w = 1), then
// divide by the resulting w. For the view and inverse-view matrices
// built by LookAt/InverseView that w is always 1, but the division is
// performed regardless so the operation stays correct for any affine
// or projective matrix.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	v4 := v.ToVec4(1.0)
	result := m.MulVec(v4)
	return result.ToVec3DivW()
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

// Mat4LookAt builds a view matrix from a right-handed camera basis:
// forward points from target to eye, right and up complete an
// orthonormal frame. world_up need not be unit length or orthogonal to
// forward; both are re-derived via cross products.
func Mat4LookAt(eye, target, worldUp Vec3) Mat4 {
	forward := eye.Sub(target).Normalize()
	right := worldUp.Cross(forward).Normalize()
	up := forward.Cross(right)

	return Mat4{
		{right.X, up.X, forward.X, 0},
		{right.Y, up.Y, forward.Y, 0},
		{right.Z, up.Z, forward.Z, 0},
		{-right.Dot(eye), -up.Dot(eye), -forward.Dot(eye), 1},
	}
}

// InverseView inverts a matrix built by Mat4LookAt: the upper-left 3x3
// rotation block is orthonormal, so its inverse is its transpose, and
// the translation row is recomputed from that transpose rather than by
// a general matrix inversion.
func (m Mat4) InverseView() Mat4 {
	var rot Mat4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rot[i][j] = m[j][i]
		}
	}

	translation := Vec3{m[3][0], m[3][1], m[3][2]}
	newTranslation := Vec3{
		X: -(translation.X*rot[0][0] + translation.Y*rot[1][0] + translation.Z*rot[2][0]),
		Y: -(translation.X*rot[0][1] + translation.Y*rot[1][1] + translation.Z*rot[2][1]),
		Z: -(translation.X*rot[0][2] + translation.Y*rot[1][2] + translation.Z*rot[2][2]),
	}

	rot[0][3], rot[1][3], rot[2][3] = 0, 0, 0
	rot[3][0], rot[3][1], rot[3][2], rot[3][3] = newTranslation.X, newTranslation.Y, newTranslation.Z, 1
	return rot
}
