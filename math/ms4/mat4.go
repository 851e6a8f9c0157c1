package ms4

import (
	math "github.com/chewxy/math32"
	"github.com/soypat/swrast/math/ms1"
)

// Mat4 is a 4x4 matrix, typically used to hold a model-view-projection
// transform that maps object space to clip space.
type Mat4 struct {
	x00, x01, x02, x03 float32
	x10, x11, x12, x13 float32
	x20, x21, x22, x23 float32
	x30, x31, x32, x33 float32
}

func mat4(
	x00, x01, x02, x03,
	x10, x11, x12, x13,
	x20, x21, x22, x23,
	x30, x31, x32, x33 float32) Mat4 {
	return Mat4{
		x00, x01, x02, x03,
		x10, x11, x12, x13,
		x20, x21, x22, x23,
		x30, x31, x32, x33,
	}
}

// NewMat4 instantiates a new matrix from the first 16 floats, row major order. If v is of insufficient length NewMat4 panics.
func NewMat4(v []float32) (m Mat4) {
	_ = v[15]
	m.x00, m.x01, m.x02, m.x03 = v[0], v[1], v[2], v[3]
	m.x10, m.x11, m.x12, m.x13 = v[4], v[5], v[6], v[7]
	m.x20, m.x21, m.x22, m.x23 = v[8], v[9], v[10], v[11]
	m.x30, m.x31, m.x32, m.x33 = v[12], v[13], v[14], v[15]
	return m
}

// Mat4FromColumns builds a Mat4 from its four column vectors, matching
// GLSL's column-major matrix constructor mat4(col0, col1, col2, col3).
func Mat4FromColumns(col0, col1, col2, col3 Vec) Mat4 {
	return mat4(
		col0.X, col1.X, col2.X, col3.X,
		col0.Y, col1.Y, col2.Y, col3.Y,
		col0.Z, col1.Z, col2.Z, col3.Z,
		col0.W, col1.W, col2.W, col3.W,
	)
}

// Columns returns the four column vectors that make up m.
func (m Mat4) Columns() [4]Vec {
	return [4]Vec{
		{X: m.x00, Y: m.x10, Z: m.x20, W: m.x30},
		{X: m.x01, Y: m.x11, Z: m.x21, W: m.x31},
		{X: m.x02, Y: m.x12, Z: m.x22, W: m.x32},
		{X: m.x03, Y: m.x13, Z: m.x23, W: m.x33},
	}
}

// IdentityMat4 returns the 4x4 identity matrix.
func IdentityMat4() Mat4 {
	return mat4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1)
}

// Perspective returns a perspective projection matrix with the given
// vertical field of view fovy (radians), aspect ratio and near, far clip
// plane distances. The clip-space w of a transformed point equals its
// view-space z, so geometry in front of the viewer lies at positive z. The
// depth row is that of the OpenGL matrix, so z=-near and z=-far map to NDC
// depths 1 and -1.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	f := 1 / math.Tan(fovy/2)
	dz := near - far
	return Mat4FromColumns(
		Vec{X: f / aspect},
		Vec{Y: f},
		Vec{Z: (far + near) / dz, W: 1},
		Vec{Z: 2 * far * near / dz},
	)
}

// EqualMat4 tests the equality of 4x4 matrices.
func EqualMat4(a, b Mat4, tolerance float32) bool {
	return ms1.EqualWithinAbs(a.x00, b.x00, tolerance) &&
		ms1.EqualWithinAbs(a.x01, b.x01, tolerance) &&
		ms1.EqualWithinAbs(a.x02, b.x02, tolerance) &&
		ms1.EqualWithinAbs(a.x03, b.x03, tolerance) &&
		ms1.EqualWithinAbs(a.x10, b.x10, tolerance) &&
		ms1.EqualWithinAbs(a.x11, b.x11, tolerance) &&
		ms1.EqualWithinAbs(a.x12, b.x12, tolerance) &&
		ms1.EqualWithinAbs(a.x13, b.x13, tolerance) &&
		ms1.EqualWithinAbs(a.x20, b.x20, tolerance) &&
		ms1.EqualWithinAbs(a.x21, b.x21, tolerance) &&
		ms1.EqualWithinAbs(a.x22, b.x22, tolerance) &&
		ms1.EqualWithinAbs(a.x23, b.x23, tolerance) &&
		ms1.EqualWithinAbs(a.x30, b.x30, tolerance) &&
		ms1.EqualWithinAbs(a.x31, b.x31, tolerance) &&
		ms1.EqualWithinAbs(a.x32, b.x32, tolerance) &&
		ms1.EqualWithinAbs(a.x33, b.x33, tolerance)
}

// MulMat4 multiplies two 4x4 matrices.
func MulMat4(a, b Mat4) Mat4 {
	var m Mat4
	arow := [4][4]float32{
		{a.x00, a.x01, a.x02, a.x03},
		{a.x10, a.x11, a.x12, a.x13},
		{a.x20, a.x21, a.x22, a.x23},
		{a.x30, a.x31, a.x32, a.x33},
	}
	bcol := [4][4]float32{
		{b.x00, b.x10, b.x20, b.x30},
		{b.x01, b.x11, b.x21, b.x31},
		{b.x02, b.x12, b.x22, b.x32},
		{b.x03, b.x13, b.x23, b.x33},
	}
	out := [4][4]float32{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += arow[i][k] * bcol[j][k]
			}
			out[i][j] = sum
		}
	}
	m.x00, m.x01, m.x02, m.x03 = out[0][0], out[0][1], out[0][2], out[0][3]
	m.x10, m.x11, m.x12, m.x13 = out[1][0], out[1][1], out[1][2], out[1][3]
	m.x20, m.x21, m.x22, m.x23 = out[2][0], out[2][1], out[2][2], out[2][3]
	m.x30, m.x31, m.x32, m.x33 = out[3][0], out[3][1], out[3][2], out[3][3]
	return m
}

// AddMat4 adds two 4x4 matrices together and returns the result.
func AddMat4(a, b Mat4) Mat4 {
	return mat4(
		a.x00+b.x00, a.x01+b.x01, a.x02+b.x02, a.x03+b.x03,
		a.x10+b.x10, a.x11+b.x11, a.x12+b.x12, a.x13+b.x13,
		a.x20+b.x20, a.x21+b.x21, a.x22+b.x22, a.x23+b.x23,
		a.x30+b.x30, a.x31+b.x31, a.x32+b.x32, a.x33+b.x33,
	)
}

// ScaleMat4 multiplies each 4x4 matrix component by a scalar.
func ScaleMat4(a Mat4, k float32) Mat4 {
	return mat4(
		k*a.x00, k*a.x01, k*a.x02, k*a.x03,
		k*a.x10, k*a.x11, k*a.x12, k*a.x13,
		k*a.x20, k*a.x21, k*a.x22, k*a.x23,
		k*a.x30, k*a.x31, k*a.x32, k*a.x33,
	)
}

// MulMatVec performs matrix multiplication on v:
//
//	result = M * v
func MulMatVec(m Mat4, v Vec) (result Vec) {
	result.X = v.X*m.x00 + v.Y*m.x01 + v.Z*m.x02 + v.W*m.x03
	result.Y = v.X*m.x10 + v.Y*m.x11 + v.Z*m.x12 + v.W*m.x13
	result.Z = v.X*m.x20 + v.Y*m.x21 + v.Z*m.x22 + v.W*m.x23
	result.W = v.X*m.x30 + v.Y*m.x31 + v.Z*m.x32 + v.W*m.x33
	return result
}

// Transpose returns the transpose of a.
func (a Mat4) Transpose() Mat4 {
	return mat4(
		a.x00, a.x10, a.x20, a.x30,
		a.x01, a.x11, a.x21, a.x31,
		a.x02, a.x12, a.x22, a.x32,
		a.x03, a.x13, a.x23, a.x33,
	)
}

// VecRow returns the ith row as a Vec.
func (m Mat4) VecRow(i int) Vec {
	switch i {
	case 0:
		return Vec{X: m.x00, Y: m.x01, Z: m.x02, W: m.x03}
	case 1:
		return Vec{X: m.x10, Y: m.x11, Z: m.x12, W: m.x13}
	case 2:
		return Vec{X: m.x20, Y: m.x21, Z: m.x22, W: m.x23}
	case 3:
		return Vec{X: m.x30, Y: m.x31, Z: m.x32, W: m.x33}
	}
	panic("out of bounds")
}

// VecCol returns the jth column as a Vec.
func (m Mat4) VecCol(j int) Vec {
	switch j {
	case 0:
		return Vec{X: m.x00, Y: m.x10, Z: m.x20, W: m.x30}
	case 1:
		return Vec{X: m.x01, Y: m.x11, Z: m.x21, W: m.x31}
	case 2:
		return Vec{X: m.x02, Y: m.x12, Z: m.x22, W: m.x32}
	case 3:
		return Vec{X: m.x03, Y: m.x13, Z: m.x23, W: m.x33}
	}
	panic("out of bounds")
}

// Put stores the matrix values into slice b in row major order. If b is not of length 16 or greater Put panics.
func (m Mat4) Put(b []float32) {
	_ = b[15]
	b[0], b[1], b[2], b[3] = m.x00, m.x01, m.x02, m.x03
	b[4], b[5], b[6], b[7] = m.x10, m.x11, m.x12, m.x13
	b[8], b[9], b[10], b[11] = m.x20, m.x21, m.x22, m.x23
	b[12], b[13], b[14], b[15] = m.x30, m.x31, m.x32, m.x33
}

// Array returns the matrix values in a static array copy in row major order.
func (m Mat4) Array() (rowmajor [16]float32) {
	m.Put(rowmajor[:])
	return rowmajor
}
