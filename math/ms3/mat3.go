package ms3

import (
	math "github.com/chewxy/math32"
	"github.com/soypat/swrast/math/ms1"
)

// Mat3 is a 3x3 matrix.
type Mat3 struct {
	x00, x01, x02 float32
	x10, x11, x12 float32
	x20, x21, x22 float32
}

func mat3(x00, x01, x02, x10, x11, x12, x20, x21, x22 float32) Mat3 {
	return Mat3{
		x00, x01, x02,
		x10, x11, x12,
		x20, x21, x22}
}

// NewMat3 instantiates a new matrix from the first 9 floats, row major order. If v is of insufficient length NewMat3 panics.
func NewMat3(v []float32) (m Mat3) {
	_ = v[8]
	m.x00, m.x01, m.x02 = v[0], v[1], v[2]
	m.x10, m.x11, m.x12 = v[3], v[4], v[5]
	m.x20, m.x21, m.x22 = v[6], v[7], v[8]
	return m
}

// Mat3FromColumns builds a Mat3 from its three column vectors, matching
// GLSL's column-major matrix constructor mat3(col0, col1, col2).
func Mat3FromColumns(col0, col1, col2 Vec) Mat3 {
	return mat3(
		col0.X, col1.X, col2.X,
		col0.Y, col1.Y, col2.Y,
		col0.Z, col1.Z, col2.Z,
	)
}

// Columns returns the three column vectors that make up m.
func (m Mat3) Columns() [3]Vec {
	return [3]Vec{
		{X: m.x00, Y: m.x10, Z: m.x20},
		{X: m.x01, Y: m.x11, Z: m.x21},
		{X: m.x02, Y: m.x12, Z: m.x22},
	}
}

// IdentityMat3 returns the 3x3 identity matrix.
func IdentityMat3() Mat3 {
	return mat3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1)
}

// EqualMat3 tests the equality of 3x3 matrices.
func EqualMat3(a, b Mat3, tolerance float32) bool {
	return ms1.EqualWithinAbs(a.x00, b.x00, tolerance) &&
		ms1.EqualWithinAbs(a.x01, b.x01, tolerance) &&
		ms1.EqualWithinAbs(a.x02, b.x02, tolerance) &&
		ms1.EqualWithinAbs(a.x10, b.x10, tolerance) &&
		ms1.EqualWithinAbs(a.x11, b.x11, tolerance) &&
		ms1.EqualWithinAbs(a.x12, b.x12, tolerance) &&
		ms1.EqualWithinAbs(a.x20, b.x20, tolerance) &&
		ms1.EqualWithinAbs(a.x21, b.x21, tolerance) &&
		ms1.EqualWithinAbs(a.x22, b.x22, tolerance)
}

// MulMat3 multiplies two 3x3 matrices.
func MulMat3(a, b Mat3) Mat3 {
	m := Mat3{}
	m.x00 = a.x00*b.x00 + a.x01*b.x10 + a.x02*b.x20
	m.x10 = a.x10*b.x00 + a.x11*b.x10 + a.x12*b.x20
	m.x20 = a.x20*b.x00 + a.x21*b.x10 + a.x22*b.x20
	m.x01 = a.x00*b.x01 + a.x01*b.x11 + a.x02*b.x21
	m.x11 = a.x10*b.x01 + a.x11*b.x11 + a.x12*b.x21
	m.x21 = a.x20*b.x01 + a.x21*b.x11 + a.x22*b.x21
	m.x02 = a.x00*b.x02 + a.x01*b.x12 + a.x02*b.x22
	m.x12 = a.x10*b.x02 + a.x11*b.x12 + a.x12*b.x22
	m.x22 = a.x20*b.x02 + a.x21*b.x12 + a.x22*b.x22
	return m
}

// AddMat3 adds two 3x3 matrices together and returns the result.
func AddMat3(a, b Mat3) Mat3 {
	return Mat3{
		x00: a.x00 + b.x00,
		x10: a.x10 + b.x10,
		x20: a.x20 + b.x20,
		x01: a.x01 + b.x01,
		x11: a.x11 + b.x11,
		x21: a.x21 + b.x21,
		x02: a.x02 + b.x02,
		x12: a.x12 + b.x12,
		x22: a.x22 + b.x22,
	}
}

// SubMat3 subtracts a 3x3 matrix b from a and returns the result.
func SubMat3(a, b Mat3) Mat3 {
	return Mat3{
		x00: a.x00 - b.x00,
		x10: a.x10 - b.x10,
		x20: a.x20 - b.x20,
		x01: a.x01 - b.x01,
		x11: a.x11 - b.x11,
		x21: a.x21 - b.x21,
		x02: a.x02 - b.x02,
		x12: a.x12 - b.x12,
		x22: a.x22 - b.x22,
	}
}

// Prod performs vector multiplication as if they were matrices
//
//	m = v1 * v2ᵀ
func Prod(v1, v2t Vec) Mat3 {
	return mat3(
		v1.X*v2t.X, v1.X*v2t.Y, v1.X*v2t.Z,
		v1.Y*v2t.X, v1.Y*v2t.Y, v1.Y*v2t.Z,
		v1.Z*v2t.X, v1.Z*v2t.Y, v1.Z*v2t.Z,
	)
}

// MulMatVec performs matrix multiplication on v:
//
//	result = M * v
func MulMatVec(m Mat3, v Vec) (result Vec) {
	result.X = v.X*m.x00 + v.Y*m.x01 + v.Z*m.x02
	result.Y = v.X*m.x10 + v.Y*m.x11 + v.Z*m.x12
	result.Z = v.X*m.x20 + v.Y*m.x21 + v.Z*m.x22
	return result
}

// MulMatVecTrans Performs transposed matrix multiplication on v:
//
//	result = Mᵀ * v
func MulMatVecTrans(m Mat3, v Vec) (result Vec) {
	result.X = v.X*m.x00 + v.Y*m.x10 + v.Z*m.x20
	result.Y = v.X*m.x01 + v.Y*m.x11 + v.Z*m.x21
	result.Z = v.X*m.x02 + v.Y*m.x12 + v.Z*m.x22
	return result
}

// ScaleMat3 multiplies each 3x3 matrix component by a scalar.
func ScaleMat3(a Mat3, k float32) Mat3 {
	return Mat3{
		x00: k * a.x00,
		x10: k * a.x10,
		x20: k * a.x20,
		x01: k * a.x01,
		x11: k * a.x11,
		x21: k * a.x21,
		x02: k * a.x02,
		x12: k * a.x12,
		x22: k * a.x22,
	}
}

// Determinant returns the determinant of a 3x3 matrix.
func (a Mat3) Determinant() float32 {
	return (a.x00*(a.x11*a.x22-a.x21*a.x12) -
		a.x01*(a.x10*a.x22-a.x20*a.x12) +
		a.x02*(a.x10*a.x21-a.x20*a.x11))
}

// Inverse returns the inverse of a 3x3 matrix.
func (a Mat3) Inverse() Mat3 {
	m := Mat3{}
	det := a.Determinant()
	if det == 0 {
		return mat3(math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN())
	}
	d := 1.0 / det
	m.x00 = (a.x11*a.x22 - a.x12*a.x21) * d
	m.x01 = (a.x21*a.x02 - a.x01*a.x22) * d
	m.x02 = (a.x01*a.x12 - a.x11*a.x02) * d
	m.x10 = (a.x12*a.x20 - a.x22*a.x10) * d
	m.x11 = (a.x22*a.x00 - a.x20*a.x02) * d
	m.x12 = (a.x02*a.x10 - a.x12*a.x00) * d
	m.x20 = (a.x10*a.x21 - a.x20*a.x11) * d
	m.x21 = (a.x20*a.x01 - a.x00*a.x21) * d
	m.x22 = (a.x00*a.x11 - a.x01*a.x10) * d
	return m
}

// Transpose returns the transpose of a.
func (a Mat3) Transpose() Mat3 {
	return Mat3{
		x00: a.x00, x01: a.x10, x02: a.x20,
		x10: a.x01, x11: a.x11, x12: a.x21,
		x20: a.x02, x21: a.x12, x22: a.x22,
	}
}

// VecDiag returns the matrix diagonal as a Vec.
func (m Mat3) VecDiag() Vec {
	return Vec{X: m.x00, Y: m.x11, Z: m.x22}
}

// VecRow returns the ith row as a Vec.
func (m Mat3) VecRow(i int) Vec {
	switch i {
	case 0:
		return Vec{X: m.x00, Y: m.x01, Z: m.x02}
	case 1:
		return Vec{X: m.x10, Y: m.x11, Z: m.x12}
	case 2:
		return Vec{X: m.x20, Y: m.x21, Z: m.x22}
	}
	panic("out of bounds")
}

// VecCol returns the jth column as a Vec.
func (m Mat3) VecCol(j int) Vec {
	switch j {
	case 0:
		return Vec{X: m.x00, Y: m.x10, Z: m.x20}
	case 1:
		return Vec{X: m.x01, Y: m.x11, Z: m.x21}
	case 2:
		return Vec{X: m.x02, Y: m.x12, Z: m.x22}
	}
	panic("out of bounds")
}

// Put stores the matrix values into slice b in row major order. If b is not of length 9 or greater Put panics.
func (m Mat3) Put(b []float32) {
	_ = b[8]
	b[0], b[1], b[2] = m.x00, m.x01, m.x02
	b[3], b[4], b[5] = m.x10, m.x11, m.x12
	b[6], b[7], b[8] = m.x20, m.x21, m.x22
}

// Array returns the matrix values in a static array copy in row major order.
func (m Mat3) Array() (rowmajor [9]float32) {
	m.Put(rowmajor[:])
	return rowmajor
}
