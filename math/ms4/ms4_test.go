package ms4

import (
	"testing"

	math "github.com/chewxy/math32"
)

const tol32 = 1e-4

func TestAddSub(t *testing.T) {
	a := Vec{X: 1, Y: -2, Z: 3, W: 0.5}
	b := Vec{X: 3.5, Y: 7, Z: -1, W: 2}
	got := Sub(Add(a, b), b)
	if !EqualElem(got, a, tol32) {
		t.Errorf("A+B-B != A: got %v want %v", got, a)
	}
}

func TestMatIdentity(t *testing.T) {
	m := Mat4FromColumns(
		Vec{X: 1, Y: 2, Z: 3, W: 4},
		Vec{X: 5, Y: 6, Z: 7, W: 8},
		Vec{X: 9, Y: 10, Z: 11, W: 12},
		Vec{X: 13, Y: 14, Z: 15, W: 16},
	)
	got := MulMat4(m, IdentityMat4())
	if !EqualMat4(got, m, tol32) {
		t.Errorf("M*I != M: got %+v want %+v", got, m)
	}
}

func TestMulMatVec(t *testing.T) {
	v := Vec{X: 5, Y: -2, Z: 7, W: 1}
	got := MulMatVec(IdentityMat4(), v)
	if !EqualElem(got, v, tol32) {
		t.Errorf("identity matrix did not preserve vector: got %v want %v", got, v)
	}
}

func TestPerspectiveColumns(t *testing.T) {
	fovy, aspect, near, far := math.Pi/2, float32(1), float32(0.1), float32(100)
	p := Perspective(fovy, aspect, near, far)

	f := 1 / math.Tan(fovy/2)
	dz := near - far
	want := Mat4FromColumns(
		Vec{X: f / aspect},
		Vec{Y: f},
		Vec{Z: (far + near) / dz, W: 1},
		Vec{Z: 2 * far * near / dz},
	)
	if !EqualMat4(p, want, tol32) {
		t.Errorf("Perspective columns mismatch: got %+v want %+v", p, want)
	}
}

func TestPerspectiveDivide(t *testing.T) {
	fovy, aspect, near, far := math.Pi/2, float32(1), float32(0.1), float32(100)
	proj := Perspective(fovy, aspect, near, far)
	// Perspective puts the view-space z into clip-space w (w = z), so the points
	// at z=-near and z=-far get w=-near and w=-far, and their NDC depths z/w
	// come out as 1 and -1: the OpenGL depth mapping with its sign reversed.
	pNear := MulMatVec(proj, Vec{Z: -near, W: 1})
	pFar := MulMatVec(proj, Vec{Z: -far, W: 1})
	_, _, zNear := PerspectiveDivide(pNear)
	_, _, zFar := PerspectiveDivide(pFar)
	if !ms1EqualWithinAbs(zNear, 1, tol32) {
		t.Errorf("near plane did not map to NDC z=1: got %v", zNear)
	}
	if !ms1EqualWithinAbs(zFar, -1, tol32) {
		t.Errorf("far plane did not map to NDC z=-1: got %v", zFar)
	}
}

func ms1EqualWithinAbs(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestComparisons(t *testing.T) {
	a := Vec{X: 1, Y: 2, Z: 3, W: 4}
	b := Vec{X: 1, Y: 3, Z: 3, W: 5}
	if !All(LessThanEqual(a, b)) {
		t.Error("expected a <= b component-wise")
	}
	if All(LessThan(a, b)) {
		t.Error("X and Z components are equal, LessThan should not hold for all")
	}
	if !Any(LessThan(a, b)) {
		t.Error("Y component is strictly less, Any should hold")
	}
}
