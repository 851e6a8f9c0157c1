package ms3

import "testing"

const tol32 = 1e-5

func TestAddSub(t *testing.T) {
	a := Vec{X: 1, Y: -2, Z: 3}
	b := Vec{X: 3.5, Y: 7, Z: -1}
	got := Sub(Add(a, b), b)
	if !EqualElem(got, a, tol32) {
		t.Errorf("A+B-B != A: got %v want %v", got, a)
	}
}

func TestDot(t *testing.T) {
	u := Vec{X: 2, Y: -3, Z: 5}
	got := Dot(u, u)
	want := u.X*u.X + u.Y*u.Y + u.Z*u.Z
	if got != want {
		t.Errorf("dot(u,u) = %v, want %v", got, want)
	}
}

func TestCross(t *testing.T) {
	x := Vec{X: 1}
	y := Vec{Y: 1}
	got := Cross(x, y)
	want := Vec{Z: 1}
	if !EqualElem(got, want, tol32) {
		t.Errorf("x cross y = %v, want %v", got, want)
	}
	// Cross product is orthogonal to both operands.
	a := Vec{X: 1, Y: 2, Z: 3}
	b := Vec{X: -4, Y: 5, Z: 2}
	n := Cross(a, b)
	if Dot(n, a) > tol32 || Dot(n, b) > tol32 {
		t.Errorf("cross product not orthogonal to operands: n=%v", n)
	}
}

func TestMatIdentity(t *testing.T) {
	m := Mat3FromColumns(Vec{X: 1, Y: 2, Z: 3}, Vec{X: 4, Y: 5, Z: 6}, Vec{X: 7, Y: 8, Z: 9})
	got := MulMat3(m, IdentityMat3())
	if !EqualMat3(got, m, tol32) {
		t.Errorf("M*I != M: got %+v want %+v", got, m)
	}
}

func TestMulMatVec(t *testing.T) {
	m := IdentityMat3()
	v := Vec{X: 5, Y: -2, Z: 7}
	got := MulMatVec(m, v)
	if !EqualElem(got, v, tol32) {
		t.Errorf("identity matrix did not preserve vector: got %v want %v", got, v)
	}
}

func TestComparisons(t *testing.T) {
	a := Vec{X: 1, Y: 2, Z: 3}
	b := Vec{X: 1, Y: 3, Z: 3}
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

func TestInverse(t *testing.T) {
	m := Mat3FromColumns(Vec{X: 2, Y: 0, Z: 0}, Vec{X: 0, Y: 3, Z: 0}, Vec{X: 0, Y: 0, Z: 4})
	inv := m.Inverse()
	got := MulMat3(m, inv)
	if !EqualMat3(got, IdentityMat3(), tol32) {
		t.Errorf("M*M^-1 != I: got %+v", got)
	}
}
