package ms2

import "testing"

const tol32 = 1e-5

func TestAddSub(t *testing.T) {
	a := Vec{X: 1, Y: -2}
	b := Vec{X: 3.5, Y: 7}
	got := Sub(Add(a, b), b)
	if !EqualElem(got, a, tol32) {
		t.Errorf("A+B-B != A: got %v want %v", got, a)
	}
}

func TestDot(t *testing.T) {
	u := Vec{X: 2, Y: -3}
	got := Dot(u, u)
	want := u.X*u.X + u.Y*u.Y
	if got != want {
		t.Errorf("dot(u,u) = %v, want %v", got, want)
	}
}

func TestMatIdentity(t *testing.T) {
	m := Mat2FromColumns(Vec{X: 1, Y: 2}, Vec{X: 3, Y: 4})
	got := MulMat2(m, IdentityMat2())
	if !EqualMat2(got, m, tol32) {
		t.Errorf("M*I != M: got %+v want %+v", got, m)
	}
}

func TestMulMatVec(t *testing.T) {
	m := Mat2FromColumns(Vec{X: 1, Y: 0}, Vec{X: 0, Y: 1})
	v := Vec{X: 5, Y: -2}
	got := MulMatVec(m, v)
	if !EqualElem(got, v, tol32) {
		t.Errorf("identity matrix did not preserve vector: got %v want %v", got, v)
	}
}

func TestComparisons(t *testing.T) {
	a := Vec{X: 1, Y: 2}
	b := Vec{X: 1, Y: 3}
	if !All(LessThanEqual(a, b)) {
		t.Error("expected a <= b component-wise")
	}
	if All(LessThan(a, b)) {
		t.Error("X components are equal, LessThan should not hold for all")
	}
	if !Any(LessThan(a, b)) {
		t.Error("Y component is strictly less, Any should hold")
	}
}

func TestCross(t *testing.T) {
	area := Cross(Vec{X: 1}, Vec{Y: 1})
	if area != 1 {
		t.Errorf("cross of unit axes should be 1, got %v", area)
	}
}
