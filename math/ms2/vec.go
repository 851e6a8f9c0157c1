// Package ms2 implements 2D vector and matrix math in the style of GLSL's
// vec2/mat2/bvec2, for use as shader attribute, uniform and varying storage.
package ms2

import (
	math "github.com/chewxy/math32"
	"github.com/soypat/swrast/math/ms1"
)

// Vec is a 2D vector. It is composed of 2 float32 fields for x and y values in that order.
type Vec struct {
	X, Y float32
}

// New returns the vector {x,y}.
func New(x, y float32) Vec { return Vec{X: x, Y: y} }

// Splat returns a vector with both components set to v, the scalar-broadcast constructor.
func Splat(v float32) Vec { return Vec{X: v, Y: v} }

// R returns the first component, the "r" (red) swizzle name for X.
func (a Vec) R() float32 { return a.X }

// G returns the second component, the "g" (green) swizzle name for Y.
func (a Vec) G() float32 { return a.Y }

// S returns the first component, the "s" swizzle name for X.
func (a Vec) S() float32 { return a.X }

// T returns the second component, the "t" swizzle name for Y.
func (a Vec) T() float32 { return a.Y }

// At returns the i'th component of a: 0 is X, 1 is Y. At panics for other values of i.
func (a Vec) At(i int) float32 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	}
	panic("ms2: index out of range")
}

// Max returns the maximum component of a.
func (a Vec) Max() float32 {
	return math.Max(a.X, a.Y)
}

// Min returns the minimum component of a.
func (a Vec) Min() float32 {
	return math.Min(a.X, a.Y)
}

// Array returns the ordered components of Vec in a 2 element array [a.x,a.y].
func (a Vec) Array() [2]float32 {
	return [2]float32{a.X, a.Y}
}

// AllNonzero returns true if all elements of a are nonzero.
func (a Vec) AllNonzero() bool {
	return a.X != 0 && a.Y != 0
}

// Add returns the vector sum of p and q.
func Add(p, q Vec) Vec {
	return Vec{
		X: p.X + q.X,
		Y: p.Y + q.Y,
	}
}

// AddScalar adds f to all of v's components and returns the result.
func AddScalar(f float32, v Vec) Vec {
	return Vec{
		X: v.X + f,
		Y: v.Y + f,
	}
}

// Sub returns the vector sum of p and -q.
func Sub(p, q Vec) Vec {
	return Vec{
		X: p.X - q.X,
		Y: p.Y - q.Y,
	}
}

// Scale returns the vector p scaled by f.
func Scale(f float32, p Vec) Vec {
	return Vec{
		X: f * p.X,
		Y: f * p.Y,
	}
}

// Cross returns the z-component of the 3D cross product of p and q
// extended to the z=0 plane. This is twice the signed area of the
// triangle (0,p,q).
func Cross(p, q Vec) float32 {
	return p.X*q.Y - p.Y*q.X
}

// Dot returns the dot product p·q.
func Dot(p, q Vec) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Norm returns the Euclidean norm of p, GLSL's "length".
//
//	|p| = sqrt(p_x^2 + p_y^2).
func Norm(p Vec) float32 {
	return math.Hypot(p.X, p.Y)
}

// Norm2 returns the Euclidean squared norm of p
//
//	|p|^2 = p_x^2 + p_y^2
func Norm2(p Vec) float32 {
	return p.X*p.X + p.Y*p.Y
}

// Unit returns the unit vector colinear to p, GLSL's "normalize".
// Unit returns {NaN,NaN} for the zero vector.
func Unit(p Vec) Vec {
	if p.X == 0 && p.Y == 0 {
		return Vec{X: math.NaN(), Y: math.NaN()}
	}
	return Scale(1/Norm(p), p)
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b Vec) Vec {
	return Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b Vec) Vec {
	return Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// AbsElem returns the vector with components set to their absolute value.
func AbsElem(a Vec) Vec {
	return Vec{X: math.Abs(a.X), Y: math.Abs(a.Y)}
}

// MulElem returns the Hadamard product between vectors a and b.
//
//	v = {a.X*b.X, a.Y*b.Y}
func MulElem(a, b Vec) Vec {
	return Vec{X: a.X * b.X, Y: a.Y * b.Y}
}

// DivElem returns the Hadamard product between vector a
// and the inverse components of vector b.
//
//	v = {a.X/b.X, a.Y/b.Y}
func DivElem(a, b Vec) Vec {
	return Vec{X: a.X / b.X, Y: a.Y / b.Y}
}

// EqualElem checks equality between vector elements to within a tolerance.
func EqualElem(a, b Vec, tol float32) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol
}

// RoundElem rounds the individual elements of a vector.
func RoundElem(a Vec) Vec {
	return Vec{X: math.Round(a.X), Y: math.Round(a.Y)}
}

// CeilElem returns a with Ceil applied to each component.
func CeilElem(a Vec) Vec {
	return Vec{X: math.Ceil(a.X), Y: math.Ceil(a.Y)}
}

// FloorElem returns a with Floor applied to each component.
func FloorElem(a Vec) Vec {
	return Vec{X: math.Floor(a.X), Y: math.Floor(a.Y)}
}

// FractElem returns the fractional part of each of a's components.
func FractElem(a Vec) Vec {
	return Vec{X: ms1.Fract(a.X), Y: ms1.Fract(a.Y)}
}

// ModElem returns x modulo y component-wise, GLSL's "mod".
func ModElem(x, y Vec) Vec {
	return Vec{X: ms1.Mod(x.X, y.X), Y: ms1.Mod(x.Y, y.Y)}
}

// SignElem returns sign function applied to each individual component of a. If a component is zero then zero is returned.
func SignElem(a Vec) Vec {
	return Vec{X: ms1.Sign(a.X), Y: ms1.Sign(a.Y)}
}

// RadiansElem converts each of a's components from degrees to radians.
func RadiansElem(a Vec) Vec {
	return Vec{X: ms1.Radians(a.X), Y: ms1.Radians(a.Y)}
}

// DegreesElem converts each of a's components from radians to degrees.
func DegreesElem(a Vec) Vec {
	return Vec{X: ms1.Degrees(a.X), Y: ms1.Degrees(a.Y)}
}

// SinElem returns sin(a) component-wise.
func SinElem(a Vec) Vec {
	return Vec{X: math.Sin(a.X), Y: math.Sin(a.Y)}
}

// CosElem returns cos(a) component-wise.
func CosElem(a Vec) Vec {
	return Vec{X: math.Cos(a.X), Y: math.Cos(a.Y)}
}

// TanElem returns tan(a) component-wise.
func TanElem(a Vec) Vec {
	return Vec{X: math.Tan(a.X), Y: math.Tan(a.Y)}
}

// AsinElem returns asin(a) component-wise.
func AsinElem(a Vec) Vec {
	return Vec{X: math.Asin(a.X), Y: math.Asin(a.Y)}
}

// AcosElem returns acos(a) component-wise.
func AcosElem(a Vec) Vec {
	return Vec{X: math.Acos(a.X), Y: math.Acos(a.Y)}
}

// AtanElem returns atan(a) component-wise.
func AtanElem(a Vec) Vec {
	return Vec{X: math.Atan(a.X), Y: math.Atan(a.Y)}
}

// Atan2Elem returns atan2(y,x) component-wise, GLSL's two-argument "atan".
func Atan2Elem(y, x Vec) Vec {
	return Vec{X: math.Atan2(y.X, x.X), Y: math.Atan2(y.Y, x.Y)}
}

// PowElem returns x**y component-wise.
func PowElem(x, y Vec) Vec {
	return Vec{X: math.Pow(x.X, y.X), Y: math.Pow(x.Y, y.Y)}
}

// ExpElem returns e**x component-wise.
func ExpElem(a Vec) Vec {
	return Vec{X: math.Exp(a.X), Y: math.Exp(a.Y)}
}

// LogElem returns the natural logarithm of a component-wise.
func LogElem(a Vec) Vec {
	return Vec{X: math.Log(a.X), Y: math.Log(a.Y)}
}

// Exp2Elem returns 2**x component-wise.
func Exp2Elem(a Vec) Vec {
	return Vec{X: math.Exp2(a.X), Y: math.Exp2(a.Y)}
}

// Log2Elem returns the base-2 logarithm of a component-wise.
func Log2Elem(a Vec) Vec {
	return Vec{X: math.Log2(a.X), Y: math.Log2(a.Y)}
}

// SqrtElem returns sqrt(a) component-wise.
func SqrtElem(a Vec) Vec {
	return Vec{X: math.Sqrt(a.X), Y: math.Sqrt(a.Y)}
}

// InverseSqrtElem returns 1/sqrt(a) component-wise, GLSL's "inversesqrt".
func InverseSqrtElem(a Vec) Vec {
	return Vec{X: ms1.InverseSqrt(a.X), Y: ms1.InverseSqrt(a.Y)}
}

// SincosElem returns (sin(a), cos(a)). Is more efficient than calling both SinElem and CosElem.
func SincosElem(a Vec) (s, c Vec) {
	s.X, c.X = math.Sincos(a.X)
	s.Y, c.Y = math.Sincos(a.Y)
	return s, c
}

// ClampElem returns v with its elements clamped to Min and Max's components.
func ClampElem(v, Min, Max Vec) Vec {
	return Vec{X: ms1.Clamp(v.X, Min.X, Max.X), Y: ms1.Clamp(v.Y, Min.Y, Max.Y)}
}

// InterpElem performs a linear interpolation between x and y's elements, mapping with a's values in interval [0,1].
// This function is also known as "mix" in GLSL.
func InterpElem(x, y, a Vec) Vec {
	return Vec{X: ms1.Interp(x.X, y.X, a.X), Y: ms1.Interp(x.Y, y.Y, a.Y)}
}

// SmoothStepElem performs element-wise smooth cubic hermite
// interpolation between 0 and 1 when e0 < x < e1.
func SmoothStepElem(e0, e1, x Vec) Vec {
	return Vec{X: ms1.SmoothStep(e0.X, e1.X, x.X), Y: ms1.SmoothStep(e0.Y, e1.Y, x.Y)}
}

// BVec is a 2D boolean vector, the result type of GLSL's component-wise comparisons.
type BVec struct {
	X, Y bool
}

// All returns true if all components of v are true, GLSL's "all".
func All(v BVec) bool { return v.X && v.Y }

// Any returns true if any component of v is true, GLSL's "any".
func Any(v BVec) bool { return v.X || v.Y }

// Not returns the component-wise logical negation of v, GLSL's "not".
func Not(v BVec) BVec { return BVec{X: !v.X, Y: !v.Y} }

// LessThan returns the component-wise a < b.
func LessThan(a, b Vec) BVec { return BVec{X: a.X < b.X, Y: a.Y < b.Y} }

// LessThanEqual returns the component-wise a <= b.
func LessThanEqual(a, b Vec) BVec { return BVec{X: a.X <= b.X, Y: a.Y <= b.Y} }

// GreaterThan returns the component-wise a > b.
func GreaterThan(a, b Vec) BVec { return BVec{X: a.X > b.X, Y: a.Y > b.Y} }

// GreaterThanEqual returns the component-wise a >= b.
func GreaterThanEqual(a, b Vec) BVec { return BVec{X: a.X >= b.X, Y: a.Y >= b.Y} }

// Equal returns the component-wise a == b.
func Equal(a, b Vec) BVec { return BVec{X: a.X == b.X, Y: a.Y == b.Y} }

// NotEqual returns the component-wise a != b.
func NotEqual(a, b Vec) BVec { return BVec{X: a.X != b.X, Y: a.Y != b.Y} }
