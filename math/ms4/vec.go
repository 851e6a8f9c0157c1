package ms4

import (
	math "github.com/chewxy/math32"
	"github.com/soypat/swrast/math/ms1"
)

// Vec is a 4D vector. It is composed of 4 float32 fields for x, y, z and w
// values in that order. It is most commonly used to hold homogeneous
// clip-space coordinates (gl_Position) or RGBA color (gl_FragColor).
type Vec struct {
	X, Y, Z, W float32
}

// New returns the vector {x,y,z,w}.
func New(x, y, z, w float32) Vec { return Vec{X: x, Y: y, Z: z, W: w} }

// Splat returns a vector with all components set to v, the scalar-broadcast constructor.
func Splat(v float32) Vec { return Vec{X: v, Y: v, Z: v, W: v} }

// R returns the first component, the "r" (red) swizzle name for X.
func (a Vec) R() float32 { return a.X }

// G returns the second component, the "g" (green) swizzle name for Y.
func (a Vec) G() float32 { return a.Y }

// B returns the third component, the "b" (blue) swizzle name for Z.
func (a Vec) B() float32 { return a.Z }

// A returns the fourth component, the "a" (alpha) swizzle name for W.
func (a Vec) A() float32 { return a.W }

// S returns the first component, the "s" swizzle name for X.
func (a Vec) S() float32 { return a.X }

// T returns the second component, the "t" swizzle name for Y.
func (a Vec) T() float32 { return a.Y }

// P returns the third component, the "p" swizzle name for Z.
func (a Vec) P() float32 { return a.Z }

// Q returns the fourth component, the "q" swizzle name for W.
func (a Vec) Q() float32 { return a.W }

// At returns the i'th component of a: 0 is X, 1 is Y, 2 is Z, 3 is W. At panics for other values of i.
func (a Vec) At(i int) float32 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	case 3:
		return a.W
	}
	panic("ms4: index out of range")
}

// XYZ drops the W component and returns the X, Y and Z components as three scalars.
func (a Vec) XYZ() (x, y, z float32) { return a.X, a.Y, a.Z }

// Array returns the ordered components of Vec in a 4 element array [a.x,a.y,a.z,a.w].
func (a Vec) Array() [4]float32 {
	return [4]float32{a.X, a.Y, a.Z, a.W}
}

// Add returns the vector sum of p and q.
func Add(p, q Vec) Vec {
	return Vec{
		X: p.X + q.X,
		Y: p.Y + q.Y,
		Z: p.Z + q.Z,
		W: p.W + q.W,
	}
}

// AddScalar adds f to all of v's components and returns the result.
func AddScalar(f float32, v Vec) Vec {
	return Vec{
		X: v.X + f,
		Y: v.Y + f,
		Z: v.Z + f,
		W: v.W + f,
	}
}

// Sub returns the vector sum of p and -q.
func Sub(p, q Vec) Vec {
	return Vec{
		X: p.X - q.X,
		Y: p.Y - q.Y,
		Z: p.Z - q.Z,
		W: p.W - q.W,
	}
}

// Scale returns the vector p scaled by f.
func Scale(f float32, p Vec) Vec {
	return Vec{
		X: f * p.X,
		Y: f * p.Y,
		Z: f * p.Z,
		W: f * p.W,
	}
}

// Dot returns the dot product p·q.
func Dot(p, q Vec) float32 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z + p.W*q.W
}

// Norm returns the Euclidean norm of p, GLSL's "length".
func Norm(p Vec) float32 {
	return math.Sqrt(Norm2(p))
}

// Norm2 returns the Euclidean squared norm of p.
func Norm2(p Vec) float32 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z + p.W*p.W
}

// Unit returns the unit vector colinear to p, GLSL's "normalize".
// Unit returns {NaN,NaN,NaN,NaN} for the zero vector.
func Unit(p Vec) Vec {
	if p.X == 0 && p.Y == 0 && p.Z == 0 && p.W == 0 {
		nan := math.NaN()
		return Vec{X: nan, Y: nan, Z: nan, W: nan}
	}
	return Scale(1/Norm(p), p)
}

// PerspectiveDivide returns the Euclidean 3D point obtained by dividing p's
// X, Y and Z components by its W component, the operation the pipeline
// performs on gl_Position after the vertex shader runs.
func PerspectiveDivide(p Vec) (x, y, z float32) {
	invW := 1 / p.W
	return p.X * invW, p.Y * invW, p.Z * invW
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b Vec) Vec {
	return Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z), W: math.Min(a.W, b.W)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b Vec) Vec {
	return Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z), W: math.Max(a.W, b.W)}
}

// AbsElem returns the vector with components set to their absolute value.
func AbsElem(a Vec) Vec {
	return Vec{X: math.Abs(a.X), Y: math.Abs(a.Y), Z: math.Abs(a.Z), W: math.Abs(a.W)}
}

// MulElem returns the Hadamard product between vectors a and b.
func MulElem(a, b Vec) Vec {
	return Vec{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z, W: a.W * b.W}
}

// DivElem returns the Hadamard product between vector a
// and the inverse components of vector b.
func DivElem(a, b Vec) Vec {
	return Vec{X: a.X / b.X, Y: a.Y / b.Y, Z: a.Z / b.Z, W: a.W / b.W}
}

// EqualElem checks equality between vector elements to within a tolerance.
func EqualElem(a, b Vec, tol float32) bool {
	return ms1.EqualWithinAbs(a.X, b.X, tol) &&
		ms1.EqualWithinAbs(a.Y, b.Y, tol) &&
		ms1.EqualWithinAbs(a.Z, b.Z, tol) &&
		ms1.EqualWithinAbs(a.W, b.W, tol)
}

// RoundElem rounds the individual elements of a vector.
func RoundElem(a Vec) Vec {
	return Vec{X: math.Round(a.X), Y: math.Round(a.Y), Z: math.Round(a.Z), W: math.Round(a.W)}
}

// CeilElem returns a with Ceil applied to each component.
func CeilElem(a Vec) Vec {
	return Vec{X: math.Ceil(a.X), Y: math.Ceil(a.Y), Z: math.Ceil(a.Z), W: math.Ceil(a.W)}
}

// FloorElem returns a with Floor applied to each component.
func FloorElem(a Vec) Vec {
	return Vec{X: math.Floor(a.X), Y: math.Floor(a.Y), Z: math.Floor(a.Z), W: math.Floor(a.W)}
}

// FractElem returns the fractional part of each of a's components.
func FractElem(a Vec) Vec {
	return Vec{X: ms1.Fract(a.X), Y: ms1.Fract(a.Y), Z: ms1.Fract(a.Z), W: ms1.Fract(a.W)}
}

// ModElem returns x modulo y component-wise, GLSL's "mod".
func ModElem(x, y Vec) Vec {
	return Vec{X: ms1.Mod(x.X, y.X), Y: ms1.Mod(x.Y, y.Y), Z: ms1.Mod(x.Z, y.Z), W: ms1.Mod(x.W, y.W)}
}

// SignElem returns sign function applied to each individual component of a. If a component is zero then zero is returned.
func SignElem(a Vec) Vec {
	return Vec{X: ms1.Sign(a.X), Y: ms1.Sign(a.Y), Z: ms1.Sign(a.Z), W: ms1.Sign(a.W)}
}

// PowElem returns x**y component-wise.
func PowElem(x, y Vec) Vec {
	return Vec{X: math.Pow(x.X, y.X), Y: math.Pow(x.Y, y.Y), Z: math.Pow(x.Z, y.Z), W: math.Pow(x.W, y.W)}
}

// SqrtElem returns sqrt(a) component-wise.
func SqrtElem(a Vec) Vec {
	return Vec{X: math.Sqrt(a.X), Y: math.Sqrt(a.Y), Z: math.Sqrt(a.Z), W: math.Sqrt(a.W)}
}

// InverseSqrtElem returns 1/sqrt(a) component-wise, GLSL's "inversesqrt".
func InverseSqrtElem(a Vec) Vec {
	return Vec{X: ms1.InverseSqrt(a.X), Y: ms1.InverseSqrt(a.Y), Z: ms1.InverseSqrt(a.Z), W: ms1.InverseSqrt(a.W)}
}

// ClampElem returns v with its elements clamped to Min and Max's components.
func ClampElem(v, Min, Max Vec) Vec {
	return Vec{
		X: ms1.Clamp(v.X, Min.X, Max.X),
		Y: ms1.Clamp(v.Y, Min.Y, Max.Y),
		Z: ms1.Clamp(v.Z, Min.Z, Max.Z),
		W: ms1.Clamp(v.W, Min.W, Max.W),
	}
}

// InterpElem performs a linear interpolation between x and y's elements, mapping with a's values in interval [0,1].
// This function is also known as "mix" in GLSL.
func InterpElem(x, y, a Vec) Vec {
	return Vec{
		X: ms1.Interp(x.X, y.X, a.X),
		Y: ms1.Interp(x.Y, y.Y, a.Y),
		Z: ms1.Interp(x.Z, y.Z, a.Z),
		W: ms1.Interp(x.W, y.W, a.W),
	}
}

// RadiansElem converts each of a's components from degrees to radians.
func RadiansElem(a Vec) Vec {
	return Vec{X: ms1.Radians(a.X), Y: ms1.Radians(a.Y), Z: ms1.Radians(a.Z), W: ms1.Radians(a.W)}
}

// DegreesElem converts each of a's components from radians to degrees.
func DegreesElem(a Vec) Vec {
	return Vec{X: ms1.Degrees(a.X), Y: ms1.Degrees(a.Y), Z: ms1.Degrees(a.Z), W: ms1.Degrees(a.W)}
}

// SinElem returns sin(a) component-wise.
func SinElem(a Vec) Vec {
	return Vec{X: math.Sin(a.X), Y: math.Sin(a.Y), Z: math.Sin(a.Z), W: math.Sin(a.W)}
}

// CosElem returns cos(a) component-wise.
func CosElem(a Vec) Vec {
	return Vec{X: math.Cos(a.X), Y: math.Cos(a.Y), Z: math.Cos(a.Z), W: math.Cos(a.W)}
}

// TanElem returns tan(a) component-wise.
func TanElem(a Vec) Vec {
	return Vec{X: math.Tan(a.X), Y: math.Tan(a.Y), Z: math.Tan(a.Z), W: math.Tan(a.W)}
}

// AsinElem returns asin(a) component-wise.
func AsinElem(a Vec) Vec {
	return Vec{X: math.Asin(a.X), Y: math.Asin(a.Y), Z: math.Asin(a.Z), W: math.Asin(a.W)}
}

// AcosElem returns acos(a) component-wise.
func AcosElem(a Vec) Vec {
	return Vec{X: math.Acos(a.X), Y: math.Acos(a.Y), Z: math.Acos(a.Z), W: math.Acos(a.W)}
}

// AtanElem returns atan(a) component-wise.
func AtanElem(a Vec) Vec {
	return Vec{X: math.Atan(a.X), Y: math.Atan(a.Y), Z: math.Atan(a.Z), W: math.Atan(a.W)}
}

// Atan2Elem returns atan2(y,x) component-wise, GLSL's two-argument "atan".
func Atan2Elem(y, x Vec) Vec {
	return Vec{X: math.Atan2(y.X, x.X), Y: math.Atan2(y.Y, x.Y), Z: math.Atan2(y.Z, x.Z), W: math.Atan2(y.W, x.W)}
}

// ExpElem returns e**x component-wise.
func ExpElem(a Vec) Vec {
	return Vec{X: math.Exp(a.X), Y: math.Exp(a.Y), Z: math.Exp(a.Z), W: math.Exp(a.W)}
}

// LogElem returns the natural logarithm of a component-wise.
func LogElem(a Vec) Vec {
	return Vec{X: math.Log(a.X), Y: math.Log(a.Y), Z: math.Log(a.Z), W: math.Log(a.W)}
}

// Exp2Elem returns 2**x component-wise.
func Exp2Elem(a Vec) Vec {
	return Vec{X: math.Exp2(a.X), Y: math.Exp2(a.Y), Z: math.Exp2(a.Z), W: math.Exp2(a.W)}
}

// Log2Elem returns the base-2 logarithm of a component-wise.
func Log2Elem(a Vec) Vec {
	return Vec{X: math.Log2(a.X), Y: math.Log2(a.Y), Z: math.Log2(a.Z), W: math.Log2(a.W)}
}

// SincosElem returns (sin(a), cos(a)). Is more efficient than calling both SinElem and CosElem.
func SincosElem(a Vec) (s, c Vec) {
	s.X, c.X = math.Sincos(a.X)
	s.Y, c.Y = math.Sincos(a.Y)
	s.Z, c.Z = math.Sincos(a.Z)
	s.W, c.W = math.Sincos(a.W)
	return s, c
}

// SmoothStepElem performs element-wise smooth cubic hermite
// interpolation between 0 and 1 when e0 < x < e1.
func SmoothStepElem(e0, e1, x Vec) Vec {
	return Vec{
		X: ms1.SmoothStep(e0.X, e1.X, x.X),
		Y: ms1.SmoothStep(e0.Y, e1.Y, x.Y),
		Z: ms1.SmoothStep(e0.Z, e1.Z, x.Z),
		W: ms1.SmoothStep(e0.W, e1.W, x.W),
	}
}

// BVec is a 4D boolean vector, the result type of GLSL's component-wise comparisons.
type BVec struct {
	X, Y, Z, W bool
}

// All returns true if all components of v are true, GLSL's "all".
func All(v BVec) bool { return v.X && v.Y && v.Z && v.W }

// Any returns true if any component of v is true, GLSL's "any".
func Any(v BVec) bool { return v.X || v.Y || v.Z || v.W }

// Not returns the component-wise logical negation of v, GLSL's "not".
func Not(v BVec) BVec { return BVec{X: !v.X, Y: !v.Y, Z: !v.Z, W: !v.W} }

// LessThan returns the component-wise a < b.
func LessThan(a, b Vec) BVec {
	return BVec{X: a.X < b.X, Y: a.Y < b.Y, Z: a.Z < b.Z, W: a.W < b.W}
}

// LessThanEqual returns the component-wise a <= b.
func LessThanEqual(a, b Vec) BVec {
	return BVec{X: a.X <= b.X, Y: a.Y <= b.Y, Z: a.Z <= b.Z, W: a.W <= b.W}
}

// GreaterThan returns the component-wise a > b.
func GreaterThan(a, b Vec) BVec {
	return BVec{X: a.X > b.X, Y: a.Y > b.Y, Z: a.Z > b.Z, W: a.W > b.W}
}

// GreaterThanEqual returns the component-wise a >= b.
func GreaterThanEqual(a, b Vec) BVec {
	return BVec{X: a.X >= b.X, Y: a.Y >= b.Y, Z: a.Z >= b.Z, W: a.W >= b.W}
}

// Equal returns the component-wise a == b.
func Equal(a, b Vec) BVec {
	return BVec{X: a.X == b.X, Y: a.Y == b.Y, Z: a.Z == b.Z, W: a.W == b.W}
}

// NotEqual returns the component-wise a != b.
func NotEqual(a, b Vec) BVec {
	return BVec{X: a.X != b.X, Y: a.Y != b.Y, Z: a.Z != b.Z, W: a.W != b.W}
}
