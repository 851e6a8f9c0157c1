// Package ms1 implements basic scalar math used by the sibling ms2/ms3/ms4
// packages. Functions in this package have their OpenGL Shading Language
// equivalent, which is usually of the same name.
package ms1

import (
	math "github.com/chewxy/math32"
)

// Sign returns -1, 0, or 1 for negative, zero or positive x argument, respectively, just like GLSL's "sign" function.
func Sign(x float32) float32 {
	if x == 0 {
		return 0
	}
	return math.Copysign(1, x)
}

// Clamp returns value v clamped between Min and Max.
func Clamp(v, Min, Max float32) float32 {
	return math.Min(Max, math.Max(v, Min))
}

// Interp performs the linear interpolation between x and y, mapping with a in interval [0,1].
// This function is known as "mix" in GLSL.
func Interp(x, y, a float32) float32 {
	return x*(1-a) + y*a
}

// SmoothStep performs smooth cubic hermite interpolation between 0 and 1 when edge0 < x < edge1.
func SmoothStep(edge0, edge1, x float32) float32 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// EqualWithinAbs checks if a and b are within tol of eachother.
func EqualWithinAbs(a, b, tol float32) bool {
	return math.Abs(a-b) <= tol
}

// Fract returns the fractional part of x, x-floor(x). Matches GLSL's "fract".
func Fract(x float32) float32 {
	return x - math.Floor(x)
}

// Mod returns x modulo y in the GLSL sense: x - y*floor(x/y).
func Mod(x, y float32) float32 {
	return x - y*math.Floor(x/y)
}

// Radians converts x from degrees to radians.
func Radians(x float32) float32 {
	return x * math.Pi / 180
}

// Degrees converts x from radians to degrees.
func Degrees(x float32) float32 {
	return x / math.Pi * 180
}

// InverseSqrt returns 1/sqrt(x), GLSL's "inversesqrt".
func InverseSqrt(x float32) float32 {
	return 1 / math.Sqrt(x)
}
