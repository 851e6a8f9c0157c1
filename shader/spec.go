// Package shader declares the binding contract between user-authored vertex
// and fragment shaders and the rest of the rasterizer. It mirrors a small
// slice of the GLSL execution model: named uniform, attribute and varying
// slots plus the gl_Position/gl_FragColor outputs.
package shader

import (
	"fmt"
	"reflect"

	"github.com/soypat/swrast/math/ms2"
	"github.com/soypat/swrast/math/ms3"
	"github.com/soypat/swrast/math/ms4"
)

// Kind identifies the role a Slot plays in a shader invocation.
type Kind uint8

const (
	// Uniform slots carry one value per draw call, shared by every invocation.
	Uniform Kind = iota
	// Attribute slots carry one value per input vertex. Vertex shaders only.
	Attribute
	// Varying slots are written once per vertex by the vertex shader and
	// read once per fragment, perspective-interpolated, by the fragment shader.
	Varying
	// Output identifies the shader's single required output: gl_Position for
	// a Vertex shader, gl_FragColor for a Fragment shader.
	Output
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Uniform:
		return "uniform"
	case Attribute:
		return "attribute"
	case Varying:
		return "varying"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Type identifies the MathLib type of a Slot's value. It is the reflection-free
// handle shaders and the linker use to compare and allocate slot storage.
type Type uint8

const (
	Float Type = iota
	Vec2
	Vec3
	Vec4
	Mat2
	Mat3
	Mat4
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case Float:
		return "float"
	case Vec2:
		return "vec2"
	case Vec3:
		return "vec3"
	case Vec4:
		return "vec4"
	case Mat2:
		return "mat2"
	case Mat3:
		return "mat3"
	case Mat4:
		return "mat4"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// goType holds the concrete Go representation backing each Type, used to
// allocate type-erased per-varying staging slices with reflect.MakeSlice.
var goType = [...]reflect.Type{
	Float: reflect.TypeOf(float32(0)),
	Vec2:  reflect.TypeOf(ms2.Vec{}),
	Vec3:  reflect.TypeOf(ms3.Vec{}),
	Vec4:  reflect.TypeOf(ms4.Vec{}),
	Mat2:  reflect.TypeOf(ms2.Mat2{}),
	Mat3:  reflect.TypeOf(ms3.Mat3{}),
	Mat4:  reflect.TypeOf(ms4.Mat4{}),
}

// GoType returns the reflect.Type backing values of type t.
func (t Type) GoType() reflect.Type {
	if int(t) >= len(goType) {
		panic("shader: invalid Type")
	}
	return goType[t]
}

// TypeOf returns the Type corresponding to Go type T, and whether T is a
// recognized MathLib type.
func TypeOf[T any]() (Type, bool) {
	want := reflect.TypeOf((*T)(nil)).Elem()
	for t, got := range goType {
		if got == want {
			return Type(t), true
		}
	}
	return 0, false
}

// Slot is a named binding point on a shader: a Kind, a declared Type, and a
// name unique among slots of the same Kind within a single shader.
type Slot struct {
	Name string
	Kind Kind
	Type Type
}
