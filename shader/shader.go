package shader

import "unsafe"

// Shader is implemented by a user-authored vertex or fragment program. It is
// the trait/interface-dispatch rendering of the source's static
// metaprogramming: rather than discover slots by reflecting over struct
// tags, a shader author declares them once, explicitly, in Slots.
//
// A shader holds its slot values behind pointer-typed fields. Bind re-points
// one of those fields before each invocation; Main then dereferences them,
// mirroring the reference-after-pointer-patch pattern described in the
// design notes.
type Shader interface {
	// Slots enumerates every uniform, attribute, varying and output slot
	// this shader declares. The result must be stable across calls.
	Slots() []Slot

	// Bind re-points the field backing the named slot of the given Kind to
	// ptr. The caller guarantees ptr references a value of the slot's
	// declared Type (or, for Attribute/Varying, the i'th element of an array
	// of such values — Bind is called once per invocation with a freshly
	// offset pointer).
	Bind(kind Kind, name string, ptr unsafe.Pointer)

	// Main runs the shader body against whatever slots are currently bound.
	Main()
}

// Vertex is a Shader that declares exactly one Output slot named
// "gl_Position" of Type Vec4, and may declare Attribute and Varying slots.
type Vertex interface {
	Shader
}

// Fragment is a Shader that declares exactly one Output slot named
// "gl_FragColor" of Type Vec4, and may declare Varying slots (read-only, fed
// by the rasterizer's perspective-correct interpolation).
type Fragment interface {
	Shader
}

// PositionSlot is the reserved name of a Vertex shader's clip-space output.
const PositionSlot = "gl_Position"

// FragColorSlot is the reserved name of a Fragment shader's color output.
const FragColorSlot = "gl_FragColor"
