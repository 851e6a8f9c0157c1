package raster

import (
	"unsafe"

	"github.com/soypat/swrast/math/ms2"
	"github.com/soypat/swrast/math/ms3"
	"github.com/soypat/swrast/math/ms4"
	"github.com/soypat/swrast/shader"
)

// stageVarying multiplies the varying staged at ptr by w in place. This is
// the pipeline's perspective-correct staging step (spec §4.4 step 4) for
// float, vec2, vec3 and vec4 varyings — the Go equivalent of the source's
// per-field sl::varying() helper, which relied on C++ template overloading
// to do the same thing for any vector shape. Matrix-typed varyings are not
// handled: stageVarying (and interpolate below) panics for them.
func stageVarying(typ shader.Type, ptr unsafe.Pointer, w float32) {
	switch typ {
	case shader.Float:
		v := (*float32)(ptr)
		*v *= w
	case shader.Vec2:
		v := (*ms2.Vec)(ptr)
		*v = ms2.Scale(w, *v)
	case shader.Vec3:
		v := (*ms3.Vec)(ptr)
		*v = ms3.Scale(w, *v)
	case shader.Vec4:
		v := (*ms4.Vec)(ptr)
		*v = ms4.Scale(w, *v)
	default:
		panic("raster: varying of type " + typ.String() + " cannot be perspective-staged")
	}
}

// interpolate computes b0*v0 + b1*v1 + b2*v2 for three varying values of the
// given type and writes the result to dst. This generalizes the source's
// sl::interpolate(), which used C++ template deduction to interpolate any
// vector shape the same way; Go dispatches on the MathLib Type instead.
func interpolate(dst unsafe.Pointer, typ shader.Type, b0, b1, b2 float32, p0, p1, p2 unsafe.Pointer) {
	switch typ {
	case shader.Float:
		a, b, c := *(*float32)(p0), *(*float32)(p1), *(*float32)(p2)
		*(*float32)(dst) = b0*a + b1*b + b2*c
	case shader.Vec2:
		a, b, c := *(*ms2.Vec)(p0), *(*ms2.Vec)(p1), *(*ms2.Vec)(p2)
		*(*ms2.Vec)(dst) = ms2.Add(ms2.Add(ms2.Scale(b0, a), ms2.Scale(b1, b)), ms2.Scale(b2, c))
	case shader.Vec3:
		a, b, c := *(*ms3.Vec)(p0), *(*ms3.Vec)(p1), *(*ms3.Vec)(p2)
		*(*ms3.Vec)(dst) = ms3.Add(ms3.Add(ms3.Scale(b0, a), ms3.Scale(b1, b)), ms3.Scale(b2, c))
	case shader.Vec4:
		a, b, c := *(*ms4.Vec)(p0), *(*ms4.Vec)(p1), *(*ms4.Vec)(p2)
		*(*ms4.Vec)(dst) = ms4.Add(ms4.Add(ms4.Scale(b0, a), ms4.Scale(b1, b)), ms4.Scale(b2, c))
	default:
		panic("raster: varying of type " + typ.String() + " cannot be interpolated")
	}
}
