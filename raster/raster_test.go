package raster

import (
	"testing"
	"unsafe"

	"github.com/soypat/swrast/math/ms2"
	"github.com/soypat/swrast/math/ms3"
	"github.com/soypat/swrast/math/ms4"
	"github.com/soypat/swrast/shader"
)

// passVertex forwards a clip-space position and an RGB color straight
// through, used by every scenario below (the scenarios exercise the
// rasterizer and pipeline, not shader authoring).
type passVertex struct {
	clip       *ms4.Vec
	color      *ms3.Vec
	outColor   *ms3.Vec
	glPosition *ms4.Vec
}

func (v *passVertex) Slots() []shader.Slot {
	return []shader.Slot{
		{Name: "Clip", Kind: shader.Attribute, Type: shader.Vec4},
		{Name: "Color", Kind: shader.Attribute, Type: shader.Vec3},
		{Name: "Color", Kind: shader.Varying, Type: shader.Vec3},
		{Name: shader.PositionSlot, Kind: shader.Output, Type: shader.Vec4},
	}
}

func (v *passVertex) Bind(kind shader.Kind, name string, ptr unsafe.Pointer) {
	switch {
	case kind == shader.Attribute && name == "Clip":
		v.clip = (*ms4.Vec)(ptr)
	case kind == shader.Attribute && name == "Color":
		v.color = (*ms3.Vec)(ptr)
	case kind == shader.Varying && name == "Color":
		v.outColor = (*ms3.Vec)(ptr)
	case kind == shader.Output && name == shader.PositionSlot:
		v.glPosition = (*ms4.Vec)(ptr)
	}
}

func (v *passVertex) Main() {
	*v.glPosition = *v.clip
	*v.outColor = *v.color
}

type passFragment struct {
	color     *ms3.Vec
	fragColor *ms4.Vec
}

func (f *passFragment) Slots() []shader.Slot {
	return []shader.Slot{
		{Name: "Color", Kind: shader.Varying, Type: shader.Vec3},
		{Name: shader.FragColorSlot, Kind: shader.Output, Type: shader.Vec4},
	}
}

func (f *passFragment) Bind(kind shader.Kind, name string, ptr unsafe.Pointer) {
	switch {
	case kind == shader.Varying && name == "Color":
		f.color = (*ms3.Vec)(ptr)
	case kind == shader.Output && name == shader.FragColorSlot:
		f.fragColor = (*ms4.Vec)(ptr)
	}
}

func (f *passFragment) Main() {
	*f.fragColor = ms4.Vec{X: f.color.X, Y: f.color.Y, Z: f.color.Z, W: 1}
}

func newPassProgram(t *testing.T, clip []ms4.Vec, colors []ms3.Vec) *shader.Program {
	t.Helper()
	p, err := shader.NewProgram(&passVertex{}, &passFragment{}, len(clip))
	if err != nil {
		t.Fatalf("link: %v", err)
	}
	if err := shader.BindAttribute(p, "Clip", clip); err != nil {
		t.Fatalf("bind Clip: %v", err)
	}
	if err := shader.BindAttribute(p, "Color", colors); err != nil {
		t.Fatalf("bind Color: %v", err)
	}
	return p
}

func pixelAt(buf []byte, width, height, x, y int) [4]byte {
	offset := ((height - 1 - y) * width + x) * 4
	return [4]byte{buf[offset], buf[offset+1], buf[offset+2], buf[offset+3]}
}

// S1: a small triangle covering the center of a 4x4 framebuffer, one vertex
// per primary color, shaded with perspective-correct barycentric blending.
func TestScenarioSmallTriangleRGBCorners(t *testing.T) {
	const w, h = 4, 4
	buf := make([]byte, w*h*4)
	c := NewContext(w, h, buf)

	clip := []ms4.Vec{
		{X: -1, Y: -1, Z: 0, W: 1},
		{X: 1, Y: -1, Z: 0, W: 1},
		{X: 0, Y: 1, Z: 0, W: 1},
	}
	colors := []ms3.Vec{{X: 1}, {Y: 1}, {Z: 1}}
	p := newPassProgram(t, clip, colors)
	defer p.Close()
	c.Draw(p, Triangles)

	covered := false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := pixelAt(buf, w, h, x, y)
			if px[0] != 0 || px[1] != 0 || px[2] != 0 {
				covered = true
			}
		}
	}
	if !covered {
		t.Fatal("expected at least one covered pixel")
	}
}

// S2: a triangle entirely outside the framebuffer leaves the buffer
// untouched.
func TestScenarioOffscreenTriangleNoWrites(t *testing.T) {
	const w, h = 4, 4
	buf := make([]byte, w*h*4)
	for i := range buf {
		buf[i] = 0x42
	}
	c := NewContext(w, h, buf)

	clip := []ms4.Vec{
		{X: 10, Y: 10, Z: 0, W: 1},
		{X: 11, Y: 10, Z: 0, W: 1},
		{X: 10, Y: 11, Z: 0, W: 1},
	}
	colors := []ms3.Vec{{X: 1}, {Y: 1}, {Z: 1}}
	p := newPassProgram(t, clip, colors)
	defer p.Close()
	c.Draw(p, Triangles)

	for i, b := range buf {
		if b != 0x42 {
			t.Fatalf("buffer modified at byte %d though triangle was offscreen", i)
		}
	}
}

// S4: a degenerate (zero-area) triangle produces no fragments.
func TestScenarioDegenerateTriangleNoFragments(t *testing.T) {
	const w, h = 4, 4
	buf := make([]byte, w*h*4)
	c := NewContext(w, h, buf)

	clip := []ms4.Vec{
		{X: -1, Y: 0, Z: 0, W: 1},
		{X: 0, Y: 0, Z: 0, W: 1},
		{X: 1, Y: 0, Z: 0, W: 1},
	}
	colors := []ms3.Vec{{X: 1}, {Y: 1}, {Z: 1}}
	p := newPassProgram(t, clip, colors)
	defer p.Close()
	c.Draw(p, Triangles)

	for _, b := range buf {
		if b != 0 {
			t.Fatal("degenerate triangle must not rasterize any pixel")
		}
	}
}

// S5: a negative-area (clockwise, back-facing) triangle is also fully
// culled — there is no back-face toggle.
func TestScenarioBackFaceTriangleCulled(t *testing.T) {
	const w, h = 4, 4
	buf := make([]byte, w*h*4)
	c := NewContext(w, h, buf)

	// Same triangle as S1 but with vertex order reversed (clockwise in
	// screen space once the viewport transform is applied).
	clip := []ms4.Vec{
		{X: 0, Y: 1, Z: 0, W: 1},
		{X: 1, Y: -1, Z: 0, W: 1},
		{X: -1, Y: -1, Z: 0, W: 1},
	}
	colors := []ms3.Vec{{Z: 1}, {Y: 1}, {X: 1}}
	p := newPassProgram(t, clip, colors)
	defer p.Close()
	c.Draw(p, Triangles)

	for _, b := range buf {
		if b != 0 {
			t.Fatal("back-facing triangle must not rasterize any pixel")
		}
	}
}

// S6: two overlapping triangles drawn back to front leave the second draw's
// color as the final pixel value (no depth buffer, last writer wins).
func TestScenarioOverlappingDrawsLastWriterWins(t *testing.T) {
	const w, h = 4, 4
	buf := make([]byte, w*h*4)
	c := NewContext(w, h, buf)

	square := []ms4.Vec{
		{X: -1, Y: -1, Z: 0, W: 1},
		{X: 1, Y: -1, Z: 0, W: 1},
		{X: 1, Y: 1, Z: 0, W: 1},
		{X: -1, Y: 1, Z: 0, W: 1},
	}
	red := []ms3.Vec{{X: 1}, {X: 1}, {X: 1}, {X: 1}}
	green := []ms3.Vec{{Y: 1}, {Y: 1}, {Y: 1}, {Y: 1}}

	idx := []int{0, 1, 2, 0, 2, 3}
	p1 := newPassProgram(t, square, red)
	defer p1.Close()
	c.DrawIndexed(p1, idx, Triangles)
	p2 := newPassProgram(t, square, green)
	defer p2.Close()
	c.DrawIndexed(p2, idx, Triangles)

	// Pixel (1,2) samples (1.5,2.5), inside triangle (0,2,3) of both draws.
	// The center pixel (2,2) samples (2.5,2.5), which lies on the shared
	// diagonal and is covered by neither triangle under the strict edge test.
	px := pixelAt(buf, w, h, 1, 2)
	if px[0] != 0 || px[1] == 0 {
		t.Fatalf("expected final draw's green to win, got %v", px)
	}
}

// TestScenarioPerspectiveCorrectInterpolation exercises the "hard part" of
// the pipeline: varyings must be interpolated perspective-correctly, not
// averaged affinely in screen space. The triangle below has non-uniform
// per-vertex clip-space w (1, 2, 1), chosen so that the screen-space
// footprint is a right triangle (corners at the framebuffer origin and on
// the two far edges) but the RGB blend at a
// fixed interior pixel is provably different from what a naive affine
// average of the same barycentric weights would produce.
//
// Clip-space vertices, with w1 doubled relative to w0 and w2:
//
//	v0 = (-1, -1, 0, 1)   v1 = (2, -2, 0, 2)   v2 = (-1, 1, 0, 1)
//
// Dividing by w gives NDC corners (-1,-1), (1,-1), (-1,1), but pos.W after the
// divide (1/w) is 1, 0.5, 1 respectively, so the perspective-correction
// term in shadePixel/interpolate is nontrivial.
//
// On a 4x4 framebuffer this maps to screen-space corners p0=(0,0),
// p1=(4,0), p2=(0,4), triangle area 16. At pixel (1,1) (sample point
// (1.5,1.5)) the unnormalized edge weights are b0=4, b1=6, b2=6, so the
// normalized barycentrics are b0=1/4, b1=3/8, b2=3/8.
//
// Perspective-correct color = sum(b_i * (1/w_i) * color_i) / sum(b_i * (1/w_i)):
//
//	fragCoordW = 1/4*1 + 3/8*1/2 + 3/8*1 = 13/16
//	R = (1/4*1*1)       / (13/16) = 4/13 ≈ 0.30769  -> byte 78
//	G = (3/8*1/2*1)     / (13/16) = 3/13 ≈ 0.23077  -> byte 58
//	B = (3/8*1*1)       / (13/16) = 6/13 ≈ 0.46154  -> byte 117
//
// A naive affine average (ignoring w entirely) would instead give
// R=1/4 (byte 63), G=3/8 (byte 95), B=3/8 (byte 95) — visibly wrong.
func TestScenarioPerspectiveCorrectInterpolation(t *testing.T) {
	const w, h = 4, 4
	buf := make([]byte, w*h*4)
	c := NewContext(w, h, buf)

	clip := []ms4.Vec{
		{X: -1, Y: -1, Z: 0, W: 1},
		{X: 2, Y: -2, Z: 0, W: 2},
		{X: -1, Y: 1, Z: 0, W: 1},
	}
	colors := []ms3.Vec{{X: 1}, {Y: 1}, {Z: 1}}
	p := newPassProgram(t, clip, colors)
	defer p.Close()
	c.Draw(p, Triangles)

	got := pixelAt(buf, w, h, 1, 1)
	want := [4]byte{78, 58, 117, 255}
	if got != want {
		t.Fatalf("perspective-correct blend at (1,1): got %v, want %v (naive affine average would give {63,95,95,255})", got, want)
	}
}

func TestEdgeSign(t *testing.T) {
	a := ms2.Vec{X: 0, Y: 0}
	b := ms2.Vec{X: 1, Y: 0}
	c := ms2.Vec{X: 0, Y: 1}
	if edge(a, b, c) <= 0 {
		t.Fatal("counter-clockwise triangle must have positive edge/area")
	}
	if edge(a, c, b) >= 0 {
		t.Fatal("reversing winding must flip the sign")
	}
}

func TestTileRejection(t *testing.T) {
	p0 := ms2.Vec{X: 0, Y: 0}
	p1 := ms2.Vec{X: 2, Y: 0}
	p2 := ms2.Vec{X: 0, Y: 2}
	if !tileRejected(p0, p1, p2, 100, 100, tileSize) {
		t.Fatal("tile far from triangle must be rejected")
	}
	if tileRejected(p0, p1, p2, 0, 0, tileSize) {
		t.Fatal("tile overlapping triangle must not be rejected")
	}
}
