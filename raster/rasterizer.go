package raster

import (
	"reflect"
	"unsafe"

	"github.com/soypat/swrast/math/ms2"
	"github.com/soypat/swrast/math/ms4"
	"github.com/soypat/swrast/shader"
)

// tileSize is the coarse coverage-rejection block size of spec §4.6.
const tileSize = 4

// edge returns twice the signed area of triangle (a,b,c) in screen space:
// the z-component of the 3D cross product of (b-a) and (c-a).
func edge(a, b, c ms2.Vec) float32 {
	return ms2.Cross(ms2.Sub(b, a), ms2.Sub(c, a))
}

// rasterizeTriangle implements spec §4.6: a tiled, edge-function scan of the
// triangle at vertex positions i0, i1, i2 in p, writing covered pixels into c.
func (c *Context) rasterizeTriangle(p *shader.Program, i0, i1, i2 int) {
	positions := p.Positions()
	v0, v1, v2 := positions[i0], positions[i1], positions[i2]
	p0 := ms2.Vec{X: v0.X, Y: v0.Y}
	p1 := ms2.Vec{X: v1.X, Y: v1.Y}
	p2 := ms2.Vec{X: v2.X, Y: v2.Y}

	area := edge(p0, p1, p2)
	if area <= 0 {
		// Degenerate (area == 0) or clockwise-wound (no back-face rendering,
		// spec §4.6 and scenario S5) triangles never produce fragments.
		return
	}

	varyings := p.Varyings()
	frag := p.FragmentShader()

	// Per-pixel scratch storage for interpolated varyings, allocated once per
	// triangle and bound once: interpolate() overwrites its contents for
	// every covered pixel, frag.Main() reads whatever was written last.
	scratch := make(map[string]unsafe.Pointer, len(varyings))
	for _, v := range varyings {
		cell := reflect.New(v.Type.GoType())
		ptr := cell.UnsafePointer()
		scratch[v.Name] = ptr
		frag.Bind(shader.Varying, v.Name, ptr)
	}
	var fragColor ms4.Vec
	frag.Bind(shader.Output, shader.FragColorSlot, unsafe.Pointer(&fragColor))

	for ty := 0; ty < c.height; ty += tileSize {
		for tx := 0; tx < c.width; tx += tileSize {
			if tileRejected(p0, p1, p2, tx, ty, tileSize) {
				continue
			}
			maxY := min(ty+tileSize, c.height)
			maxX := min(tx+tileSize, c.width)
			for y := ty; y < maxY; y++ {
				for x := tx; x < maxX; x++ {
					c.shadePixel(p, varyings, frag, scratch, &fragColor, p0, p1, p2, v0, v1, v2, i0, i1, i2, area, x, y)
				}
			}
		}
	}
}

// tileRejected reports whether the 4x4 tile at (tx,ty) lies entirely outside
// at least one of the triangle's three edges (spec §4.6 step 1).
func tileRejected(p0, p1, p2 ms2.Vec, tx, ty, size int) bool {
	corners := [4]ms2.Vec{
		{X: float32(tx), Y: float32(ty)},
		{X: float32(tx + size), Y: float32(ty)},
		{X: float32(tx), Y: float32(ty + size)},
		{X: float32(tx + size), Y: float32(ty + size)},
	}
	edges := [3][2]ms2.Vec{{p1, p2}, {p2, p0}, {p0, p1}}
	for _, e := range edges {
		allOutside := true
		for _, corner := range corners {
			if edge(e[0], e[1], corner) >= 0 {
				allOutside = false
				break
			}
		}
		if allOutside {
			return true
		}
	}
	return false
}

// shadePixel tests pixel (x,y) for coverage and, if covered, interpolates
// varyings, runs the fragment shader and writes the result into the
// Context's byte buffer (spec §4.6 steps 2-4).
func (c *Context) shadePixel(
	p *shader.Program,
	varyings []shader.Slot,
	frag shader.Fragment,
	scratch map[string]unsafe.Pointer,
	fragColor *ms4.Vec,
	p0, p1, p2 ms2.Vec,
	v0, v1, v2 ms4.Vec,
	i0, i1, i2 int,
	area float32,
	x, y int,
) {
	pixel := ms2.Vec{X: float32(x) + 0.5, Y: float32(y) + 0.5}
	b0 := edge(p1, p2, pixel)
	b1 := edge(p2, p0, pixel)
	b2 := edge(p0, p1, pixel)
	if b0 <= 0 || b1 <= 0 || b2 <= 0 {
		return
	}
	b0 /= area
	b1 /= area
	b2 /= area

	fragCoordW := b0*v0.W + b1*v1.W + b2*v2.W

	// Perspective-correct interpolation: rescale the barycentrics by the
	// interpolated (pre-multiplied) w before interpolating varyings.
	pb0 := b0 / fragCoordW
	pb1 := b1 / fragCoordW
	pb2 := b2 / fragCoordW

	for _, v := range varyings {
		interpolate(scratch[v.Name], v.Type, pb0, pb1, pb2,
			p.StagePointer(v.Name, i0), p.StagePointer(v.Name, i1), p.StagePointer(v.Name, i2))
	}

	frag.Main()
	c.writePixel(x, y, *fragColor)
}

// toByte truncates a fragment color channel to a byte. Per spec §7, the
// reference behavior does not clamp: out-of-range values wrap via the
// int32->uint8 truncation rather than saturating.
func toByte(v float32) uint8 {
	return uint8(int32(v * 255))
}

// writePixel stores a shaded fragment into the byte buffer at the
// bottom-left-origin RGBA8 offset described in spec §3's Context layout.
func (c *Context) writePixel(x, y int, color ms4.Vec) {
	offset := ((c.height-1-y)*c.width + x) * 4
	c.buffer[offset+0] = toByte(color.X)
	c.buffer[offset+1] = toByte(color.Y)
	c.buffer[offset+2] = toByte(color.Z)
	c.buffer[offset+3] = toByte(color.W)
}
