// Package raster implements the PipelineDriver, TriangleRasterizer and
// PrimitiveAssemblers components: a synchronous, single-threaded CPU
// rasterizer driven by a linked shader.Program.
package raster

import "github.com/soypat/swrast/shader"

// Context is a draw surface: a fixed-size RGBA8 byte buffer with a
// bottom-left origin, as described in spec §3 and §6. Context does not own
// the buffer it draws into — the caller allocates and retains it.
type Context struct {
	width, height int
	buffer        []byte
}

// NewContext wraps buffer as a width x height draw surface. buffer must hold
// at least width*height*4 bytes; NewContext panics otherwise, matching the
// PreconditionViolation policy of spec §7 for caller-side contract breaches.
func NewContext(width, height int, buffer []byte) *Context {
	if width <= 0 || height <= 0 {
		panic("raster: non-positive context dimensions")
	}
	if len(buffer) < width*height*4 {
		panic("raster: buffer too small for context dimensions")
	}
	return &Context{width: width, height: height, buffer: buffer}
}

// Width returns the context's framebuffer width in pixels.
func (c *Context) Width() int { return c.width }

// Height returns the context's framebuffer height in pixels.
func (c *Context) Height() int { return c.height }

// Draw runs the full pipeline for p: vertex stage, primitive assembly via
// primitive, and rasterization of every assembled triangle. Vertex index i
// ranges directly over 0..p.N().
func (c *Context) Draw(p *shader.Program, primitive Primitive) {
	runVertexStage(p, c.width, c.height)
	primitive(p.N(), func(i0, i1, i2 int) {
		c.rasterizeTriangle(p, i0, i1, i2)
	})
}

// DrawIndexed is Draw through an index buffer: primitive is assembled over
// len(indices) logical positions, each remapped through indices before
// reaching the rasterizer.
func (c *Context) DrawIndexed(p *shader.Program, indices []int, primitive Primitive) {
	runVertexStage(p, c.width, c.height)
	IndexBuffer(indices, primitive)(len(indices), func(i0, i1, i2 int) {
		c.rasterizeTriangle(p, i0, i1, i2)
	})
}
