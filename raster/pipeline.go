package raster

import "github.com/soypat/swrast/shader"

// runVertexStage runs the vertex shader once per vertex in p, then performs
// the perspective division, varying staging and viewport transform described
// in spec §4.4. Uniforms are expected to already be bound by the caller
// (via shader.BindUniform) and are not touched here — only the per-vertex
// attribute, varying-output and gl_Position slots are re-pointed.
func runVertexStage(p *shader.Program, width, height int) {
	vert := p.VertexShader()
	attrs := p.Attributes()
	varyings := p.Varyings()
	positions := p.Positions()

	for i := 0; i < p.N(); i++ {
		for _, a := range attrs {
			vert.Bind(shader.Attribute, a.Name, p.AttributePointer(a.Name, i))
		}
		for _, v := range varyings {
			vert.Bind(shader.Varying, v.Name, p.StagePointer(v.Name, i))
		}
		vert.Bind(shader.Output, shader.PositionSlot, p.PositionPointer(i))
		vert.Main()

		pos := &positions[i]
		invW := 1 / pos.W
		pos.X *= invW
		pos.Y *= invW
		pos.Z *= invW
		pos.W = invW // now holds 1/w_clip

		for _, v := range varyings {
			stageVarying(v.Type, p.StagePointer(v.Name, i), pos.W)
		}

		pos.X = (pos.X + 1) * 0.5 * float32(width)
		pos.Y = (pos.Y + 1) * 0.5 * float32(height)
		pos.Z = (pos.Z + 1) * 0.5
	}
}
