package shader

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/soypat/swrast/math/ms4"
)

// Program links a Vertex and a Fragment shader: it merges their uniform
// declarations, checks every fragment varying is produced by the vertex
// shader with a matching type, and owns the per-draw storage (clip-space
// position buffer and one staging array per vertex varying) sized to the
// vertex count N.
type Program struct {
	vert Vertex
	frag Fragment
	n    int

	uniforms   []Slot
	attributes []Slot
	varyings   []Slot

	pos   []ms4.Vec
	stage map[string]reflect.Value

	attrs map[string]attrBinding
}

type attrBinding struct {
	base     unsafe.Pointer
	elemSize uintptr
}

// NewProgram links vert and frag into a Program with storage for n vertices.
// It performs the checks of spec §4.3: uniform name collisions must agree in
// type, every fragment varying must exist in the vertex shader's varying set
// with the same type, and each shader must declare its required Output slot.
func NewProgram(vert Vertex, frag Fragment, n int) (*Program, error) {
	if n < 0 {
		return nil, &AllocationError{Slot: PositionSlot, N: n, Err: fmt.Errorf("negative vertex count")}
	}

	uniformType := make(map[string]Type)
	var uniforms []Slot
	mergeUniforms := func(slots []Slot) error {
		for _, s := range slots {
			if s.Kind != Uniform {
				continue
			}
			if existing, ok := uniformType[s.Name]; ok {
				if existing != s.Type {
					return &LinkError{Reason: "uniform redeclared with a different type", Name: s.Name, Got: s.Type, Want: existing}
				}
				continue
			}
			uniformType[s.Name] = s.Type
			uniforms = append(uniforms, s)
		}
		return nil
	}
	vertSlots := vert.Slots()
	fragSlots := frag.Slots()
	if err := mergeUniforms(vertSlots); err != nil {
		return nil, err
	}
	if err := mergeUniforms(fragSlots); err != nil {
		return nil, err
	}

	var attributes []Slot
	varyingType := make(map[string]Type)
	var varyings []Slot
	for _, s := range vertSlots {
		switch s.Kind {
		case Attribute:
			attributes = append(attributes, s)
		case Varying:
			varyingType[s.Name] = s.Type
			varyings = append(varyings, s)
		}
	}

	for _, s := range fragSlots {
		if s.Kind != Varying {
			continue
		}
		want, ok := varyingType[s.Name]
		if !ok {
			return nil, &LinkError{Reason: "fragment varying not declared by vertex shader", Name: s.Name, Got: s.Type}
		}
		if want != s.Type {
			return nil, &LinkError{Reason: "varying type mismatch between vertex and fragment shader", Name: s.Name, Got: s.Type, Want: want}
		}
	}

	if err := requireOutput(vertSlots, PositionSlot); err != nil {
		return nil, err
	}
	if err := requireOutput(fragSlots, FragColorSlot); err != nil {
		return nil, err
	}

	pos := make([]ms4.Vec, n)
	stage := make(map[string]reflect.Value, len(varyings))
	for _, v := range varyings {
		sliceType := reflect.SliceOf(v.Type.GoType())
		stage[v.Name] = reflect.MakeSlice(sliceType, n, n)
	}

	return &Program{
		vert:       vert,
		frag:       frag,
		n:          n,
		uniforms:   uniforms,
		attributes: attributes,
		varyings:   varyings,
		pos:        pos,
		stage:      stage,
		attrs:      make(map[string]attrBinding),
	}, nil
}

func requireOutput(slots []Slot, name string) error {
	for _, s := range slots {
		if s.Kind != Output || s.Name != name {
			continue
		}
		if s.Type != Vec4 {
			return &LinkError{Reason: "output slot must be of type vec4", Name: name, Got: s.Type, Want: Vec4}
		}
		return nil
	}
	return &LinkError{Reason: "missing required output slot " + name}
}

// Close releases the Program's owned storage: the clip-space position
// buffer and every varying's staging array. After Close, p must not be used
// again. Go has no destructors, so Close is the idiomatic stand-in for the
// scoped-acquisition/guaranteed-release resource invariant of spec §5 —
// callers should defer it immediately after a successful NewProgram.
func (p *Program) Close() error {
	p.pos = nil
	p.stage = nil
	p.attrs = nil
	return nil
}

// N returns the vertex count the Program was constructed with.
func (p *Program) N() int { return p.n }

// VertexShader returns the linked vertex shader.
func (p *Program) VertexShader() Vertex { return p.vert }

// FragmentShader returns the linked fragment shader.
func (p *Program) FragmentShader() Fragment { return p.frag }

// Uniforms returns the merged uniform set U.
func (p *Program) Uniforms() []Slot { return p.uniforms }

// Attributes returns the vertex shader's attribute set A.
func (p *Program) Attributes() []Slot { return p.attributes }

// Varyings returns the vertex shader's varying set V.
func (p *Program) Varyings() []Slot { return p.varyings }

// Positions returns the owned clip/screen position buffer, pos[N].
func (p *Program) Positions() []ms4.Vec { return p.pos }

// PositionPointer returns a pointer to the i'th element of pos, suitable for
// binding as the vertex shader's gl_Position output before invocation i.
func (p *Program) PositionPointer(i int) unsafe.Pointer {
	return unsafe.Pointer(&p.pos[i])
}

// StagePointer returns a pointer to the i'th element of the named varying's
// staging array, suitable for binding as the vertex shader's varying output
// (during the vertex stage) or for reading interpolated inputs back out
// (during rasterization).
func (p *Program) StagePointer(name string, i int) unsafe.Pointer {
	v, ok := p.stage[name]
	if !ok {
		return nil
	}
	return v.Index(i).Addr().UnsafePointer()
}

// AttributePointer returns a pointer to the i'th element of the named
// attribute's bound data array, or nil if the attribute has not been bound.
func (p *Program) AttributePointer(name string, i int) unsafe.Pointer {
	b, ok := p.attrs[name]
	if !ok {
		return nil
	}
	return unsafe.Add(b.base, i*int(b.elemSize))
}

func (p *Program) findSlot(kind Kind, name string) (Slot, bool) {
	find := func(slots []Slot) (Slot, bool) {
		for _, s := range slots {
			if s.Kind == kind && s.Name == name {
				return s, true
			}
		}
		return Slot{}, false
	}
	if s, ok := find(p.vert.Slots()); ok {
		return s, true
	}
	return find(p.frag.Slots())
}

// BindUniform attaches value as the uniform named name for the lifetime of
// the Program (or until rebound). value must remain valid and is not owned
// by the Program. BindUniform binds to whichever of the vertex and fragment
// shaders declared the uniform (both, if both declared it).
func BindUniform[T any](p *Program, name string, value *T) error {
	slot, ok := p.findSlot(Uniform, name)
	if !ok {
		return fmt.Errorf("shader: no such uniform %q", name)
	}
	want, ok := TypeOf[T]()
	if !ok {
		return fmt.Errorf("shader: unrecognized uniform Go type %T", *value)
	}
	if want != slot.Type {
		return &LinkError{Reason: "uniform bind type mismatch", Name: name, Got: want, Want: slot.Type}
	}
	ptr := unsafe.Pointer(value)
	bound := false
	for _, s := range p.vert.Slots() {
		if s.Kind == Uniform && s.Name == name {
			p.vert.Bind(Uniform, name, ptr)
			bound = true
		}
	}
	for _, s := range p.frag.Slots() {
		if s.Kind == Uniform && s.Name == name {
			p.frag.Bind(Uniform, name, ptr)
			bound = true
		}
	}
	if !bound {
		return fmt.Errorf("shader: no such uniform %q", name)
	}
	return nil
}

// BindAttribute attaches data as the attribute named name. data must have at
// least N elements and remain valid for the lifetime of the Program; it is
// not owned by the Program.
func BindAttribute[T any](p *Program, name string, data []T) error {
	if len(data) < p.n {
		return fmt.Errorf("shader: attribute %q needs %d elements, got %d", name, p.n, len(data))
	}
	slot, ok := p.findSlot(Attribute, name)
	if !ok {
		return fmt.Errorf("shader: no such attribute %q", name)
	}
	want, ok := TypeOf[T]()
	if !ok {
		return fmt.Errorf("shader: unrecognized attribute Go type %T", data)
	}
	if want != slot.Type {
		return &LinkError{Reason: "attribute bind type mismatch", Name: name, Got: want, Want: slot.Type}
	}
	p.attrs[name] = attrBinding{base: unsafe.Pointer(&data[0]), elemSize: unsafe.Sizeof(data[0])}
	return nil
}
