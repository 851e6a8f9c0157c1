package shader

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/soypat/swrast/math/ms3"
	"github.com/soypat/swrast/math/ms4"
)

type fixtureVertex struct {
	mvp        *ms4.Mat4
	position   *ms3.Vec
	color      *ms3.Vec
	outColor   *ms3.Vec
	glPosition *ms4.Vec
}

func (v *fixtureVertex) Slots() []Slot {
	return []Slot{
		{Name: "MVP", Kind: Uniform, Type: Mat4},
		{Name: "Position", Kind: Attribute, Type: Vec3},
		{Name: "Color", Kind: Attribute, Type: Vec3},
		{Name: "Color", Kind: Varying, Type: Vec3},
		{Name: PositionSlot, Kind: Output, Type: Vec4},
	}
}

func (v *fixtureVertex) Bind(kind Kind, name string, ptr unsafe.Pointer) {
	switch {
	case kind == Uniform && name == "MVP":
		v.mvp = (*ms4.Mat4)(ptr)
	case kind == Attribute && name == "Position":
		v.position = (*ms3.Vec)(ptr)
	case kind == Attribute && name == "Color":
		v.color = (*ms3.Vec)(ptr)
	case kind == Varying && name == "Color":
		v.outColor = (*ms3.Vec)(ptr)
	case kind == Output && name == PositionSlot:
		v.glPosition = (*ms4.Vec)(ptr)
	}
}

func (v *fixtureVertex) Main() {
	*v.glPosition = ms4.MulMatVec(*v.mvp, ms4.Vec{X: v.position.X, Y: v.position.Y, Z: v.position.Z, W: 1})
	*v.outColor = *v.color
}

type fixtureFragment struct {
	color     *ms3.Vec
	fragColor *ms4.Vec
}

func (f *fixtureFragment) Slots() []Slot {
	return []Slot{
		{Name: "Color", Kind: Varying, Type: Vec3},
		{Name: FragColorSlot, Kind: Output, Type: Vec4},
	}
}

func (f *fixtureFragment) Bind(kind Kind, name string, ptr unsafe.Pointer) {
	switch {
	case kind == Varying && name == "Color":
		f.color = (*ms3.Vec)(ptr)
	case kind == Output && name == FragColorSlot:
		f.fragColor = (*ms4.Vec)(ptr)
	}
}

func (f *fixtureFragment) Main() {
	*f.fragColor = ms4.Vec{X: f.color.X, Y: f.color.Y, Z: f.color.Z, W: 1}
}

func TestLinkSuccess(t *testing.T) {
	p, err := NewProgram(&fixtureVertex{}, &fixtureFragment{}, 3)
	if err != nil {
		t.Fatalf("unexpected link error: %v", err)
	}
	defer p.Close()
	if len(p.Uniforms()) != 1 {
		t.Errorf("want 1 merged uniform, got %d", len(p.Uniforms()))
	}
	if len(p.Attributes()) != 2 {
		t.Errorf("want 2 attributes, got %d", len(p.Attributes()))
	}
	if len(p.Varyings()) != 1 {
		t.Errorf("want 1 varying, got %d", len(p.Varyings()))
	}
	if len(p.Positions()) != 3 {
		t.Errorf("want pos buffer sized 3, got %d", len(p.Positions()))
	}
}

type undeclaredVaryingFragment struct {
	fixtureFragment
}

func (f *undeclaredVaryingFragment) Slots() []Slot {
	return []Slot{
		{Name: "Normal", Kind: Varying, Type: Vec3},
		{Name: FragColorSlot, Kind: Output, Type: Vec4},
	}
}

func TestLinkMissingVarying(t *testing.T) {
	_, err := NewProgram(&fixtureVertex{}, &undeclaredVaryingFragment{}, 1)
	if err == nil {
		t.Fatal("expected link error for fragment varying absent from vertex shader")
	}
}

type mistypedVaryingFragment struct {
	fixtureFragment
}

func (f *mistypedVaryingFragment) Slots() []Slot {
	return []Slot{
		{Name: "Color", Kind: Varying, Type: Vec2},
		{Name: FragColorSlot, Kind: Output, Type: Vec4},
	}
}

func TestLinkVaryingTypeMismatch(t *testing.T) {
	_, err := NewProgram(&fixtureVertex{}, &mistypedVaryingFragment{}, 1)
	if err == nil {
		t.Fatal("expected link error for varying type mismatch")
	}
}

type collidingUniformFragment struct {
	fixtureFragment
}

func (f *collidingUniformFragment) Slots() []Slot {
	return []Slot{
		{Name: "MVP", Kind: Uniform, Type: Float},
		{Name: "Color", Kind: Varying, Type: Vec3},
		{Name: FragColorSlot, Kind: Output, Type: Vec4},
	}
}

func TestLinkUniformCollision(t *testing.T) {
	_, err := NewProgram(&fixtureVertex{}, &collidingUniformFragment{}, 1)
	if err == nil {
		t.Fatal("expected link error for uniform redeclared with a different type")
	}
}

// brokenFragment never declares the required gl_FragColor output slot.
type brokenFragment struct{ fixtureFragment }

func (f *brokenFragment) Slots() []Slot {
	return []Slot{{Name: "Color", Kind: Varying, Type: Vec3}}
}

func TestLinkMissingOutput(t *testing.T) {
	_, err := NewProgram(&fixtureVertex{}, &brokenFragment{}, 1)
	if err == nil {
		t.Fatal("expected link error for missing output slot")
	}
}

func TestLinkNegativeVertexCount(t *testing.T) {
	_, err := NewProgram(&fixtureVertex{}, &fixtureFragment{}, -1)
	if err == nil {
		t.Fatal("expected allocation error for negative vertex count")
	}
	var allocErr *AllocationError
	if !errors.As(err, &allocErr) {
		t.Fatalf("expected *AllocationError, got %T", err)
	}
}

func TestBindUniformAndAttribute(t *testing.T) {
	p, err := NewProgram(&fixtureVertex{}, &fixtureFragment{}, 2)
	if err != nil {
		t.Fatalf("link: %v", err)
	}
	defer p.Close()
	mvp := ms4.IdentityMat4()
	if err := BindUniform(p, "MVP", &mvp); err != nil {
		t.Fatalf("BindUniform: %v", err)
	}
	positions := []ms3.Vec{{X: 1}, {X: 2}}
	if err := BindAttribute(p, "Position", positions); err != nil {
		t.Fatalf("BindAttribute: %v", err)
	}
	if err := BindAttribute(p, "Position", positions[:1]); err == nil {
		t.Fatal("expected error binding attribute with too few elements")
	}
	if err := BindUniform(p, "NoSuchUniform", &mvp); err == nil {
		t.Fatal("expected error binding unknown uniform")
	}
}
