package raster

// Primitive walks a vertex or index count n, reporting each triangle's three
// logical positions (0..n) to emit. Logical positions are remapped through
// an index buffer, if any, before reaching the rasterizer.
type Primitive func(n int, emit func(i0, i1, i2 int))

// Triangles assembles independent triangles from consecutive triples
// (i, i+1, i+2), i.e. glDrawArrays(GL_TRIANGLES, ...).
func Triangles(n int, emit func(i0, i1, i2 int)) {
	for i := 0; i+2 < n; i += 3 {
		emit(i, i+1, i+2)
	}
}

// TriangleStrip assembles a triangle strip.
//
// This mirrors, literally, the source's winding rule: it flips winding every
// other triangle keyed on i%4==0 rather than the usual GL strip convention
// of i%2==0. Whether this is a bug in the original or an intentional 2-step
// advance is an open question noted by the design review; it is preserved
// here rather than silently "fixed" to the conventional rule.
func TriangleStrip(n int, emit func(i0, i1, i2 int)) {
	for i := 0; i+2 < n; i += 2 {
		if i%4 == 0 {
			emit(i, i+1, i+2)
		} else {
			emit(i, i-1, i+1)
		}
	}
}

// IndexBuffer wraps primitive so the logical positions it reports are
// remapped through idx before reaching emit. The wrapped Primitive's n
// argument is ignored in favor of len(idx).
func IndexBuffer(idx []int, primitive Primitive) Primitive {
	return func(_ int, emit func(i0, i1, i2 int)) {
		primitive(len(idx), func(i0, i1, i2 int) {
			emit(idx[i0], idx[i1], idx[i2])
		})
	}
}
