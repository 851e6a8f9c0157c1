/*
Package ms3 implements 3D vector and matrix math in the style of GLSL's
vec3/mat3/bvec3: component-wise arithmetic, comparisons, transcendentals,
dot and cross products.

This is a different take compared to mgl32: package-level functions like
`Add` are reserved specifically for vector operations rather than methods,
which aids readability since a long chain of operations using methods can
be remarkably hard to follow.

The name roughly stands for (m)ath for (s)hort floats in (3)D. "short"
since there are no native 16 bit floats in Go.
*/
package ms3
