/*
Package ms4 implements 4D vector and matrix math in the style of GLSL's
vec4/mat4/bvec4: component-wise arithmetic, comparisons, transcendentals,
and the homogeneous-coordinate operations (Mat4, Perspective) a rendering
pipeline needs to carry clip-space position through to the screen.

This is a different take compared to mgl32: package-level functions like
`Add` are reserved specifically for vector operations rather than methods,
which aids readability since a long chain of operations using methods can
be remarkably hard to follow.

The name roughly stands for (m)ath for (s)hort floats in (4)D. "short"
since there are no native 16 bit floats in Go.
*/
package ms4
