/*
Package splinerope implements points, vectors and affine transformations
for cubic spline paths and the rope meshes derived from them.

Sub-packages deal with Bézier arithmetic (bezier), editable control paths
(spline), arc-length resampling (resample), ribbon tessellation (ribbon) and
a host object tying it all together (rope).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package splinerope

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'splinerope'
func tracer() tracing.Trace {
	return tracing.Select("splinerope")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Clamp01 restricts n to the interval [0…1].
func Clamp01(n float64) float64 {
	if n < 0 {
		return 0
	} else if n > 1 {
		return 1
	}
	return n
}

// === Pair Data Type ========================================================

// Pair is a 2D-point. Pairs are used for texture coordinates and for
// computations within the working plane (x,y) of a path.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	p = P(Zap(p.X()), Zap(p.Y()))
	return p
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	p2 = p2.Zap()
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Length is the euclidean length of p, interpreted as a vector.
func (p Pair) Length() float64 {
	return cmplx.Abs(p.C())
}

// Unit returns p normalized to length 1. The zero pair stays zero.
func (p Pair) Unit() Pair {
	l := p.Length()
	if Is0(l) {
		return Origin
	}
	return C2P(p.C() / complex(l, 0))
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	T := Rotation(theta)
	return T.Transform(p).Zap()
}

// === Vec3 Data Type ========================================================

// Vec3 is a point or a direction in 3D space.
type Vec3 struct {
	X, Y, Z float64
}

// Frequently used axis vectors.
var (
	Zero  = Vec3{}
	Right = V(1, 0, 0)
	Up    = V(0, 1, 0)
	Down  = V(0, -1, 0)
)

// V is a quick notation for constructing a vector from floats.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Pretty Stringer for vectors.
func (v Vec3) String() string {
	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scaled returns a new vector scaled by factor a.
func (v Vec3) Scaled(a float64) Vec3 {
	return Vec3{v.X * a, v.Y * a, v.Z * a}
}

// Dot is the scalar product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Length is the euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dist is the euclidean distance between v and w.
func (v Vec3) Dist(w Vec3) float64 {
	return v.Sub(w).Length()
}

// Normalized returns v scaled to length 1. A vector of length (nearly) 0
// is returned as Zero.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if Is0(l) {
		return Zero
	}
	return v.Scaled(1 / l)
}

// Lerp interpolates linearly between v (t=0) and w (t=1).
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return v.Add(w.Sub(v).Scaled(t))
}

// XY projects v onto the working plane.
func (v Vec3) XY() Pair {
	return P(v.X, v.Y)
}

// Equal compares two vectors, component-wise up to Epsilon.
func (v Vec3) Equal(w Vec3) bool {
	return Is0(v.X-w.X) && Is0(v.Y-w.Y) && Is0(v.Z-w.Z)
}

// IsNaN is a predicate: does any component of v hold a NaN or Inf value?
func (v Vec3) IsNaN() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return true
		}
	}
	return false
}

// InPlane lifts a pair of the working plane to 3D space with z = 0.
func InPlane(p Pair) Vec3 {
	return V(p.X(), p.Y(), 0)
}

// === Affine Transformations ================================================

// AT is an affine transform of the working plane, stored as the upper two
// rows of a 3x3 matrix in homogeneous coordinates. The third row is
// always (0,0,1) and therefore omitted.
//
// ATs are values; all operations return new transforms.
type AT [2][3]float64

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{{1, 0, 0}, {0, 1, 0}}
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	return AT{{1, 0, p.X()}, {0, 1, p.Y()}}
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	sin, cos := math.Sincos(theta)
	return AT{{cos, -sin, 0}, {sin, cos, 0}}
}

// Scaling transform. Scale x- and y-coordinates by the components of s,
// relative to the origin.
func Scaling(s Pair) AT {
	return AT{{s.X(), 0, 0}, {0, s.Y(), 0}}
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g]",
		m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2])
}

// Combine 2 affine transformations to a new one. The resulting transform
// applies m first, then n.
func (m AT) Combine(n AT) AT {
	var o AT
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			o[row][col] = n[row][0]*m[0][col] + n[row][1]*m[1][col]
		}
		o[row][2] += n[row][2]
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.X(), p.Y()
	return P(m[0][0]*x+m[0][1]*y+m[0][2], m[1][0]*x+m[1][1]*y+m[1][2])
}

// TransformXY applies m to the (x,y) part of v, leaving z unchanged.
func (m AT) TransformXY(v Vec3) Vec3 {
	p := m.Transform(v.XY())
	return V(p.X(), p.Y(), v.Z)
}
