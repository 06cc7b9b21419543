/*
Package bezier evaluates quadratic and cubic Bézier curves in 3D space.

All functions are pure. Curve parameters are clamped to [0…1] where noted.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier

import (
	"github.com/npillmayer/splinerope"
)

type vec = splinerope.Vec3

// EvalQuadratic returns the point at parameter t on the quadratic Bézier
// curve with control points p0, p1, p2. t is clamped to [0…1].
func EvalQuadratic(p0, p1, p2 vec, t float64) vec {
	t = splinerope.Clamp01(t)
	mt := 1 - t
	return p0.Scaled(mt * mt).Add(p1.Scaled(2 * mt * t)).Add(p2.Scaled(t * t))
}

// QuadraticDerivative returns the (unnormalized) tangent at t of the quadratic
// Bézier curve p0, p1, p2. t is not clamped.
func QuadraticDerivative(p0, p1, p2 vec, t float64) vec {
	return p1.Sub(p0).Scaled(2 * (1 - t)).Add(p2.Sub(p1).Scaled(2 * t))
}

// EvalCubic returns the point at parameter t on the cubic Bézier curve
// with control points p0 … p3, using the Bernstein form. t is clamped to [0…1].
func EvalCubic(p0, p1, p2, p3 vec, t float64) vec {
	t = splinerope.Clamp01(t)
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return p0.Scaled(a).Add(p1.Scaled(b)).Add(p2.Scaled(c)).Add(p3.Scaled(d))
}

// CubicDerivative returns the (unnormalized) tangent at t of the cubic
// Bézier curve p0 … p3. t is clamped to [0…1].
func CubicDerivative(p0, p1, p2, p3 vec, t float64) vec {
	t = splinerope.Clamp01(t)
	mt := 1 - t
	return p1.Sub(p0).Scaled(3 * mt * mt).
		Add(p2.Sub(p1).Scaled(6 * mt * t)).
		Add(p3.Sub(p2).Scaled(3 * t * t))
}

// Segment holds the four control points of a cubic Bézier piece:
// anchor, guide, guide, anchor.
type Segment [4]splinerope.Vec3

// At evaluates the segment at t.
func (s Segment) At(t float64) splinerope.Vec3 {
	return EvalCubic(s[0], s[1], s[2], s[3], t)
}

// Tangent returns the derivative of the segment at t.
func (s Segment) Tangent(t float64) splinerope.Vec3 {
	return CubicDerivative(s[0], s[1], s[2], s[3], t)
}

// NetLength is the length of the control polygon.
func (s Segment) NetLength() float64 {
	return s[0].Dist(s[1]) + s[1].Dist(s[2]) + s[2].Dist(s[3])
}

// Chord is the distance between the two anchors.
func (s Segment) Chord() float64 {
	return s[0].Dist(s[3])
}

// EstimatedLength is a cheap estimate of the arc length of the segment.
// The true length lies between chord and control polygon length.
func (s Segment) EstimatedLength() float64 {
	return s.Chord() + s.NetLength()*0.5
}

func (s Segment) String() string {
	return s[0].String() + " .. controls " + s[1].String() + " and " +
		s[2].String() + " .. " + s[3].String()
}
