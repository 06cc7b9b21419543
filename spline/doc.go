// Package spline deals with editable paths of cubic Bézier segments.
/*

A path is an ordered sequence of control points in 3D space. Points come in
runs of three: every point with an index divisible by 3 is an anchor, lying
on the curve; the points in between are guides (tangent handles) shaping the
segments between two anchors:

   z0 .. controls g1 and g2 .. z3 .. controls g4 and g5 .. z6

An open path of n segments therefore holds 3·n+1 points. Closing a path
appends two guides and makes the path wrap around, i.e. the last segment
connects the last anchor to the first one. A closed path of n segments holds
3·n points; point indices are taken modulo the point count.

Usage

Clients create a path at some origin and edit it from there:

   path := spline.New(splinerope.V(0, 0, 0))
   path.AddSegment()
   path.SetTangentMode(3, spline.Mirrored)
   path.SetPoint(4, splinerope.V(3, 1, 0))   // guide 2 follows, mirrored at z3
   path.SetClosed(true)
   fmt.Println(spline.AsString(path))

How the guides of an anchor relate to each other is governed by the tangent
policy of a path. With policy ExplicitMode every anchor carries a tangent mode
(Free, Aligned or Mirrored), which is enforced whenever a point is moved. With
policy AutoSmooth guides are derived from the positions of the neighbouring
anchors, resulting in smooth Catmull-Rom-like curves without any manual
handle editing.

Index arguments out of range are considered a programming error and result
in a panic.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline
