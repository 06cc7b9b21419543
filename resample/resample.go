/*
Package resample places points at equal distances along a spline path.

Consumers of a path, such as mesh builders, usually want points spaced by
distance along the curve rather than by curve parameter. EvenlySpaced walks
the segments of a path in small parameter steps and emits a point whenever
the distance travelled since the last emitted point reaches the requested
spacing.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinerope"
	"github.com/npillmayer/splinerope/bezier"
)

// tracer writes to trace with key 'resample'
func tracer() tracing.Trace {
	return tracing.Select("resample")
}

var (
	// ErrInvalidSpacing indicates a spacing which is not a positive number.
	ErrInvalidSpacing = errors.New("spacing must be a positive number")
	// ErrEmptyPath indicates a path without any segments.
	ErrEmptyPath = errors.New("path has no segments")
)

// Segmenter is a sequence of cubic Bézier segments, joined at their anchors.
// *spline.Path is the canonical implementation.
type Segmenter interface {
	SegmentCount() int
	Segment(i int) bezier.Segment
}

// stepsPerUnit is the number of curve samples per unit of estimated segment
// length, at resolution 1.
const stepsPerUnit = 10

// EvenlySpaced returns points along path, spaced at distance spacing. The
// first point is the start of the path; the last point lies near, but not
// necessarily at, the end of the path.
//
// resolution scales the number of curve samples taken per segment. Values
// <= 0 select the default of 1. Higher values give more accurate spacing on
// strongly bent curves.
func EvenlySpaced(path Segmenter, spacing, resolution float64) ([]splinerope.Vec3, error) {
	if math.IsNaN(spacing) || math.IsInf(spacing, 0) || spacing <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSpacing, spacing)
	}
	if path == nil || path.SegmentCount() == 0 {
		return nil, ErrEmptyPath
	}
	if !(resolution > 0) {
		resolution = 1
	}
	start := path.Segment(0)[0]
	points := []splinerope.Vec3{start}
	prev := start
	dist := 0.0 // distance travelled since last emitted point
	for s := 0; s < path.SegmentCount(); s++ {
		seg := path.Segment(s)
		steps := int(math.Ceil(seg.EstimatedLength() * resolution * stepsPerUnit))
		if steps < 1 {
			steps = 1
		}
		for k := 1; k <= steps; k++ {
			p := seg.At(float64(k) / float64(steps))
			dist += prev.Dist(p)
			for dist+splinerope.Epsilon >= spacing {
				overshoot := dist - spacing
				q := p.Add(prev.Sub(p).Normalized().Scaled(overshoot))
				points = append(points, q)
				dist = overshoot
				prev = q
			}
			prev = p
		}
	}
	tracer().Infof("resampled %d segments to %d points at spacing %g",
		path.SegmentCount(), len(points), spacing)
	return points, nil
}

// MustEvenlySpaced is like EvenlySpaced, but panics on invalid arguments.
func MustEvenlySpaced(path Segmenter, spacing, resolution float64) []splinerope.Vec3 {
	points, err := EvenlySpaced(path, spacing, resolution)
	if err != nil {
		panic(err)
	}
	return points
}
