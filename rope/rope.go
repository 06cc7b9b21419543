/*
Package rope ties together a spline path and the ribbon mesh derived from it.

A host application edits the path of a rope and asks for an update; the rope
then samples the path at even distances, builds a ribbon mesh along the
samples and hands the mesh to a renderer. With AutoUpdate set, every edit
done through Rope.Edit triggers an update.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package rope

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splinerope"
	"github.com/npillmayer/splinerope/resample"
	"github.com/npillmayer/splinerope/ribbon"
	"github.com/npillmayer/splinerope/spline"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

// Renderer receives derived meshes. It will usually be implemented by a
// graphics front end.
type Renderer interface {
	SetMesh(mesh *ribbon.Mesh)
	SetTextureScale(u, v float64)
}

// Result holds the artifacts derived from a path.
type Result struct {
	Points        []splinerope.Vec3 // evenly spaced samples of the path
	Mesh          *ribbon.Mesh      // ribbon along Points
	TextureRepeat float64           // texture repetitions along the ribbon
}

// UpdateDerivedMesh samples path every spacing units and builds a ribbon
// mesh of the given width along the samples. The number of texture
// repetitions is derived from the length of the ribbon and tiling.
func UpdateDerivedMesh(path *spline.Path, width, spacing, tiling float64) (*Result, error) {
	s := DefaultSettings()
	s.Width, s.Spacing, s.Tiling = width, spacing, tiling
	return derive(path, s)
}

func derive(path *spline.Path, s Settings) (*Result, error) {
	points, err := resample.EvenlySpaced(path, s.Spacing, s.Resolution)
	if err != nil {
		return nil, err
	}
	mesh, err := ribbon.Build(points, s.Width, path.IsClosed())
	if err != nil {
		return nil, err
	}
	return &Result{
		Points:        points,
		Mesh:          mesh,
		TextureRepeat: textureRepeat(s.Tiling, len(points), s.Spacing),
	}, nil
}

// Halves round to even.
func textureRepeat(tiling float64, n int, spacing float64) float64 {
	return math.RoundToEven(tiling * float64(n) * spacing * 0.5)
}

// Rope is a path together with the settings to derive a mesh from it.
type Rope struct {
	path     *spline.Path
	settings Settings
	renderer Renderer // last non-nil renderer handed to Update
	result   *Result  // last derived artifacts, may be nil
}

// New creates a rope along the default path at origin.
func New(origin splinerope.Vec3, settings Settings) (*Rope, error) {
	return FromPath(spline.New(origin), settings)
}

// FromPath creates a rope for an existing path. The rope takes ownership
// of path.
func FromPath(path *spline.Path, settings Settings) (*Rope, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Rope{path: path, settings: settings}, nil
}

// Path returns the path of the rope. Clients should prefer Edit for
// modifying it.
func (r *Rope) Path() *spline.Path {
	return r.path
}

// Settings returns the current settings of the rope.
func (r *Rope) Settings() Settings {
	return r.settings
}

// SetSettings replaces the settings of r. With AutoUpdate set, the mesh is
// re-derived with the new settings. Invalid settings, or settings a mesh
// cannot be derived with, are rejected and leave r unchanged.
func (r *Rope) SetSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.AutoUpdate {
		res, err := derive(r.path, s)
		if err != nil {
			tracer().Errorf("rope keeps settings %+v: %v", r.settings, err)
			return err
		}
		r.settings = s
		r.publish(res)
		return nil
	}
	r.settings = s
	return nil
}

// Result returns the artifacts of the last update, or nil if r has never
// been updated.
func (r *Rope) Result() *Result {
	return r.result
}

// Update derives a new mesh from the path and hands it to renderer.
// A non-nil renderer is remembered for automatic updates and replaces the
// one remembered before. With renderer nil, the remembered renderer, if
// any, receives the mesh. On failure, the result of the last successful
// update is kept.
func (r *Rope) Update(renderer Renderer) error {
	res, err := derive(r.path, r.settings)
	if err != nil {
		tracer().Errorf("rope update failed: %v", err)
		return err
	}
	if renderer != nil {
		r.renderer = renderer
	}
	r.publish(res)
	return nil
}

func (r *Rope) publish(res *Result) {
	r.result = res
	if r.renderer != nil {
		r.renderer.SetMesh(res.Mesh)
		r.renderer.SetTextureScale(1, res.TextureRepeat)
	}
	tracer().Infof("rope updated: %d points, texture repeat %g", len(res.Points), res.TextureRepeat)
}

// Edit calls edit with the path of r. If AutoUpdate is set, the mesh is
// re-derived afterwards.
func (r *Rope) Edit(edit func(*spline.Path)) error {
	edit(r.path)
	if !r.settings.AutoUpdate {
		return nil
	}
	return r.Update(nil)
}
