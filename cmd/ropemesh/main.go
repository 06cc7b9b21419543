/*
Command ropemesh derives a ribbon mesh from a spline path and writes it as a
Wavefront OBJ file.

The path is either loaded from a YAML document (see spline.Save) or built
from the default path by appending segments:

	ropemesh --segments 4 --closed --auto -o rope.obj
	ropemesh --path path.yaml --settings rope.yaml -o rope.obj
	ropemesh --segments 2 --rotate 90 --shift 1,0 -o rope.obj

--segments is the number of segments of the resulting path. For closed
paths this includes the segment back to the start, so at least 2 are needed.
Transform flags are applied to loaded paths as well.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/splinerope"
	"github.com/npillmayer/splinerope/ribbon"
	"github.com/npillmayer/splinerope/rope"
	"github.com/npillmayer/splinerope/spline"
	"github.com/spf13/cobra"
)

type options struct {
	pathFile     string
	settingsFile string
	output       string
	savePath     string
	segments     int
	closed       bool
	auto         bool
	width        float64
	spacing      float64
	scale        float64
	rotate       float64
	shift        []float64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "ropemesh",
		Short:        "Derive a ribbon mesh from a spline path",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.pathFile, "path", "", "YAML document holding the path")
	f.StringVar(&opts.settingsFile, "settings", "", "YAML document holding the rope settings")
	f.StringVarP(&opts.output, "output", "o", "", "OBJ output file (default stdout)")
	f.StringVar(&opts.savePath, "save-path", "", "write the path as YAML to this file")
	f.IntVar(&opts.segments, "segments", 1, "number of segments of a generated path, including the closing one")
	f.BoolVar(&opts.closed, "closed", false, "close a generated path")
	f.BoolVar(&opts.auto, "auto", false, "smooth a generated path automatically")
	f.Float64Var(&opts.width, "width", 0, "ribbon width, overrides settings")
	f.Float64Var(&opts.spacing, "spacing", 0, "point spacing, overrides settings")
	f.Float64Var(&opts.scale, "scale", 1, "scale the path relative to the origin")
	f.Float64Var(&opts.rotate, "rotate", 0, "rotate the path around the origin, in degrees")
	f.Float64SliceVar(&opts.shift, "shift", nil, "shift the path by x,y")
	cmd.MarkFlagsMutuallyExclusive("path", "segments")
	cmd.MarkFlagsMutuallyExclusive("path", "closed")
	cmd.MarkFlagsMutuallyExclusive("path", "auto")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	settings, err := loadSettings(opts.settingsFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("width") {
		settings.Width = opts.width
	}
	if cmd.Flags().Changed("spacing") {
		settings.Spacing = opts.spacing
	}
	path, err := loadPath(opts)
	if err != nil {
		return err
	}
	if m, ok, err := placement(cmd, opts); err != nil {
		return err
	} else if ok {
		path.Transform(m)
	}
	r, err := rope.FromPath(path, settings)
	if err != nil {
		return err
	}
	if err = r.Update(nil); err != nil {
		return err
	}
	if opts.savePath != "" {
		if err = writeFile(opts.savePath, func(w io.Writer) error {
			return spline.Save(w, path)
		}); err != nil {
			return err
		}
	}
	mesh := r.Result().Mesh
	write := func(w io.Writer) error {
		return ribbon.WriteOBJ(w, mesh, "rope")
	}
	if opts.output == "" {
		err = write(cmd.OutOrStdout())
	} else {
		err = writeFile(opts.output, write)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d segments, %d points, %d triangles, texture repeat %g\n",
		path.SegmentCount(), len(r.Result().Points), mesh.TriangleCount(), r.Result().TextureRepeat)
	return nil
}

func loadSettings(name string) (rope.Settings, error) {
	if name == "" {
		return rope.DefaultSettings(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return rope.Settings{}, err
	}
	defer f.Close()
	return rope.LoadSettings(f)
}

func loadPath(opts *options) (*spline.Path, error) {
	if opts.pathFile != "" {
		f, err := os.Open(opts.pathFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return spline.Load(f)
	}
	n := opts.segments // segments before closing
	if opts.closed {
		if opts.segments < 2 {
			return nil, fmt.Errorf("closed path needs at least 2 segments, have %d", opts.segments)
		}
		n--
	} else if opts.segments < 1 {
		return nil, fmt.Errorf("path needs at least 1 segment, have %d", opts.segments)
	}
	path := spline.New(splinerope.Zero)
	if opts.auto {
		path.SetPolicy(spline.AutoSmooth)
	}
	for i := 1; i < n; i++ {
		path.AddSegment()
	}
	path.SetClosed(opts.closed)
	return path, nil
}

// placement combines the transform flags into a single transform, applied
// in the order scale, rotate, shift. ok is false if no such flag is set.
func placement(cmd *cobra.Command, opts *options) (m splinerope.AT, ok bool, err error) {
	m = splinerope.Identity()
	flags := cmd.Flags()
	if flags.Changed("scale") {
		if !(opts.scale > 0) {
			return m, false, fmt.Errorf("scale must be positive, is %g", opts.scale)
		}
		m, ok = m.Combine(splinerope.Scaling(splinerope.P(opts.scale, opts.scale))), true
	}
	if flags.Changed("rotate") {
		m, ok = m.Combine(splinerope.Rotation(opts.rotate*splinerope.Deg2Rad)), true
	}
	if flags.Changed("shift") {
		if len(opts.shift) != 2 {
			return m, false, fmt.Errorf("shift needs 2 coordinates, have %d", len(opts.shift))
		}
		m, ok = m.Combine(splinerope.Translation(splinerope.P(opts.shift[0], opts.shift[1]))), true
	}
	return m, ok, nil
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
