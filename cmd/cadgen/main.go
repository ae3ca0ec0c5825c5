// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cadgen builds a parametric model headlessly: it loads
// parameters from a TOML file or flags, runs one build pass, reports
// what was built, and optionally writes the meshes to a Wavefront OBJ
// file.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/cad/examples/cube"
	"cogentcore.org/cad/examples/cubecylinder"
	"cogentcore.org/cad/parametric"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/cli"
)

// Config is the configuration information for the cadgen cli.
type Config struct {

	// Model is which demo model to build: cube or cubecylinder.
	Model string `flag:"m,model" default:"cube"`

	// Params is an optional TOML file of parameter values,
	// overriding the flag values below.
	Params string `flag:"p,params"`

	// SideLength is the cube side length (cube model).
	SideLength float32 `default:"0.5"`

	// ArrayCount is the cube instance count (cube model).
	ArrayCount int `default:"1"`

	// Output is an optional OBJ file to write the built meshes to.
	Output string `flag:"o,output"`
}

func main() {
	opts := cli.DefaultOptions("cadgen", "Builds a parametric model headlessly, with optional OBJ export.")
	cli.Run(opts, &Config{}, Generate)
}

// Generate builds the configured model once and reports the result.
func Generate(c *Config) error { //cli:cmd -root
	var res *parametric.Result
	var err error
	switch c.Model {
	case "cube", "":
		params := cube.New()
		params.SideLength = c.SideLength
		params.ArrayCount = c.ArrayCount
		if c.Params != "" {
			if err := tomlx.Open(params, c.Params); err != nil {
				return err
			}
		}
		res, err = parametric.Build(params)
	case "cubecylinder":
		params := cubecylinder.New()
		if c.Params != "" {
			if err := tomlx.Open(params, c.Params); err != nil {
				return err
			}
		}
		res, err = parametric.Build(params)
	default:
		return fmt.Errorf("unknown model %q", c.Model)
	}
	if err != nil {
		return err
	}
	slog.Info("built", "model", c.Model, "shells", res.Shells.Len(),
		"meshes", res.Meshes.Len(), "sliders", res.Sliders.Len(),
		"duration", res.Duration)
	if c.Output == "" {
		return nil
	}
	if err := WriteOBJ(c.Output, res); err != nil {
		return err
	}
	slog.Info("wrote", "file", c.Output)
	return nil
}

// WriteOBJ writes all meshes of the result to a Wavefront OBJ file,
// one object per mesh instance, with poses baked into the vertices.
func WriteOBJ(filename string, res *parametric.Result) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	voff := 1 // OBJ indices are 1-based and global
	for _, m := range res.Meshes.Values {
		fmt.Fprintf(w, "o %s\n", m.QualifiedName())
		nv := m.Tri.NumVertex()
		for i := 0; i < nv; i++ {
			p := m.Pose.TransformPoint(m.Tri.VertexAt(i))
			fmt.Fprintf(w, "v %g %g %g\n", p.X, p.Y, p.Z)
		}
		for i := 0; i < nv; i++ {
			n := m.Pose.TransformDir(m.Tri.NormalAt(i))
			fmt.Fprintf(w, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
		for t := 0; t < m.Tri.NumTris(); t++ {
			a := int(m.Tri.Index[3*t]) + voff
			b := int(m.Tri.Index[3*t+1]) + voff
			c := int(m.Tri.Index[3*t+2]) + voff
			fmt.Fprintf(w, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		}
		voff += nv
	}
	return w.Flush()
}
