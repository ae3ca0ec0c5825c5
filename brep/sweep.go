// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brep

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// SweepVertex sweeps a vertex along dir, producing an edge.
func SweepVertex(vt Vertex, dir math32.Vector3) (Edge, error) {
	if dir.Length() < Tolerance {
		return Edge{}, fmt.Errorf("brep.SweepVertex: sweep direction is degenerate")
	}
	return Edge{Start: vt, End: NewVertex(vt.Point.Add(dir))}, nil
}

// SweepEdge sweeps an edge along dir, producing a planar quad face.
// The face normal follows the right-hand rule around the loop
// start, end, end+dir, start+dir.
func SweepEdge(ed Edge, dir math32.Vector3) (Face, error) {
	if dir.Length() < Tolerance {
		return Face{}, fmt.Errorf("brep.SweepEdge: sweep direction is degenerate")
	}
	if ed.Vector().Cross(dir).Length() < Tolerance {
		return Face{}, fmt.Errorf("brep.SweepEdge: sweep direction is parallel to edge")
	}
	s, e := ed.Start.Point, ed.End.Point
	return NewFace(s, e, e.Add(dir), s.Add(dir)), nil
}

// SweepWire sweeps a closed wire along dir, producing the open side shell
// (one quad per edge, no caps). Each quad is oriented outward for a
// counterclockwise wire swept along its plane normal.
func SweepWire(w Wire, dir math32.Vector3) (Shell, error) {
	sh := Shell{Faces: make([]Face, 0, len(w.Edges))}
	for i, ed := range w.Edges {
		fc, err := SweepEdge(ed, dir)
		if err != nil {
			return Shell{}, fmt.Errorf("brep.SweepWire: edge %d: %w", i, err)
		}
		sh.Faces = append(sh.Faces, fc)
	}
	return sh, nil
}

// SweepFace sweeps a planar face along dir, producing a solid: the swept
// profile becomes the top cap, its reverse the bottom cap, and each
// boundary edge a side quad. dir must have a positive component along the
// face normal so the caps end up oriented outward.
func SweepFace(fc Face, dir math32.Vector3) (Solid, error) {
	n := fc.Normal()
	if dir.Dot(n) < Tolerance {
		return Solid{}, fmt.Errorf("brep.SweepFace: sweep direction is not along the face normal")
	}
	sides, err := SweepWire(fc.Boundary, dir)
	if err != nil {
		return Solid{}, fmt.Errorf("brep.SweepFace: %w", err)
	}
	bottom := fc.Reversed()
	top := fc.Translated(dir)
	sh := Shell{Faces: make([]Face, 0, len(sides.Faces)+2)}
	sh.Faces = append(sh.Faces, bottom, top)
	sh.Faces = append(sh.Faces, sides.Faces...)
	return Solid{Boundary: sh}, nil
}
