// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package brep provides a minimal boundary-representation kernel for
// parametric solid modelling: vertices, edges, closed wires, planar faces,
// and shells, built up by linear sweeps and triangulated into flat
// vertex / normal / index buffers for rendering.
//
// All geometry is float32 [math32] math, consistent with the rest of the
// 3D stack. Faces must be planar and convex; wires are closed loops of
// edges ordered counterclockwise when viewed from the face's outside.
package brep

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Tolerance is the kernel's geometric tolerance: points closer than this
// are considered coincident, and lengths below it are degenerate.
const Tolerance = 1.0e-3

// Vertex is a point in the model topology.
type Vertex struct {
	Point math32.Vector3
}

// NewVertex returns a vertex at the given point.
func NewVertex(p math32.Vector3) Vertex {
	return Vertex{Point: p}
}

// Edge is a straight line segment between two vertices.
type Edge struct {
	Start, End Vertex
}

// NewEdge returns an edge between the two points.
func NewEdge(start, end math32.Vector3) Edge {
	return Edge{Start: NewVertex(start), End: NewVertex(end)}
}

// Vector returns the edge direction vector, End - Start.
func (ed Edge) Vector() math32.Vector3 {
	return ed.End.Point.Sub(ed.Start.Point)
}

// Midpoint returns the edge midpoint.
func (ed Edge) Midpoint() math32.Vector3 {
	return ed.Start.Point.Add(ed.End.Point).MulScalar(0.5)
}

// Wire is a closed loop of edges, each edge's End coinciding with the
// next edge's Start (and the last wrapping to the first).
type Wire struct {
	Edges []Edge
}

// NewWire returns a closed wire through the given points, in order,
// with an edge from the last point back to the first.
func NewWire(points ...math32.Vector3) Wire {
	n := len(points)
	w := Wire{Edges: make([]Edge, 0, n)}
	for i := 0; i < n; i++ {
		w.Edges = append(w.Edges, NewEdge(points[i], points[(i+1)%n]))
	}
	return w
}

// Points returns the wire's vertex points in loop order,
// one per edge (each edge's start).
func (w Wire) Points() []math32.Vector3 {
	pts := make([]math32.Vector3, len(w.Edges))
	for i, ed := range w.Edges {
		pts[i] = ed.Start.Point
	}
	return pts
}

// Centroid returns the mean of the wire's points.
func (w Wire) Centroid() math32.Vector3 {
	var c math32.Vector3
	if len(w.Edges) == 0 {
		return c
	}
	for _, ed := range w.Edges {
		c.SetAdd(ed.Start.Point)
	}
	return c.MulScalar(1 / float32(len(w.Edges)))
}

// Translated returns a copy of the wire translated by the given offset.
func (w Wire) Translated(off math32.Vector3) Wire {
	nw := Wire{Edges: make([]Edge, len(w.Edges))}
	for i, ed := range w.Edges {
		nw.Edges[i] = Edge{
			Start: NewVertex(ed.Start.Point.Add(off)),
			End:   NewVertex(ed.End.Point.Add(off)),
		}
	}
	return nw
}

// Reversed returns a copy of the wire with the loop direction inverted.
func (w Wire) Reversed() Wire {
	n := len(w.Edges)
	nw := Wire{Edges: make([]Edge, n)}
	for i, ed := range w.Edges {
		nw.Edges[n-1-i] = Edge{Start: ed.End, End: ed.Start}
	}
	return nw
}

// Face is a planar region bounded by a single closed wire,
// counterclockwise when viewed from the side its normal points toward.
type Face struct {
	Boundary Wire
}

// NewFace returns a face bounded by the closed wire through
// the given points.
func NewFace(points ...math32.Vector3) Face {
	return Face{Boundary: NewWire(points...)}
}

// Normal returns the face's unit normal, computed from the boundary by
// the Newell method, which is robust to collinear runs of points.
func (fc Face) Normal() math32.Vector3 {
	var n math32.Vector3
	pts := fc.Boundary.Points()
	np := len(pts)
	for i := 0; i < np; i++ {
		p, q := pts[i], pts[(i+1)%np]
		n.X += (p.Y - q.Y) * (p.Z + q.Z)
		n.Y += (p.Z - q.Z) * (p.X + q.X)
		n.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	return n.Normal()
}

// Centroid returns the centroid of the face boundary.
func (fc Face) Centroid() math32.Vector3 {
	return fc.Boundary.Centroid()
}

// Area returns the face area, summing the triangle fan from the
// first boundary point.
func (fc Face) Area() float32 {
	pts := fc.Boundary.Points()
	var area float32
	for i := 2; i < len(pts); i++ {
		ab := pts[i-1].Sub(pts[0])
		ac := pts[i].Sub(pts[0])
		area += ab.Cross(ac).Length() * 0.5
	}
	return area
}

// Reversed returns a copy of the face with opposite orientation
// (boundary loop inverted, normal negated).
func (fc Face) Reversed() Face {
	return Face{Boundary: fc.Boundary.Reversed()}
}

// Translated returns a copy of the face translated by the given offset.
func (fc Face) Translated(off math32.Vector3) Face {
	return Face{Boundary: fc.Boundary.Translated(off)}
}

// Shell is a collection of faces. A shell intended for meshing must be
// closed and consistently oriented; see [Shell.Validate].
type Shell struct {
	Faces []Face
}

// Bounds returns the axis-aligned bounding box of all face boundary points.
func (sh Shell) Bounds() math32.Box3 {
	b := math32.B3Empty()
	for _, fc := range sh.Faces {
		b.ExpandByPoints(fc.Boundary.Points())
	}
	return b
}

// quantPoint is a point quantized to the kernel tolerance,
// used to match coincident vertices across faces.
type quantPoint struct {
	X, Y, Z int32
}

func quantize(p math32.Vector3) quantPoint {
	return quantPoint{
		X: int32(math32.Floor(p.X/Tolerance + 0.5)),
		Y: int32(math32.Floor(p.Y/Tolerance + 0.5)),
		Z: int32(math32.Floor(p.Z/Tolerance + 0.5)),
	}
}

// Validate checks that the shell is closed and consistently oriented:
// every edge must be shared by exactly two faces, traversed in opposite
// directions. It also rejects faces with degenerate boundaries.
func (sh Shell) Validate() error {
	if len(sh.Faces) == 0 {
		return fmt.Errorf("brep.Shell: no faces")
	}
	type dirEdge struct {
		a, b quantPoint
	}
	counts := map[dirEdge]int{}
	for fi, fc := range sh.Faces {
		if len(fc.Boundary.Edges) < 3 {
			return fmt.Errorf("brep.Shell: face %d has fewer than 3 edges", fi)
		}
		for ei, ed := range fc.Boundary.Edges {
			if ed.Vector().Length() < Tolerance {
				return fmt.Errorf("brep.Shell: face %d edge %d is degenerate", fi, ei)
			}
			a, b := quantize(ed.Start.Point), quantize(ed.End.Point)
			counts[dirEdge{a, b}]++
		}
	}
	for de, n := range counts {
		if n != 1 {
			return fmt.Errorf("brep.Shell: edge traversed %d times in the same direction", n)
		}
		if counts[dirEdge{de.b, de.a}] != 1 {
			return fmt.Errorf("brep.Shell: unmatched edge: shell is not closed")
		}
	}
	return nil
}

// Solid is a solid region bounded by a closed shell.
type Solid struct {
	Boundary Shell
}

// Shell validates and returns the solid's boundary shell.
func (sd Solid) Shell() (Shell, error) {
	if err := sd.Boundary.Validate(); err != nil {
		return Shell{}, err
	}
	return sd.Boundary, nil
}
