// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brep

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// TriMesh is a triangle mesh in flat buffer layout: Vertex and Normal hold
// 3 floats per vertex, and Index holds 3 vertex indexes per triangle.
type TriMesh struct {
	Vertex math32.ArrayF32
	Normal math32.ArrayF32
	Index  math32.ArrayU32
}

// NumVertex returns the number of vertices in the mesh.
func (tm *TriMesh) NumVertex() int {
	return len(tm.Vertex) / 3
}

// NumTris returns the number of triangles in the mesh.
func (tm *TriMesh) NumTris() int {
	return len(tm.Index) / 3
}

// VertexAt returns the position of the given vertex.
func (tm *TriMesh) VertexAt(i int) math32.Vector3 {
	return math32.Vec3(tm.Vertex[3*i], tm.Vertex[3*i+1], tm.Vertex[3*i+2])
}

// NormalAt returns the normal of the given vertex.
func (tm *TriMesh) NormalAt(i int) math32.Vector3 {
	return math32.Vec3(tm.Normal[3*i], tm.Normal[3*i+1], tm.Normal[3*i+2])
}

// Bounds returns the axis-aligned bounding box of the mesh vertices.
func (tm *TriMesh) Bounds() math32.Box3 {
	b := math32.B3Empty()
	for i := 0; i < tm.NumVertex(); i++ {
		b.ExpandByPoint(tm.VertexAt(i))
	}
	return b
}

// Validate checks that all triangle indexes are in range and that every
// normal is unit length to within the kernel tolerance.
func (tm *TriMesh) Validate() error {
	nv := tm.NumVertex()
	if len(tm.Vertex) != len(tm.Normal) {
		return fmt.Errorf("brep.TriMesh: %d vertex floats but %d normal floats", len(tm.Vertex), len(tm.Normal))
	}
	if len(tm.Index)%3 != 0 {
		return fmt.Errorf("brep.TriMesh: index count %d is not a multiple of 3", len(tm.Index))
	}
	for i, ix := range tm.Index {
		if int(ix) >= nv {
			return fmt.Errorf("brep.TriMesh: index %d at %d out of range of %d vertices", ix, i, nv)
		}
	}
	for i := 0; i < nv; i++ {
		if math32.Abs(tm.NormalAt(i).Length()-1) > Tolerance {
			return fmt.Errorf("brep.TriMesh: normal %d is not unit length", i)
		}
	}
	return nil
}

// RecomputeNormals replaces the mesh normals with area-weighted averages
// of the incident triangle normals.
func (tm *TriMesh) RecomputeNormals() {
	for i := range tm.Normal {
		tm.Normal[i] = 0
	}
	for t := 0; t < tm.NumTris(); t++ {
		ia, ib, ic := tm.Index[3*t], tm.Index[3*t+1], tm.Index[3*t+2]
		n := math32.Normal(tm.VertexAt(int(ia)), tm.VertexAt(int(ib)), tm.VertexAt(int(ic)))
		for _, ix := range []uint32{ia, ib, ic} {
			tm.Normal[3*ix] += n.X
			tm.Normal[3*ix+1] += n.Y
			tm.Normal[3*ix+2] += n.Z
		}
	}
	for i := 0; i < tm.NumVertex(); i++ {
		n := tm.NormalAt(i).Normal()
		tm.Normal[3*i], tm.Normal[3*i+1], tm.Normal[3*i+2] = n.X, n.Y, n.Z
	}
}

// Triangulate converts the shell into a triangle mesh, fan-triangulating
// each convex planar face. Vertices are not shared across faces, so face
// edges remain hard; normals are recomputed per vertex from the incident
// triangles. The tol argument reserved for curved surface refinement is
// currently unused beyond degeneracy checks.
func (sh Shell) Triangulate(tol float32) (*TriMesh, error) {
	if tol <= 0 {
		tol = Tolerance
	}
	tm := &TriMesh{}
	for fi, fc := range sh.Faces {
		pts := fc.Boundary.Points()
		if len(pts) < 3 {
			return nil, fmt.Errorf("brep.Triangulate: face %d has fewer than 3 points", fi)
		}
		base := uint32(tm.NumVertex())
		for _, p := range pts {
			tm.Vertex = append(tm.Vertex, p.X, p.Y, p.Z)
			tm.Normal = append(tm.Normal, 0, 0, 0)
		}
		for i := 2; i < len(pts); i++ {
			ab := pts[i-1].Sub(pts[0])
			ac := pts[i].Sub(pts[0])
			if ab.Cross(ac).Length() < tol*tol {
				continue // collinear sliver
			}
			tm.Index = append(tm.Index, base, base+uint32(i-1), base+uint32(i))
		}
	}
	if tm.NumTris() == 0 {
		return nil, fmt.Errorf("brep.Triangulate: shell produced no triangles")
	}
	tm.RecomputeNormals()
	return tm, nil
}

// Outlines returns one closed polyline per face boundary, for rendering
// face edges as line loops.
func (sh Shell) Outlines() [][]math32.Vector3 {
	outs := make([][]math32.Vector3, 0, len(sh.Faces))
	for _, fc := range sh.Faces {
		outs = append(outs, fc.Boundary.Points())
	}
	return outs
}
