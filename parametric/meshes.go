// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parametric

import (
	"fmt"

	"cogentcore.org/cad/brep"
	"cogentcore.org/core/base/keylist"
	"cogentcore.org/core/math32"
)

// MeshConfig specifies one rendered instance of a shell: where it goes,
// what it looks like, and whether its face outlines are extracted.
type MeshConfig struct {
	// Pose places the mesh in model space.
	Pose Pose

	// Material is the surface appearance.
	Material Material

	// Outlines extracts face boundary polylines for edge rendering.
	Outlines bool
}

// NewMeshConfig returns a config with default pose and material.
func NewMeshConfig() *MeshConfig {
	mc := &MeshConfig{}
	mc.Pose.Defaults()
	mc.Material.Defaults()
	return mc
}

// Mesh is one built mesh instance: shared triangle buffers plus the
// per-instance pose, material, and optional outlines.
type Mesh struct {
	// Name is the mesh name, unique within its shell.
	Name string

	// Shell is the name of the source shell.
	Shell string

	// Tri is the triangulated geometry, shared between instances
	// of the same shell.
	Tri *brep.TriMesh

	// Pose places the mesh in model space.
	Pose Pose

	// Material is the surface appearance.
	Material Material

	// Outlines holds one closed polyline per face boundary,
	// nil unless requested.
	Outlines [][]math32.Vector3
}

// QualifiedName returns the shell-qualified mesh name, "shell/mesh".
func (m *Mesh) QualifiedName() string {
	return m.Shell + "/" + m.Name
}

// Meshes is the ordered set of built meshes from one build pass,
// keyed by qualified name.
type Meshes struct {
	keylist.List[string, *Mesh]
}

// Mesh returns the mesh with the given qualified name ("shell/mesh"),
// or a [MissingError].
func (ms *Meshes) Mesh(qname string) (*Mesh, error) {
	m, ok := ms.AtTry(qname)
	if !ok {
		return nil, &MissingError{What: "mesh", Name: qname}
	}
	return m, nil
}

// meshEntry is one registered mesh instance.
type meshEntry struct {
	shell  string
	name   string
	config *MeshConfig
}

// MeshBuilders collects mesh instance configs against the shells of one
// build pass. Each shell may have any number of mesh instances (including
// zero); instance names are unique per shell.
type MeshBuilders[P any] struct {
	params  P
	shells  *ShellsByName
	entries []meshEntry
	seen    map[string]bool
}

// NewMeshBuilders returns a registry over the given parameters and
// built shells.
func NewMeshBuilders[P any](params P, shells *ShellsByName) *MeshBuilders[P] {
	return &MeshBuilders[P]{params: params, shells: shells, seen: map[string]bool{}}
}

// Params returns the parameters this build pass is using.
func (mb *MeshBuilders[P]) Params() P {
	return mb.params
}

// Shells returns the built shells this build pass is using.
func (mb *MeshBuilders[P]) Shells() *ShellsByName {
	return mb.shells
}

// Add registers a mesh instance of the given shell. It errors with a
// [MissingError] if the shell does not exist, a [DuplicateError] if
// the shell already has an instance with this name, and rejects a nil
// config.
func (mb *MeshBuilders[P]) Add(shell, name string, cfg *MeshConfig) error {
	if cfg == nil {
		return fmt.Errorf("parametric.MeshBuilders.Add: nil config for mesh %s/%s", shell, name)
	}
	if _, err := mb.shells.Shell(shell); err != nil {
		return err
	}
	qn := shell + "/" + name
	if mb.seen[qn] {
		return &DuplicateError{What: "mesh", Name: qn}
	}
	mb.seen[qn] = true
	mb.entries = append(mb.entries, meshEntry{shell: shell, name: name, config: cfg})
	return nil
}

// Build triangulates each referenced shell once and produces the full
// mesh set. Triangle buffers are shared between instances of the same
// shell; the built buffers are validated (index bounds, unit normals)
// before being returned.
func (mb *MeshBuilders[P]) Build() (*Meshes, error) {
	tris := map[string]*brep.TriMesh{}
	outs := map[string][][]math32.Vector3{}
	out := &Meshes{}
	for _, ent := range mb.entries {
		sh, err := mb.shells.Shell(ent.shell)
		if err != nil {
			return nil, err
		}
		tm := tris[ent.shell]
		if tm == nil {
			tm, err = sh.Shell.Triangulate(brep.Tolerance)
			if err != nil {
				return nil, &GeometryError{Shell: ent.shell, Err: err}
			}
			if err := tm.Validate(); err != nil {
				return nil, &GeometryError{Shell: ent.shell, Err: err}
			}
			tris[ent.shell] = tm
		}
		m := &Mesh{
			Name:     ent.name,
			Shell:    ent.shell,
			Tri:      tm,
			Pose:     ent.config.Pose,
			Material: ent.config.Material,
		}
		if ent.config.Outlines {
			ol := outs[ent.shell]
			if ol == nil {
				ol = sh.Shell.Outlines()
				outs[ent.shell] = ol
			}
			m.Outlines = ol
		}
		out.List.Add(m.QualifiedName(), m) // qualified names unique via seen
	}
	return out, nil
}
