// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzcad displays built parametric models in an [xyz] scene:
// each build result becomes a set of named [xyz.GenMesh]es with one
// [xyz.Solid] per mesh instance under a single group, plus optional
// outline lines and slider handle spheres. Re-uploading after a
// regeneration replaces the group contents wholesale.
package xyzcad

import (
	"fmt"
	"strings"

	"cogentcore.org/cad/parametric"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
)

// Update replaces the group's contents with the meshes of the given
// build result. Mesh names on the scene are prefixed with the group
// name, so multiple models can share one scene. A nil result (no
// successful build yet) just clears the group.
func Update(sc *xyz.Scene, gp *xyz.Group, res *parametric.Result) {
	gp.DeleteChildren()
	deleteGroupMeshes(sc, gp)
	if res == nil {
		return
	}
	for _, m := range res.Meshes.Values {
		nm := gp.Name + "/" + m.QualifiedName()
		ms := &xyz.GenMesh{
			Vertex:   m.Tri.Vertex,
			Normal:   m.Tri.Normal,
			TexCoord: make(math32.ArrayF32, 2*m.Tri.NumVertex()),
			Index:    m.Tri.Index,
		}
		ms.Name = nm
		sc.SetMesh(ms)

		sld := xyz.NewSolid(gp).SetMesh(ms)
		sld.SetName(nm)
		setPose(sld, m.Pose)
		setMaterial(sld, m.Material)

		for i, pts := range m.Outlines {
			onm := fmt.Sprintf("%s/outline%d", nm, i)
			lns := xyz.NewLines(sc, onm, pts, math32.Vec2(.005, .005), xyz.CloseLines)
			osld := xyz.NewSolid(gp).SetMesh(lns)
			osld.SetName(onm)
			setPose(osld, m.Pose)
			osld.Material.Color = colors.FromRGB(0, 0, 0)
			osld.Material.Emissive = colors.FromRGB(40, 40, 40)
		}
	}
}

// UpdateSliders adds one handle sphere per slider to the group, named
// group/slider. Call after [Update] with the same result; hosts run
// hit testing through the interact package, this is display only.
func UpdateSliders(sc *xyz.Scene, gp *xyz.Group, res *parametric.Result) {
	if res == nil {
		return
	}
	for i, sl := range res.Sliders.Values {
		nm := gp.Name + "/" + res.Sliders.Keys[i]
		sph := xyz.NewSphere(sc, nm, sl.ThumbRadius, 16)
		sld := xyz.NewSolid(gp).SetMesh(sph)
		sld.SetName(nm)
		setPose(sld, sl.Pose)
		sld.Material.Color = colors.FromRGB(240, 180, 20)
		sld.Material.Emissive = colors.FromRGB(60, 45, 5)
	}
}

// SetFromModel uploads the model's current result, logging and clearing
// if the model has not built successfully yet.
func SetFromModel[P parametric.Mesher[P]](sc *xyz.Scene, gp *xyz.Group, md *parametric.Model[P]) {
	res := md.Current()
	if res == nil {
		errors.Log(fmt.Errorf("xyzcad: model %q has no built result", gp.Name))
	}
	Update(sc, gp, res)
	UpdateSliders(sc, gp, res)
}

// deleteGroupMeshes removes this group's previously registered meshes
// from the scene library, so instances dropped by a regeneration do
// not accumulate. Copies already uploaded to a live Phong system are
// only reclaimed by its ResetMeshes, which has no per-mesh delete.
func deleteGroupMeshes(sc *xyz.Scene, gp *xyz.Group) {
	prefix := gp.Name + "/"
	var stale []string
	for _, nm := range sc.Meshes.Keys() {
		if strings.HasPrefix(nm, prefix) {
			stale = append(stale, nm)
		}
	}
	for _, nm := range stale {
		sc.Meshes.DeleteKey(nm)
	}
}

func setPose(sld *xyz.Solid, ps parametric.Pose) {
	sld.Pose.Pos = ps.Pos
	sld.Pose.Quat = ps.Quat
	sld.Pose.Scale = ps.Scale
}

func setMaterial(sld *xyz.Solid, mt parametric.Material) {
	sld.Material.Color = mt.Color
	sld.Material.Emissive = mt.Emissive
	sld.Material.Shiny = mt.Shiny
	sld.Material.Reflective = mt.Reflective
	sld.Material.Bright = mt.Bright
}
