// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parametric

import "cogentcore.org/core/math32"

// Pose is a rigid transform plus scale, placing a mesh or slider
// in model space.
type Pose struct {
	// Pos is the translation component.
	Pos math32.Vector3

	// Quat is the rotation component.
	Quat math32.Quat

	// Scale is the per-axis scale, 1 by default.
	Scale math32.Vector3
}

// NewPose returns a pose at the given position with identity rotation
// and unit scale.
func NewPose(pos math32.Vector3) Pose {
	ps := Pose{Pos: pos}
	ps.Quat.SetIdentity()
	ps.Scale.Set(1, 1, 1)
	return ps
}

// Defaults sets identity rotation and unit scale, leaving position as is.
func (ps *Pose) Defaults() {
	ps.Quat.SetIdentity()
	ps.Scale.Set(1, 1, 1)
}

// Matrix returns the full transform matrix for the pose.
func (ps *Pose) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(ps.Pos, ps.Quat, ps.Scale)
	return m
}

// TransformPoint transforms a point from local to posed space.
func (ps *Pose) TransformPoint(p math32.Vector3) math32.Vector3 {
	return p.Mul(ps.Scale).MulQuat(ps.Quat).Add(ps.Pos)
}

// TransformDir rotates a direction vector by the pose rotation,
// ignoring position and scale.
func (ps *Pose) TransformDir(d math32.Vector3) math32.Vector3 {
	return d.MulQuat(ps.Quat)
}
