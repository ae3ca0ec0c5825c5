// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parametric

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestShells(t *testing.T, tb *testBox) *ShellsByName {
	sb, err := tb.Shells()
	require.NoError(t, err)
	shells, err := sb.Build(tb)
	require.NoError(t, err)
	return shells
}

func TestMeshBuildersBuild(t *testing.T) {
	tb := newTestBox()
	shells := buildTestShells(t, tb)
	mb := NewMeshBuilders(tb, shells)

	for i := 0; i < 3; i++ {
		cfg := NewMeshConfig()
		cfg.Pose.Pos.X = float32(i) * 2
		require.NoError(t, mb.Add("Box", []string{"A", "B", "C"}[i], cfg))
	}

	meshes, err := mb.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, meshes.Len())
	assert.Equal(t, []string{"Box/A", "Box/B", "Box/C"}, meshes.Keys)

	a, err := meshes.Mesh("Box/A")
	require.NoError(t, err)
	b, err := meshes.Mesh("Box/B")
	require.NoError(t, err)

	// shared triangulation, per-instance pose
	assert.Same(t, a.Tri, b.Tri)
	assert.Equal(t, float32(2), b.Pose.Pos.X)
	require.NoError(t, a.Tri.Validate())
}

func TestMeshBuildersMissingShell(t *testing.T) {
	tb := newTestBox()
	mb := NewMeshBuilders(tb, buildTestShells(t, tb))
	err := mb.Add("Nope", "A", NewMeshConfig())
	var me *MissingError
	assert.ErrorAs(t, err, &me)
}

func TestMeshBuildersNilConfig(t *testing.T) {
	tb := newTestBox()
	mb := NewMeshBuilders(tb, buildTestShells(t, tb))
	assert.Error(t, mb.Add("Box", "A", nil))
	meshes, err := mb.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, meshes.Len())
}

func TestMeshBuildersDuplicate(t *testing.T) {
	tb := newTestBox()
	mb := NewMeshBuilders(tb, buildTestShells(t, tb))
	require.NoError(t, mb.Add("Box", "A", NewMeshConfig()))
	err := mb.Add("Box", "A", NewMeshConfig())
	var de *DuplicateError
	assert.ErrorAs(t, err, &de)
}

func TestMeshOutlines(t *testing.T) {
	tb := newTestBox()
	mb := NewMeshBuilders(tb, buildTestShells(t, tb))
	cfg := NewMeshConfig()
	cfg.Outlines = true
	require.NoError(t, mb.Add("Box", "A", cfg))
	meshes, err := mb.Build()
	require.NoError(t, err)
	m, err := meshes.Mesh("Box/A")
	require.NoError(t, err)
	assert.Equal(t, 6, len(m.Outlines))
}

func TestPoseTransform(t *testing.T) {
	ps := NewPose(math32.Vec3(1, 0, 0))
	p := ps.TransformPoint(math32.Vec3(0, 2, 0))
	assert.InDelta(t, 1.0, float64(p.X), 1e-5)
	assert.InDelta(t, 2.0, float64(p.Y), 1e-5)

	ps.Quat = math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(90))
	p = ps.TransformPoint(math32.Vec3(1, 0, 0))
	assert.InDelta(t, 1.0, float64(p.X), 1e-4)
	assert.InDelta(t, 1.0, float64(p.Y), 1e-4)
}
