// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parametric

import (
	"testing"

	"cogentcore.org/cad/brep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellBuildersBuild(t *testing.T) {
	tb := newTestBox()
	sb, err := tb.Shells()
	require.NoError(t, err)
	assert.Equal(t, []string{"Box"}, sb.Names())

	shells, err := sb.Build(tb)
	require.NoError(t, err)
	assert.Equal(t, 1, shells.Len())

	sh, err := shells.Shell("Box")
	require.NoError(t, err)
	assert.Equal(t, 6, len(sh.Shell.Faces))

	fc, err := sh.Tags.Face("Profile")
	require.NoError(t, err)
	c := fc.Centroid()
	assert.InDelta(t, 0.5, float64(c.Y), 1e-5)

	_, err = shells.Shell("Nope")
	var me *MissingError
	assert.ErrorAs(t, err, &me)
}

func TestShellBuildersDuplicate(t *testing.T) {
	sb := NewShellBuilders[*testBox]()
	fn := func(p *testBox) (*Shell, error) { return &Shell{}, nil }
	require.NoError(t, sb.Add("A", fn))
	err := sb.Add("A", fn)
	var de *DuplicateError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, []string{"A"}, sb.Names())
}

func TestShellBuildersFailureAborts(t *testing.T) {
	tb := newTestBox()
	tb.Fail = true
	sb, err := tb.Shells()
	require.NoError(t, err)
	shells, err := sb.Build(tb)
	assert.Nil(t, shells)
	var ge *GeometryError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "Box", ge.Shell)
}

func TestShellBuildersValidates(t *testing.T) {
	sb := NewShellBuilders[*testBox]()
	require.NoError(t, sb.Add("Open", func(p *testBox) (*Shell, error) {
		// one lone face: not a closed shell
		return &Shell{Shell: brep.Shell{Faces: []brep.Face{boxProfile(1)}}}, nil
	}))
	_, err := sb.Build(newTestBox())
	var ge *GeometryError
	assert.ErrorAs(t, err, &ge)
}
