// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import (
	"fmt"
	"testing"
	"time"

	"cogentcore.org/cad/brep"
	"cogentcore.org/cad/parametric"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxParams is a full Interactor fixture: a swept box whose side length
// is driven by one linear slider sitting at (0, 0, Side).
type boxParams struct {
	Side float32
}

const minSide = 0.2

func (bp *boxParams) Clone() *boxParams {
	c := *bp
	return &c
}

func (bp *boxParams) Fingerprint() string {
	return fmt.Sprintf("box|%g", bp.Side)
}

func (bp *boxParams) Shells() (*parametric.ShellBuilders[*boxParams], error) {
	sb := parametric.NewShellBuilders[*boxParams]()
	err := sb.Add("Box", func(p *boxParams) (*parametric.Shell, error) {
		profile := brep.NewFace(
			math32.Vec3(0, 0, 0),
			math32.Vec3(0, p.Side, 0),
			math32.Vec3(0, p.Side, p.Side),
			math32.Vec3(0, 0, p.Side),
		)
		sd, err := brep.SweepFace(profile, math32.Vec3(p.Side, 0, 0))
		if err != nil {
			return nil, err
		}
		ksh, err := sd.Shell()
		if err != nil {
			return nil, err
		}
		return &parametric.Shell{Shell: ksh}, nil
	})
	if err != nil {
		return nil, err
	}
	return sb, nil
}

func (bp *boxParams) Meshes(shells *parametric.ShellsByName) (*parametric.MeshBuilders[*boxParams], error) {
	mb := parametric.NewMeshBuilders(bp, shells)
	if err := mb.Add("Box", "Main", parametric.NewMeshConfig()); err != nil {
		return nil, err
	}
	return mb, nil
}

func (bp *boxParams) Sliders(shells *parametric.ShellsByName) (*parametric.Sliders, error) {
	ss := &parametric.Sliders{}
	sl := parametric.NewSlider(math32.Vec3(0, 0, bp.Side))
	sl.Kind = parametric.Linear
	sl.Direction = math32.Vec3(0, 0, 1)
	sl.Min = minSide
	sl.PlaneNormal = math32.Vec3(1, 0, 0)
	if err := ss.Add("Side", sl); err != nil {
		return nil, err
	}
	return ss, nil
}

func (bp *boxParams) SliderMoved(name string, prev, cur parametric.Pose) {
	bp.Side += cur.Pos.Z - prev.Pos.Z
}

func (bp *boxParams) SliderTooltip(name string) string {
	return fmt.Sprintf("Side: %.2f", bp.Side)
}

// rayAt returns a ray from +X toward -X, passing through (0, y, z).
func rayAt(y, z float32) math32.Ray {
	return math32.Ray{Origin: math32.Vec3(10, y, z), Dir: math32.Vec3(-1, 0, 0)}
}

func newBoxModel(t *testing.T) *parametric.Model[*boxParams] {
	t.Helper()
	md := parametric.NewModel(&boxParams{Side: 0.5})
	_, err := md.Rebuild()
	require.NoError(t, err)
	return md
}

func waitIdle(t *testing.T, md *parametric.Model[*boxParams]) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if !md.Busy() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("model never went idle")
}

func TestHoverBehindRayOrigin(t *testing.T) {
	md := newBoxModel(t)
	dr := NewDragger(md)

	// thumb at (0, 0, 0.5) sits behind this ray's origin, so the pick
	// distance is to the origin itself, well outside the thumb radius
	ray := math32.Ray{Origin: math32.Vec3(-1, 0, 0.5), Dir: math32.Vec3(-1, 0, 0)}
	assert.False(t, dr.PointerMove(ray))
	assert.Equal(t, Idle, dr.State())
}

func TestDragBehindPlaneIgnored(t *testing.T) {
	md := newBoxModel(t)
	dr := NewDragger(md)

	require.True(t, dr.Press(rayAt(0, 0.5)))

	// drag plane is x = 0; this ray points away from it, so the drag
	// produces no motion and no parameter change
	away := math32.Ray{Origin: math32.Vec3(-5, 0, 0.3), Dir: math32.Vec3(-1, 0, 0)}
	assert.False(t, dr.PointerMove(away))
	assert.InDelta(t, 0.5, float64(md.Params().Side), 1e-5)
	assert.Equal(t, Dragging, dr.State())
}

func TestHoverStates(t *testing.T) {
	md := newBoxModel(t)
	dr := NewDragger(md)
	assert.Equal(t, Idle, dr.State())

	// thumb is at (0, 0, 0.5)
	assert.True(t, dr.PointerMove(rayAt(0, 0.5)))
	assert.Equal(t, Hovered, dr.State())
	assert.Equal(t, "Side", dr.Active())
	assert.Equal(t, "Side: 0.50", dr.Tooltip())

	// no change on repeat
	assert.False(t, dr.PointerMove(rayAt(0, 0.5)))

	// far away: back to idle
	assert.True(t, dr.PointerMove(rayAt(5, 5)))
	assert.Equal(t, Idle, dr.State())
	assert.Equal(t, "", dr.Tooltip())
}

func TestDragMovesParams(t *testing.T) {
	md := newBoxModel(t)
	dr := NewDragger(md)

	require.True(t, dr.Press(rayAt(0, 0.5)))
	assert.Equal(t, Dragging, dr.State())

	assert.True(t, dr.PointerMove(rayAt(0, 0.3)))
	assert.InDelta(t, 0.3, float64(md.Params().Side), 1e-4)

	dr.Release()
	assert.Equal(t, Hovered, dr.State())
	waitIdle(t, md)

	// slider followed the rebuild
	sl, err := md.Current().Sliders.Slider("Side")
	require.NoError(t, err)
	assert.InDelta(t, 0.3, float64(sl.Pose.Pos.Z), 1e-4)
}

func TestDragClampsToMin(t *testing.T) {
	md := newBoxModel(t)
	dr := NewDragger(md)

	require.True(t, dr.Press(rayAt(0, 0.5)))

	// dragging past the travel minimum clamps at it
	assert.True(t, dr.PointerMove(rayAt(0, 0.05)))
	assert.InDelta(t, minSide, float64(md.Params().Side), 1e-4)
	waitIdle(t, md)

	// further attempts below the minimum do not move it
	dr.PointerMove(rayAt(0, 0.01))
	assert.InDelta(t, minSide, float64(md.Params().Side), 1e-4)
}

func TestDragOffPlaneComponentIgnored(t *testing.T) {
	md := newBoxModel(t)
	dr := NewDragger(md)

	require.True(t, dr.Press(rayAt(0, 0.5)))
	// motion in y is off the linear direction and discarded
	assert.True(t, dr.PointerMove(rayAt(3, 0.4)))
	assert.InDelta(t, 0.4, float64(md.Params().Side), 1e-4)
}

func TestPressMissesEmptySpace(t *testing.T) {
	md := newBoxModel(t)
	dr := NewDragger(md)
	assert.False(t, dr.Press(rayAt(4, 4)))
	assert.Equal(t, Idle, dr.State())
}

func TestCancel(t *testing.T) {
	md := newBoxModel(t)
	dr := NewDragger(md)
	require.True(t, dr.Press(rayAt(0, 0.5)))
	dr.Cancel()
	assert.Equal(t, Idle, dr.State())
	assert.Equal(t, "", dr.Active())
}
