// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parametric

import (
	"errors"
	"fmt"

	"cogentcore.org/cad/brep"
	"cogentcore.org/core/math32"
)

// testBox is a minimal Mesher fixture: one swept cube shell with a
// tagged profile face, one mesh instance.
type testBox struct {
	Side float32

	// Fail makes the shell builder return an error.
	Fail bool
}

func newTestBox() *testBox {
	return &testBox{Side: 1}
}

func (tb *testBox) Clone() *testBox {
	c := *tb
	return &c
}

func (tb *testBox) Fingerprint() string {
	return fmt.Sprintf("box|%g|%v", tb.Side, tb.Fail)
}

func boxProfile(s float32) brep.Face {
	return brep.NewFace(
		math32.Vec3(0, 0, 0),
		math32.Vec3(0, s, 0),
		math32.Vec3(0, s, s),
		math32.Vec3(0, 0, s),
	)
}

func (tb *testBox) Shells() (*ShellBuilders[*testBox], error) {
	sb := NewShellBuilders[*testBox]()
	err := sb.Add("Box", func(p *testBox) (*Shell, error) {
		if p.Fail {
			return nil, errors.New("forced failure")
		}
		profile := boxProfile(p.Side)
		sd, err := brep.SweepFace(profile, math32.Vec3(p.Side, 0, 0))
		if err != nil {
			return nil, err
		}
		ksh, err := sd.Shell()
		if err != nil {
			return nil, err
		}
		sh := &Shell{Shell: ksh}
		if err := sh.Tag("Profile", FaceElement{Face: profile}); err != nil {
			return nil, err
		}
		return sh, nil
	})
	if err != nil {
		return nil, err
	}
	return sb, nil
}

func (tb *testBox) Meshes(shells *ShellsByName) (*MeshBuilders[*testBox], error) {
	mb := NewMeshBuilders(tb, shells)
	if err := mb.Add("Box", "Main", NewMeshConfig()); err != nil {
		return nil, err
	}
	return mb, nil
}
