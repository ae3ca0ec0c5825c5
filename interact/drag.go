// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interact drives parametric sliders from pointer rays: hover
// detection against slider thumbs, drag projection onto the slider's
// plane or line, travel clamping, and the callback into the parameter
// type that maps slider motion onto parameter values.
//
// Rays must have normalized directions, as produced by the host's
// unprojection (e.g. xyz camera picking).
package interact

import (
	"cogentcore.org/cad/parametric"
	"cogentcore.org/core/math32"
)

// States are the slider interaction states.
type States int32

const (
	// Idle: no slider under the pointer.
	Idle States = iota

	// Hovered: the pointer ray is over a slider thumb.
	Hovered

	// Dragging: a slider is being dragged.
	Dragging
)

func (st States) String() string {
	switch st {
	case Idle:
		return "Idle"
	case Hovered:
		return "Hovered"
	case Dragging:
		return "Dragging"
	}
	return "States(invalid)"
}

// moveThreshold is the minimum thumb travel, in model units, before a
// drag mutates the parameters and triggers a rebuild.
const moveThreshold = 1.0e-4

// Dragger runs slider interaction for one [parametric.Model]: feed it
// pointer rays in model space via [Dragger.PointerMove], and press and
// release events, and it hit-tests slider thumbs, projects drags onto
// the slider's plane or line, clamps linear travel, and routes motion
// into the parameters via [parametric.Interactor.SliderMoved] followed
// by a model update.
type Dragger[P parametric.Interactor[P]] struct {
	// Model is the model whose sliders are interactive.
	Model *parametric.Model[P]

	// HitPad is extra pick radius added to each slider's thumb radius.
	HitPad float32

	state  States
	active string
}

// NewDragger returns a dragger over the given model.
func NewDragger[P parametric.Interactor[P]](md *parametric.Model[P]) *Dragger[P] {
	return &Dragger[P]{Model: md}
}

// State returns the current interaction state.
func (dr *Dragger[P]) State() States {
	return dr.state
}

// Active returns the name of the hovered or dragged slider,
// empty when idle.
func (dr *Dragger[P]) Active() string {
	return dr.active
}

// Tooltip returns the parameter type's tooltip for the active slider,
// empty when idle.
func (dr *Dragger[P]) Tooltip() string {
	if dr.active == "" {
		return ""
	}
	return dr.Model.Params().SliderTooltip(dr.active)
}

// sliders returns the live slider set, nil before the first build.
func (dr *Dragger[P]) sliders() *parametric.Sliders {
	res := dr.Model.Current()
	if res == nil {
		return nil
	}
	return res.Sliders
}

// hitTest returns the name of the nearest slider whose thumb the ray
// passes within picking distance of, or empty.
func (dr *Dragger[P]) hitTest(ray math32.Ray) string {
	ss := dr.sliders()
	if ss == nil {
		return ""
	}
	best := ""
	bestDist := math32.Infinity
	for i, sl := range ss.Values {
		d := ray.DistanceToPoint(sl.Pose.Pos)
		if d <= sl.ThumbRadius+dr.HitPad && d < bestDist {
			best = ss.Keys[i]
			bestDist = d
		}
	}
	return best
}

// PointerMove processes a pointer ray, updating hover state or, while
// dragging, moving the active slider. It returns true if the
// interaction state or the parameters changed.
func (dr *Dragger[P]) PointerMove(ray math32.Ray) bool {
	if dr.state == Dragging {
		return dr.drag(ray)
	}
	hit := dr.hitTest(ray)
	if hit == "" {
		changed := dr.state != Idle
		dr.state = Idle
		dr.active = ""
		return changed
	}
	changed := dr.state != Hovered || dr.active != hit
	dr.state = Hovered
	dr.active = hit
	return changed
}

// Press begins a drag if a slider is under the given ray,
// returning whether a drag started.
func (dr *Dragger[P]) Press(ray math32.Ray) bool {
	hit := dr.hitTest(ray)
	if hit == "" {
		return false
	}
	dr.state = Dragging
	dr.active = hit
	return true
}

// Release ends a drag, leaving the slider hovered.
func (dr *Dragger[P]) Release() {
	if dr.state != Dragging {
		return
	}
	dr.state = Hovered
}

// Cancel abandons any interaction and returns to idle. Parameter
// changes already applied during the drag are not reverted.
func (dr *Dragger[P]) Cancel() {
	dr.state = Idle
	dr.active = ""
}

// drag projects the ray onto the active slider's drag plane, constrains
// and clamps the motion, and routes it into the parameters.
func (dr *Dragger[P]) drag(ray math32.Ray) bool {
	ss := dr.sliders()
	if ss == nil {
		return false
	}
	sl, err := ss.Slider(dr.active)
	if err != nil { // slider vanished in a rebuild
		dr.Cancel()
		return true
	}
	prev := sl.Pose
	var pl math32.Plane
	pl.SetFromNormalAndCoplanarPoint(sl.PlaneNormal.Normal(), prev.Pos)
	hit, ok := ray.IntersectPlane(pl)
	if !ok { // plane behind the ray or parallel to it
		return false
	}
	npos := hit
	if sl.Kind == parametric.Linear {
		dir := sl.Direction.Normal()
		delta := hit.Sub(prev.Pos).Dot(dir)
		npos = prev.Pos.Add(dir.MulScalar(delta))
		s := npos.Dot(dir)
		sc := math32.Clamp(s, sl.Min, sl.Max)
		if sc != s {
			npos = npos.Add(dir.MulScalar(sc - s))
		}
	}
	if npos.DistanceTo(prev.Pos) <= moveThreshold {
		return false
	}
	cand := prev
	cand.Pos = npos
	dr.Model.Params().SliderMoved(dr.active, prev, cand)
	dr.Model.Update()
	return true
}
