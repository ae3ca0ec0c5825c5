// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parametric

import (
	"cogentcore.org/core/base/keylist"
	"cogentcore.org/core/math32"
)

// SliderKinds are the kinds of slider motion.
type SliderKinds int32

const (
	// Planar sliders move freely on their drag plane.
	Planar SliderKinds = iota

	// Linear sliders move along a fixed direction on the drag plane,
	// optionally clamped to [Min, Max] travel.
	Linear
)

func (sk SliderKinds) String() string {
	switch sk {
	case Planar:
		return "Planar"
	case Linear:
		return "Linear"
	}
	return "SliderKinds(invalid)"
}

// Slider specifies one interactive handle: where it sits, what plane it
// drags on, and how its motion is constrained. Pointer interaction is
// driven by the interact package; the slider itself is pure data
// rebuilt on every regeneration.
type Slider struct {
	// Pose is the handle placement in model space.
	Pose Pose

	// PlaneNormal is the normal of the drag plane through Pose.Pos.
	PlaneNormal math32.Vector3

	// Kind is the motion constraint kind.
	Kind SliderKinds

	// Direction is the drag direction for Linear sliders; it must be
	// nonzero and is normalized on use. Ignored for Planar.
	Direction math32.Vector3

	// Min is the minimum position along Direction for Linear sliders,
	// as a dot product with the normalized direction.
	// -Infinity leaves travel unbounded below.
	Min float32

	// Max is the maximum position along Direction, +Infinity for
	// unbounded above.
	Max float32

	// ThumbRadius is the pick radius of the handle in model units.
	ThumbRadius float32
}

// Defaults sets unbounded travel, a default thumb radius,
// and a +Y drag plane normal.
func (sl *Slider) Defaults() {
	sl.Pose.Defaults()
	sl.PlaneNormal = math32.Vec3(0, 1, 0)
	sl.Min = -math32.Infinity
	sl.Max = math32.Infinity
	sl.ThumbRadius = 0.1
}

// NewSlider returns a default Planar slider at the given position.
func NewSlider(pos math32.Vector3) *Slider {
	sl := &Slider{}
	sl.Defaults()
	sl.Pose.Pos = pos
	return sl
}

// Validate checks the slider configuration, returning a [SliderConfigError]
// naming the given slider on failure.
func (sl *Slider) Validate(name string) error {
	if sl.PlaneNormal.Length() < 1.0e-6 {
		return &SliderConfigError{Slider: name, Reason: "drag plane normal is zero"}
	}
	if sl.ThumbRadius <= 0 {
		return &SliderConfigError{Slider: name, Reason: "thumb radius must be positive"}
	}
	if sl.Kind == Linear {
		if sl.Direction.Length() < 1.0e-6 {
			return &SliderConfigError{Slider: name, Reason: "linear slider direction is zero"}
		}
		if sl.Min > sl.Max {
			return &SliderConfigError{Slider: name, Reason: "min travel exceeds max"}
		}
	}
	return nil
}

// Sliders is the ordered set of sliders from one build pass,
// keyed by slider name.
type Sliders struct {
	keylist.List[string, *Slider]
}

// Add validates and registers a slider under the given name, returning a
// [SliderConfigError] or [DuplicateError] on failure.
func (ss *Sliders) Add(name string, sl *Slider) error {
	if err := sl.Validate(name); err != nil {
		return err
	}
	if err := ss.List.Add(name, sl); err != nil {
		return &DuplicateError{What: "slider", Name: name}
	}
	return nil
}

// Slider returns the slider with the given name, or a [MissingError].
func (ss *Sliders) Slider(name string) (*Slider, error) {
	sl, ok := ss.AtTry(name)
	if !ok {
		return nil, &MissingError{What: "slider", Name: name}
	}
	return sl, nil
}
