// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package parametric implements parameter-driven solid modelling: a
parameter type declares named shell builders over the brep kernel,
mesh instances of those shells, and optional interactive sliders, and a
[Model] regenerates all of it in the background whenever the parameters
change, with the newest request winning.

A concrete parameter type opts into the pipeline by implementing the
capability interfaces: [Shaper] to produce shells, [Mesher] to produce
meshes, and optionally [Interactor] to expose sliders. The interfaces
are generic over the concrete type itself, e.g.:

	type Gear struct { Teeth int; ... }

	func (g *Gear) Clone() *Gear { ... }
	func (g *Gear) Fingerprint() string { ... }
	func (g *Gear) Shells() (*parametric.ShellBuilders[*Gear], error) { ... }
	func (g *Gear) Meshes(shells *parametric.ShellsByName) (*parametric.MeshBuilders[*Gear], error) { ... }

See examples/cube for a complete worked example.
*/
package parametric

// Params is the base capability of a parameter type: it can be cloned
// for a background build, and fingerprinted for change detection.
type Params[P any] interface {
	// Clone returns an independent copy of the parameters, safe to read
	// from a build goroutine while the original keeps mutating.
	Clone() P

	// Fingerprint returns a value summarizing all fields that affect the
	// build; two parameter states build identical results iff their
	// fingerprints are equal.
	Fingerprint() string
}

// Shaper is a parameter type that can declare its shell builders.
type Shaper[P any] interface {
	Params[P]

	// Shells returns the registry of named shell builders.
	Shells() (*ShellBuilders[P], error)
}

// Mesher is a parameter type that can declare mesh instances over its
// built shells.
type Mesher[P any] interface {
	Shaper[P]

	// Meshes registers mesh instances against the built shells.
	Meshes(shells *ShellsByName) (*MeshBuilders[P], error)
}

// Interactor is a parameter type that additionally exposes interactive
// sliders. A [Mesher] without this capability simply builds with an
// empty slider set.
type Interactor[P any] interface {
	Mesher[P]

	// Sliders returns the slider set for the built shells.
	Sliders(shells *ShellsByName) (*Sliders, error)

	// SliderMoved maps a slider drag onto the parameters: prev is the
	// slider's pose from the last applied build, cur the dragged
	// candidate pose. Implementations mutate the receiver; the model
	// regenerates afterward.
	SliderMoved(name string, prev, cur Pose)

	// SliderTooltip returns display text for the given slider,
	// shown while hovering or dragging.
	SliderTooltip(name string) string
}
