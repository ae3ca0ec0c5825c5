// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parametric

import (
	"fmt"
	"time"
)

// Result is the complete output of one build pass. It is immutable once
// returned: regeneration produces a new Result and swaps it in whole.
type Result struct {
	// Shells are the built shells with their tagged elements.
	Shells *ShellsByName

	// Meshes are the built mesh instances.
	Meshes *Meshes

	// Sliders are the interactive sliders, empty if the parameter type
	// is not an [Interactor].
	Sliders *Sliders

	// Fingerprint is the parameter fingerprint this result was built from.
	Fingerprint string

	// Duration is how long the build took.
	Duration time.Duration
}

// Build runs the full pipeline once, synchronously: shells, then meshes,
// then sliders. Any stage failing fails the whole build; no partial
// result is ever returned.
func Build[P Mesher[P]](params P) (*Result, error) {
	start := time.Now()
	sb, err := params.Shells()
	if err != nil {
		return nil, fmt.Errorf("shell builders: %w", err)
	}
	shells, err := sb.Build(params)
	if err != nil {
		return nil, err
	}
	mb, err := params.Meshes(shells)
	if err != nil {
		return nil, fmt.Errorf("mesh builders: %w", err)
	}
	meshes, err := mb.Build()
	if err != nil {
		return nil, err
	}
	sliders := &Sliders{}
	if ia, ok := any(params).(Interactor[P]); ok {
		sliders, err = ia.Sliders(shells)
		if err != nil {
			return nil, fmt.Errorf("sliders: %w", err)
		}
		if sliders == nil {
			sliders = &Sliders{}
		}
	}
	return &Result{
		Shells:      shells,
		Meshes:      meshes,
		Sliders:     sliders,
		Fingerprint: params.Fingerprint(),
		Duration:    time.Since(start),
	}, nil
}
