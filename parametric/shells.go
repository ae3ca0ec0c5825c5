// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parametric

import (
	"cogentcore.org/cad/brep"
	"cogentcore.org/core/base/keylist"
)

// Shell is a built shell: the kernel geometry plus the tagged elements
// its builder recorded for downstream mesh and slider builders.
type Shell struct {
	// Shell is the kernel geometry.
	Shell brep.Shell

	// Tags are the elements this shell's builder tagged.
	Tags TaggedElements
}

// Tag records an element under the given tag, returning a
// [DuplicateError] if the tag is already used in this shell.
func (sh *Shell) Tag(tag Tag, el Element) error {
	return sh.Tags.Insert(tag, el)
}

// ShellFunc builds one named shell from the parameters.
type ShellFunc[P any] func(params P) (*Shell, error)

// ShellBuilders is an ordered registry of named shell builders.
// Build order follows registration order, so dependent artifacts
// (meshes, sliders) see shells in a stable sequence.
type ShellBuilders[P any] struct {
	builders keylist.List[string, ShellFunc[P]]
}

// NewShellBuilders returns an empty registry.
func NewShellBuilders[P any]() *ShellBuilders[P] {
	return &ShellBuilders[P]{}
}

// Add registers a builder under the given shell name, returning a
// [DuplicateError] if the name is taken.
func (sb *ShellBuilders[P]) Add(name string, fn ShellFunc[P]) error {
	if err := sb.builders.Add(name, fn); err != nil {
		return &DuplicateError{What: "shell", Name: name}
	}
	return nil
}

// Names returns the registered shell names in build order.
func (sb *ShellBuilders[P]) Names() []string {
	return sb.builders.Keys
}

// Build runs every registered builder against the parameters, in
// registration order, validating each produced shell. Any failure aborts
// the whole build with a [GeometryError]; no partial result is returned.
func (sb *ShellBuilders[P]) Build(params P) (*ShellsByName, error) {
	out := &ShellsByName{}
	for i, fn := range sb.builders.Values {
		name := sb.builders.Keys[i]
		sh, err := fn(params)
		if err != nil {
			return nil, &GeometryError{Shell: name, Err: err}
		}
		if err := sh.Shell.Validate(); err != nil {
			return nil, &GeometryError{Shell: name, Err: err}
		}
		out.List.Add(name, sh) // names unique by construction
	}
	return out, nil
}

// ShellsByName is the ordered set of built shells from one build pass.
type ShellsByName struct {
	keylist.List[string, *Shell]
}

// Shell returns the shell with the given name, or a [MissingError].
func (sn *ShellsByName) Shell(name string) (*Shell, error) {
	sh, ok := sn.AtTry(name)
	if !ok {
		return nil, &MissingError{What: "shell", Name: name}
	}
	return sh, nil
}
