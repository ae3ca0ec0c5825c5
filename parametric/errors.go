// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parametric

import "fmt"

// GeometryError reports that a shell or mesh builder produced invalid
// geometry; the wrapped error has the kernel detail.
type GeometryError struct {
	// Shell is the name of the shell being built.
	Shell string

	// Err is the underlying kernel or builder error.
	Err error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry error in shell %q: %v", e.Shell, e.Err)
}

func (e *GeometryError) Unwrap() error { return e.Err }

// MissingError reports a lookup of a name or tag that was never registered.
type MissingError struct {
	// What is the kind of thing looked up (shell, tag, slider, mesh).
	What string

	// Name is the missing key.
	Name string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("no %s named %q", e.What, e.Name)
}

// DuplicateError reports a registration under a name or tag already in use.
type DuplicateError struct {
	// What is the kind of thing registered (shell, tag, slider, mesh).
	What string

	// Name is the duplicated key.
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q is already registered", e.What, e.Name)
}

// SliderConfigError reports an invalid slider specification at
// registration time.
type SliderConfigError struct {
	// Slider is the slider name.
	Slider string

	// Reason describes what is invalid.
	Reason string
}

func (e *SliderConfigError) Error() string {
	return fmt.Sprintf("slider %q: %s", e.Slider, e.Reason)
}
