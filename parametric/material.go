// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parametric

import (
	"image/color"

	"cogentcore.org/core/colors"
)

// Material is a renderer-agnostic surface description, mapped onto the
// host renderer's material by an adapter such as xyzcad.
type Material struct {
	// Color is the base surface color.
	Color color.RGBA

	// Emissive is the light emitted by the surface regardless of lighting.
	Emissive color.RGBA

	// Shiny is the specular shininess exponent.
	Shiny float32

	// Reflective is the specular reflectiveness factor.
	Reflective float32

	// Bright is an overall multiplier on the final color.
	Bright float32
}

// Defaults sets a neutral gray material.
func (mt *Material) Defaults() {
	mt.Color = colors.FromRGB(128, 128, 128)
	mt.Emissive = color.RGBA{}
	mt.Shiny = 30
	mt.Reflective = 1
	mt.Bright = 1
}

// NewMaterial returns a default material with the given color.
func NewMaterial(clr color.RGBA) Material {
	var mt Material
	mt.Defaults()
	mt.Color = clr
	return mt
}
