// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parametric

import (
	"cogentcore.org/cad/brep"
	"cogentcore.org/core/base/keylist"
)

// Tag names a geometric element of interest within a shell, so that
// downstream mesh and slider builders can locate it after regeneration.
type Tag string

// Element is a tagged geometric element: one of [VertexElement],
// [EdgeElement], [WireElement], or [FaceElement].
type Element interface {
	element()
}

// VertexElement is a tagged vertex.
type VertexElement struct {
	Vertex brep.Vertex
}

// EdgeElement is a tagged edge.
type EdgeElement struct {
	Edge brep.Edge
}

// WireElement is a tagged wire.
type WireElement struct {
	Wire brep.Wire
}

// FaceElement is a tagged face.
type FaceElement struct {
	Face brep.Face
}

func (VertexElement) element() {}
func (EdgeElement) element()   {}
func (WireElement) element()   {}
func (FaceElement) element()   {}

// TaggedElements is an ordered store of tagged elements within one shell.
// Tags are unique: inserting under an existing tag is an error and leaves
// the store unchanged.
type TaggedElements struct {
	keylist.List[Tag, Element]
}

// Insert adds an element under the given tag, returning a
// [DuplicateError] if the tag is already present.
func (te *TaggedElements) Insert(tag Tag, el Element) error {
	if err := te.List.Add(tag, el); err != nil {
		return &DuplicateError{What: "tag", Name: string(tag)}
	}
	return nil
}

// ByTag returns the element under the given tag, or a [MissingError].
func (te *TaggedElements) ByTag(tag Tag) (Element, error) {
	el, ok := te.AtTry(tag)
	if !ok {
		return nil, &MissingError{What: "tag", Name: string(tag)}
	}
	return el, nil
}

// Vertex returns the vertex under the given tag, erroring if the tag is
// missing or holds a different element kind.
func (te *TaggedElements) Vertex(tag Tag) (brep.Vertex, error) {
	el, err := te.ByTag(tag)
	if err != nil {
		return brep.Vertex{}, err
	}
	ve, ok := el.(VertexElement)
	if !ok {
		return brep.Vertex{}, &MissingError{What: "vertex tag", Name: string(tag)}
	}
	return ve.Vertex, nil
}

// Edge returns the edge under the given tag, erroring if the tag is
// missing or holds a different element kind.
func (te *TaggedElements) Edge(tag Tag) (brep.Edge, error) {
	el, err := te.ByTag(tag)
	if err != nil {
		return brep.Edge{}, err
	}
	ee, ok := el.(EdgeElement)
	if !ok {
		return brep.Edge{}, &MissingError{What: "edge tag", Name: string(tag)}
	}
	return ee.Edge, nil
}

// Wire returns the wire under the given tag, erroring if the tag is
// missing or holds a different element kind.
func (te *TaggedElements) Wire(tag Tag) (brep.Wire, error) {
	el, err := te.ByTag(tag)
	if err != nil {
		return brep.Wire{}, err
	}
	we, ok := el.(WireElement)
	if !ok {
		return brep.Wire{}, &MissingError{What: "wire tag", Name: string(tag)}
	}
	return we.Wire, nil
}

// Face returns the face under the given tag, erroring if the tag is
// missing or holds a different element kind.
func (te *TaggedElements) Face(tag Tag) (brep.Face, error) {
	el, err := te.ByTag(tag)
	if err != nil {
		return brep.Face{}, err
	}
	fe, ok := el.(FaceElement)
	if !ok {
		return brep.Face{}, &MissingError{What: "face tag", Name: string(tag)}
	}
	return fe.Face, nil
}
