// seehuhn.de/go/scene - render vector scene graphs into PDF content
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package scene converts vector scene graphs into PDF content streams
// and the auxiliary objects they reference: shading dictionaries,
// interpolation functions, tiling patterns, soft masks and graphics
// state dictionaries.
//
// The scene graph is a tree of groups and paths, immutable during
// rendering.  The package only builds the PDF object graph; reading the
// source vector format and serialising the finished document are left to
// the caller.
package scene

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

// Node is an element of the scene graph, either a *Group or a *Path.
type Node interface {
	isNode()
}

// Group is an ordered sequence of child nodes sharing a local transform.
// Children are rendered in document order; state changes made by one
// child are not visible to its siblings.
type Group struct {
	// Transform is the group's local transform.
	// The zero value is treated as the identity.
	Transform matrix.Matrix

	Children []Node
}

func (*Group) isNode() {}

// Path is a piece of geometry with optional stroke and fill.
type Path struct {
	// Transform is the path's local transform.
	// The zero value is treated as the identity.
	Transform matrix.Matrix

	// Data is the path geometry in user space.
	Data *path.Data

	// BBox is the path's bounding box in user space, as computed by the
	// scene graph provider.  It is required for gradients with
	// object-bounding-box units and for gradient soft masks.
	BBox rect.Rect

	Stroke *Stroke
	Fill   *Fill

	// Hidden suppresses rendering of this path entirely.
	Hidden bool
}

func (*Path) isNode() {}

// Paint describes how a stroke or fill is coloured.  Implementations are
// Color, *LinearGradient, *RadialGradient and *Pattern.  Gradient and
// pattern definitions are shared: the same pointer may appear in any
// number of paints.
type Paint interface {
	isPaint()
}

// Color is an opaque sRGB colour with components in the range [0, 1].
type Color struct {
	R, G, B float64
}

func (Color) isPaint() {}

// Units selects the coordinate system of gradient coordinates.
type Units int

const (
	// UserSpace places gradient coordinates in the user space in effect
	// when the gradient is referenced.
	UserSpace Units = iota

	// ObjectBoundingBox places gradient coordinates in a unit square
	// which is mapped onto the bounding box of the painted element.
	ObjectBoundingBox
)

// GradientStop is one colour stop of a gradient.
type GradientStop struct {
	// Offset is the stop position in the range [0, 1].  Within one
	// gradient, stops must be ordered by non-decreasing offset.
	Offset float64

	Color Color

	// Opacity is the stop's alpha value in the range [0, 1].
	// Use 1 for a fully opaque stop.
	Opacity float64
}

// LinearGradient is an axial gradient from (X1, Y1) to (X2, Y2).
// A gradient must have at least two stops; scenes with fewer stops must
// be resolved to a plain colour upstream.
type LinearGradient struct {
	X1, Y1, X2, Y2 float64

	Stops []GradientStop

	// Transform is the gradient's local transform.
	// The zero value is treated as the identity.
	Transform matrix.Matrix

	Units Units
}

func (*LinearGradient) isPaint() {}

// RadialGradient is a radial gradient with centre (CX, CY), radius R and
// focal point (FX, FY).  The same stop rules as for LinearGradient apply.
type RadialGradient struct {
	CX, CY, R float64
	FX, FY    float64

	Stops []GradientStop

	// Transform is the gradient's local transform.
	// The zero value is treated as the identity.
	Transform matrix.Matrix

	Units Units
}

func (*RadialGradient) isPaint() {}

// Pattern is a tiling pattern.  Content must be a group; it is rendered
// once into a repeatable cell which is tiled with constant spacing equal
// to the size of Rect.
type Pattern struct {
	// Rect is the tile rectangle in pattern space.
	Rect rect.Rect

	// ViewBox, if non-nil, declares an intrinsic coordinate system for
	// Content which is mapped onto Rect before rendering.
	ViewBox *rect.Rect

	// Transform is the pattern's local transform.
	// The zero value is treated as the identity.
	Transform matrix.Matrix

	// Content is the sub-scene rendered into the pattern cell.
	Content *Group
}

func (*Pattern) isPaint() {}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill describes the fill of a path.
type Fill struct {
	Paint Paint
	Rule  FillRule

	// Opacity is the fill alpha in the range [0, 1].
	// Use 1 for a fully opaque fill.
	Opacity float64
}

// Stroke describes the stroke of a path.  Only solid colour stroke
// paints are supported; stroking with a gradient or pattern fails with
// ErrUnsupported.
type Stroke struct {
	Paint Paint

	Width      float64                // line width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64                // miter limit
	Dash       []float64              // dash pattern (nil for solid)
	DashPhase  float64                // dash phase offset

	// Opacity is the stroke alpha in the range [0, 1].
	// Use 1 for a fully opaque stroke.
	Opacity float64
}

// ErrUnsupported is returned for paint combinations outside the
// supported model, for example a stroke painted with a pattern.  Such
// combinations fail loudly instead of being dropped silently.
var ErrUnsupported = errors.New("unsupported paint combination")

// ErrInvalidScene is returned when the scene graph violates its
// contract, for example a gradient with fewer than two stops or a
// pattern whose content is not a group.
var ErrInvalidScene = errors.New("invalid scene graph")

// mat maps the zero-valued matrix to the identity.
func mat(m matrix.Matrix) matrix.Matrix {
	if m == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return m
}
