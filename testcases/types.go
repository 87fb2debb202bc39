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

// Package testcases holds a collection of scene graphs for testing the
// renderer.  Each test case is a complete scene together with its
// canvas size; the genpdf tool turns the collection into reference
// PDFs and PNGs.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scene"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string     // lowercase a-z and _ only
	Root   scene.Node // the scene to render
	Width  int        // canvas width in pixels
	Height int        // canvas height in pixels
}

// BBox returns the canvas rectangle of the test case.
func (tc TestCase) BBox() rect.Rect {
	return rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// rectangle builds a closed rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// box returns the bounding box of an axis-aligned rectangle.
func box(x1, y1, x2, y2 float64) rect.Rect {
	return rect.Rect{LLx: x1, LLy: y1, URx: x2, URy: y2}
}

func fill(paint scene.Paint) *scene.Fill {
	return &scene.Fill{Paint: paint, Opacity: 1}
}

func rgb(r, g, b float64) scene.Color {
	return scene.Color{R: r, G: g, B: b}
}
