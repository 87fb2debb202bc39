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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/scene"
)

// checker builds a two-square checkerboard tile.
func checker(size float64, col scene.Color) *scene.Pattern {
	h := size / 2
	return &scene.Pattern{
		Rect: box(0, 0, size, size),
		Content: &scene.Group{
			Children: []scene.Node{
				&scene.Path{
					Data: rectangle(0, 0, h, h),
					BBox: box(0, 0, h, h),
					Fill: fill(col),
				},
				&scene.Path{
					Data: rectangle(h, h, size, size),
					BBox: box(h, h, size, size),
					Fill: fill(col),
				},
			},
		},
	}
}

var patternCases = []TestCase{
	{
		Name: "checkerboard",
		Root: &scene.Path{
			Data: rectangle(4, 4, 60, 60),
			BBox: box(4, 4, 60, 60),
			Fill: fill(checker(16, rgb(0.2, 0.2, 0.8))),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "checkerboard_rotated",
		Root: &scene.Path{
			Data: rectangle(4, 4, 60, 60),
			BBox: box(4, 4, 60, 60),
			Fill: fill(&scene.Pattern{
				Rect:      box(0, 0, 16, 16),
				Transform: matrix.RotateDeg(30),
				Content:   checker(16, rgb(0.8, 0.2, 0.2)).Content,
			}),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "pattern_viewbox",
		Root: &scene.Path{
			Data: rectangle(0, 0, 64, 64),
			BBox: box(0, 0, 64, 64),
			Fill: fill(&scene.Pattern{
				Rect:    box(0, 0, 32, 16),
				ViewBox: &rect.Rect{URx: 1, URy: 1},
				Content: &scene.Group{
					Children: []scene.Node{
						&scene.Path{
							Data: rectangle(0.1, 0.1, 0.9, 0.9),
							BBox: box(0.1, 0.1, 0.9, 0.9),
							Fill: fill(rgb(0, 0.6, 0.3)),
						},
					},
				},
			}),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "pattern_gradient_cell",
		Root: &scene.Path{
			Data: rectangle(0, 0, 64, 64),
			BBox: box(0, 0, 64, 64),
			Fill: fill(&scene.Pattern{
				Rect: box(0, 0, 16, 16),
				Content: &scene.Group{
					Children: []scene.Node{
						&scene.Path{
							Data: rectangle(1, 1, 15, 15),
							BBox: box(1, 1, 15, 15),
							Fill: fill(&scene.LinearGradient{
								X2: 1, Y2: 1,
								Stops: stops(
									stop(0, rgb(1, 0.5, 0), 1),
									stop(1, rgb(0.5, 0, 1), 1),
								),
								Units: scene.ObjectBoundingBox,
							}),
						},
					},
				},
			}),
		},
		Width:  64,
		Height: 64,
	},
}
