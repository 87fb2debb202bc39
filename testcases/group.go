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

	"seehuhn.de/go/scene"
)

var groupCases = []TestCase{
	{
		Name: "nested_transforms",
		Root: &scene.Group{
			Transform: matrix.Scale(2, 2),
			Children: []scene.Node{
				&scene.Path{
					Data: rectangle(2, 2, 14, 14),
					BBox: box(2, 2, 14, 14),
					Fill: fill(rgb(0.9, 0.9, 0)),
				},
				&scene.Group{
					Transform: matrix.RotateDeg(45).Translate(16, 16),
					Children: []scene.Node{
						&scene.Path{
							Data: rectangle(-4, -4, 4, 4),
							BBox: box(-4, -4, 4, 4),
							Fill: fill(rgb(0.6, 0, 0.6)),
						},
					},
				},
			},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "path_transform",
		Root: &scene.Path{
			Transform: matrix.Scale(4, 2).Translate(8, 16),
			Data:      rectangle(0, 0, 8, 8),
			BBox:      box(0, 0, 8, 8),
			Fill:      fill(rgb(0, 0.4, 0.8)),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "hidden_path",
		Root: &scene.Group{
			Children: []scene.Node{
				&scene.Path{
					Data: rectangle(8, 8, 56, 56),
					BBox: box(8, 8, 56, 56),
					Fill: fill(rgb(0, 0.7, 0)),
				},
				&scene.Path{
					Data:   rectangle(0, 0, 64, 64),
					BBox:   box(0, 0, 64, 64),
					Fill:   fill(rgb(1, 0, 0)),
					Hidden: true,
				},
			},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "gradient_under_transform",
		Root: &scene.Group{
			Transform: matrix.Scale(2, 2).Translate(-16, -16),
			Children: []scene.Node{
				&scene.Path{
					Data: rectangle(16, 16, 40, 40),
					BBox: box(16, 16, 40, 40),
					Fill: fill(&scene.LinearGradient{
						X2: 1,
						Stops: stops(
							stop(0, rgb(1, 0, 0), 1),
							stop(1, rgb(0, 0, 1), 1),
						),
						Units: scene.ObjectBoundingBox,
					}),
				},
			},
		},
		Width:  64,
		Height: 64,
	},
}
