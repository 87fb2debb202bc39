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
	"seehuhn.de/go/scene"
)

func stops(s ...scene.GradientStop) []scene.GradientStop {
	return s
}

func stop(offset float64, col scene.Color, opacity float64) scene.GradientStop {
	return scene.GradientStop{Offset: offset, Color: col, Opacity: opacity}
}

var gradientCases = []TestCase{
	{
		Name: "axial_red_blue",
		Root: &scene.Path{
			Data: rectangle(8, 8, 56, 56),
			BBox: box(8, 8, 56, 56),
			Fill: fill(&scene.LinearGradient{
				X1: 8, Y1: 8, X2: 56, Y2: 8,
				Stops: stops(
					stop(0, rgb(1, 0, 0), 1),
					stop(1, rgb(0, 0, 1), 1),
				),
			}),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "axial_bbox_diagonal",
		Root: &scene.Path{
			Data: rectangle(8, 8, 56, 40),
			BBox: box(8, 8, 56, 40),
			Fill: fill(&scene.LinearGradient{
				X2: 1, Y2: 1,
				Stops: stops(
					stop(0, rgb(1, 1, 0), 1),
					stop(1, rgb(0, 0.5, 0.5), 1),
				),
				Units: scene.ObjectBoundingBox,
			}),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "axial_multi_stop",
		Root: &scene.Path{
			Data: rectangle(4, 24, 60, 40),
			BBox: box(4, 24, 60, 40),
			Fill: fill(&scene.LinearGradient{
				X2: 1,
				Stops: stops(
					stop(0, rgb(1, 0, 0), 1),
					stop(0.25, rgb(1, 1, 0), 1),
					stop(0.75, rgb(0, 1, 1), 1),
					stop(1, rgb(0, 0, 1), 1),
				),
				Units: scene.ObjectBoundingBox,
			}),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "axial_interior_stops",
		Root: &scene.Path{
			Data: rectangle(4, 24, 60, 40),
			BBox: box(4, 24, 60, 40),
			Fill: fill(&scene.LinearGradient{
				X2: 1,
				Stops: stops(
					stop(0.4, rgb(1, 0, 0), 1),
					stop(0.6, rgb(0, 0, 1), 1),
				),
				Units: scene.ObjectBoundingBox,
			}),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "radial_centered",
		Root: &scene.Path{
			Data: rectangle(0, 0, 64, 64),
			BBox: box(0, 0, 64, 64),
			Fill: fill(&scene.RadialGradient{
				CX: 32, CY: 32, R: 28,
				FX: 32, FY: 32,
				Stops: stops(
					stop(0, rgb(1, 1, 1), 1),
					stop(1, rgb(0, 0, 0.8), 1),
				),
			}),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "radial_focal",
		Root: &scene.Path{
			Data: rectangle(0, 0, 64, 64),
			BBox: box(0, 0, 64, 64),
			Fill: fill(&scene.RadialGradient{
				CX: 32, CY: 32, R: 28,
				FX: 20, FY: 44,
				Stops: stops(
					stop(0, rgb(1, 1, 1), 1),
					stop(1, rgb(0.8, 0, 0), 1),
				),
			}),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "axial_fade_out",
		Root: &scene.Group{
			Children: []scene.Node{
				// an opaque backdrop so that the fade is visible
				&scene.Path{
					Data: rectangle(0, 0, 64, 64),
					BBox: box(0, 0, 64, 64),
					Fill: fill(rgb(1, 1, 1)),
				},
				&scene.Path{
					Data: rectangle(8, 8, 56, 56),
					BBox: box(8, 8, 56, 56),
					Fill: fill(&scene.LinearGradient{
						X2: 1,
						Stops: stops(
							stop(0, rgb(0, 0.5, 0), 1),
							stop(1, rgb(0, 0.5, 0), 0),
						),
						Units: scene.ObjectBoundingBox,
					}),
				},
			},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "radial_fade_multi",
		Root: &scene.Path{
			Data: rectangle(0, 0, 64, 64),
			BBox: box(0, 0, 64, 64),
			Fill: fill(&scene.RadialGradient{
				CX: 32, CY: 32, R: 30,
				FX: 32, FY: 32,
				Stops: stops(
					stop(0, rgb(1, 0, 0), 1),
					stop(0.5, rgb(1, 0, 0), 0.25),
					stop(1, rgb(1, 0, 0), 1),
				),
			}),
		},
		Width:  64,
		Height: 64,
	},
}
