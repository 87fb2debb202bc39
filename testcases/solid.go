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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/scene"
)

var solidCases = []TestCase{
	{
		Name: "red_square",
		Root: &scene.Path{
			Data: rectangle(10, 10, 54, 54),
			BBox: box(10, 10, 54, 54),
			Fill: fill(rgb(1, 0, 0)),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "star_nonzero",
		Root: &scene.Path{
			Data: fivePointStar(32, 32, 25),
			BBox: box(7, 7, 57, 57),
			Fill: fill(rgb(0, 0.5, 0)),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "star_evenodd",
		Root: &scene.Path{
			Data: fivePointStar(32, 32, 25),
			BBox: box(7, 7, 57, 57),
			Fill: &scene.Fill{
				Paint:   rgb(0, 0.5, 0),
				Rule:    scene.EvenOdd,
				Opacity: 1,
			},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "stroke_miter",
		Root: &scene.Path{
			Data: zigzag(8, 48, 16, 10),
			Stroke: &scene.Stroke{
				Paint:      rgb(0, 0, 1),
				Width:      4,
				MiterLimit: 10,
				Opacity:    1,
			},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "stroke_round_dashed",
		Root: &scene.Path{
			Data: zigzag(8, 48, 16, 10),
			Stroke: &scene.Stroke{
				Paint:      rgb(0, 0, 1),
				Width:      4,
				Cap:        graphics.LineCapRound,
				Join:       graphics.LineJoinRound,
				MiterLimit: 10,
				Dash:       []float64{8, 4},
				Opacity:    1,
			},
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "stroke_and_fill",
		Root: &scene.Path{
			Data: rectangle(12, 12, 52, 52),
			BBox: box(12, 12, 52, 52),
			Stroke: &scene.Stroke{
				Paint:      rgb(0, 0, 0),
				Width:      3,
				MiterLimit: 10,
				Opacity:    1,
			},
			Fill: fill(rgb(1, 0.8, 0)),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "translucent_overlap",
		Root: &scene.Group{
			Children: []scene.Node{
				&scene.Path{
					Data: rectangle(8, 8, 40, 40),
					BBox: box(8, 8, 40, 40),
					Fill: &scene.Fill{Paint: rgb(1, 0, 0), Opacity: 0.5},
				},
				&scene.Path{
					Data: rectangle(24, 24, 56, 56),
					BBox: box(24, 24, 56, 56),
					Fill: &scene.Fill{Paint: rgb(0, 0, 1), Opacity: 0.5},
				},
			},
		},
		Width:  64,
		Height: 64,
	},
}

// fivePointStar builds a self-intersecting five-pointed star.
func fivePointStar(cx, cy, r float64) *path.Data {
	data := &path.Data{}
	for i := range 5 {
		angle := float64(2*i)*2*math.Pi/5 - math.Pi/2
		p := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			data = data.MoveTo(p)
		} else {
			data = data.LineTo(p)
		}
	}
	return data.Close()
}

// zigzag builds an open path with sharp direction changes, for
// exercising line joins.
func zigzag(x1, x2, dx, y float64) *path.Data {
	data := (&path.Data{}).MoveTo(pt(x1, y))
	up := true
	for x := x1 + dx; x <= x2; x += dx {
		h := y
		if up {
			h += 30
		}
		up = !up
		data = data.LineTo(pt(x, h))
	}
	return data
}
