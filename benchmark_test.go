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

package scene

import (
	"fmt"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
)

// benchScene builds a grid of n by n solid filled squares under a shared
// group transform, with a gradient filled square in every fourth cell.
func benchScene(n int) Node {
	children := make([]Node, 0, n*n)
	for i := range n {
		for j := range n {
			x := float64(i) * 10
			y := float64(j) * 10
			cell := rect.Rect{LLx: x, LLy: y, URx: x + 8, URy: y + 8}

			var fill *Fill
			if (i+j)%4 == 0 {
				fill = &Fill{
					Paint: &LinearGradient{
						X2:    1,
						Stops: redBlueStops(1),
						Units: ObjectBoundingBox,
					},
					Opacity: 1,
				}
			} else {
				fill = solidFill(float64(i)/float64(n), 0.5, float64(j)/float64(n))
			}

			children = append(children, &Path{
				Data: square(x, y, x+8, y+8),
				BBox: cell,
				Fill: fill,
			})
		}
	}
	return &Group{
		Transform: matrix.Matrix{1, 0, 0, 1, 5, 5},
		Children:  children,
	}
}

func BenchmarkRender(b *testing.B) {
	sizes := []int{4, 16, 64}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			root := benchScene(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				data := pdf.NewData(pdf.V1_7)
				r, err := NewRenderer(data, nil)
				if err != nil {
					b.Fatal(err)
				}
				if err := r.Render(root); err != nil {
					b.Fatal(err)
				}
				if _, _, err := r.Finish(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
