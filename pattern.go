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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
)

// tilingPattern compiles a tiling pattern paint into a repeatable-cell
// pattern object and returns its resource name.  The pattern content is
// rendered in an independent coordinate frame; the pattern matrix
// places the finished cell using the parent transform in effect at the
// point of use, composed with the pattern's own transform.
func (r *Renderer) tilingPattern(pat *Pattern) (pdf.Name, error) {
	if pat.Content == nil {
		return "", fmt.Errorf("pattern without group content: %w", ErrInvalidScene)
	}

	patternRef := r.res.allocRef()
	name := r.res.addPattern(patternRef)

	placement := mat(pat.Transform).Mul(r.frame.transform())

	r.res.push()
	popped := false
	defer func() {
		if !popped {
			r.res.pop(pdf.Dict{})
		}
	}()

	r.frame.push()
	defer r.frame.pop()
	r.frame.setTransform(matrix.Identity)
	if pat.ViewBox != nil {
		r.frame.appendTransform(viewBoxMatrix(*pat.ViewBox, pat.Rect))
	}

	// Render the cell into its own content stream.  The renderer's
	// resource allocator and transform frame are shared; only the
	// operator sink is swapped out.
	cell := &content{}
	outer := r.content
	r.content = cell
	if pat.ViewBox != nil {
		cell.transform(r.frame.transform())
	}
	err := r.renderNode(pat.Content)
	r.content = outer
	if err != nil {
		return "", err
	}

	resDict := pdf.Dict{}
	r.res.pop(resDict)
	popped = true

	dict := pdf.Dict{
		"PatternType": pdf.Integer(1),
		"PaintType":   pdf.Integer(1), // colored
		"TilingType":  pdf.Integer(1), // constant spacing
		"BBox":        pdfRect(pat.Rect),
		"XStep":       pdf.Number(pat.Rect.URx - pat.Rect.LLx),
		"YStep":       pdf.Number(pat.Rect.URy - pat.Rect.LLy),
		"Matrix":      matrixArray(placement),
		"Resources":   resDict,
	}
	stm, err := r.out.OpenStream(patternRef, dict, r.filters()...)
	if err != nil {
		return "", err
	}
	if _, err := stm.Write(cell.bytes()); err != nil {
		return "", err
	}
	if err := stm.Close(); err != nil {
		return "", err
	}

	return name, nil
}

// viewBoxMatrix maps the view box onto the tile rectangle.
func viewBoxMatrix(viewBox, tile rect.Rect) matrix.Matrix {
	sx := (tile.URx - tile.LLx) / (viewBox.URx - viewBox.LLx)
	sy := (tile.URy - tile.LLy) / (viewBox.URy - viewBox.LLy)
	return matrix.Matrix{sx, 0, 0, sy, -viewBox.LLx * sx, -viewBox.LLy * sy}
}
