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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
)

// renderPath emits the content stream operators for a single path:
// graphics state setup, stroke and fill paint selection, the path
// geometry, and the terminal painting operator.
func (r *Renderer) renderPath(p *Path) error {
	if p.Hidden {
		return nil
	}

	r.frame.push()
	defer r.frame.pop()
	local := mat(p.Transform)
	r.frame.appendTransform(local)

	c := r.content
	c.saveState()
	defer c.restoreState()
	c.transform(local)

	c.setFillColorSpace(srgbName)
	c.setStrokeColorSpace(srgbName)

	strokeAlpha, fillAlpha := 1.0, 1.0
	if p.Stroke != nil {
		strokeAlpha = p.Stroke.Opacity
	}
	if p.Fill != nil {
		fillAlpha = p.Fill.Opacity
	}
	if strokeAlpha != 1 || fillAlpha != 1 {
		name, err := r.opacityGState(strokeAlpha, fillAlpha)
		if err != nil {
			return err
		}
		c.setExtGState(name)
	}

	if p.Stroke != nil {
		if err := r.setStroke(p.Stroke, c); err != nil {
			return err
		}
	}
	if p.Fill != nil {
		if err := r.setFill(p.Fill, p, c); err != nil {
			return err
		}
	}

	emitPathData(c, p.Data)
	finishPath(c, p.Stroke, p.Fill)
	return nil
}

// setStroke emits the stroke style and stroke paint.  Stroking with a
// gradient or pattern is not supported and fails loudly.
func (r *Renderer) setStroke(s *Stroke, c *content) error {
	c.setLineWidth(s.Width)
	c.setMiterLimit(s.MiterLimit)
	c.setLineCap(s.Cap)
	c.setLineJoin(s.Join)
	if len(s.Dash) > 0 {
		c.setLineDash(s.Dash, s.DashPhase)
	}

	switch paint := s.Paint.(type) {
	case Color:
		c.setStrokeColor(paint)
		return nil
	default:
		return fmt.Errorf("stroke with %T paint: %w", paint, ErrUnsupported)
	}
}

// setFill emits the fill paint, dispatching gradients to the gradient
// compiler and patterns to the pattern compiler.
func (r *Renderer) setFill(f *Fill, p *Path, c *content) error {
	switch paint := f.Paint.(type) {
	case Color:
		c.setFillColor(paint)
		return nil

	case *LinearGradient, *RadialGradient:
		pattern, mask, _, err := r.shadingPattern(paint, p.BBox, r.frame.transform())
		if err != nil {
			return err
		}
		if mask != "" {
			c.setExtGState(mask)
		}
		c.setFillColorSpace("Pattern")
		c.setFillPattern(pattern)
		return nil

	case *Pattern:
		name, err := r.tilingPattern(paint)
		if err != nil {
			return err
		}
		c.setFillColorSpace("Pattern")
		c.setFillPattern(name)
		return nil

	default:
		return fmt.Errorf("fill with %T paint: %w", paint, ErrUnsupported)
	}
}

// opacityGState writes a graphics state dictionary setting the stroke
// and fill alpha and registers it in the current scope.
func (r *Renderer) opacityGState(strokeAlpha, fillAlpha float64) (pdf.Name, error) {
	ref := r.res.allocRef()
	dict := pdf.Dict{}
	if strokeAlpha != 1 {
		dict["CA"] = pdf.Number(strokeAlpha)
	}
	if fillAlpha != 1 {
		dict["ca"] = pdf.Number(fillAlpha)
	}
	if err := r.out.Put(ref, dict); err != nil {
		return "", err
	}
	return r.res.addExtGState(ref), nil
}

// emitPathData walks the path and emits one construction operator per
// segment, in order.  Quadratic segments are lifted to cubics, since
// PDF content streams have no quadratic operator.
func emitPathData(c *content, data *path.Data) {
	if data == nil {
		return
	}

	var current, start vec.Vec2
	idx := 0
	for _, cmd := range data.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = data.Coords[idx]
			start = current
			c.moveTo(current)
			idx++

		case path.CmdLineTo:
			current = data.Coords[idx]
			c.lineTo(current)
			idx++

		case path.CmdQuadTo:
			q := data.Coords[idx]
			end := data.Coords[idx+1]
			c1 := current.Add(q.Sub(current).Mul(2.0 / 3.0))
			c2 := end.Add(q.Sub(end).Mul(2.0 / 3.0))
			c.curveTo(c1, c2, end)
			current = end
			idx += 2

		case path.CmdCubeTo:
			c.curveTo(data.Coords[idx], data.Coords[idx+1], data.Coords[idx+2])
			current = data.Coords[idx+2]
			idx += 3

		case path.CmdClose:
			c.closePath()
			current = start
		}
	}
}

// finishPath emits the terminal painting operator selected by the
// presence of stroke and fill and by the fill rule.
func finishPath(c *content, s *Stroke, f *Fill) {
	switch {
	case s != nil && f != nil && f.Rule == EvenOdd:
		c.paintOp("B*")
	case s != nil && f != nil:
		c.paintOp("B")
	case f != nil && f.Rule == EvenOdd:
		c.paintOp("f*")
	case f != nil:
		c.paintOp("f")
	case s != nil:
		c.paintOp("S")
	default:
		c.paintOp("n")
	}
}
