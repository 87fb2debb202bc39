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

// PDF shading types, see table 77 of ISO 32000-2:2020.
const (
	shadingAxial  = 2
	shadingRadial = 3
)

// gradientProperties is the normalised description shared by axial and
// radial gradients.
type gradientProperties struct {
	coords      []float64 // 4 values for axial, 6 for radial
	shadingType int
	stops       []GradientStop
	transform   matrix.Matrix
	units       Units
}

// gradientProps normalises a gradient paint.  The second return value
// is false for non-gradient paints.
func gradientProps(p Paint) (gradientProperties, bool) {
	switch g := p.(type) {
	case *LinearGradient:
		return gradientProperties{
			coords:      []float64{g.X1, g.Y1, g.X2, g.Y2},
			shadingType: shadingAxial,
			stops:       g.Stops,
			transform:   mat(g.Transform),
			units:       g.Units,
		}, true
	case *RadialGradient:
		// The third coordinate is the focal circle radius, which is
		// always zero in the two-circle radial shading model.
		return gradientProperties{
			coords:      []float64{g.FX, g.FY, 0, g.CX, g.CY, g.R},
			shadingType: shadingRadial,
			stops:       g.Stops,
			transform:   mat(g.Transform),
			units:       g.Units,
		}, true
	default:
		return gradientProperties{}, false
	}
}

// shadingPattern compiles a gradient paint into a shading pattern
// object, and additionally into a luminosity soft mask when any stop is
// not fully opaque.  It returns the pattern name, the name of the soft
// mask graphics state (empty if none), and ok=false for non-gradient
// paints.
func (r *Renderer) shadingPattern(p Paint, bbox rect.Rect, accumulated matrix.Matrix) (pattern, mask pdf.Name, ok bool, err error) {
	props, ok := gradientProps(p)
	if !ok {
		return "", "", false, nil
	}

	if len(props.stops) < 2 {
		return "", "", true, fmt.Errorf("gradient with %d stops: %w",
			len(props.stops), ErrInvalidScene)
	}

	patternRef := r.res.allocRef()

	for _, s := range props.stops {
		if s.Opacity < 1 {
			mask, err = r.gradientSoftMask(props, bbox)
			if err != nil {
				return "", "", true, err
			}
			break
		}
	}

	// The pattern matrix places the shading on the page: gradient
	// coordinates are mapped by the gradient's own transform first,
	// then (for bounding-box units) onto the element's bounding box,
	// and finally by the externally accumulated transform.
	m := props.transform
	if props.units == ObjectBoundingBox {
		m = m.Mul(bboxMatrix(bbox))
	}
	m = m.Mul(accumulated)

	fn, err := r.interpolationFunction(props.stops, colorChannels)
	if err != nil {
		return "", "", true, err
	}

	shading := pdf.Dict{
		"ShadingType": pdf.Integer(props.shadingType),
		"ColorSpace":  r.res.srgb,
		"Coords":      floats(props.coords),
		"Function":    fn,
		"Extend":      pdf.Array{pdf.Boolean(true), pdf.Boolean(true)},
	}
	patternDict := pdf.Dict{
		"PatternType": pdf.Integer(2),
		"Shading":     shading,
		"Matrix":      matrixArray(m),
	}
	if err := r.out.Put(patternRef, patternDict); err != nil {
		return "", "", true, err
	}

	return r.res.addPattern(patternRef), mask, true, nil
}

// gradientSoftMask builds the luminosity soft mask encoding the
// per-stop opacities of a gradient: a grayscale shading over the
// opacity channel, rendered into a transparency group sized to the
// element's bounding box and wrapped in a graphics state dictionary.
func (r *Renderer) gradientSoftMask(props gradientProperties, bbox rect.Rect) (pdf.Name, error) {
	r.res.push()
	popped := false
	defer func() {
		// keep the scope stack balanced on error exits
		if !popped {
			r.res.pop(pdf.Dict{})
		}
	}()

	formRef := r.res.allocRef()
	shadingRef := r.res.allocRef()
	shadingName := r.res.addShading(shadingRef)

	m := props.transform
	if props.units == ObjectBoundingBox {
		m = bboxMatrix(bbox).Mul(m)
	}

	fn, err := r.interpolationFunction(props.stops, opacityChannels)
	if err != nil {
		return "", err
	}

	shading := pdf.Dict{
		"ShadingType": pdf.Integer(props.shadingType),
		"ColorSpace":  graySpace(),
		"Coords":      floats(props.coords),
		"Function":    fn,
		"Extend":      pdf.Array{pdf.Boolean(true), pdf.Boolean(true)},
	}
	if err := r.out.Put(shadingRef, shading); err != nil {
		return "", err
	}

	var cell content
	cell.transform(m)
	cell.drawShading(shadingName)

	resDict := pdf.Dict{}
	r.res.pop(resDict)
	popped = true

	formDict := pdf.Dict{
		"Subtype":   pdf.Name("Form"),
		"FormType":  pdf.Integer(1),
		"BBox":      pdfRect(bbox),
		"Resources": resDict,
		"Group": pdf.Dict{
			"S":  pdf.Name("Transparency"),
			"CS": graySpace(),
			"I":  pdf.Boolean(false),
			"K":  pdf.Boolean(false),
		},
	}
	stm, err := r.out.OpenStream(formRef, formDict, r.filters()...)
	if err != nil {
		return "", err
	}
	if _, err := stm.Write(cell.bytes()); err != nil {
		return "", err
	}
	if err := stm.Close(); err != nil {
		return "", err
	}

	gsRef := r.res.allocRef()
	gsDict := pdf.Dict{
		"SMask": pdf.Dict{
			"Type": pdf.Name("Mask"),
			"S":    pdf.Name("Luminosity"),
			"G":    formRef,
		},
	}
	if err := r.out.Put(gsRef, gsDict); err != nil {
		return "", err
	}

	return r.res.addExtGState(gsRef), nil
}

// Channel counts for the two stop projections used by the
// interpolation function builder.
const (
	opacityChannels = 1
	colorChannels   = 3
)

// funcStop is the projection of a gradient stop into a fixed number of
// interpolation channels.
type funcStop struct {
	offset float64
	values []float64
}

// padStops extends a stop sequence so that it covers the full [0, 1]
// domain: if the first stop does not sit at offset 0 it is duplicated
// there, and likewise for the last stop at offset 1.  Padding an
// already padded sequence is a no-op.
func padStops(stops []GradientStop) []GradientStop {
	padded := make([]GradientStop, 0, len(stops)+2)
	if first := stops[0]; first.Offset != 0 {
		first.Offset = 0
		padded = append(padded, first)
	}
	padded = append(padded, stops...)
	if last := stops[len(stops)-1]; last.Offset != 1 {
		last.Offset = 1
		padded = append(padded, last)
	}
	return padded
}

// projectStops maps each stop to its interpolation channels: the three
// colour components for channels == 3, the opacity for channels == 1.
func projectStops(stops []GradientStop, channels int) []funcStop {
	res := make([]funcStop, len(stops))
	for i, s := range stops {
		var values []float64
		switch channels {
		case opacityChannels:
			values = []float64{s.Opacity}
		case colorChannels:
			values = []float64{s.Color.R, s.Color.G, s.Color.B}
		default:
			panic("invalid channel count")
		}
		res[i] = funcStop{offset: s.Offset, values: values}
	}
	return res
}

// interpolationFunction builds a continuous interpolation function over
// the domain [0, 1] from a stop sequence projected to the given number
// of channels.  Two stops yield a single exponential interpolation
// function; more stops yield a stitching function over exponential
// segments.  The same algorithm serves colour and opacity stops.
func (r *Renderer) interpolationFunction(stops []GradientStop, channels int) (pdf.Reference, error) {
	projected := projectStops(padStops(stops), channels)
	if len(projected) == 2 {
		return r.exponentialFunction(projected[0], projected[1])
	}
	return r.stitchingFunction(projected)
}

// exponentialFunction writes a type 2 (exponential interpolation)
// function dictionary interpolating linearly between two stops.
func (r *Renderer) exponentialFunction(s0, s1 funcStop) (pdf.Reference, error) {
	ref := r.res.allocRef()
	dict := pdf.Dict{
		"FunctionType": pdf.Integer(2),
		"Domain":       pdf.Array{pdf.Number(0), pdf.Number(1)},
		"Range":        functionRange(len(s0.values)),
		"C0":           floats(s0.values),
		"C1":           floats(s1.values),
		"N":            pdf.Number(1),
	}
	err := r.out.Put(ref, dict)
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// stitchingFunction writes a type 3 (stitching) function dictionary
// combining one exponential segment per adjacent stop pair.  The
// interior stop offsets become the stitching bounds, and each segment
// is re-encoded to the local parameter range [0, 1].
func (r *Renderer) stitchingFunction(stops []funcStop) (pdf.Reference, error) {
	ref := r.res.allocRef()

	var functions pdf.Array
	var bounds pdf.Array
	var encode pdf.Array
	for i := 0; i+1 < len(stops); i++ {
		sub, err := r.exponentialFunction(stops[i], stops[i+1])
		if err != nil {
			return 0, err
		}
		functions = append(functions, sub)
		bounds = append(bounds, pdf.Number(stops[i+1].offset))
		encode = append(encode, pdf.Number(0), pdf.Number(1))
	}
	bounds = bounds[:len(bounds)-1] // the final offset is the domain end

	dict := pdf.Dict{
		"FunctionType": pdf.Integer(3),
		"Domain":       pdf.Array{pdf.Number(0), pdf.Number(1)},
		"Range":        functionRange(len(stops[0].values)),
		"Functions":    functions,
		"Bounds":       bounds,
		"Encode":       encode,
	}
	err := r.out.Put(ref, dict)
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// functionRange returns the output clipping range [0, 1] repeated once
// per channel.
func functionRange(channels int) pdf.Array {
	res := make(pdf.Array, 0, 2*channels)
	for range channels {
		res = append(res, pdf.Number(0), pdf.Number(1))
	}
	return res
}

// bboxMatrix maps the unit square onto the given bounding box.
func bboxMatrix(b rect.Rect) matrix.Matrix {
	return matrix.Matrix{b.URx - b.LLx, 0, 0, b.URy - b.LLy, b.LLx, b.LLy}
}

func floats(xs []float64) pdf.Array {
	res := make(pdf.Array, len(xs))
	for i, x := range xs {
		res[i] = pdf.Number(x)
	}
	return res
}

func matrixArray(m matrix.Matrix) pdf.Array {
	return floats(m[:])
}
