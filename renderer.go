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
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
)

// Writer is the subset of a PDF object sink the renderer needs.  Both
// *pdf.Writer and *pdf.Data implement this interface.
type Writer interface {
	Alloc() pdf.Reference
	Put(ref pdf.Reference, obj pdf.Object) error
	OpenStream(ref pdf.Reference, dict pdf.Dict, filters ...pdf.Filter) (io.WriteCloser, error)
}

// Options control the rendering process.
type Options struct {
	// Compress requests stream compression for auxiliary content
	// streams (soft mask groups and pattern cells).
	Compress bool
}

// Renderer converts a scene graph into a PDF content stream together
// with the resource objects the stream refers to.  Auxiliary objects
// are written to the underlying Writer as rendering progresses; the
// content stream and its resource dictionary are obtained from Finish.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	out Writer
	opt *Options

	frame   *frame
	res     *resources
	content *content

	finished bool
}

// NewRenderer prepares a renderer writing auxiliary objects to out.
// opt may be nil for default options.
func NewRenderer(out Writer, opt *Options) (*Renderer, error) {
	if opt == nil {
		opt = &Options{}
	}

	srgbRef := out.Alloc()
	err := out.Put(srgbRef, srgbSpace())
	if err != nil {
		return nil, err
	}

	return &Renderer{
		out:     out,
		opt:     opt,
		frame:   newFrame(),
		res:     newResources(out, srgbRef),
		content: &content{},
	}, nil
}

// Render renders a node tree into the content stream.  It may be called
// multiple times before Finish; each call appends to the same stream.
func (r *Renderer) Render(n Node) error {
	if r.finished {
		return errors.New("scene: renderer already finished")
	}
	return r.renderNode(n)
}

// renderNode dispatches on the node type.
func (r *Renderer) renderNode(n Node) error {
	switch n := n.(type) {
	case *Group:
		return r.renderGroup(n)
	case *Path:
		return r.renderPath(n)
	case nil:
		return fmt.Errorf("nil node: %w", ErrInvalidScene)
	default:
		return fmt.Errorf("node type %T: %w", n, ErrInvalidScene)
	}
}

func (r *Renderer) renderGroup(g *Group) error {
	r.frame.push()
	defer r.frame.pop()

	local := mat(g.Transform)
	r.frame.appendTransform(local)

	c := r.content
	c.saveState()
	defer c.restoreState()
	c.transform(local)

	for _, child := range g.Children {
		if err := r.renderNode(child); err != nil {
			return err
		}
	}
	return nil
}

// Finish closes the renderer and returns the accumulated content stream
// and its resource dictionary.  The renderer cannot be used afterwards.
func (r *Renderer) Finish() ([]byte, pdf.Dict, error) {
	if r.finished {
		return nil, nil, errors.New("scene: renderer already finished")
	}
	r.finished = true

	resDict := pdf.Dict{}
	r.res.pop(resDict)
	return r.content.bytes(), resDict, nil
}

func (r *Renderer) filters() []pdf.Filter {
	if r.opt.Compress {
		return []pdf.Filter{pdf.FilterCompress{}}
	}
	return nil
}

// FormXObject renders a complete scene into a form XObject with the
// given bounding box and returns its reference.
func FormXObject(out Writer, root Node, bbox rect.Rect, opt *Options) (pdf.Reference, error) {
	r, err := NewRenderer(out, opt)
	if err != nil {
		return 0, err
	}
	if err := r.Render(root); err != nil {
		return 0, err
	}
	body, resDict, err := r.Finish()
	if err != nil {
		return 0, err
	}

	ref := out.Alloc()
	dict := pdf.Dict{
		"Subtype":   pdf.Name("Form"),
		"FormType":  pdf.Integer(1),
		"BBox":      pdfRect(bbox),
		"Resources": resDict,
	}
	stm, err := out.OpenStream(ref, dict, r.filters()...)
	if err != nil {
		return 0, err
	}
	if _, err := stm.Write(body); err != nil {
		return 0, err
	}
	if err := stm.Close(); err != nil {
		return 0, err
	}
	return ref, nil
}

// srgbSpace returns the shared sRGB colour space: a CalRGB
// approximation with D65 white point, gamma 2.2 and the sRGB primaries.
func srgbSpace() pdf.Object {
	return pdf.Array{
		pdf.Name("CalRGB"),
		pdf.Dict{
			"WhitePoint": pdf.Array{
				pdf.Number(0.95047), pdf.Number(1.0), pdf.Number(1.08883),
			},
			"Gamma": pdf.Array{
				pdf.Number(2.2), pdf.Number(2.2), pdf.Number(2.2),
			},
			"Matrix": pdf.Array{
				pdf.Number(0.4124), pdf.Number(0.2126), pdf.Number(0.0193),
				pdf.Number(0.3576), pdf.Number(0.7152), pdf.Number(0.1192),
				pdf.Number(0.1805), pdf.Number(0.0722), pdf.Number(0.9505),
			},
		},
	}
}

// graySpace returns the grayscale colour space used for luminosity soft
// masks: CalGray with D65 white point.
func graySpace() pdf.Object {
	return pdf.Array{
		pdf.Name("CalGray"),
		pdf.Dict{
			"WhitePoint": pdf.Array{
				pdf.Number(0.95047), pdf.Number(1.0), pdf.Number(1.08883),
			},
		},
	}
}

func pdfRect(b rect.Rect) *pdf.Rectangle {
	return &pdf.Rectangle{LLx: b.LLx, LLy: b.LLy, URx: b.URx, URy: b.URy}
}
