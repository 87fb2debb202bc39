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
	"bytes"
	"fmt"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics"
)

// content accumulates PDF content stream operators.  It is a pure
// operator sink; all writes go to an in-memory buffer and cannot fail.
type content struct {
	buf bytes.Buffer
}

func format(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func (c *content) bytes() []byte {
	return c.buf.Bytes()
}

func (c *content) name(n pdf.Name) {
	_ = n.PDF(&c.buf) // bytes.Buffer writes cannot fail
}

// saveState emits the "q" operator.
func (c *content) saveState() {
	c.buf.WriteString("q\n")
}

// restoreState emits the "Q" operator.
func (c *content) restoreState() {
	c.buf.WriteString("Q\n")
}

// transform emits the "cm" operator.  The identity is skipped.
func (c *content) transform(m matrix.Matrix) {
	if m == matrix.Identity {
		return
	}
	fmt.Fprintln(&c.buf, format(m[0]), format(m[1]), format(m[2]),
		format(m[3]), format(m[4]), format(m[5]), "cm")
}

func (c *content) moveTo(p vec.Vec2) {
	fmt.Fprintln(&c.buf, format(p.X), format(p.Y), "m")
}

func (c *content) lineTo(p vec.Vec2) {
	fmt.Fprintln(&c.buf, format(p.X), format(p.Y), "l")
}

func (c *content) curveTo(p1, p2, p3 vec.Vec2) {
	fmt.Fprintln(&c.buf, format(p1.X), format(p1.Y), format(p2.X),
		format(p2.Y), format(p3.X), format(p3.Y), "c")
}

func (c *content) closePath() {
	c.buf.WriteString("h\n")
}

// paintOp emits one of the path painting operators
// ("f", "f*", "B", "B*", "S", "n").
func (c *content) paintOp(op string) {
	c.buf.WriteString(op)
	c.buf.WriteByte('\n')
}

// setFillColorSpace emits the "cs" operator.
func (c *content) setFillColorSpace(name pdf.Name) {
	c.name(name)
	c.buf.WriteString(" cs\n")
}

// setStrokeColorSpace emits the "CS" operator.
func (c *content) setStrokeColorSpace(name pdf.Name) {
	c.name(name)
	c.buf.WriteString(" CS\n")
}

// setFillColor emits the "sc" operator.
func (c *content) setFillColor(col Color) {
	fmt.Fprintln(&c.buf, format(col.R), format(col.G), format(col.B), "sc")
}

// setStrokeColor emits the "SC" operator.
func (c *content) setStrokeColor(col Color) {
	fmt.Fprintln(&c.buf, format(col.R), format(col.G), format(col.B), "SC")
}

// setFillPattern emits the "scn" operator selecting a pattern by name.
// The fill colour space must have been set to /Pattern before.
func (c *content) setFillPattern(name pdf.Name) {
	c.name(name)
	c.buf.WriteString(" scn\n")
}

// setExtGState emits the "gs" operator.
func (c *content) setExtGState(name pdf.Name) {
	c.name(name)
	c.buf.WriteString(" gs\n")
}

// drawShading emits the "sh" operator.
func (c *content) drawShading(name pdf.Name) {
	c.name(name)
	c.buf.WriteString(" sh\n")
}

func (c *content) setLineWidth(w float64) {
	fmt.Fprintln(&c.buf, format(w), "w")
}

func (c *content) setLineCap(cap graphics.LineCapStyle) {
	fmt.Fprintln(&c.buf, int(cap), "J")
}

func (c *content) setLineJoin(join graphics.LineJoinStyle) {
	fmt.Fprintln(&c.buf, int(join), "j")
}

func (c *content) setMiterLimit(limit float64) {
	fmt.Fprintln(&c.buf, format(limit), "M")
}

func (c *content) setLineDash(pattern []float64, phase float64) {
	c.buf.WriteByte('[')
	for i, x := range pattern {
		if i > 0 {
			c.buf.WriteByte(' ')
		}
		c.buf.WriteString(format(x))
	}
	c.buf.WriteString("] ")
	c.buf.WriteString(format(phase))
	c.buf.WriteString(" d\n")
}
