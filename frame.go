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

import "seehuhn.de/go/geom/matrix"

// frame tracks the effective coordinate transform while recursing
// through nested groups and patterns.  Every push must be matched by
// exactly one pop per recursion level; an unmatched pop is a programming
// error and panics.
type frame struct {
	stack []matrix.Matrix
}

func newFrame() *frame {
	return &frame{stack: []matrix.Matrix{matrix.Identity}}
}

// push saves the current transform.
func (f *frame) push() {
	f.stack = append(f.stack, f.transform())
}

// pop restores the transform saved by the matching push.
func (f *frame) pop() {
	if len(f.stack) <= 1 {
		panic("scene: transform stack underflow")
	}
	f.stack = f.stack[:len(f.stack)-1]
}

// transform returns the current effective transform.
func (f *frame) transform() matrix.Matrix {
	return f.stack[len(f.stack)-1]
}

// appendTransform composes t with the current transform, so that t is
// applied to user coordinates first, followed by the existing transform.
// This matches the effect of the PDF "cm" operator.
func (f *frame) appendTransform(t matrix.Matrix) {
	f.stack[len(f.stack)-1] = t.Mul(f.transform())
}

// setTransform replaces the current transform outright.  This is used
// when entering an independent coordinate system such as a pattern cell.
func (f *frame) setTransform(t matrix.Matrix) {
	f.stack[len(f.stack)-1] = t
}
