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
	"strconv"

	"seehuhn.de/go/pdf"
)

// resourceCategory identifies one sub-dictionary of a PDF resource
// dictionary.
type resourceCategory int

const (
	catExtGState resourceCategory = iota
	catPattern
	catShading
	catXObject
	numCategories
)

func (c resourceCategory) prefix() pdf.Name {
	switch c {
	case catExtGState:
		return "E"
	case catPattern:
		return "P"
	case catShading:
		return "S"
	case catXObject:
		return "X"
	default:
		panic("invalid resource category")
	}
}

func (c resourceCategory) dictKey() pdf.Name {
	switch c {
	case catExtGState:
		return "ExtGState"
	case catPattern:
		return "Pattern"
	case catShading:
		return "Shading"
	case catXObject:
		return "XObject"
	default:
		panic("invalid resource category")
	}
}

// srgbName is the resource name under which the shared sRGB colour
// space is registered in every resource dictionary.
const srgbName = pdf.Name("srgb")

// scope is one nesting level of resource names.  Names registered here
// are written to a resource dictionary when the scope is popped.
type scope struct {
	names [numCategories]map[pdf.Name]pdf.Reference
}

func (s *scope) add(cat resourceCategory, name pdf.Name, ref pdf.Reference) {
	if s.names[cat] == nil {
		s.names[cat] = make(map[pdf.Name]pdf.Reference)
	}
	s.names[cat][name] = ref
}

// resources hands out document-wide object references and
// nesting-scoped resource names.  Name counters are document-wide, so
// names never collide when a child scope's resources are merged into an
// enclosing dictionary.
//
// A base scope exists for the life of the allocator.  Entering a
// pattern or soft-mask sub-render pushes a new scope; finishing it pops
// the scope into the sub-render's resource dictionary.  Popping more
// scopes than were pushed is a programming error and panics.
type resources struct {
	out    Writer
	srgb   pdf.Reference
	scopes []*scope
	minted [numCategories]int
}

func newResources(out Writer, srgb pdf.Reference) *resources {
	return &resources{
		out:    out,
		srgb:   srgb,
		scopes: []*scope{{}},
	}
}

// allocRef returns a fresh, never reused document-wide reference.
func (d *resources) allocRef() pdf.Reference {
	return d.out.Alloc()
}

// push opens a new innermost scope.
func (d *resources) push() {
	d.scopes = append(d.scopes, &scope{})
}

// pop closes the innermost scope, writing every name registered in it
// into the supplied resource dictionary.
func (d *resources) pop(into pdf.Dict) {
	if len(d.scopes) == 0 {
		panic("scene: resource scope underflow")
	}
	s := d.scopes[len(d.scopes)-1]
	d.scopes = d.scopes[:len(d.scopes)-1]

	for cat := resourceCategory(0); cat < numCategories; cat++ {
		if len(s.names[cat]) == 0 {
			continue
		}
		sub := pdf.Dict{}
		for name, ref := range s.names[cat] {
			sub[name] = ref
		}
		into[cat.dictKey()] = sub
	}

	// Content streams select colours through the shared sRGB colour
	// space, so every resource dictionary carries it.
	into["ColorSpace"] = pdf.Dict{srgbName: d.srgb}
}

func (d *resources) add(cat resourceCategory, ref pdf.Reference) pdf.Name {
	if len(d.scopes) == 0 {
		panic("scene: resource scope underflow")
	}
	name := cat.prefix() + pdf.Name(strconv.Itoa(d.minted[cat]))
	d.minted[cat]++
	d.scopes[len(d.scopes)-1].add(cat, name, ref)
	return name
}

// addPattern registers ref as a pattern in the innermost scope and
// returns its freshly minted name.
func (d *resources) addPattern(ref pdf.Reference) pdf.Name {
	return d.add(catPattern, ref)
}

// addShading registers ref as a shading in the innermost scope.
func (d *resources) addShading(ref pdf.Reference) pdf.Name {
	return d.add(catShading, ref)
}

// addExtGState registers ref as a graphics state parameter dictionary
// in the innermost scope.
func (d *resources) addExtGState(ref pdf.Reference) pdf.Name {
	return d.add(catExtGState, ref)
}

// addXObject registers ref as an XObject in the innermost scope.
func (d *resources) addXObject(ref pdf.Reference) pdf.Name {
	return d.add(catXObject, ref)
}
