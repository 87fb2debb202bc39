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
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics"
)

func TestTerminalOperator(t *testing.T) {
	stroke := &Stroke{
		Paint:      Color{},
		Width:      1,
		MiterLimit: 10,
		Opacity:    1,
	}
	fill := func(rule FillRule) *Fill {
		return &Fill{Paint: Color{}, Rule: rule, Opacity: 1}
	}

	tests := []struct {
		name   string
		stroke *Stroke
		fill   *Fill
		want   string
	}{
		{"fill_nonzero", nil, fill(NonZero), "f"},
		{"fill_evenodd", nil, fill(EvenOdd), "f*"},
		{"stroke_only", stroke, nil, "S"},
		{"stroke_fill", stroke, fill(NonZero), "B"},
		{"stroke_fill_evenodd", stroke, fill(EvenOdd), "B*"},
		{"invisible", nil, nil, "n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := &Path{
				Data:   square(0, 0, 1, 1),
				BBox:   rect.Rect{URx: 1, URy: 1},
				Stroke: test.stroke,
				Fill:   test.fill,
			}
			body, _, _ := render(t, p)

			lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
			if len(lines) < 2 || lines[len(lines)-1] != "Q" {
				t.Fatalf("unbalanced content:\n%s", body)
			}
			if op := lines[len(lines)-2]; op != test.want {
				t.Errorf("painting operator: got %q, want %q", op, test.want)
			}
		})
	}
}

func TestHiddenPath(t *testing.T) {
	p := &Path{
		Data:   square(0, 0, 1, 1),
		Fill:   solidFill(1, 0, 0),
		Hidden: true,
	}
	body, _, _ := render(t, p)
	if body != "" {
		t.Errorf("hidden path produced content:\n%s", body)
	}
}

func TestStrokeStyle(t *testing.T) {
	p := &Path{
		Data: (&path.Data{}).MoveTo(pt(0, 0)).LineTo(pt(10, 0)),
		Stroke: &Stroke{
			Paint:      Color{R: 1},
			Width:      2,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinBevel,
			MiterLimit: 4,
			Dash:       []float64{3, 1},
			DashPhase:  0.5,
			Opacity:    1,
		},
	}
	body, _, _ := render(t, p)

	want := strings.Join([]string{
		"q",
		"/srgb cs",
		"/srgb CS",
		"2 w",
		"4 M",
		"1 J",
		"2 j",
		"[3 1] 0.5 d",
		"1 0 0 SC",
		"0 0 m",
		"10 0 l",
		"S",
		"Q",
	}, "\n") + "\n"
	if body != want {
		t.Errorf("content stream:\ngot:\n%s\nwant:\n%s", body, want)
	}
}

func TestQuadraticLift(t *testing.T) {
	p := &Path{
		Data: (&path.Data{}).MoveTo(pt(0, 0)).QuadTo(pt(3, 0), pt(3, 3)),
		Fill: solidFill(0, 0, 0),
	}
	body, _, _ := render(t, p)

	// control points at two thirds towards the quadratic control point
	if !strings.Contains(body, "2 0 3 1 3 3 c\n") {
		t.Errorf("quadratic curve not lifted to a cubic:\n%s", body)
	}
}

func TestPathTransform(t *testing.T) {
	p := &Path{
		Transform: matrix.Matrix{1, 0, 0, 1, 20, 30},
		Data:      square(0, 0, 1, 1),
		Fill:      solidFill(0, 0, 0),
	}
	body, _, _ := render(t, p)

	lines := strings.Split(body, "\n")
	if len(lines) < 2 || lines[0] != "q" || lines[1] != "1 0 0 1 20 30 cm" {
		t.Errorf("local transform not applied:\n%s", body)
	}
}

func TestOpacity(t *testing.T) {
	p := &Path{
		Data: square(0, 0, 1, 1),
		Stroke: &Stroke{
			Paint:      Color{},
			Width:      1,
			MiterLimit: 10,
			Opacity:    0.25,
		},
		Fill: &Fill{Paint: Color{}, Opacity: 0.5},
	}
	body, resDict, data := render(t, p)

	if !strings.Contains(body, "/E0 gs\n") {
		t.Fatalf("no graphics state set:\n%s", body)
	}
	gs := getDict(t, data, resource(t, resDict, "ExtGState", "E0"))
	if gs["CA"] != pdf.Number(0.25) || gs["ca"] != pdf.Number(0.5) {
		t.Errorf("alpha values: %v", gs)
	}
	if len(gs) != 2 {
		t.Errorf("unexpected graphics state entries: %v", gs)
	}
}

func TestOpaquePath(t *testing.T) {
	p := &Path{
		Data: square(0, 0, 1, 1),
		Fill: solidFill(0, 0, 0),
	}
	body, resDict, _ := render(t, p)
	if strings.Contains(body, " gs\n") {
		t.Errorf("opaque path set a graphics state:\n%s", body)
	}
	if resDict["ExtGState"] != nil {
		t.Errorf("opaque path minted an ExtGState: %v", resDict["ExtGState"])
	}
}

func TestUnsupportedStrokePaint(t *testing.T) {
	paints := []Paint{
		&LinearGradient{X2: 1, Stops: redBlueStops(1)},
		&RadialGradient{R: 1, Stops: redBlueStops(1)},
		&Pattern{Rect: rect.Rect{URx: 1, URy: 1}, Content: &Group{}},
	}
	for _, paint := range paints {
		p := &Path{
			Data: square(0, 0, 1, 1),
			BBox: rect.Rect{URx: 1, URy: 1},
			Stroke: &Stroke{
				Paint:      paint,
				Width:      1,
				MiterLimit: 10,
				Opacity:    1,
			},
		}
		r, _ := testRenderer(t)
		err := r.Render(p)
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("%T stroke: got %v, want ErrUnsupported", paint, err)
		}
	}
}
