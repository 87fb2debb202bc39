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
	"io"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
)

// testRenderer returns a renderer writing into an in-memory object
// sink, so that tests can inspect the objects it emits.
func testRenderer(t *testing.T) (*Renderer, *pdf.Data) {
	t.Helper()
	data := pdf.NewData(pdf.V1_7)
	r, err := NewRenderer(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	return r, data
}

// render runs the renderer over the given nodes and returns the content
// stream, the resource dictionary, and the object sink for inspection.
func render(t *testing.T, nodes ...Node) (string, pdf.Dict, *pdf.Data) {
	t.Helper()
	r, data := testRenderer(t)
	for _, n := range nodes {
		if err := r.Render(n); err != nil {
			t.Fatal(err)
		}
	}
	body, resDict, err := r.Finish()
	if err != nil {
		t.Fatal(err)
	}
	return string(body), resDict, data
}

// getDict resolves obj, which must be a reference to a dictionary.
func getDict(t *testing.T, data *pdf.Data, obj pdf.Object) pdf.Dict {
	t.Helper()
	ref, ok := obj.(pdf.Reference)
	if !ok {
		t.Fatalf("expected reference, got %T", obj)
	}
	res, err := data.Get(ref, true)
	if err != nil {
		t.Fatal(err)
	}
	dict, ok := res.(pdf.Dict)
	if !ok {
		t.Fatalf("expected dict, got %T", res)
	}
	return dict
}

// getStream resolves obj, which must be a reference to a stream.
func getStream(t *testing.T, data *pdf.Data, obj pdf.Object) *pdf.Stream {
	t.Helper()
	ref, ok := obj.(pdf.Reference)
	if !ok {
		t.Fatalf("expected reference, got %T", obj)
	}
	res, err := data.Get(ref, true)
	if err != nil {
		t.Fatal(err)
	}
	stm, ok := res.(*pdf.Stream)
	if !ok {
		t.Fatalf("expected stream, got %T", res)
	}
	return stm
}

func streamBody(t *testing.T, stm *pdf.Stream) string {
	t.Helper()
	body, err := io.ReadAll(stm.R)
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

// resource looks up one named entry of a resource dictionary.
func resource(t *testing.T, resDict pdf.Dict, category, name pdf.Name) pdf.Object {
	t.Helper()
	sub, ok := resDict[category].(pdf.Dict)
	if !ok {
		t.Fatalf("no %s resources", category)
	}
	obj, ok := sub[name]
	if !ok {
		t.Fatalf("no %s entry %s", category, name)
	}
	return obj
}

// checkNumbers compares a PDF array of numbers against want.
func checkNumbers(t *testing.T, got pdf.Object, want []float64) {
	t.Helper()
	arr, ok := got.(pdf.Array)
	if !ok {
		t.Fatalf("expected array, got %T", got)
	}
	if len(arr) != len(want) {
		t.Fatalf("got %d entries, want %d", len(arr), len(want))
	}
	for i, x := range want {
		num, ok := arr[i].(pdf.Number)
		if !ok || float64(num) != x {
			t.Errorf("entry %d: got %v, want %g", i, arr[i], x)
		}
	}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// square builds a closed axis-aligned rectangle path.
func square(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

func solidFill(r, g, b float64) *Fill {
	return &Fill{Paint: Color{R: r, G: g, B: b}, Opacity: 1}
}

func TestSolidFill(t *testing.T) {
	p := &Path{
		Data: square(10, 10, 50, 50),
		BBox: rect.Rect{LLx: 10, LLy: 10, URx: 50, URy: 50},
		Fill: solidFill(0.2, 0.4, 0.6),
	}
	body, resDict, data := render(t, p)

	want := strings.Join([]string{
		"q",
		"/srgb cs",
		"/srgb CS",
		"0.2 0.4 0.6 sc",
		"10 10 m",
		"50 10 l",
		"50 50 l",
		"10 50 l",
		"h",
		"f",
		"Q",
	}, "\n") + "\n"
	if body != want {
		t.Errorf("content stream:\ngot:\n%s\nwant:\n%s", body, want)
	}

	// every resource dictionary carries the shared colour space
	cs, ok := resDict["ColorSpace"].(pdf.Dict)
	if !ok {
		t.Fatal("no ColorSpace resources")
	}
	ref, ok := cs["srgb"]
	if !ok {
		t.Fatal("no srgb colour space entry")
	}
	obj, err := data.Get(ref.(pdf.Reference), true)
	if err != nil {
		t.Fatal(err)
	}
	arr, ok := obj.(pdf.Array)
	if !ok || len(arr) != 2 || arr[0] != pdf.Name("CalRGB") {
		t.Errorf("unexpected srgb colour space: %v", obj)
	}
}

func TestGroupNesting(t *testing.T) {
	leaf := &Path{
		Data: square(0, 0, 1, 1),
		BBox: rect.Rect{URx: 1, URy: 1},
		Fill: solidFill(0, 0, 0),
	}
	inner := &Group{
		Transform: matrix.Matrix{1, 0, 0, 1, 3, 4},
		Children:  []Node{leaf},
	}
	root := &Group{
		Transform: matrix.Matrix{2, 0, 0, 2, 0, 0},
		Children:  []Node{leaf, inner},
	}
	body, _, _ := render(t, root)

	// Keep only the structural operators.  Each node is bracketed in
	// q/Q so that siblings do not see each other's state changes, and
	// each group applies only its own local transform.
	var structure []string
	for _, line := range strings.Split(body, "\n") {
		if line == "q" || line == "Q" || strings.HasSuffix(line, " cm") {
			structure = append(structure, line)
		}
	}
	want := []string{
		"q",
		"2 0 0 2 0 0 cm",
		"q", "Q", // first child
		"q",
		"1 0 0 1 3 4 cm",
		"q", "Q", // leaf inside the inner group
		"Q",
		"Q",
	}
	if len(structure) != len(want) {
		t.Fatalf("got %d structural operators, want %d:\n%v",
			len(structure), len(want), structure)
	}
	for i, line := range want {
		if structure[i] != line {
			t.Errorf("operator %d: got %q, want %q", i, structure[i], line)
		}
	}
}

func TestRenderAppends(t *testing.T) {
	a := &Path{Data: square(0, 0, 1, 1), Fill: solidFill(1, 0, 0)}
	b := &Path{Data: square(2, 2, 3, 3), Fill: solidFill(0, 1, 0)}

	r, _ := testRenderer(t)
	if err := r.Render(a); err != nil {
		t.Fatal(err)
	}
	if err := r.Render(b); err != nil {
		t.Fatal(err)
	}
	body, _, err := r.Finish()
	if err != nil {
		t.Fatal(err)
	}
	first := strings.Index(string(body), "1 0 0 sc")
	second := strings.Index(string(body), "0 1 0 sc")
	if first < 0 || second < 0 || second < first {
		t.Errorf("render calls not appended in order:\n%s", body)
	}
}

func TestFinishedRenderer(t *testing.T) {
	r, _ := testRenderer(t)
	if _, _, err := r.Finish(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.Finish(); err == nil {
		t.Error("second Finish did not fail")
	}
	err := r.Render(&Group{})
	if err == nil {
		t.Error("Render after Finish did not fail")
	}
}

func TestInvalidNodes(t *testing.T) {
	r, _ := testRenderer(t)
	if err := r.Render(nil); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("nil node: got %v, want ErrInvalidScene", err)
	}
}

func TestFormXObject(t *testing.T) {
	bbox := rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 50}
	root := &Group{
		Children: []Node{
			&Path{
				Data: square(10, 10, 90, 40),
				BBox: rect.Rect{LLx: 10, LLy: 10, URx: 90, URy: 40},
				Fill: solidFill(0, 0, 1),
			},
		},
	}

	data := pdf.NewData(pdf.V1_7)
	ref, err := FormXObject(data, root, bbox, nil)
	if err != nil {
		t.Fatal(err)
	}

	stm := getStream(t, data, ref)
	if stm.Dict["Subtype"] != pdf.Name("Form") {
		t.Errorf("Subtype: got %v", stm.Dict["Subtype"])
	}
	if stm.Dict["FormType"] != pdf.Integer(1) {
		t.Errorf("FormType: got %v", stm.Dict["FormType"])
	}
	b, ok := stm.Dict["BBox"].(*pdf.Rectangle)
	if !ok || b.LLx != 0 || b.LLy != 0 || b.URx != 100 || b.URy != 50 {
		t.Errorf("BBox: got %v", stm.Dict["BBox"])
	}
	res, ok := stm.Dict["Resources"].(pdf.Dict)
	if !ok {
		t.Fatal("no resource dictionary")
	}
	if _, ok := res["ColorSpace"].(pdf.Dict); !ok {
		t.Error("form resources lack the colour space entry")
	}

	body := streamBody(t, stm)
	if !strings.Contains(body, "0 0 1 sc") || !strings.Contains(body, "f\n") {
		t.Errorf("unexpected form content:\n%s", body)
	}
}

func TestCompression(t *testing.T) {
	root := &Path{Data: square(0, 0, 1, 1), Fill: solidFill(0, 0, 0)}
	bbox := rect.Rect{URx: 1, URy: 1}

	data := pdf.NewData(pdf.V1_7)
	ref, err := FormXObject(data, root, bbox, &Options{Compress: true})
	if err != nil {
		t.Fatal(err)
	}
	stm := getStream(t, data, ref)
	if stm.Dict["Filter"] == nil {
		t.Error("compressed form has no stream filter")
	}
}
