// Command export writes the rasterized output of all test cases to JSON,
// for comparison with other implementations.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/dda"
	"seehuhn.de/go/dda/testcases"
)

func main() {
	outName := flag.String("o", "testdata/testcases.json", "output file")
	flag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outName), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outName)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
	slog.Info("wrote test cases", "file", *outName, "count", len(out.TestCases))
}

type jsonTestCase struct {
	Name      string      `json:"name"`
	Op        string      `json:"op"`
	Mode      string      `json:"mode,omitempty"`
	Input     [][]float64 `json:"input,omitempty"`
	Size      float64     `json:"size,omitempty"`
	Pixels    [][]float64 `json:"pixels,omitempty"`
	Positions []float32   `json:"positions,omitempty"`
	Colors    []float32   `json:"colors,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name: category + "_" + tc.Name,
	}

	switch op := tc.Op.(type) {
	case testcases.Line:
		jtc.Op = "line"
		jtc.Mode = op.Mode.String()
		jtc.Input = pointsToJSON([]dda.Point{op.P1, op.P2})
		if r := op.Mode.Rasterizer(); r != nil {
			jtc.Pixels = pointsToJSON(r.PlotLine(op.P1, op.P2))
		}
	case testcases.Curve:
		jtc.Op = "curve"
		jtc.Input = pointsToJSON([]dda.Point{op.P0, op.P1, op.P2, op.P3})
		jtc.Positions, jtc.Colors = dda.DrawCurve(op.P0, op.P1, op.P2, op.P3)
	case testcases.Grid:
		jtc.Op = "grid"
		jtc.Size = op.Size
		jtc.Positions, jtc.Colors = dda.DrawGrid(op.Size)
	}
	return jtc
}

func pointsToJSON(pts []dda.Point) [][]float64 {
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = []float64{p.X, p.Y}
	}
	return res
}
