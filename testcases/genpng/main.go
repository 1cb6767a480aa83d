// seehuhn.de/go/dda - line and curve rasterization
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

// Command genpng renders all test cases to PNG images.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/dda"
	"seehuhn.de/go/dda/preview"
	"seehuhn.de/go/dda/testcases"
)

func main() {
	outDir := flag.String("dir", "testdata/preview", "output directory")
	size := flag.Int("size", 500, "image width and height in pixels")
	verbose := flag.Bool("v", false, "log every frame")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	dda.SetLogger(logger)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	r := preview.New(*size, *size)
	scene := dda.NewScene()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			fname := filepath.Join(*outDir, name+".png")
			if err := writePNG(r, scene, tc, fname); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			logger.Info("wrote", "file", fname)
		}
	}
}

func writePNG(r *preview.Renderer, s dda.Scene, tc testcases.TestCase, fname string) (err error) {
	frame, err := tc.Frame(s)
	if err != nil {
		return err
	}
	img := r.Render(frame)

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
