// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/rastergeom"
)

// Scaled returns a copy of the canvas enlarged by an integer factor with
// nearest-neighbour sampling, so that single pixels stay crisp squares.
// A factor below 1 is treated as 1.
func (c *Canvas) Scaled(factor int) *image.RGBA {
	factor = max(factor, 1)
	src := c.img
	dst := image.NewRGBA(image.Rect(0, 0, src.Rect.Dx()*factor, src.Rect.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// EncodePNG writes the canvas to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return SavePNG(path, c.img)
}

// SavePNG saves img to a PNG file at path.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encode %s: %w", path, err)
	}

	b := img.Bounds()
	rastergeom.Logger().Debug("render: wrote png",
		"path", path, "width", b.Dx(), "height", b.Dy())
	return nil
}
