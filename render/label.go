// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/rastergeom"
)

// LabelSize is the font size in points used by Label and Caption.
const LabelSize = 13

// captionMargin is the distance in pixels from the top-left corner to the
// caption's bounding box.
const captionMargin = 8

// goRegular parses the embedded Go Regular font once per process.
var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// labelFace returns the canvas font face, creating it on first use.
func (c *Canvas) labelFace() (font.Face, error) {
	if c.face != nil {
		return c.face, nil
	}
	f, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    LabelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: create face: %w", err)
	}
	c.face = face
	return face, nil
}

// Label draws text with its baseline origin at the world point p.
func (c *Canvas) Label(p rastergeom.Point, text string, col color.Color) error {
	if text == "" {
		return nil
	}
	if !p.IsFinite() {
		return fmt.Errorf("render: label %q at non-finite point %v", text, p)
	}
	px := c.ToPixel(p)
	return c.drawText(fixed.Point26_6{X: fixed.Int26_6(px.X * 64), Y: fixed.Int26_6(px.Y * 64)}, text, col)
}

// Caption draws text in the top-left corner of the canvas.
func (c *Canvas) Caption(text string, col color.Color) error {
	if text == "" {
		return nil
	}
	face, err := c.labelFace()
	if err != nil {
		return err
	}
	ascent := face.Metrics().Ascent.Ceil()
	return c.drawText(fixed.P(captionMargin, captionMargin+ascent), text, col)
}

func (c *Canvas) drawText(dot fixed.Point26_6, text string, col color.Color) error {
	face, err := c.labelFace()
	if err != nil {
		rastergeom.Logger().Warn("render: font face unavailable", "err", err)
		return err
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(text)
	return nil
}
