// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image/color"

// Common opaque colors.
var (
	Black  = color.RGBA{A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Red    = color.RGBA{R: 255, A: 255}
	Green  = color.RGBA{G: 255, A: 255}
	Blue   = color.RGBA{B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, A: 255}
	Cyan   = color.RGBA{G: 255, B: 255, A: 255}
)
