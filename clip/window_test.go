package clip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/rastergeom"
)

func TestNewWindow(t *testing.T) {
	w, err := NewWindow(-0.3, -0.2, 0.3, 0.2)
	require.NoError(t, err)
	assert.Equal(t, Window{XMin: -0.3, YMin: -0.2, XMax: 0.3, YMax: 0.2}, w)
	assert.InDelta(t, 0.6, w.Width(), 1e-12)
	assert.InDelta(t, 0.4, w.Height(), 1e-12)
}

func TestNewWindow_Invalid(t *testing.T) {
	tests := []struct {
		name                   string
		xmin, ymin, xmax, ymax float64
	}{
		{"zero width", 1, 0, 1, 2},
		{"zero height", 0, 3, 2, 3},
		{"inverted x", 2, 0, -2, 1},
		{"inverted y", 0, 1, 1, -1},
		{"nan", math.NaN(), 0, 1, 1},
		{"inf", 0, 0, math.Inf(1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWindow(tt.xmin, tt.ymin, tt.xmax, tt.ymax)
			assert.ErrorIs(t, err, ErrInvalidWindow)
		})
	}
}

func TestWindow_Contains(t *testing.T) {
	w := Window{XMin: -1, YMin: -1, XMax: 1, YMax: 1}

	tests := []struct {
		name string
		p    rastergeom.Point
		want bool
	}{
		{"centre", rastergeom.Pt(0, 0), true},
		{"corner", rastergeom.Pt(1, -1), true},
		{"on left edge", rastergeom.Pt(-1, 0.5), true},
		{"just left", rastergeom.Pt(-1.0001, 0), false},
		{"above", rastergeom.Pt(0, 1.5), false},
		{"nan", rastergeom.Pt(math.NaN(), 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Contains(tt.p))
			assert.Equal(t, tt.want, IsInside(tt.p, w))
		})
	}
}

func TestWindow_CornersAndEdges(t *testing.T) {
	w := Window{XMin: 0, YMin: 0, XMax: 4, YMax: 2}

	assert.Equal(t, [4]rastergeom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}}, w.Corners())

	a, b := w.Edge(EdgeLeft)
	assert.Equal(t, rastergeom.Pt(0, 0), a)
	assert.Equal(t, rastergeom.Pt(0, 2), b)

	a, b = w.Edge(EdgeTop)
	assert.Equal(t, rastergeom.Pt(0, 2), a)
	assert.Equal(t, rastergeom.Pt(4, 2), b)
}
