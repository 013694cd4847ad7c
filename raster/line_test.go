package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/rastergeom"
)

func pts(xy ...float64) []rastergeom.Point {
	out := make([]rastergeom.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, rastergeom.Pt(xy[i], xy[i+1]))
	}
	return out
}

func TestLine_CoincidentEndpoints(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want rastergeom.Point
	}{
		{"origin", 0, 0, rastergeom.Pt(0, 0)},
		{"integral", 7, -3, rastergeom.Pt(7, -3)},
		{"fractional", 2.5, -1.4, rastergeom.Pt(3, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []rastergeom.Point{tt.want}, DDA(tt.x, tt.y, tt.x, tt.y))
			assert.Equal(t, []rastergeom.Point{tt.want}, Bresenham(tt.x, tt.y, tt.x, tt.y))
		})
	}
}

func TestBresenham_Horizontal(t *testing.T) {
	got := Bresenham(0, 0, 5, 0)
	assert.Equal(t, pts(0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0), got)
}

func TestBresenham_Vertical(t *testing.T) {
	got := Bresenham(2, -1, 2, 3)
	assert.Equal(t, pts(2, -1, 2, 0, 2, 1, 2, 2, 2, 3), got)
}

func TestBresenham_Shallow(t *testing.T) {
	got := Bresenham(0, 0, 5, 2)
	assert.Equal(t, pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2), got)
}

func TestBresenham_ReversedWalksFromRight(t *testing.T) {
	got := Bresenham(5, 0, 0, 0)
	require.Len(t, got, 6)
	assert.Equal(t, rastergeom.Pt(0, 0), got[0])
	assert.Equal(t, rastergeom.Pt(5, 0), got[5])
}

func TestBresenham_OnePointPerMajorStep(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
	}{
		{"shallow up", 0, 0, 20, 7},
		{"shallow down", 0, 0, 20, -7},
		{"steep up", 0, 0, 7, 20},
		{"steep down", 3, 4, -2, -17},
		{"diagonal", -4, -4, 4, 4},
		{"anti diagonal", -4, 4, 4, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bresenham(tt.x1, tt.y1, tt.x2, tt.y2)
			dx := math.Abs(tt.x2 - tt.x1)
			dy := math.Abs(tt.y2 - tt.y1)
			require.Len(t, got, int(max(dx, dy))+1)

			assert.Contains(t, got, rastergeom.Pt(tt.x1, tt.y1))
			assert.Contains(t, got, rastergeom.Pt(tt.x2, tt.y2))

			// 8-connected: consecutive points differ by at most one on each axis.
			for i := 1; i < len(got); i++ {
				assert.LessOrEqual(t, math.Abs(got[i].X-got[i-1].X), 1.0, "step %d", i)
				assert.LessOrEqual(t, math.Abs(got[i].Y-got[i-1].Y), 1.0, "step %d", i)
			}
		})
	}
}

func TestDDA_Samples(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           []rastergeom.Point
	}{
		{"horizontal", 0, 0, 3, 0, pts(0, 0, 1, 0, 2, 0, 3, 0)},
		{"shallow", 0, 0, 5, 2, pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2)},
		{"diagonal backwards", 0, 0, -3, -3, pts(0, 0, -1, -1, -2, -2, -3, -3)},
		{"fractional span", 0.4, 0, 2.6, 0, pts(0, 0, 1, 0, 2, 0, 3, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DDA(tt.x1, tt.y1, tt.x2, tt.y2))
		})
	}
}

func TestDDA_EndpointsInclusive(t *testing.T) {
	got := DDA(-10, 3, 17, -8)
	require.NotEmpty(t, got)
	assert.Equal(t, rastergeom.Pt(-10, 3), got[0])
	assert.Equal(t, rastergeom.Pt(17, -8), got[len(got)-1])
	assert.Len(t, got, 28)
}

func TestDDA_AgreesWithBresenhamOnAxesAndDiagonals(t *testing.T) {
	lines := [][4]float64{
		{0, 0, 9, 0},
		{0, 0, 0, 9},
		{0, 0, 9, 9},
		{0, 0, 9, -9},
	}
	for _, l := range lines {
		assert.Equal(t, Bresenham(l[0], l[1], l[2], l[3]), DDA(l[0], l[1], l[2], l[3]), "line %v", l)
	}
}

func TestLine_NonFinite(t *testing.T) {
	assert.Nil(t, DDA(math.NaN(), 0, 1, 1))
	assert.Nil(t, DDA(0, 0, math.Inf(1), 1))
	assert.Nil(t, Bresenham(0, math.NaN(), 1, 1))
}

func TestLine_HugeSpan(t *testing.T) {
	half := float64(maxSpan / 2)
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
	}{
		{"far endpoint", 0, 0, 1e19, 0},
		{"far start", -1e19, 5, 0, 5},
		{"steep", 3, 0, 3, 1e12},
		{"coordinate beyond limit", maxSpan + 1, 0, maxSpan + 2, 0},
		{"span just over limit", -half, 0, half + 1, 0},
		{"diagonal span just over limit", 0, -half, 1, half + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, DDA(tt.x1, tt.y1, tt.x2, tt.y2))
			assert.Nil(t, Bresenham(tt.x1, tt.y1, tt.x2, tt.y2))
		})
	}

	// Short lines near the limit are still drawn.
	edge := float64(maxSpan)
	assert.Equal(t, pts(edge-2, 0, edge-1, 0, edge, 0), Bresenham(edge-2, 0, edge, 0))
	assert.Equal(t, pts(edge-2, 0, edge-1, 0, edge, 0), DDA(edge-2, 0, edge, 0))
}

func TestLine_Restartable(t *testing.T) {
	a := Bresenham(0, 0, 10, 4)
	b := Bresenham(0, 0, 10, 4)
	require.Equal(t, a, b)
	a[0] = rastergeom.Pt(99, 99)
	assert.NotEqual(t, a[0], b[0], "results must not share backing storage")
}

func BenchmarkDDA(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = DDA(0, 0, 800, 333)
	}
}

func BenchmarkBresenham(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = Bresenham(0, 0, 800, 333)
	}
}
