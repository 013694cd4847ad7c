package rastergeom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, -4)

	assert.Equal(t, Pt(4, -2), p.Add(q))
	assert.Equal(t, Pt(-2, 6), p.Sub(q))
	assert.Equal(t, Pt(2.5, 5), p.Mul(2.5))
	assert.Equal(t, Pt(2, -1), p.Lerp(q, 0.5))
}

func TestPointRound(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"integral", Pt(3, -7), Pt(3, -7)},
		{"half away from zero", Pt(2.5, -2.5), Pt(3, -3)},
		{"below half", Pt(0.49, -0.49), Pt(0, 0)},
		{"above half", Pt(1.51, -1.51), Pt(2, -2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Round()
			assert.Equal(t, tt.want.X, got.X)
			assert.Equal(t, tt.want.Y, got.Y)
		})
	}
}

func TestPointIsFinite(t *testing.T) {
	assert.True(t, Pt(1, 2).IsFinite())
	assert.False(t, Pt(math.NaN(), 0).IsFinite())
	assert.False(t, Pt(0, math.Inf(-1)).IsFinite())

	assert.True(t, IsFinite())
	assert.True(t, IsFinite(1, -2, 3e300))
	assert.False(t, IsFinite(1, math.Inf(1)))
}

func TestPointNear(t *testing.T) {
	assert.True(t, Pt(1, 1).Near(Pt(1+1e-12, 1-1e-12), 1e-9))
	assert.False(t, Pt(1, 1).Near(Pt(1.1, 1), 1e-9))
}
