package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/rastergeom"
	"github.com/gogpu/rastergeom/clip"
)

// Shape vertex limits accepted by -shape.
const (
	minShapeSides = 3
	maxShapeSides = 10
)

// parseNumbers parses exactly n comma-separated numbers.
func parseNumbers(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %d in %q", n, len(fields), s)
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", f, err)
		}
		if !rastergeom.IsFinite(v) {
			return nil, fmt.Errorf("non-finite number %q", f)
		}
		out[i] = v
	}
	return out, nil
}

// parsePoints parses a ";"-separated list of "x,y" pairs.
func parsePoints(s string) ([]rastergeom.Point, error) {
	var pts []rastergeom.Point
	for part := range strings.SplitSeq(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := parseNumbers(part, 2)
		if err != nil {
			return nil, err
		}
		pts = append(pts, rastergeom.Pt(v[0], v[1]))
	}
	return pts, nil
}

// parseSegments parses a ";"-separated list of "x1,y1,x2,y2" segments.
func parseSegments(s string) ([]clip.Segment, error) {
	var segs []clip.Segment
	for part := range strings.SplitSeq(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := parseNumbers(part, 4)
		if err != nil {
			return nil, err
		}
		segs = append(segs, clip.Segment{P0: rastergeom.Pt(v[0], v[1]), P1: rastergeom.Pt(v[2], v[3])})
	}
	return segs, nil
}

// parseWindow parses "xmin,ymin,xmax,ymax".
func parseWindow(s string) (clip.Window, error) {
	v, err := parseNumbers(s, 4)
	if err != nil {
		return clip.Window{}, err
	}
	return clip.NewWindow(v[0], v[1], v[2], v[3])
}

// parseShape parses the polygon for the 2D transform scene.
func parseShape(s string) ([]rastergeom.Point, error) {
	pts, err := parsePoints(s)
	if err != nil {
		return nil, err
	}
	if len(pts) < minShapeSides || len(pts) > maxShapeSides {
		return nil, fmt.Errorf("shape needs %d to %d vertices, got %d", minShapeSides, maxShapeSides, len(pts))
	}
	return pts, nil
}
