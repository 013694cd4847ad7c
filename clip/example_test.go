package clip_test

import (
	"fmt"

	"github.com/gogpu/rastergeom"
	"github.com/gogpu/rastergeom/clip"
)

func ExampleClipSegment() {
	w, err := clip.NewWindow(-1, -1, 1, 1)
	if err != nil {
		panic(err)
	}

	ok, p1, p2 := clip.ClipSegment(rastergeom.Pt(-2, 0), rastergeom.Pt(2, 0), w)
	fmt.Println(ok, p1, p2)

	ok, _, _ = clip.ClipSegment(rastergeom.Pt(-3, -2), rastergeom.Pt(-2, 2), w)
	fmt.Println(ok)
	// Output:
	// true {-1 0} {1 0}
	// false
}

func ExampleBorderSegments() {
	w, _ := clip.NewWindow(0, 0, 10, 10)
	polygon := []rastergeom.Point{
		{X: -5, Y: 2}, {X: 5, Y: 2}, {X: 5, Y: 8}, {X: -5, Y: 8},
	}

	for _, s := range clip.BorderSegments(polygon, w) {
		fmt.Println(s.Edge, s.Start, s.End)
	}
	// Output:
	// left {0 2} {0 8}
}
