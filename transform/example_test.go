package transform_test

import (
	"fmt"

	"github.com/gogpu/rastergeom"
	"github.com/gogpu/rastergeom/transform"
)

func ExampleCompose3() {
	// Rotate by 90 degrees, then move 5 units right.
	m := transform.Compose3(transform.Translate2D(5, 0), transform.Rotate2D(90))
	fmt.Println(m.TransformPoint(rastergeom.Pt(1, 0)).Round())
	// Output:
	// {5 1}
}

func ExampleParseChain() {
	ops, err := transform.ParseChain("scale:2;translate:10,0")
	if err != nil {
		panic(err)
	}
	m, err := transform.Chain(ops...)
	if err != nil {
		panic(err)
	}
	fmt.Println(ops)
	fmt.Println(m.TransformPoint(rastergeom.Pt(1, 1)))
	// Output:
	// [scale:2,2 translate:10,0]
	// {22 2}
}
