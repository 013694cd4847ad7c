package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the command-line flags in a TOML file. Empty or zero
// values leave the flag value unchanged.
//
//	scene     = "clipping,polygon"
//	width     = 1200
//	height    = 900
//	window    = "-0.3,-0.2,0.3,0.2"
//	lines     = "-0.6,-0.05,0.6,0.05;-0.05,-0.4,0.05,0.4"
//	transform = "scale:2;rotate:30"
type fileConfig struct {
	Scene   string `toml:"scene"`
	Out     string `toml:"out"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Upscale int    `toml:"upscale"`

	DDA       string `toml:"dda"`
	Bresenham string `toml:"bresenham"`
	Circle    string `toml:"circle"`
	Ellipse   string `toml:"ellipse"`

	Window  string `toml:"window"`
	Lines   string `toml:"lines"`
	Polygon string `toml:"polygon"`

	Transform string `toml:"transform"`
	Shape     string `toml:"shape"`
	Model     string `toml:"model"`
}

// loadConfigFile reads a TOML scene file into fv. Fields whose flag was
// set explicitly on the command line (present in set) are not overridden.
func loadConfigFile(path string, fv *flagValues, set map[string]bool) error {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	var fc fileConfig
	md, err := toml.DecodeReader(f, &fc)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown keys %v", path, undecoded)
	}

	strs := []struct {
		flag string
		src  string
		dst  *string
	}{
		{"scene", fc.Scene, &fv.scene},
		{"out", fc.Out, &fv.out},
		{"dda", fc.DDA, &fv.dda},
		{"bresenham", fc.Bresenham, &fv.bresenham},
		{"circle", fc.Circle, &fv.circle},
		{"ellipse", fc.Ellipse, &fv.ellipse},
		{"window", fc.Window, &fv.window},
		{"lines", fc.Lines, &fv.lines},
		{"polygon", fc.Polygon, &fv.polygon},
		{"transform", fc.Transform, &fv.transform},
		{"shape", fc.Shape, &fv.shape},
		{"model", fc.Model, &fv.model},
	}
	for _, s := range strs {
		if s.src != "" && !set[s.flag] {
			*s.dst = s.src
		}
	}

	ints := []struct {
		flag string
		src  int
		dst  *int
	}{
		{"width", fc.Width, &fv.width},
		{"height", fc.Height, &fv.height},
		{"upscale", fc.Upscale, &fv.upscale},
	}
	for _, n := range ints {
		if n.src != 0 && !set[n.flag] {
			*n.dst = n.src
		}
	}
	return nil
}
