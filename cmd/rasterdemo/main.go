// Command rasterdemo renders the rastergeom algorithms to PNG files.
//
// Each scene is written to <out>/<scene>.png:
//
//	primitives   DDA, Bresenham, midpoint circle and midpoint ellipse
//	clipping     Cohen–Sutherland line clipping against a window
//	polygon      polygon edges and enclosed window border segments
//	transform2d  a polygon before and after a composed 2D transform
//	transform3d  wireframe cubes through a perspective camera
//
// Usage:
//
//	rasterdemo -scene primitives -circle 0,0,150 -out /tmp
//	rasterdemo -scene transform2d -transform "scale:2;rotate:30;translate:50,0"
//	rasterdemo -config lab.toml -upscale 2
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rastergeom"
	"github.com/gogpu/rastergeom/render"
	"github.com/gogpu/rastergeom/transform"
)

// Default scene parameters. The clipping defaults are in normalized
// coordinates, the others in pixels around the canvas center.
const (
	defaultDDA       = "-400,-300,300,100"
	defaultBresenham = "-300,350,400,-250"
	defaultCircle    = "0,0,200"
	defaultEllipse   = "100,-50,300,150"
	defaultWindow    = "-0.3,-0.2,0.3,0.2"
	defaultLines     = "-0.6,-0.05,0.6,0.05;-0.05,-0.4,0.05,0.4;-0.4,-0.3,0.4,0.3;-0.5,0.25,0.5,0.25"
	defaultPolygon   = "-0.6,-0.05;-0.1,-0.05;0.1,-0.05;0.6,-0.05;0.6,0.05;0.1,0.05;-0.1,0.05;-0.6,0.05"
	defaultTransform = "rotate:45"
	defaultShape     = "0,0;150,0;150,100;0,100"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML file with scene parameters; explicit flags take precedence")
		sceneName  = flag.String("scene", "all", "scene to render: all, or a comma-separated list of primitives, clipping, polygon, transform2d, transform3d")
		outDir     = flag.String("out", ".", "output directory")
		width      = flag.Int("width", 1200, "image width")
		height     = flag.Int("height", 900, "image height")
		upscale    = flag.Int("upscale", 1, "integer upscale factor for the written PNG")
		dda        = flag.String("dda", defaultDDA, "DDA line x1,y1,x2,y2")
		bresenham  = flag.String("bresenham", defaultBresenham, "Bresenham line x1,y1,x2,y2")
		circle     = flag.String("circle", defaultCircle, "circle xc,yc,r")
		ellipse    = flag.String("ellipse", defaultEllipse, "ellipse xc,yc,rx,ry")
		window     = flag.String("window", defaultWindow, "clip window xmin,ymin,xmax,ymax")
		lines      = flag.String("lines", defaultLines, "lines to clip x1,y1,x2,y2;...")
		polygon    = flag.String("polygon", defaultPolygon, "polygon vertices x,y;...")
		ops        = flag.String("transform", defaultTransform, "2D transform chain, e.g. scale:2,2;translate:10,0")
		shape      = flag.String("shape", defaultShape, "2D shape vertices x,y;... (3 to 10 vertices)")
		model      = flag.String("model", "rotate", "3D model transform: translate, rotate, scale, shear")
		verbose    = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		rastergeom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	fv := flagValues{
		scene: *sceneName, out: *outDir,
		width: *width, height: *height, upscale: *upscale,
		dda: *dda, bresenham: *bresenham, circle: *circle, ellipse: *ellipse,
		window: *window, lines: *lines, polygon: *polygon,
		transform: *ops, shape: *shape, model: *model,
	}
	if *configPath != "" {
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if err := loadConfigFile(*configPath, &fv, set); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	cfg, err := newConfig(fv)
	if err != nil {
		log.Fatalf("Invalid parameters: %v", err)
	}

	names, err := selectScenes(fv.scene)
	if err != nil {
		log.Fatalf("Invalid scene: %v", err)
	}

	if err := run(cfg, names, fv.out, fv.upscale, os.Stdout); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
}

// flagValues holds the raw flag strings before parsing.
type flagValues struct {
	scene, out             string
	width, height, upscale int

	dda, bresenham, circle, ellipse string
	window, lines, polygon          string
	transform, shape, model         string
}

// newConfig parses the raw flag values.
func newConfig(fv flagValues) (*config, error) {
	cfg := &config{width: fv.width, height: fv.height, model: fv.model}

	fixed := []struct {
		name string
		src  string
		dst  []float64
	}{
		{"dda", fv.dda, cfg.dda[:]},
		{"bresenham", fv.bresenham, cfg.bresenham[:]},
		{"circle", fv.circle, cfg.circle[:]},
		{"ellipse", fv.ellipse, cfg.ellipse[:]},
	}
	for _, f := range fixed {
		v, err := parseNumbers(f.src, len(f.dst))
		if err != nil {
			return nil, fmt.Errorf("-%s: %w", f.name, err)
		}
		copy(f.dst, v)
	}

	var err error
	if cfg.window, err = parseWindow(fv.window); err != nil {
		return nil, fmt.Errorf("-window: %w", err)
	}
	if cfg.lines, err = parseSegments(fv.lines); err != nil {
		return nil, fmt.Errorf("-lines: %w", err)
	}
	if cfg.polygon, err = parsePoints(fv.polygon); err != nil {
		return nil, fmt.Errorf("-polygon: %w", err)
	}
	if cfg.ops, err = transform.ParseChain(fv.transform); err != nil {
		return nil, fmt.Errorf("-transform: %w", err)
	}
	if cfg.shape, err = parseShape(fv.shape); err != nil {
		return nil, fmt.Errorf("-shape: %w", err)
	}
	if _, ok := models[cfg.model]; !ok {
		return nil, fmt.Errorf("-model: unknown model %q", cfg.model)
	}
	return cfg, nil
}

// selectScenes resolves the -scene flag to scene names.
func selectScenes(name string) ([]string, error) {
	if name == "all" {
		names := make([]string, len(scenes))
		for i, s := range scenes {
			names[i] = s.name
		}
		return names, nil
	}
	var names []string
	for n := range strings.SplitSeq(name, ",") {
		n = strings.TrimSpace(n)
		if _, ok := findScene(n); !ok {
			return nil, fmt.Errorf("unknown scene %q", n)
		}
		names = append(names, n)
	}
	return names, nil
}

// run renders the named scenes into outDir and prints a summary line per
// scene to w.
func run(cfg *config, names []string, outDir string, upscale int, w io.Writer) error {
	p := message.NewPrinter(language.English)
	for _, name := range names {
		s, ok := findScene(name)
		if !ok {
			return fmt.Errorf("unknown scene %q", name)
		}

		c, st, err := s.draw(cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		path := filepath.Join(outDir, name+".png")
		if err := render.SavePNG(path, c.Scaled(upscale)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		rastergeom.Logger().Info("rasterdemo: scene written",
			"scene", name, "path", path, "points", st.points, "segments", st.segments)

		p.Fprintf(w, "%-12s %8d points %6d segments  %s\n", name, st.points, st.segments, path)
	}
	return nil
}
