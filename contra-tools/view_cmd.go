package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/speezepearson/contravis/choreo"
	"github.com/speezepearson/contravis/internal/danceload"
	"github.com/speezepearson/contravis/lattice"
	"github.com/thatisuday/commando"
	"golang.org/x/image/vector"
)

func runViewCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	df, err := danceload.LoadDance(mustArg(args, "dance"))
	if err != nil {
		fatalf("%v", err)
	}
	outPath := strings.TrimSpace(mustFlagString(flags["output"], "output"))
	if outPath == "" {
		fatalf("output path is empty")
	}
	beat, _ := optionalBeat(flags["beat"], "beat")
	scale := mustFlagInt(flags["scale"], "scale")
	if scale <= 0 {
		fatalf("--scale must be > 0")
	}
	s, err := floorAt(*df.Dance, beat)
	if err != nil {
		fatalf("%v", err)
	}
	if err := writePNG(renderFloor(s, float32(scale)), outPath); err != nil {
		fatalf("render failed: %v", err)
	}
	fmt.Printf("wrote %s (%s, beat %g)\n", outPath, df.Dance.Name, beat)
}

// floorAt composes d and samples it at beat. If composition fails, the
// partial timelines are sampled instead.
func floorAt(d choreo.Dance, beat float64) (lattice.Snapshot, error) {
	initial, err := lattice.Initial(d.Formation)
	if err != nil {
		return nil, err
	}
	tls, err := d.Compose()
	if cerr, ok := err.(*choreo.CompositionError); ok {
		tracer().Infof("rendering partial dance: %v", cerr)
		tls = cerr.Partial
	} else if err != nil {
		return nil, err
	}
	return tls.Sample(initial, beat), nil
}

// The rendered window of the floor: across the set, and along the set from
// the block below to the block above block 0.
const (
	viewMinX = -lattice.Period * 5 / 8
	viewMaxX = lattice.Period * 5 / 8
	viewMinY = -lattice.Period / 2
	viewMaxY = lattice.Period * 3 / 2
)

const dancerRadius = lattice.Period / 12

var (
	larkColor  = color.RGBA{40, 90, 200, 255}
	robinColor = color.RGBA{200, 60, 60, 255}
	noseColor  = color.RGBA{30, 30, 30, 255}
	lineColor  = color.RGBA{200, 200, 200, 255}
)

// view maps floor coordinates to pixels. The floor's y axis points up the
// set, image y grows downward.
type view struct {
	scale         float32
	width, height int
}

func newView(scale float32) view {
	return view{
		scale:  scale,
		width:  int(math.Ceil(float64(scale) * (viewMaxX - viewMinX))),
		height: int(math.Ceil(float64(scale) * (viewMaxY - viewMinY))),
	}
}

func (v view) pixel(p lattice.Vec) (float32, float32) {
	return float32(p.X-viewMinX) * v.scale, float32(viewMaxY-p.Y) * v.scale
}

// renderFloor draws blocks -1 to 1 of a snapshot. Larks are blue, robins
// red, and a dark nose points where each dancer is facing.
func renderFloor(s lattice.Snapshot, scale float32) *image.RGBA {
	v := newView(scale)
	img := image.NewRGBA(image.Rect(0, 0, v.width, v.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{255, 255, 255, 255}), image.Point{}, draw.Src)
	cx, _ := v.pixel(lattice.V(0, 0))
	drawRectOutline(img, int(cx), 0, int(cx)+1, v.height, lineColor)
	for block := -1; block <= 1; block++ {
		for _, slot := range lattice.Slots {
			d, err := s.Dancer(lattice.ID(slot, block))
			if err != nil {
				continue
			}
			c := larkColor
			if d.Role == lattice.Robin {
				c = robinColor
			}
			if block != 0 {
				c = faded(c, 110)
			}
			drawDancer(img, v, d, c)
		}
	}
	return img
}

// faded returns c with alpha a, premultiplied.
func faded(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(a) / 255) }
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), a}
}

func drawDancer(img *image.RGBA, v view, d lattice.DancerState, c color.RGBA) {
	x, y := v.pixel(d.Pos)
	r := float32(dancerRadius) * v.scale
	rast := vector.NewRasterizer(v.width, v.height)
	rast.DrawOp = draw.Over
	const kappa = 0.5523
	k := kappa * r
	rast.MoveTo(x+r, y)
	rast.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
	rast.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
	rast.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
	rast.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
	rast.ClosePath()
	rast.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	// nose
	h := d.Heading()
	hx, hy := float32(h.X), -float32(h.Y)
	rast.Reset(v.width, v.height)
	rast.DrawOp = draw.Over
	rast.MoveTo(x+hx*r*1.5, y+hy*r*1.5)
	rast.LineTo(x+hx*r*0.5-hy*r*0.5, y+hy*r*0.5+hx*r*0.5)
	rast.LineTo(x+hx*r*0.5+hy*r*0.5, y+hy*r*0.5-hx*r*0.5)
	rast.ClosePath()
	rast.Draw(img, img.Bounds(), image.NewUniform(noseColor), image.Point{})
}

func writePNG(img image.Image, outPath string) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("cannot encode png: %w", err)
	}
	return nil
}

func drawRectOutline(img *image.RGBA, minX int, minY int, maxX int, maxY int, c color.RGBA) {
	if img == nil {
		return
	}
	if maxX < minX {
		minX, maxX = maxX, minX
	}
	if maxY < minY {
		minY, maxY = maxY, minY
	}
	b := img.Bounds()
	minX, minY = max(minX, b.Min.X), max(minY, b.Min.Y)
	maxX, maxY = min(maxX, b.Max.X), min(maxY, b.Max.Y)
	if minX >= maxX || minY >= maxY {
		return
	}
	// top and bottom
	for x := minX; x < maxX; x++ {
		img.SetRGBA(x, minY, c)
		img.SetRGBA(x, maxY-1, c)
	}
	// left and right
	for y := minY; y < maxY; y++ {
		img.SetRGBA(minX, y, c)
		img.SetRGBA(maxX-1, y, c)
	}
}
