// Implements a raster backend to compose publication style map
// figures, by wrapping rasterx.
// A Figure is created over a geographic extent, filled with gridded
// fields and vector layers, and annotated with a colorbar and a
// scale bar; Image returns the final canvas.
package mapraster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/benoitkugler/genmap/colormap"
	"github.com/benoitkugler/genmap/geomap"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// FigureConfig controls the canvas geometry and the graticule of a
// map figure. Zero fields fall back to DefaultConfig.
type FigureConfig struct {
	Width, Height int // canvas size, in pixels
	Margin        int // whitespace around the map frame, in pixels

	TickStepLon, TickStepLat float64 // graticule spacing, in degrees
	TickInitLon, TickInitLat float64 // offset of the first graticule line

	DegreeFormat string // fmt verb for tick labels
}

// DefaultConfig is used for zero FigureConfig fields.
var DefaultConfig = FigureConfig{
	Width: 800, Height: 600, Margin: 60,
	TickStepLon: 1, TickStepLat: 1,
	DegreeFormat: "%.0f°",
}

// Projector maps geographic coordinates to display pixels.
type Projector interface {
	Project(lon, lat float64) (x, y float64)
}

// PlateCarree is the linear equirectangular projection, fitting an
// extent into a pixel rectangle with latitude increasing upwards.
type PlateCarree struct {
	Extent         geomap.Extent
	X0, Y0, Wd, Ht float64 // pixel rectangle of the map frame
}

func (p PlateCarree) Project(lon, lat float64) (x, y float64) {
	x = p.X0 + (lon-p.Extent.West)/p.Extent.Width()*p.Wd
	y = p.Y0 + (p.Extent.North-lat)/p.Extent.Height()*p.Ht
	return x, y
}

// Figure is a map figure being composed. Drawing methods paint in
// call order; the graticule, frame and tick labels are painted on
// top when Image is called.
type Figure struct {
	Extent geomap.Extent
	Config FigureConfig

	proj    Projector
	img     *image.RGBA
	scanner rasterx.Scanner
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher
	reg     *colormap.Registry
	dist    geomap.DistanceFunc

	lastMap   colormap.Map // colormap of the last filled field
	lastLabel string
	hasField  bool
}

// New creates a blank figure over extent, with colormaps resolved
// from reg.
func New(extent geomap.Extent, reg *colormap.Registry, cfg FigureConfig) (*Figure, error) {
	if err := extent.Check(); err != nil {
		return nil, err
	}
	cfg = withDefaults(cfg)

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(cfg.Width, cfg.Height, img, img.Bounds())
	f := &Figure{
		Extent:  extent,
		Config:  cfg,
		img:     img,
		scanner: scanner,
		filler:  rasterx.NewFiller(cfg.Width, cfg.Height, scanner),
		dasher:  rasterx.NewDasher(cfg.Width, cfg.Height, scanner),
		reg:     reg,
		dist:    geomap.GreatCircleKm,
	}
	x0, y0, w, h := f.mapRect()
	f.proj = PlateCarree{Extent: extent, X0: x0, Y0: y0, Wd: w, Ht: h}
	return f, nil
}

func withDefaults(cfg FigureConfig) FigureConfig {
	if cfg.Width <= 0 {
		cfg.Width = DefaultConfig.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultConfig.Height
	}
	if cfg.Margin <= 0 {
		cfg.Margin = DefaultConfig.Margin
	}
	if cfg.TickStepLon <= 0 {
		cfg.TickStepLon = DefaultConfig.TickStepLon
	}
	if cfg.TickStepLat <= 0 {
		cfg.TickStepLat = DefaultConfig.TickStepLat
	}
	if cfg.DegreeFormat == "" {
		cfg.DegreeFormat = DefaultConfig.DegreeFormat
	}
	return cfg
}

// SetProjector replaces the default PlateCarree projection.
func (f *Figure) SetProjector(p Projector) { f.proj = p }

// SetDistanceFunc replaces the geodesic distance used by ScaleBar.
func (f *Figure) SetDistanceFunc(d geomap.DistanceFunc) { f.dist = d }

// mapRect is the pixel rectangle of the map frame, inset by the
// margin.
func (f *Figure) mapRect() (x0, y0, w, h float64) {
	m := float64(f.Config.Margin)
	return m, m, float64(f.Config.Width) - 2*m, float64(f.Config.Height) - 2*m
}

// figureToDisplay maps figure fractions (origin at the bottom left
// of the canvas) to pixels (origin at the top left).
func (f *Figure) figureToDisplay() geomap.Affine {
	w, h := float64(f.Config.Width), float64(f.Config.Height)
	return geomap.Affine{A: w, B: 0, C: 0, D: -h, E: 0, F: h}
}

// projectorTransform adapts a Projector to the geomap.Transform
// interface.
type projectorTransform struct {
	p Projector
}

func (t projectorTransform) Apply(pt geomap.Point) geomap.Point {
	x, y := t.p.Project(pt.X, pt.Y)
	return geomap.Point{X: x, Y: y}
}

// Image paints the graticule, frame and tick labels over the
// current canvas and returns it. It may be called repeatedly.
func (f *Figure) Image() *image.RGBA {
	f.drawGraticule()
	f.drawFrame()
	return f.img
}

func toFixedP(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// fillPath paints the closed polygon through pts.
// col is a color.Color or a rasterx color function.
func (f *Figure) fillPath(pts []geomap.Point, col interface{}) {
	f.filler.Clear()
	f.scanner.SetColor(col)
	f.filler.Start(toFixedP(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		f.filler.Line(toFixedP(p.X, p.Y))
	}
	f.filler.Stop(true)
	f.filler.Draw()
}

// strokePath strokes the open polyline through pts.
func (f *Figure) strokePath(pts []geomap.Point, width float64, col color.Color, dash []float64) {
	f.dasher.Clear()
	f.dasher.SetStroke(
		fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter,
		dash, 0,
	)
	f.scanner.SetColor(col)
	f.dasher.Start(toFixedP(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		f.dasher.Line(toFixedP(p.X, p.Y))
	}
	f.dasher.Stop(false)
	f.dasher.Draw()
}
