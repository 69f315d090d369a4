package mapraster

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/benoitkugler/genmap/colormap"
	"github.com/benoitkugler/genmap/geomap"
	"github.com/srwiley/rasterx"
)

var (
	errSmallGrid = errors.New("mapraster: grids need at least 2 points per axis")
	errNoField   = errors.New("mapraster: no field has been filled yet")
)

func checkGrid(lat, lon []float64, data [][]float64) error {
	if len(lat) < 2 || len(lon) < 2 {
		return errSmallGrid
	}
	if len(data) != len(lat) {
		return fmt.Errorf("mapraster: data has %d rows, want %d", len(data), len(lat))
	}
	for i, row := range data {
		if len(row) != len(lon) {
			return fmt.Errorf("mapraster: data row %d has %d columns, want %d", i, len(row), len(lon))
		}
	}
	return nil
}

// cellEdges converts cell center positions to cell boundaries,
// extrapolating half a step at both ends.
func cellEdges(axis []float64) []float64 {
	n := len(axis)
	edges := make([]float64, n+1)
	for i := 1; i < n; i++ {
		edges[i] = (axis[i-1] + axis[i]) / 2
	}
	edges[0] = axis[0] - (axis[1]-axis[0])/2
	edges[n] = axis[n-1] + (axis[n-1]-axis[n-2])/2
	return edges
}

func (f *Figure) contains(lon, lat float64) bool {
	return lon >= f.Extent.West && lon <= f.Extent.East &&
		lat >= f.Extent.South && lat <= f.Extent.North
}

// FillGrid renders a gridded scalar field as filled cells, colored
// through the colormap registered under cmapName. lat and lon give
// the cell centers of a regular grid; data is indexed [iLat][iLon].
// Cells centered outside the extent are skipped.
func (f *Figure) FillGrid(lat, lon []float64, data [][]float64, cmapName string, norm colormap.Normalizer) error {
	cm, ok := f.reg.Lookup(cmapName)
	if !ok {
		return fmt.Errorf("mapraster: colormap %q is not registered", cmapName)
	}
	if err := checkGrid(lat, lon, data); err != nil {
		return err
	}
	latEdges, lonEdges := cellEdges(lat), cellEdges(lon)
	for i := range lat {
		for j := range lon {
			if !f.contains(lon[j], lat[i]) {
				continue
			}
			quad := make([]geomap.Point, 4)
			for k, corner := range [4][2]float64{
				{lonEdges[j], latEdges[i]},
				{lonEdges[j+1], latEdges[i]},
				{lonEdges[j+1], latEdges[i+1]},
				{lonEdges[j], latEdges[i+1]},
			} {
				x, y := f.proj.Project(corner[0], corner[1])
				quad[k] = geomap.Point{X: x, Y: y}
			}
			f.fillPath(quad, cm.RGBA(norm.Normalize(data[i][j])))
		}
	}
	f.lastMap, f.hasField, f.lastLabel = cm, true, ""
	return nil
}

// Quiver overlays a vector field as arrows. step subsamples the
// grid (values below 1 draw every node); scale is the arrow length
// in pixels for a unit-magnitude vector.
func (f *Figure) Quiver(lat, lon []float64, u, v [][]float64, step int, scale float64) error {
	if err := checkGrid(lat, lon, u); err != nil {
		return err
	}
	if err := checkGrid(lat, lon, v); err != nil {
		return err
	}
	if step < 1 {
		step = 1
	}
	for i := 0; i < len(lat); i += step {
		for j := 0; j < len(lon); j += step {
			if !f.contains(lon[j], lat[i]) {
				continue
			}
			x, y := f.proj.Project(lon[j], lat[i])
			// screen y grows downwards
			dx, dy := u[i][j]*scale, -v[i][j]*scale
			f.arrow(x, y, dx, dy)
		}
	}
	return nil
}

// head size relative to the shaft
const arrowHead = 0.3

func (f *Figure) arrow(x, y, dx, dy float64) {
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	tipX, tipY := x+dx, y+dy
	f.strokePath([]geomap.Point{{X: x, Y: y}, {X: tipX, Y: tipY}}, 1, color.Black, nil)

	// two barbs at 150 degrees from the shaft direction
	angle := math.Atan2(dy, dx)
	head := length * arrowHead
	for _, da := range [2]float64{5 * math.Pi / 6, -5 * math.Pi / 6} {
		f.strokePath([]geomap.Point{
			{X: tipX, Y: tipY},
			{X: tipX + head*math.Cos(angle+da), Y: tipY + head*math.Sin(angle+da)},
		}, 1, color.Black, nil)
	}
}

// ScaleBar draws a horizontal scale bar of lengthKm kilometers,
// with a centered length label. centerX and centerY place the bar
// inside the extent, as fractions of the extent span.
func (f *Figure) ScaleBar(lengthKm, centerX, centerY float64) error {
	span, err := geomap.ScaleBar{LengthKm: lengthKm, CenterX: centerX, CenterY: centerY}.
		Resolve(f.Extent, f.dist)
	if err != nil {
		return err
	}
	x0, y0 := f.proj.Project(span.LonLeft, span.Lat)
	x1, y1 := f.proj.Project(span.LonRight, span.Lat)
	f.strokePath([]geomap.Point{{X: x0, Y: y0}, {X: x1, Y: y1}}, 3, color.Black, nil)
	f.drawText(fmt.Sprintf("%g km", lengthKm), (x0+x1)/2, y0-6, alignCenter)
	return nil
}

// Colorbar draws the gradient of the last filled field inside the
// rectangle spanned by the data-coordinate corners p0 (lower left)
// and p1 (upper right). The placement goes through figure fractions,
// mirroring how the map axes are positioned on the canvas.
func (f *Figure) Colorbar(p0, p1 geomap.Point, vertical bool) error {
	if !f.hasField {
		return errNoField
	}
	displayToFigure, err := f.figureToDisplay().Invert()
	if err != nil {
		return err
	}
	rect := geomap.FigureRect(p0, p1, projectorTransform{f.proj}, displayToFigure)

	// back to pixels to paint
	toPx := f.figureToDisplay()
	q0 := toPx.Apply(geomap.Point{X: rect.X0, Y: rect.Y0})
	q1 := toPx.Apply(geomap.Point{X: rect.X1, Y: rect.Y1})

	stops := make([]rasterx.GradStop, len(f.lastMap.Stops))
	for i, s := range f.lastMap.Stops {
		stops[i] = rasterx.GradStop{
			StopColor: color.RGBA{toByte(s.R), toByte(s.G), toByte(s.B), 0xff},
			Offset:    s.Pos,
			Opacity:   1,
		}
	}
	// gradient along the bar axis, in pixel space
	points := [5]float64{q0.X, q0.Y, q1.X, q0.Y, 0}
	if vertical {
		points = [5]float64{q0.X, q0.Y, q0.X, q1.Y, 0}
	}
	grad := rasterx.Gradient{
		Points: points,
		Stops:  stops,
		Bounds: struct{ X, Y, W, H float64 }{
			X: math.Min(q0.X, q1.X), Y: math.Min(q0.Y, q1.Y),
			W: math.Abs(q1.X - q0.X), H: math.Abs(q1.Y - q0.Y),
		},
		Matrix: rasterx.Identity,
		Spread: rasterx.PadSpread,
		Units:  rasterx.UserSpaceOnUse,
	}
	quad := []geomap.Point{
		{X: q0.X, Y: q0.Y},
		{X: q1.X, Y: q0.Y},
		{X: q1.X, Y: q1.Y},
		{X: q0.X, Y: q1.Y},
	}
	f.fillPath(quad, grad.GetColorFunction(1))
	f.strokePath(append(quad, quad[0]), 1, color.Black, nil)

	if f.lastLabel != "" {
		f.drawText(f.lastLabel, (q0.X+q1.X)/2, math.Max(q0.Y, q1.Y)+16, alignCenter)
	}
	return nil
}

// thin dashed graticule
var gridColor = color.NRGBA{0, 0, 0, 80}

func (f *Figure) drawGraticule() {
	e, cfg := f.Extent, f.Config
	for lon := e.West + cfg.TickInitLon; lon <= e.East+1e-9; lon += cfg.TickStepLon {
		x0, y0 := f.proj.Project(lon, e.South)
		x1, y1 := f.proj.Project(lon, e.North)
		f.strokePath([]geomap.Point{{X: x0, Y: y0}, {X: x1, Y: y1}}, 0.5, gridColor, []float64{4, 4})
		f.drawText(fmt.Sprintf(cfg.DegreeFormat, lon), x0, y0+16, alignCenter)
	}
	for lat := e.South + cfg.TickInitLat; lat <= e.North+1e-9; lat += cfg.TickStepLat {
		x0, y0 := f.proj.Project(e.West, lat)
		x1, y1 := f.proj.Project(e.East, lat)
		f.strokePath([]geomap.Point{{X: x0, Y: y0}, {X: x1, Y: y1}}, 0.5, gridColor, []float64{4, 4})
		f.drawText(fmt.Sprintf(cfg.DegreeFormat, lat), x0-6, y0+4, alignRight)
	}
}

func (f *Figure) drawFrame() {
	x0, y0, w, h := f.mapRect()
	f.strokePath([]geomap.Point{
		{X: x0, Y: y0},
		{X: x0 + w, Y: y0},
		{X: x0 + w, Y: y0 + h},
		{X: x0, Y: y0 + h},
		{X: x0, Y: y0},
	}, 1, color.Black, nil)
}

func toByte(v float64) uint8 {
	s := int(v*255 + 0.5)
	if s < 0 {
		s = 0
	}
	if s > 255 {
		s = 255
	}
	return uint8(s)
}
