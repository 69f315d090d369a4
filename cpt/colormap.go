package cpt

import (
	"github.com/benoitkugler/genmap/colormap"
	"github.com/lucasb-eyer/go-colorful"
)

// Colormap normalizes the palette into a continuous gradient:
// positions are rescaled so that the table minimum maps to 0 and the
// maximum to 1, and channels are rescaled to RGB in [0, 1].
// Control points of an HSV table are converted to RGB here, since
// gradient consumers interpolate RGB channels.
func (p *Palette) Colormap(name string) colormap.Map {
	min, max := p.posRange()
	stops := make([]colormap.Stop, len(p.Points))
	for i, pt := range p.Points {
		stop := colormap.Stop{Pos: (pt.Pos - min) / (max - min)}
		switch p.Model {
		case HSV:
			c := colorful.Hsv(pt.R, pt.G, pt.B)
			stop.R, stop.G, stop.B = c.R, c.G, c.B
		default:
			stop.R, stop.G, stop.B = pt.R/255, pt.G/255, pt.B/255
		}
		stops[i] = stop
	}
	return colormap.Map{Name: name, Stops: stops}
}
