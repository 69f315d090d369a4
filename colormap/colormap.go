// Package colormap provides continuous color gradients defined by
// ordered control stops, and a name registry from which renderers
// look up colormaps.
// Gradients are built once, typically from parsed palette tables
// (see genmap/cpt), and are immutable afterwards.
package colormap

import (
	"image/color"
)

// Stop is one control point of a gradient: a position in [0, 1]
// and RGB channels in [0, 1].
type Stop struct {
	Pos     float64
	R, G, B float64
}

// Map is a piecewise-linear color gradient over [0, 1].
// Stops must be sorted by position. A repeated position introduces a
// discontinuity: the later stop defines the color on its right side.
type Map struct {
	Name  string
	Stops []Stop
}

// At returns the interpolated channels at t, clamped to the
// gradient domain.
func (m Map) At(t float64) (r, g, b float64) {
	if len(m.Stops) == 0 {
		return 0, 0, 0
	}
	first, last := m.Stops[0], m.Stops[len(m.Stops)-1]
	if t <= first.Pos {
		return first.R, first.G, first.B
	}
	if t >= last.Pos {
		return last.R, last.G, last.B
	}
	for i := 0; i < len(m.Stops)-1; i++ {
		s1, s2 := m.Stops[i], m.Stops[i+1]
		// strict upper bound, so that at a repeated position the
		// later stop wins
		if s1.Pos <= t && t < s2.Pos {
			f := (t - s1.Pos) / (s2.Pos - s1.Pos)
			return s1.R + f*(s2.R-s1.R),
				s1.G + f*(s2.G-s1.G),
				s1.B + f*(s2.B-s1.B)
		}
	}
	return last.R, last.G, last.B
}

// RGBA returns the color at t as a fully opaque color.RGBA.
func (m Map) RGBA(t float64) color.RGBA {
	r, g, b := m.At(t)
	return color.RGBA{toByte(r), toByte(g), toByte(b), 0xff}
}

// Table samples the gradient into a lookup table of n colors,
// uniformly over [0, 1].
func (m Map) Table(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []color.RGBA{m.RGBA(0)}
	}
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = m.RGBA(float64(i) / float64(n-1))
	}
	return out
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
