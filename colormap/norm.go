package colormap

import "math"

// Normalizer maps data values onto the [0, 1] domain of a Map.
type Normalizer interface {
	Normalize(v float64) float64
}

// Linear maps [Vmin, Vmax] linearly onto [0, 1], clamping values
// outside the range.
type Linear struct {
	Vmin, Vmax float64
}

func (n Linear) Normalize(v float64) float64 {
	if n.Vmax == n.Vmin {
		return 0
	}
	return clamp01((v - n.Vmin) / (n.Vmax - n.Vmin))
}

// Log maps [Vmin, Vmax] onto [0, 1] on a base-10 logarithmic scale,
// for fields spanning several orders of magnitude (chlorophyll
// concentration for instance). Vmin must be positive; values at or
// below it normalize to 0.
type Log struct {
	Vmin, Vmax float64
}

func (n Log) Normalize(v float64) float64 {
	if n.Vmin <= 0 || v <= n.Vmin {
		return 0
	}
	span := math.Log10(n.Vmax) - math.Log10(n.Vmin)
	if span == 0 {
		return 0
	}
	return clamp01((math.Log10(v) - math.Log10(n.Vmin)) / span)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
