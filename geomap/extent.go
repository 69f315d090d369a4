// Package geomap provides the geographic extent model and the
// annotation placement geometry used when composing map figures:
// converting data-coordinate rectangles to figure fractions, and
// sizing scale bars in longitude degrees.
package geomap

import "errors"

// Extent is a geographic bounding box, in degrees.
// East and West share the same longitude convention; no wrapping is
// applied at the antimeridian.
type Extent struct {
	North, South, East, West float64
}

var (
	errLatOrder = errors.New("geomap: extent must have North > South")
	errLonOrder = errors.New("geomap: extent must have East > West")
)

// Check validates the boundary ordering.
func (e Extent) Check() error {
	if e.North <= e.South {
		return errLatOrder
	}
	if e.East <= e.West {
		return errLonOrder
	}
	return nil
}

// Width is the longitude span, in degrees.
func (e Extent) Width() float64 { return e.East - e.West }

// Height is the latitude span, in degrees.
func (e Extent) Height() float64 { return e.North - e.South }

// MidLat is the latitude halfway between the boundaries.
func (e Extent) MidLat() float64 { return (e.North + e.South) / 2 }
