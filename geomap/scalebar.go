package geomap

import "fmt"

// ScaleBar is a request for a horizontal scale bar of a physical
// length, centered at a relative position inside the extent.
type ScaleBar struct {
	LengthKm float64
	// center of the bar as fractions of the extent, CenterX from
	// West to East and CenterY from South to North
	CenterX, CenterY float64
}

// Span is a placed scale bar, in map degrees.
type Span struct {
	LonLeft, LonRight float64
	Lat               float64
}

// DomainError reports a scale bar request outside the domain where
// the kilometer to degree conversion is defined.
type DomainError struct {
	Reason string
}

func (e DomainError) Error() string { return "geomap: " + e.Reason }

// one degree of longitude shorter than a millimeter only happens
// within ~1e-8 degrees of a pole
const minKmPerDegree = 1e-6

// Resolve computes the longitude span covering LengthKm at the
// extent mid-latitude. The length of one degree of longitude there
// is measured with dist (GreatCircleKm when nil), and the span is
// symmetric about the bar center.
//
// Longitudes are never wrapped at the antimeridian: the span keeps
// the extent's own convention, and a bar too long to fit inside the
// extent is an error rather than a silent overflow.
func (sb ScaleBar) Resolve(extent Extent, dist DistanceFunc) (Span, error) {
	if err := extent.Check(); err != nil {
		return Span{}, err
	}
	if sb.LengthKm <= 0 {
		return Span{}, DomainError{fmt.Sprintf("scale bar length %g must be positive", sb.LengthKm)}
	}
	if dist == nil {
		dist = GreatCircleKm
	}

	lonCenter := extent.West + sb.CenterX*extent.Width()
	latPos := extent.South + sb.CenterY*extent.Height()

	midLat := extent.MidLat()
	kmPerDegree := dist(midLat, extent.West, midLat, extent.West-1)
	if kmPerDegree < minKmPerDegree {
		return Span{}, DomainError{fmt.Sprintf("one degree of longitude has no length at latitude %g", midLat)}
	}

	degreeLength := sb.LengthKm / kmPerDegree
	span := Span{
		LonLeft:  lonCenter - degreeLength/2,
		LonRight: lonCenter + degreeLength/2,
		Lat:      latPos,
	}
	if span.LonLeft < extent.West || span.LonRight > extent.East {
		return Span{}, DomainError{fmt.Sprintf("%g km scale bar does not fit the extent", sb.LengthKm)}
	}
	return span, nil
}
