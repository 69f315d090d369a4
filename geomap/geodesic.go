package geomap

import "github.com/golang/geo/s2"

// DistanceFunc returns the geodesic surface distance in kilometers
// between two (latitude, longitude) points given in degrees.
type DistanceFunc func(lat1, lon1, lat2, lon2 float64) float64

// mean Earth radius
const earthRadiusKm = 6371.01

// GreatCircleKm measures the great-circle distance between two
// points on the spherical Earth model, in kilometers. It is the
// default DistanceFunc of the scale bar computation.
func GreatCircleKm(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians() * earthRadiusKm
}
