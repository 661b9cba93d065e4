package geo

import "math"

// EarthRadiusNM is the mean Earth radius in nautical miles.
const EarthRadiusNM = 3440.0

// Coordinate is a geographic position in decimal degrees.
type Coordinate struct {
	Lat  float64
	Long float64
}

// Distance returns the great circle distance between a and b in nautical
// miles, using the spherical law of cosines. Same-airport pairs may come out
// as a tiny nonzero value rather than exactly 0.
func Distance(a Coordinate, b Coordinate) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dlon := radians(b.Long - a.Long)

	arg := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(dlon)

	// Rounding can push the argument just past [-1, 1] for near identical or
	// antipodal points, and Acos would return NaN there.
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}

	return EarthRadiusNM * math.Acos(arg)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
