package geo

import "math"

const earthRadiusMiles = 3959.0

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lon float64
}

// Miles returns the great-circle distance between two coordinates,
// rounded to one decimal place.
func Miles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	lat1R := degreesToRadians(lat1)
	lat2R := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1R)*math.Cos(lat2R)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return roundTenth(earthRadiusMiles * c)
}

// MilesBetween is Miles over two Points.
func MilesBetween(a, b Point) float64 {
	return Miles(a.Lat, a.Lon, b.Lat, b.Lon)
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
