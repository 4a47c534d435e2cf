package utils

import "math"

const earthRadiusKm = 6371

// GreatCircleKm computes the haversine distance in kilometers between two
// coordinates given in degrees.
func GreatCircleKm(lat1, lng1, lat2, lng2 float64) float64 {
	radLat1 := toRadians(lat1)
	radLat2 := toRadians(lat2)
	deltaLat := toRadians(lat2 - lat1)
	deltaLng := toRadians(lng2 - lng1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(radLat1)*math.Cos(radLat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
