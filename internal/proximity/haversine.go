package proximity

import (
	"math"

	"github.com/conecta-coleta/internal/domain"
)

// EarthRadiusKm - радиус сферической Земли для формулы гаверсинуса
const EarthRadiusKm = 6371.0

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Haversine возвращает расстояние по большому кругу между двумя точками в километрах
func Haversine(a, b domain.Point) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	// у почти антиподальных точек округление выводит h за 1, и Sqrt(1-h) даёт NaN
	h = math.Min(1, math.Max(0, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}
