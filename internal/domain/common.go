package domain

// Point - географическая координата (WGS84)
type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// Valid проверяет диапазоны широты и долготы
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// LonLat возвращает координаты в порядке [lon, lat] для внешних API
func (p Point) LonLat() []float64 {
	return []float64{p.Lon, p.Lat}
}
