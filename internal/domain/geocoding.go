package domain

// GeocodedAddress - результат прямого или обратного геокодирования
type GeocodedAddress struct {
	Text      string  `json:"text"`
	Point     Point   `json:"point"`
	Relevance float64 `json:"relevance,omitempty"`
}
