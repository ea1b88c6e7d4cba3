package dto

// HealthResponse - состояние сервиса и его зависимостей
type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies"`
}
