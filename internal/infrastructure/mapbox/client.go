package mapbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/conecta-coleta/internal/config"
	"github.com/conecta-coleta/internal/domain"
	"go.uber.org/zap"
)

const (
	// maxWaypoints - лимит Directions API на количество точек в запросе
	maxWaypoints = 25
	maxRetries   = 2
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("mapbox API error: status %d, body: %s", e.Code, e.Body)
}

// Client - клиент Mapbox Directions и Geocoding API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	profile     string
	logger      *zap.Logger
}

// NewMapboxClient создает новый клиент для Mapbox API
func NewMapboxClient(cfg *config.MapboxConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		profile:     cfg.Profile,
		logger:      logger,
	}
}

// Enabled сообщает, настроен ли токен доступа
func (c *Client) Enabled() bool {
	return c.accessToken != ""
}

// GetDirections возвращает полилинию маршрута по дорогам через точки в заданном порядке
func (c *Client) GetDirections(ctx context.Context, waypoints []domain.Point) ([]domain.Point, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("directions require at least 2 waypoints, got %d", len(waypoints))
	}
	if len(waypoints) > maxWaypoints {
		return nil, fmt.Errorf("waypoints exceed Mapbox limit of %d points", maxWaypoints)
	}

	coords := make([]string, 0, len(waypoints))
	for _, p := range waypoints {
		coords = append(coords, formatLonLat(p))
	}

	q := url.Values{}
	q.Set("geometries", "geojson")
	q.Set("overview", "full")
	q.Set("access_token", c.accessToken)

	endpoint := fmt.Sprintf("%s/directions/v5/%s/%s?%s",
		c.baseURL, c.profile, strings.Join(coords, ";"), q.Encode())

	c.logger.Debug("Calling Mapbox Directions API", zap.Int("waypoints", len(waypoints)))

	var resp directionsResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	if resp.Code != "Ok" {
		c.logger.Error("Mapbox Directions API returned non-OK code",
			zap.String("code", resp.Code),
			zap.String("message", resp.Message))
		return nil, fmt.Errorf("mapbox API returned code: %s", resp.Code)
	}
	if len(resp.Routes) == 0 {
		return nil, fmt.Errorf("mapbox API returned no routes")
	}

	coordinates := resp.Routes[0].Geometry.Coordinates
	points := make([]domain.Point, 0, len(coordinates))
	for _, pair := range coordinates {
		if len(pair) < 2 {
			continue
		}
		points = append(points, domain.Point{Lat: pair[1], Lon: pair[0]})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("mapbox API returned empty geometry")
	}

	c.logger.Debug("Mapbox Directions API call successful",
		zap.Int("points", len(points)),
		zap.Float64("distance_m", resp.Routes[0].Distance))

	return points, nil
}

// Geocode ищет координаты по тексту адреса
func (c *Client) Geocode(ctx context.Context, address string, limit int) ([]domain.GeocodedAddress, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		c.baseURL, url.PathEscape(address), c.geocodingQuery(limit).Encode())

	return c.geocode(ctx, endpoint)
}

// ReverseGeocode ищет адреса по координате
func (c *Client) ReverseGeocode(ctx context.Context, point domain.Point, limit int) ([]domain.GeocodedAddress, error) {
	if !point.Valid() {
		return nil, fmt.Errorf("invalid coordinate (%v, %v)", point.Lat, point.Lon)
	}

	q := c.geocodingQuery(limit)
	q.Set("types", "address")

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		c.baseURL, formatLonLat(point), q.Encode())

	return c.geocode(ctx, endpoint)
}

func (c *Client) geocodingQuery(limit int) url.Values {
	if limit <= 0 {
		limit = 1
	}
	q := url.Values{}
	q.Set("access_token", c.accessToken)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("country", "br")
	q.Set("language", "pt")
	return q
}

func (c *Client) geocode(ctx context.Context, endpoint string) ([]domain.GeocodedAddress, error) {
	var resp geocodingResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	result := make([]domain.GeocodedAddress, 0, len(resp.Features))
	for _, f := range resp.Features {
		if len(f.Center) < 2 {
			continue
		}
		result = append(result, domain.GeocodedAddress{
			Text:      f.PlaceName,
			Point:     domain.Point{Lat: f.Center[1], Lon: f.Center[0]},
			Relevance: f.Relevance,
		})
	}
	return result, nil
}

// getJSON выполняет GET с повторами на сетевых ошибках и 5xx
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	backoff := 200 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		lastErr = c.doGet(ctx, endpoint, out)
		if lastErr == nil || !isTransient(lastErr) {
			return lastErr
		}
		c.logger.Warn("Mapbox request failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Error(lastErr))
	}
	return lastErr
}

func (c *Client) doGet(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= 500 || statusErr.Code == http.StatusTooManyRequests
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func formatLonLat(p domain.Point) string {
	return strconv.FormatFloat(p.Lon, 'f', 6, 64) + "," + strconv.FormatFloat(p.Lat, 'f', 6, 64)
}
