package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Log        LogConfig
	Simulation SimulationConfig
	Tracker    TrackerConfig
	Mapbox     MapboxConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	Env            string
	AllowedOrigins string
}

type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	RouteCacheTTL time.Duration
	RankCacheTTL  time.Duration
}

type LogConfig struct {
	Level string
}

// SimulationConfig - параметры симуляции мусоровоза
type SimulationConfig struct {
	CycleDurationMinutes float64
	MaxDistanceKm        float64
	AverageSpeedKmh      float64
	DefaultRouteID       string
}

// TrackerConfig - параметры воркера, публикующего позицию мусоровоза
type TrackerConfig struct {
	Enabled      bool
	TruckID      string
	RouteID      string
	Stream       string
	TickInterval time.Duration
}

type MapboxConfig struct {
	AccessToken    string
	BaseURL        string
	Profile        string
	RequestTimeout int
}

// Load читает конфигурацию из окружения; .env подхватывается, если он есть
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("API_HOST"),
			Port:           v.GetInt("API_PORT"),
			Env:            v.GetString("API_ENV"),
			AllowedOrigins: v.GetString("API_ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			Enabled:         v.GetBool("DB_ENABLED"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RouteCacheTTL: time.Duration(v.GetInt("ROUTE_CACHE_TTL")) * time.Second,
			RankCacheTTL:  time.Duration(v.GetInt("RANK_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Simulation: SimulationConfig{
			CycleDurationMinutes: v.GetFloat64("SIM_CYCLE_DURATION_MINUTES"),
			MaxDistanceKm:        v.GetFloat64("SIM_MAX_DISTANCE_KM"),
			AverageSpeedKmh:      v.GetFloat64("SIM_AVERAGE_SPEED_KMH"),
			DefaultRouteID:       v.GetString("SIM_DEFAULT_ROUTE_ID"),
		},
		Tracker: TrackerConfig{
			Enabled:      v.GetBool("TRACKER_ENABLED"),
			TruckID:      v.GetString("TRACKER_TRUCK_ID"),
			RouteID:      v.GetString("TRACKER_ROUTE_ID"),
			Stream:       v.GetString("TRACKER_STREAM"),
			TickInterval: time.Duration(v.GetInt("TRACKER_TICK_INTERVAL_MS")) * time.Millisecond,
		},
		Mapbox: MapboxConfig{
			AccessToken:    v.GetString("MAPBOX_ACCESS_TOKEN"),
			BaseURL:        strings.TrimRight(v.GetString("MAPBOX_BASE_URL"), "/"),
			Profile:        v.GetString("MAPBOX_PROFILE"),
			RequestTimeout: v.GetInt("MAPBOX_REQUEST_TIMEOUT"),
		},
	}

	if cfg.Tracker.RouteID == "" {
		cfg.Tracker.RouteID = cfg.Simulation.DefaultRouteID
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8081")

	v.SetDefault("DB_ENABLED", true)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("ROUTE_CACHE_TTL", 3600)
	v.SetDefault("RANK_CACHE_TTL", 60)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("SIM_CYCLE_DURATION_MINUTES", 20)
	v.SetDefault("SIM_MAX_DISTANCE_KM", 10)
	v.SetDefault("SIM_AVERAGE_SPEED_KMH", 30)
	v.SetDefault("SIM_DEFAULT_ROUTE_ID", "recife-centro")

	v.SetDefault("TRACKER_TRUCK_ID", "truck-01")
	v.SetDefault("TRACKER_STREAM", "stream:truck:position")
	v.SetDefault("TRACKER_TICK_INTERVAL_MS", 5000)

	v.SetDefault("MAPBOX_BASE_URL", "https://api.mapbox.com")
	v.SetDefault("MAPBOX_PROFILE", "mapbox/driving")
	v.SetDefault("MAPBOX_REQUEST_TIMEOUT", 10)
}

// Validate проверяет инварианты симуляции до старта сервиса
func (c *Config) Validate() error {
	if c.Simulation.CycleDurationMinutes <= 0 {
		return fmt.Errorf("SIM_CYCLE_DURATION_MINUTES must be > 0, got %v", c.Simulation.CycleDurationMinutes)
	}
	if c.Simulation.MaxDistanceKm < 0 {
		return fmt.Errorf("SIM_MAX_DISTANCE_KM must be >= 0, got %v", c.Simulation.MaxDistanceKm)
	}
	if c.Simulation.AverageSpeedKmh <= 0 {
		return fmt.Errorf("SIM_AVERAGE_SPEED_KMH must be > 0, got %v", c.Simulation.AverageSpeedKmh)
	}
	if c.Tracker.TickInterval <= 0 {
		return fmt.Errorf("TRACKER_TICK_INTERVAL_MS must be > 0")
	}
	return nil
}

// AllowedOrigins возвращает список origin для CORS
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.Server.AllowedOrigins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
