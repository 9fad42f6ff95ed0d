package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	RecordStore  RecordStoreConfig
	Mapbox       MapboxConfig
	Presentation PresentationConfig
	Log          LogConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type RecordStoreConfig struct {
	BaseURL        string
	Collection     string
	Limit          int
	RequestTimeout time.Duration
}

type MapboxConfig struct {
	AccessToken string
	Style       string
	CenterLat   float64
	CenterLon   float64
	Zoom        float64
}

type PresentationConfig struct {
	Breakpoint int
	WideMode   string
	// LoadWait - сколько первый рендер страницы ждёт загрузку данных, прежде чем показать loading
	LoadWait time.Duration
}

type LogConfig struct {
	Level string
}

// Load читает конфигурацию один раз при старте: .env (если есть), затем окружение
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("CORS_ORIGINS"),
		},
		RecordStore: RecordStoreConfig{
			BaseURL:        strings.TrimRight(v.GetString("PAYLOAD_URL"), "/"),
			Collection:     v.GetString("PAYLOAD_COLLECTION"),
			Limit:          v.GetInt("PAYLOAD_LIMIT"),
			RequestTimeout: time.Duration(v.GetInt("PAYLOAD_TIMEOUT")) * time.Second,
		},
		Mapbox: MapboxConfig{
			AccessToken: v.GetString("MAPBOX_ACCESS_TOKEN"),
			Style:       v.GetString("MAPBOX_STYLE"),
			CenterLat:   v.GetFloat64("MAP_CENTER_LAT"),
			CenterLon:   v.GetFloat64("MAP_CENTER_LON"),
			Zoom:        v.GetFloat64("MAP_ZOOM"),
		},
		Presentation: PresentationConfig{
			Breakpoint: v.GetInt("VIEWPORT_BREAKPOINT"),
			WideMode:   strings.ToLower(v.GetString("WIDE_SURFACE")),
			LoadWait:   time.Duration(v.GetInt("PAGE_LOAD_WAIT_MS")) * time.Millisecond,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if cfg.Presentation.WideMode != "panel" && cfg.Presentation.WideMode != "popup" {
		return nil, fmt.Errorf("invalid WIDE_SURFACE %q: must be panel or popup", cfg.Presentation.WideMode)
	}
	if cfg.Presentation.Breakpoint <= 0 {
		return nil, fmt.Errorf("invalid VIEWPORT_BREAKPOINT %d: must be positive", cfg.Presentation.Breakpoint)
	}
	if cfg.RecordStore.Limit <= 0 {
		return nil, fmt.Errorf("invalid PAYLOAD_LIMIT %d: must be positive", cfg.RecordStore.Limit)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("PAYLOAD_URL", "http://localhost:3000")
	v.SetDefault("PAYLOAD_COLLECTION", "wineries")
	v.SetDefault("PAYLOAD_LIMIT", 100)
	v.SetDefault("PAYLOAD_TIMEOUT", 10)
	v.SetDefault("MAPBOX_STYLE", "mapbox://styles/mapbox/streets-v12")
	v.SetDefault("MAP_CENTER_LAT", 39.545586)
	v.SetDefault("MAP_CENTER_LON", -0.810916)
	v.SetDefault("MAP_ZOOM", 9)
	v.SetDefault("VIEWPORT_BREAKPOINT", 768)
	v.SetDefault("WIDE_SURFACE", "panel")
	v.SetDefault("PAGE_LOAD_WAIT_MS", 1500)
	v.SetDefault("LOG_LEVEL", "info")
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetRecordsURL - адрес коллекции в хранилище записей
func (c *Config) GetRecordsURL() string {
	return fmt.Sprintf("%s/api/%s", c.RecordStore.BaseURL, c.RecordStore.Collection)
}
