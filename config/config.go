package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Maps provider config
const MAPS_ENDPOINT_BASE = "https://maps.googleapis.com"
const MAPS_DIRECTIONS_PATH = "/maps/api/directions/json"

// Scenic search config
const SCENIC_SEARCH_RADIUS_METERS = 50000
const SCENIC_RESULTS_PER_KEYWORD = 3
const SCENIC_MAX_POINTS = 5
const SCENIC_MAX_DURATION_FACTOR = 2

// Environments
const ENV_PROD = "prod"

// Resources file names, relative to the embedded resources FS
const DIRECTIONS_RESPONSE_RESOURCE = "directions_response.json"
const NEARBY_SEARCH_RESPONSE_RESOURCE = "nearby_search_response.json"
const PLACE_DETAILS_RESPONSE_RESOURCE = "place_details_response.json"

var ErrMissingAPIKey = errors.New("GOOGLE_MAPS_API_KEY environment variable is not set")

// Config holds everything the process reads once at start up.
type Config struct {
	AppEnv            string
	Host              string
	Port              string
	MapsAPIKey        string
	MapsBaseURL       string
	RequestTimeout    time.Duration
	LookupTimeout     time.Duration
	FinderConcurrency int
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsProd reports whether the real maps provider should be used.
func (c *Config) IsProd() bool {
	return c.AppEnv == ENV_PROD
}

// Load reads configuration from the environment, falling back to a .env file
// in the working directory when one exists.
func Load() (*Config, error) {
	// a missing .env is fine, real deployments set the environment directly
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", ENV_PROD)
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")
	v.SetDefault("MAPS_BASE_URL", MAPS_ENDPOINT_BASE)
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOOKUP_TIMEOUT", "5s")
	v.SetDefault("FINDER_CONCURRENCY", 4)

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppEnv:            v.GetString("APP_ENV"),
		Host:              v.GetString("HOST"),
		Port:              v.GetString("PORT"),
		MapsAPIKey:        v.GetString("GOOGLE_MAPS_API_KEY"),
		MapsBaseURL:       v.GetString("MAPS_BASE_URL"),
		FinderConcurrency: v.GetInt("FINDER_CONCURRENCY"),
	}

	if cfg.MapsAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var err error
	if cfg.RequestTimeout, err = positiveDuration(v, "REQUEST_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.LookupTimeout, err = positiveDuration(v, "LOOKUP_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.FinderConcurrency < 1 {
		cfg.FinderConcurrency = 1
	}
	return cfg, nil
}

// positiveDuration parses key as a Go duration ("30s", "500ms"). Bare numbers
// have no unit and are rejected, as is anything not strictly positive.
func positiveDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return d, nil
}
