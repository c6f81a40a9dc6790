package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort           = 3000
	DefaultSchemaURL      = "https://raw.githubusercontent.com/google/transit/master/gtfs-realtime/proto/gtfs-realtime.proto"
	DefaultMessageType    = "transit_realtime.FeedMessage"
	DefaultFeedURL        = "https://bct.tmix.se/gtfs-realtime/vehicleupdates.pb"
	DefaultOperatorID     = "47"
	DefaultAPIURL         = "http://localhost:3000/api/buses"
	DefaultPollIntervalMS = 30000
	DefaultTimeoutMS      = 15000
	DefaultZoom           = 13
)

// DefaultPaths are searched in order by LoadAppConfig
var DefaultPaths = []string{"config.yml", "./configs/config.yml"}

// Config is the global application configuration
var Config = Default()

// Default returns a configuration with every default applied
func Default() AppConfig {
	var cfg AppConfig
	applyDefaults(&cfg)
	return cfg
}

// LoadAppConfig loads config.yml from the default search paths into Config
func LoadAppConfig() error {
	cfg, err := Load(DefaultPaths...)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load reads the first existing file of paths, validates it and applies defaults.
// When none of the paths exist the defaults are returned.
func Load(paths ...string) (AppConfig, error) {
	var data []byte
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return AppConfig{}, fmt.Errorf("read %s: %w", p, err)
		}
		data = b
		break
	}
	return Parse(data)
}

// Parse decodes YAML bytes into a validated AppConfig
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("validate config: %w", err)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.ReadTimeoutMS == 0 {
		cfg.Server.ReadTimeoutMS = 10000
	}
	if cfg.Server.WriteTimeoutMS == 0 {
		cfg.Server.WriteTimeoutMS = 30000
	}
	if cfg.Schema.Source == "" {
		cfg.Schema.Source = "remote"
	}
	if cfg.Schema.URL == "" {
		cfg.Schema.URL = DefaultSchemaURL
	}
	if cfg.Schema.MessageType == "" {
		cfg.Schema.MessageType = DefaultMessageType
	}
	if cfg.Schema.TimeoutMS == 0 {
		cfg.Schema.TimeoutMS = DefaultTimeoutMS
	}
	if cfg.GTFSRT.VehiclePositionsURL == "" {
		cfg.GTFSRT.VehiclePositionsURL = DefaultFeedURL
		if cfg.GTFSRT.OperatorID == "" {
			cfg.GTFSRT.OperatorID = DefaultOperatorID
		}
	}
	if cfg.GTFSRT.TimeoutMS == 0 {
		cfg.GTFSRT.TimeoutMS = DefaultTimeoutMS
	}
	if cfg.Client.APIURL == "" {
		cfg.Client.APIURL = DefaultAPIURL
	}
	if cfg.Client.PollIntervalMS == 0 {
		cfg.Client.PollIntervalMS = DefaultPollIntervalMS
	}
	if cfg.Client.PixelRatio == 0 {
		cfg.Client.PixelRatio = 1
	}
	if cfg.Client.Center == (Point{}) {
		cfg.Client.Center = Point{Lon: -119.4960, Lat: 49.8879}
	}
	if cfg.Client.Zoom == 0 {
		cfg.Client.Zoom = DefaultZoom
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// FeedURL returns the vehicle positions URL with the operator filter applied.
// Local file paths are returned unchanged.
func (c GTFSRTConfig) FeedURL() string {
	if c.OperatorID == "" {
		return c.VehiclePositionsURL
	}
	u, err := url.Parse(c.VehiclePositionsURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return c.VehiclePositionsURL
	}
	q := u.Query()
	q.Set("operatorIds", c.OperatorID)
	u.RawQuery = q.Encode()
	return u.String()
}

// Timeout returns the upstream feed timeout
func (c GTFSRTConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// Timeout returns the schema fetch timeout
func (c SchemaConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// PollInterval returns the client poll period
func (c ClientConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}
