package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int `yaml:"port" validate:"gte=0,lte=65535"`
	ReadTimeoutMS  int `yaml:"readTimeoutMS" validate:"gte=0"`
	WriteTimeoutMS int `yaml:"writeTimeoutMS" validate:"gte=0"`
}

// SchemaConfig describes where the GTFS-Realtime .proto schema comes from
type SchemaConfig struct {
	Source      string `yaml:"source" validate:"omitempty,oneof=remote bundled"`
	URL         string `yaml:"url" validate:"omitempty,url"`
	MessageType string `yaml:"messageType"`
	TimeoutMS   int    `yaml:"timeoutMS" validate:"gte=0"`
}

// GTFSRTConfig contains GTFS-Realtime feed configuration
type GTFSRTConfig struct {
	VehiclePositionsURL string `yaml:"vehiclePositionsURL"`
	OperatorID          string `yaml:"operatorId"`
	TimeoutMS           int    `yaml:"timeoutMS" validate:"gte=0"`
}

// Point is a lon/lat pair in degrees
type Point struct {
	Lon float64 `yaml:"lon" validate:"gte=-180,lte=180"`
	Lat float64 `yaml:"lat" validate:"gte=-90,lte=90"`
}

// ClientConfig contains settings for the polling map client
type ClientConfig struct {
	APIURL         string  `yaml:"apiURL" validate:"omitempty,url"`
	PollIntervalMS int     `yaml:"pollIntervalMS" validate:"gte=0"`
	PixelRatio     float64 `yaml:"pixelRatio" validate:"gte=0"`
	Center         Point   `yaml:"center"`
	Zoom           float64 `yaml:"zoom" validate:"gte=0,lte=24"`
	GeoJSONPath    string  `yaml:"geojsonPath"`
}

// LoggingConfig selects the zerolog output format and level
type LoggingConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Schema  SchemaConfig  `yaml:"schema"`
	GTFSRT  GTFSRTConfig  `yaml:"gtfsrt"`
	Client  ClientConfig  `yaml:"client"`
	Logging LoggingConfig `yaml:"logging"`
}
