package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/blogapi/internal/flagx"
	"github.com/dmitrijs2005/blogapi/internal/timex"
)

// JsonConfig is the on-disk shape of the optional JSON config file. Duration
// fields accept "15s" style strings as well as integer nanoseconds.
type JsonConfig struct {
	HTTPAddr           string         `json:"http_addr"`
	DatabaseDSN        string         `json:"database_dsn"`
	Storage            string         `json:"storage"`
	LogLevel           string         `json:"log_level"`
	LogFormat          string         `json:"log_format"`
	ReadTimeout        timex.Duration `json:"read_timeout"`
	WriteTimeout       timex.Duration `json:"write_timeout"`
	ShutdownTimeout    timex.Duration `json:"shutdown_timeout"`
	CORSAllowedOrigins []string       `json:"cors_allowed_origins"`
	GinMode            string         `json:"gin_mode"`
}

// parseJson overlays values from the file named by -c / -config. Keys missing
// from the file leave the current values untouched. An unreadable file or
// invalid JSON panics.
func parseJson(config *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.Storage, c.Storage)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	setString(&config.GinMode, c.GinMode)

	if c.ReadTimeout.Duration > 0 {
		config.ReadTimeout = c.ReadTimeout.Duration
	}
	if c.WriteTimeout.Duration > 0 {
		config.WriteTimeout = c.WriteTimeout.Duration
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
