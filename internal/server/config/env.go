package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvHTTPAddr        = "BLOG_HTTP_ADDR"
	EnvDatabaseDSN     = "BLOG_DATABASE_DSN"
	EnvStorage         = "BLOG_STORAGE"
	EnvLogLevel        = "BLOG_LOG_LEVEL"
	EnvLogFormat       = "BLOG_LOG_FORMAT"
	EnvShutdownTimeout = "BLOG_SHUTDOWN_TIMEOUT"
	EnvCORSOrigins     = "BLOG_CORS_ORIGINS"
	EnvGinMode         = "BLOG_GIN_MODE"
)

// parseEnv loads envFile into the process environment (variables already set
// win) and then overlays every BLOG_* variable that is present. A missing
// envFile is fine; a malformed one, or a bad duration, panics.
func parseEnv(config *Config, envFile string) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	setString(&config.HTTPAddr, os.Getenv(EnvHTTPAddr))
	setString(&config.DatabaseDSN, os.Getenv(EnvDatabaseDSN))
	setString(&config.Storage, os.Getenv(EnvStorage))
	setString(&config.LogLevel, os.Getenv(EnvLogLevel))
	setString(&config.LogFormat, os.Getenv(EnvLogFormat))
	setString(&config.GinMode, os.Getenv(EnvGinMode))

	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.ShutdownTimeout = d
	}

	if v := os.Getenv(EnvCORSOrigins); v != "" {
		config.CORSAllowedOrigins = splitList(v)
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
