package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/blogapi/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   PostgreSQL DSN
//	-s string   storage backend: postgres | memory
//	-l string   log level
//	-f string   log format: json | text
//	-m string   gin mode
//	-o string   comma separated CORS origins
//	-t int      graceful shutdown timeout, seconds
//
// Only the flags listed above are taken from os.Args (see flagx.Pick), so
// -c/-config and anything else is left for other parsers.
func parseFlags(config *Config) {
	args := flagx.Pick(os.Args[1:], "-a", "-d", "-s", "-l", "-f", "-m", "-o", "-t")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.Storage, "s", config.Storage, "storage backend (postgres|memory)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json|text)")
	fs.StringVar(&config.GinMode, "m", config.GinMode, "gin mode")

	origins := fs.String("o", "", "comma separated CORS origins")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *origins != "" {
		config.CORSAllowedOrigins = splitList(*origins)
	}

	// -t only wins when given; its int default would truncate a sub-second
	// value set by JSON or env.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
		}
	})
}
