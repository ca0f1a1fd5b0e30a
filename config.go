package main

import (
	"flag"
	"os"
	"strings"

	"github.com/apex/log"
)

type config struct {
	Addr     string
	Demo     int
	Database string
	Host     string
	User     string
	Password string
}

func lookupEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// loadConfig reads flags from args and the database settings from the
// libpq environment variables.
func loadConfig(args []string) (config, error) {
	cfg := config{
		Database: lookupEnv("PGDATABASE", "test"),
		Host:     lookupEnv("PGHOST", ""),
		User:     lookupEnv("PGUSER", ""),
		Password: lookupEnv("PGPASSWORD", ""),
	}
	flags := flag.NewFlagSet("nchess", flag.ContinueOnError)
	flags.StringVar(&cfg.Addr, "addr", ":8080", "HTTP listen address")
	flags.IntVar(&cfg.Demo, "demo", 0, "play this many random moves, print them and exit")
	if err := flags.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// dsn is the libpq keyword/value connection string.
func (cfg config) dsn() string {
	parts := []string{strings.Join([]string{"dbname", cfg.Database}, "=")}
	for _, kv := range [][2]string{{"host", cfg.Host}, {"user", cfg.User}, {"password", cfg.Password}} {
		if kv[1] != "" {
			parts = append(parts, strings.Join(kv[:], "="))
		}
	}
	return strings.Join(parts, " ")
}

// fields describes the database target for logs without the credentials.
func (cfg config) fields() log.Fields {
	return log.Fields{"dbname": cfg.Database, "host": cfg.Host, "user": cfg.User}
}
