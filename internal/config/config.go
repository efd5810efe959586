// Package config resolves the pagetracker server settings from built-in
// defaults, a .env file, the process environment and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/ryhazerus/pagetracker/store/redis"
)

// Store backends.
const (
	StoreRedis  = "redis"
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreTiered = "tiered"
)

// Defaults.
const (
	DefaultListenAddr = "127.0.0.1:5000"
	DefaultLogLevel   = "info"
	DefaultSQLitePath = "pagetracker.db"
)

// Config holds the resolved server settings.
type Config struct {
	RedisURL      string
	ListenAddr    string
	TelemetryAddr string
	LogLevel      string
	Debug         bool
	Store         string
	SQLitePath    string
}

// Load reads .env from the working directory, then the environment, then
// parses args (without the program name) as flags.
func Load(name string, args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("godotenv.Load: %w", err)
	}

	debug, err := envBool("DEBUG")
	if err != nil {
		return Config{}, err
	}

	var c Config
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.StringVar(&c.RedisURL, "redis.url", envOr("REDIS_URL", redis.DefaultURL), "Redis URL to connect to")
	flags.StringVar(&c.ListenAddr, "listen.addr", envOr("LISTEN_ADDR", DefaultListenAddr), "HTTP bind address")
	flags.StringVar(&c.TelemetryAddr, "telemetry.addr", envOr("TELEMETRY_ADDR", ""), "HTTP bind address for prometheus metrics, empty disables it")
	flags.StringVar(&c.LogLevel, "log-level", envOr("LOG_LEVEL", DefaultLogLevel), "debug|info|warn|error")
	flags.BoolVar(&c.Debug, "debug", debug, "Debug logging with the console encoder")
	flags.StringVar(&c.Store, "store", envOr("STORE", StoreRedis), "Counter store: redis|memory|sqlite|tiered")
	flags.StringVar(&c.SQLitePath, "sqlite.path", envOr("SQLITE_PATH", DefaultSQLitePath), "SQLite database path for the sqlite and tiered stores")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if c.Debug {
		c.LogLevel = "debug"
	}

	return c, c.Validate()
}

// Validate checks the settings that would otherwise only fail on the first
// request.
func (c Config) Validate() error {
	switch c.Store {
	case StoreRedis:
		s, err := redis.Open(c.RedisURL)
		if err != nil {
			return fmt.Errorf("config: REDIS_URL: %w", err)
		}
		s.Close()
	case StoreMemory, StoreSQLite, StoreTiered:
	default:
		return fmt.Errorf("config: unknown store %q", c.Store)
	}

	var lv zapcore.Level
	if err := lv.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}

	return nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}
