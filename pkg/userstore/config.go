package userstore

import "time"

// Config holds the user database configuration. The default path matches
// the single-file deployment the service has always used.
type Config struct {
	Path        string        `env:"DATABASE_PATH" envDefault:"./thunderguard.db"`
	BusyTimeout time.Duration `env:"DATABASE_BUSY_TIMEOUT" envDefault:"5s"`
}
