package config

import (
	"time"
)

type DB struct {
	Url             string        `envconfig:"URL"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
	// LockTimeout bounds the wait for account row locks inside a unit of work.
	LockTimeout      time.Duration `envconfig:"LOCK_TIMEOUT" default:"5s"`
	StatementTimeout time.Duration `envconfig:"STATEMENT_TIMEOUT" default:"10s"`
	// TxTimeout is the context deadline put on each unit of work.
	TxTimeout   time.Duration `envconfig:"TX_TIMEOUT" default:"15s"`
	AutoMigrate bool          `envconfig:"AUTO_MIGRATE" default:"true"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[ledger]"`
}

type Server struct {
	Scheme          string        `envconfig:"SCHEME" default:"http"`
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            int           `envconfig:"PORT" default:"3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	// ProxyHeader carries the client address when set, but is only read on
	// requests arriving from one of TrustedProxies.
	ProxyHeader    string   `envconfig:"PROXY_HEADER" default:"X-Forwarded-For"`
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

// RateLimit configures per-client request limiting. MaxRequests <= 0
// disables it.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1s"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
