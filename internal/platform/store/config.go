package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG  PGConfig
	CH  CHConfig
	RDS RedisConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled         bool
	URL             string
	MaxConns        int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	LogSQL          bool
	SlowQueryMs     int

	// boot guard, zero values fall back to 20 attempts and 3s
	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled    bool
	URL        string
	ClientName string
	ClientTag  string
}

// RedisConfig configures redis connectivity
type RedisConfig struct {
	Enabled bool
	URL     string
	Addr    string
	DB      int
}
