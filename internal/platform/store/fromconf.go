package store

import (
	"time"

	"internhub/internal/platform/config"
)

// FromConf reads backend settings from SERVICE_PGSQL_*, SERVICE_CLICKHOUSE_* and SERVICE_REDIS_*
// postgres is on whenever a url is set, clickhouse and redis need an explicit ENABLED
func FromConf(root config.Conf, app, tag string) Config {
	pg := root.Prefix("SERVICE_PGSQL_")
	ch := root.Prefix("SERVICE_CLICKHOUSE_")
	rds := root.Prefix("SERVICE_REDIS_")

	pgURL := pg.MayString("URL", "")
	return Config{
		AppName: app,
		PG: PGConfig{
			Enabled:         pgURL != "",
			URL:             pgURL,
			MaxConns:        int32(pg.MayInt("MAX_CONNS", 4)),
			MinConns:        int32(pg.MayInt("MIN_CONNS", 0)),
			ConnMaxLifetime: pg.MayDuration("CONN_MAX_LIFETIME", 30*time.Minute),
			SlowQueryMs:     pg.MayInt("SLOW_MS", 500),
			LogSQL:          pg.MayBool("LOG_SQL", false),
		},
		CH: CHConfig{
			Enabled:    ch.MayBool("ENABLED", false),
			URL:        ch.MayString("URL", ""),
			ClientName: app,
			ClientTag:  tag,
		},
		RDS: RedisConfig{
			Enabled: rds.MayBool("ENABLED", false),
			URL:     rds.MayString("URL", ""),
			Addr:    rds.MayString("ADDR", ""),
			DB:      rds.MayInt("DB", 0),
		},
	}
}
