package pg

import (
	"context"
	"strings"

	"internhub/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one finished statement
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer is told about every statement while sql logging is on
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs through root with component=pg
// its level is pinned to debug so SERVICE_PGSQL_LOG_SQL alone turns statements on
func Tracer(root logger.Logger) QueryTracer {
	return logTracer{root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type logTracer struct{ log logger.Logger }

// OnQuery logs failures at error, slow statements at warn, the rest at debug
func (l logTracer) OnQuery(_ context.Context, ev QueryEvent) {
	lvl := zerolog.DebugLevel
	if ev.Slow {
		lvl = zerolog.WarnLevel
	}
	if ev.Err != nil {
		lvl = zerolog.ErrorLevel
	}
	l.log.WithLevel(lvl).
		Err(ev.Err).
		Float64("elapsed_ms", float64(ev.ElapsedUS)/1e3).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Interface("args", ev.Args).
		Msg("pg query")
}

// compact collapses whitespace runs so multi line sql fits on one log line
func compact(s string) string { return strings.Join(strings.Fields(s), " ") }
