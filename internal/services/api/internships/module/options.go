package module

import (
	"time"

	"internhub/internal/platform/config"
)

// listing sources
const (
	SourcePG       = "pg"
	SourceFixtures = "fixtures"
)

// Options controls where listings come from and how searches are served
type Options struct {
	Source   string // pg or fixtures
	Fixtures string // yaml path, fixtures source only
	PageSize int

	CacheKey string
	CacheTTL time.Duration

	EventsTable string

	// StatementTimeout bounds each statement of a write tx, 0 keeps the server default
	StatementTimeout time.Duration
}

// FromConfig reads CORE_INTERNSHIPS_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	ic := cfg.Prefix("CORE_INTERNSHIPS_")
	return Options{
		Source:      ic.MayEnum("SOURCE", SourcePG, SourcePG, SourceFixtures),
		Fixtures:    ic.MayString("FIXTURES", "fixtures/internships.yaml"),
		PageSize:    ic.MayInt("PAGE_SIZE", 10),
		CacheKey:    ic.MayString("CACHE_KEY", "internhub:internships:candidates"),
		CacheTTL:    ic.MayDuration("CACHE_TTL", time.Minute),
		EventsTable: ic.MayString("EVENTS_TABLE", "search_events"),

		StatementTimeout: ic.MayDuration("STATEMENT_TIMEOUT", 5*time.Second),
	}
}
