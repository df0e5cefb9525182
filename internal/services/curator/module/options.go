package module

import (
	"internhub/internal/platform/config"
)

// Options for the curator module
type Options struct {
	Schedule     string
	RunOnStart   bool
	Fixtures     string
	EnableLeases bool
	LeaseKey     int64
}

// FromConfig reads CURATOR_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	cc := cfg.Prefix("CURATOR_")
	return Options{
		Schedule:     cc.MayString("SCHEDULE", "@every 1h"),
		RunOnStart:   cc.MayBool("RUN_ON_START", true),
		Fixtures:     cc.MayString("FIXTURES", "fixtures/internships.yaml"),
		EnableLeases: cc.MayBool("LEASES", true),
		LeaseKey:     int64(cc.MayInt("LEASE_KEY", 7346101)),
	}
}
