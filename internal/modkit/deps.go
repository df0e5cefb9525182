package modkit

import (
	"internhub/internal/modkit/repokit"
	"internhub/internal/platform/config"
	"internhub/internal/platform/logger"
	"internhub/internal/platform/store"
)

// Deps is what every module constructor receives
// PG, CH and RDS are nil when their backend is off, modules decide if that is fatal
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
	RDS store.Cache
}

// FromStore lifts the opened store's seams into Deps, a nil store gives config only
func FromStore(cfg config.Conf, st *store.Store) Deps {
	if st == nil {
		return Deps{Cfg: cfg}
	}
	return Deps{Log: st.Log, Cfg: cfg, PG: st.PG, CH: st.CH, RDS: st.RDS}
}
