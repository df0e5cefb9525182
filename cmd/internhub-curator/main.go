package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"internhub/internal/modkit"
	"internhub/internal/modkit/module"
	"internhub/internal/platform/config"
	"internhub/internal/platform/logger"
	"internhub/internal/platform/store"

	curmod "internhub/internal/services/curator/module"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Get().Warn().Err(err).Msg("could not read .env")
	}

	root := config.New()
	opts := curmod.FromConfig(root)

	var (
		fMode     = flag.String("mode", "schedule", "curator mode: sweep | seed | schedule")
		fFixtures = flag.String("fixtures", opts.Fixtures, "yaml fixtures file for -mode seed")
		fNow      = flag.Bool("now", opts.RunOnStart, "in schedule mode, sweep once before the first tick")
		fSchedule = flag.String("schedule", opts.Schedule, "cron spec for schedule mode")
	)
	flag.Parse()
	opts.RunOnStart = *fNow
	opts.Schedule = *fSchedule

	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sc := store.FromConf(root, "internhub", "curator")
	if !sc.PG.Enabled {
		l.Panic().Msg("curator needs SERVICE_PGSQL_URL")
	}
	st, err := store.Open(ctx, sc, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	cm := curmod.New(modkit.FromStore(root, st), opts)
	module.Register(cm.Name(), cm.Ports())
	runner := module.MustPortsOf[curmod.Ports](cm).Runner

	switch *fMode {
	case "sweep":
		res, err := runner.Sweep(ctx)
		if err != nil {
			l.Fatal().Err(err).Msg("curator sweep failed")
		}
		_ = json.NewEncoder(os.Stdout).Encode(res)

	case "seed":
		if _, err := runner.SeedFile(ctx, *fFixtures); err != nil {
			l.Fatal().Err(err).Str("path", *fFixtures).Msg("curator seed failed")
		}

	case "schedule":
		if err := runner.Schedule(ctx); err != nil {
			l.Fatal().Err(err).Msg("curator scheduler failed")
		}

	default:
		l.Panic().Str("mode", *fMode).Msg("curator unknown -mode (expected: sweep | seed | schedule)")
	}
}
