// @title         InternHub API
// @version       0.1.0
// @description   Internship discovery, postings, college review and student applications
// @BasePath      /api/v1

package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"internhub/internal/core/version"
	"internhub/internal/platform/config"
	"internhub/internal/platform/logger"
	phttp "internhub/internal/platform/net/http"
	"internhub/internal/platform/store"

	"internhub/internal/services/api"

	"github.com/joho/godotenv"
)

func main() {
	// a local .env is optional, real env wins
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Get().Warn().Err(err).Msg("could not read .env")
	}

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()
	l.Info().Interface("version", version.Named("internhub-api")).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// backends are optional, the fixtures source runs with none
	st, err := store.Open(ctx, store.FromConf(root, "internhub", "api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// http server (reads CORE_API_PORT etc)
	srv := phttp.NewServer(root.Prefix("CORE_"))

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("ENABLE_SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("ENABLE_PROFILER", false),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
