// Package api provides the HTTP API for the application
package api

import (
	"internhub/internal/core/version"
	"internhub/internal/platform/config"
	"internhub/internal/platform/logger"
	phttp "internhub/internal/platform/net/http"
	"internhub/internal/platform/store"

	"internhub/internal/modkit"
	"internhub/internal/modkit/httpkit"
	"internhub/internal/modkit/module"
	"internhub/internal/modkit/swaggerkit"

	appmod "internhub/internal/services/api/applications/module"
	imod "internhub/internal/services/api/internships/module"
	metamod "internhub/internal/services/api/meta/module"
)

func init() { swaggerkit.Register(stampVersion) }

// stampVersion shows the running build next to the documented api version
func stampVersion(spec map[string]any) {
	if info, ok := spec["info"].(map[string]any); ok {
		info["x-build"] = version.Named("internhub-api")
	}
}

// Options are the API options
type Options struct {
	// Config is the unprefixed root, modules pick their own prefixes
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Modules builds the api modules in dependency order
// applications needs postgres and is left out when the store has none
func Modules(deps modkit.Deps) []module.Module {
	internships := imod.New(deps, imod.FromConfig(deps.Cfg))

	mods := []module.Module{
		metamod.New(deps, "internhub-api"),
		internships,
	}
	if deps.PG != nil {
		listings := module.MustPortsOf[imod.Ports](internships).Listings
		mods = append(mods, appmod.New(deps, modkit.WithPorts(appmod.Ports{Listings: listings})))
	}
	return mods
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.FromStore(opt.Config, opt.Store)
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	mods := Modules(deps)

	ac := opt.Config.Prefix("CORE_API_")
	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: ac.MayCSV("CORS_ORIGINS", nil),
		Timeout:     ac.MayDuration("REQUEST_TIMEOUT", 0),
		SlowRequest: ac.MayDuration("SLOW_REQUEST", 0),
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// ports are registered by module name for cross module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
