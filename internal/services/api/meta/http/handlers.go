// Package http serves the meta endpoints: liveness, readiness against each backend, build info
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"internhub/internal/core/version"
	"internhub/internal/modkit/httpkit"
	"internhub/internal/modkit/repokit"
)

// Deps are the handler dependencies, nil pingers are reported as skipped
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Checks      map[string]repokit.Pinger
	Timeout     time.Duration
}

type handlers struct {
	deps Deps
}

// check names in report order
var checkOrder = []string{"pg", "ch", "rds"}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Timeout <= 0 {
		d.Timeout = 2 * time.Second
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"internhub-api"`
	Started string `json:"started"  example:"2026-10-18T09:00:00Z"`
	Now     string `json:"now"      example:"2026-10-18T09:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"pg ping failed: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-18T09:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"internhub-api"`
	Started string `json:"started" example:"2026-10-18T09:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Readiness probe with dependency checks
// @Description Disabled backends are skipped, any failing backend fails the probe
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), h.deps.Timeout)
	defer cancel()

	// probes run side by side, results keep checkOrder
	checks := make([]ReadyCheck, len(checkOrder))
	var wg sync.WaitGroup
	for i, name := range checkOrder {
		checks[i] = ReadyCheck{Name: name, Status: "skipped"}
		p := h.deps.Checks[name]
		if p == nil {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repokit.Ping(ctx, name, p, h.deps.Timeout); err != nil {
				checks[i].Status, checks[i].Error = "fail", err.Error()
				return
			}
			checks[i].Status = "ok"
		}()
	}
	wg.Wait()

	out := ReadyResponse{Status: "ok", Checks: checks, Now: time.Now().UTC().Format(time.RFC3339)}
	for _, c := range checks {
		if c.Status == "fail" {
			out.Status = "fail"
			return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}, nil
		}
	}
	return out, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Named(h.deps.ServiceName), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
	}, nil
}
