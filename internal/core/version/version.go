// Package version reports what build of internhub is running
package version

// BuildInfo holds version information about the build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// set with -ldflags "-X internhub/internal/core/version.version=v0.1.0 -X internhub/internal/core/version.commit=abcd"
var (
	service = "internhub"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information
func Info() BuildInfo {
	return BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
}

// Named returns Info with the binary name as service, e.g. internhub-api
func Named(binary string) BuildInfo {
	bi := Info()
	if binary != "" {
		bi.Service = binary
	}
	return bi
}
