package ch

import (
	"os"
	"runtime"
	"strings"

	"internhub/internal/core/version"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo tags connections so system.query_log shows who ran a query
// role is the binary, e.g. api or curator, tag is the deployment tag
func BuildClientInfo(role, tag string) clickhouse.ClientInfo {
	host, _ := os.Hostname()
	bi := version.Info()

	info := clickhouse.ClientInfo{}
	for _, p := range [][2]string{
		{"internhub", tag},
		{"role", role},
		{"go", runtime.Version()},
		{"build", bi.Version},
		{"commit", bi.Commit},
		{"host", host},
	} {
		v := strings.TrimSpace(p[1])
		if v == "" {
			v = "unknown"
		}
		info.Products = append(info.Products, struct{ Name, Version string }{p[0], v})
	}
	return info
}
