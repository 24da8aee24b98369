// Package version holds build metadata injected with -ldflags and exposes it
// through prometheus/common/version.
package version

import (
	"github.com/prometheus/client_golang/prometheus"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	commonversion "github.com/prometheus/common/version"
)

const Program = "storefront_gateway"

var (
	Version   string = "dev"
	GitCommit string = "unknown"
	BuildTime string = "unknown"
)

func init() {
	commonversion.Version = Version
	commonversion.Revision = GitCommit
	commonversion.BuildDate = BuildTime
}

func GetVersion() string {
	return Version
}

func GetFullVersion() string {
	return Version + " (commit: " + GitCommit + ", built: " + BuildTime + ")"
}

// Print renders the multi-line banner used by the -version flag.
func Print() string {
	return commonversion.Print(Program)
}

// Collector exports a build_info gauge labelled with the values above.
func Collector() prometheus.Collector {
	return versioncollector.NewCollector(Program)
}
