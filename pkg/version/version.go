package version

import (
	"fmt"
	"runtime"
)

// Semantic version of the network configuration tool.
const (
	Major      = 0
	Minor      = 3
	Patch      = 0
	PreRelease = "" // e.g., "alpha", "rc1"
)

// Set at build time with -ldflags "-X".
var (
	GitCommit = ""
	BuildDate = ""
)

// Name is the tool name reported by the version command.
const Name = "netconfig"

// Version returns the semantic version string
func Version() string {
	v := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
	if PreRelease != "" {
		v += "-" + PreRelease
	}
	return v
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetBuildInfo returns the build information of the running binary.
func GetBuildInfo() *BuildInfo {
	return &BuildInfo{
		Name:      Name,
		Version:   Version(),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns "netconfig v0.3.0 (abcdef1)" style output; the commit is
// omitted when unknown.
func (b *BuildInfo) String() string {
	s := fmt.Sprintf("%s v%s", b.Name, b.Version)
	if len(b.GitCommit) >= 7 {
		s += fmt.Sprintf(" (%s)", b.GitCommit[:7])
	}
	return s
}

// Full returns String plus build date, Go version and platform.
func (b *BuildInfo) Full() string {
	s := b.String()
	if b.BuildDate != "" {
		s += fmt.Sprintf(" (built: %s)", b.BuildDate)
	}
	return s + fmt.Sprintf(" (go: %s, platform: %s)", b.GoVersion, b.Platform)
}

// GetVersionString returns the short version string, e.g. "netconfig v0.3.0 (abcdef1)".
func GetVersionString() string {
	return GetBuildInfo().String()
}
