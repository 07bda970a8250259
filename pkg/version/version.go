package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// These variables are set at build time using ldflags
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info holds version information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Compiler  string `json:"compiler"`
	Platform  string `json:"platform"`
}

// Get returns version information. When no ldflags were provided the
// module version recorded in the build info is used instead.
func Get() Info {
	version := Version
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}

	return Info{
		Version:   version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Short returns the single-line version string
func (i Info) Short() string {
	return fmt.Sprintf("eis version %s", i.Version)
}

// String returns a human-readable version string
func (i Info) String() string {
	return fmt.Sprintf("eis version %s\nGit commit: %s\nBuild date: %s\nGo version: %s\nCompiler: %s\nPlatform: %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Compiler, i.Platform)
}
