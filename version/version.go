package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Build information. Populated at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Info holds version details resolved at runtime.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit"`
	BuildTime time.Time `json:"build_time"`
	GoVersion string    `json:"go_version"`
	Platform  string    `json:"platform"`
	Modified  bool      `json:"modified,omitempty"`
}

// Get returns the build information, falling back to the Go module
// build info when ldflags were not provided.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
		info.BuildTime = t
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "unknown" {
					info.GitCommit = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			case "vcs.time":
				if info.BuildTime.IsZero() {
					if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
						info.BuildTime = t
					}
				}
			}
		}
		if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	return info
}

// Short returns the version with an abbreviated commit, e.g. "1.2.0 (a1b2c3d)".
func (i Info) Short() string {
	commit := i.GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "unknown" {
		return i.Version
	}
	s := fmt.Sprintf("%s (%s)", i.Version, commit)
	if i.Modified {
		s += " dirty"
	}
	return s
}

// String returns the full human readable version line.
func (i Info) String() string {
	s := i.Short()
	if !i.BuildTime.IsZero() {
		s += " built " + i.BuildTime.Format(time.RFC3339)
	}
	return s + " " + i.GoVersion + " " + i.Platform
}
