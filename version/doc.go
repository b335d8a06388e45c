// Package version provides build version information embedding for
// applications that ship fillkit.
//
// Version, git commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/fillkit/fillkit/version.Version=1.0.0"
package version
