// Package version exposes the build version of the co2calc binary.
package version

// Version is the semantic version of the build. Overridden at release
// time via -ldflags "-X .../pkg/version.Version=v1.2.3".
//
//nolint:gochecknoglobals // Set by the linker at build time
var Version = "dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return Version
}
