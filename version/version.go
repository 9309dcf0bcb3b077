// Package version records the version stamped into release binaries.
package version

// Version is the build version, overridden at release time with
// -ldflags "-X github.com/toroidal/snake/version.Version=...".
var Version = "0.0.0-dev"
