// Package version carries the build version, set with
// -ldflags "-X dnadiff/internal/version.Version=...".
package version

var Version = "0.1.0-dev"
