// Package version exposes the tm release version baked into the
// binary at build time.
package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var raw string

// Get returns the version string, trimmed of the file's trailing
// newline.
func Get() string {
	return strings.TrimSpace(raw)
}
