// Package version reports the translator's version string.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is overridden at link time:
//
//	go build -ldflags "-X github.com/j2cs/j2cs/compiler/internal/version.Version=v0.2.0"
var Version = "0.1.0-dev"

// String returns "j2csc <version> (<go version> <os>/<arch>)", with the VCS
// revision appended when the binary was built from a checkout.
func String() string {
	s := fmt.Sprintf("j2csc %s (%s %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if rev := revision(); rev != "" {
		s += " rev " + rev
	}
	return s
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, kv := range info.Settings {
		if kv.Key == "vcs.revision" && len(kv.Value) >= 12 {
			return kv.Value[:12]
		}
	}
	return ""
}
