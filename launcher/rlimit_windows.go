//go:build windows
// +build windows

package launcher

import (
	"runtime/debug"
)

// SetMaxResources adjusts the Go runtime thread cap on Windows. There is no
// open-file limit equivalent to raise here.
func SetMaxResources() error {
	maxThreads := 8000
	debug.SetMaxThreads(maxThreads)
	return nil
}
