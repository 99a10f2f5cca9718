//go:build linux
// +build linux

package launcher

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// SetMaxResources raises the open-file limit and the Go runtime thread cap
// before the benchmark run. The external tool opens one connection per
// concurrent request, so the launcher lifts the limits it will inherit.
func SetMaxResources() error {
	const threadLimit = 10000
	rLimit := unix.Rlimit{}

	err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		return fmt.Errorf("unable to get rlimit: %v", err)
	}

	// Lift the open file limit to the hard maximum
	rLimit.Cur = rLimit.Max
	err = unix.Setrlimit(unix.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		return fmt.Errorf("unable to set open file limit: %v", err)
	}

	threads, err := readLinuxMaxThreads()
	if err != nil {
		return fmt.Errorf("unable to read max threads: %v", err)
	}

	// Cap the Go runtime at 90% of the system thread limit
	maxThreads := (int(threads) * 90) / 100
	if maxThreads > threadLimit {
		debug.SetMaxThreads(maxThreads)
	}

	return nil
}

// readLinuxMaxThreads reads the system thread limit from
// /proc/sys/kernel/threads-max.
func readLinuxMaxThreads() (uint32, error) {
	data, err := os.ReadFile("/proc/sys/kernel/threads-max")
	if err != nil {
		return 0, fmt.Errorf("unable to read /proc/sys/kernel/threads-max: %v", err)
	}
	trimmed := strings.TrimSpace(string(data))
	threads, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unable to parse max threads value: %v", err)
	}
	return uint32(threads), nil
}
