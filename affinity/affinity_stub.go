//go:build !linux
// +build !linux

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Fallback for platforms without an affinity implementation.

package affinity

import "github.com/momentics/hioload-sync/api"

// setAffinityPlatform reports affinity as unsupported.
func setAffinityPlatform(cpuID int) error {
	return api.ErrAffinityNotSupported
}
