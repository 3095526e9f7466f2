// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// are located in separate files (affinity_linux.go, affinity_stub.go)
// guarded by build tags.

package affinity

import "runtime"

// SetAffinity pins the current OS thread to a given logical CPU/core on
// supported platforms. On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}

// PinCurrentThread locks the calling goroutine to its OS thread and pins
// that thread to cpuID. The goroutine stays locked for its lifetime.
func PinCurrentThread(cpuID int) error {
	runtime.LockOSThread()
	return setAffinityPlatform(cpuID)
}
