// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts of hioload-sync: executor, ring buffer, lock, counter
// and actor reference interfaces, plus shared error values. Concrete
// implementations live in their own packages; api carries only the
// cross-package surface.
package api
